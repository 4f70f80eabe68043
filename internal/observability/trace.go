package observability

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const traceIDKey = "trace_id"

// TraceMiddleware assigns a fresh random trace id to every request. The id is
// echoed in the response envelope and attached to all failure logs.
func TraceMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(traceIDKey, uuid.NewString())
		return c.Next()
	}
}

// TraceID returns the request's trace id, or an empty string outside the
// middleware chain.
func TraceID(c *fiber.Ctx) string {
	if id, ok := c.Locals(traceIDKey).(string); ok {
		return id
	}
	return ""
}

// RequestLogger records one access-log line and a metrics sample per request.
func RequestLogger(logger *zap.Logger, metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		latency := time.Since(start)

		status := c.Response().StatusCode()
		metrics.RecordRequest(c.Path(), c.Method(), status, latency)
		logger.Info("request",
			zap.String("trace_id", TraceID(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", latency),
		)
		return err
	}
}
