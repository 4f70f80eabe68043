package http

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/enquiry-service/internal/api/http/response"
	"github.com/spec-kit/enquiry-service/internal/observability"
	"github.com/spec-kit/enquiry-service/pkg/util"
)

// RegisterMiddlewares attaches global middlewares: trace ids, error
// classification and access logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics) {
	app.Use(observability.TraceMiddleware())
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics))
}

// errorHandlingMiddleware classifies every failure into the response envelope
// and recovers panics. A recovered error value maps to SYSTEM_ERROR, any
// other panic value to UNKNOWN_ERROR.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.String("trace_id", observability.TraceID(c)),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()),
				)
				if recovered, ok := r.(error); ok {
					err = util.NewSystemError(recovered)
				} else {
					err = util.NewApiError(util.StatusUnknownError, "An unknown error occurred", fiber.StatusInternalServerError)
				}
			}
			if err != nil {
				traceID := observability.TraceID(c)
				apiErr := util.ToAPIError(err)
				metrics.RecordError(c.Path(), c.Method(), apiErr.StatusCode)
				logger.Warn("request failed",
					zap.String("trace_id", traceID),
					zap.String("status_code", apiErr.StatusCode),
					zap.Int("http_status", apiErr.HTTPStatus),
					zap.Error(apiErr),
				)
				err = response.Failure(c, traceID, apiErr)
			}
		}()
		return c.Next()
	}
}
