package response

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/enquiry-service/pkg/util"
)

// Body is the uniform wire envelope returned by every endpoint, success or
// failure.
type Body struct {
	StatusCode string `json:"statusCode"`
	TraceID    string `json:"traceId"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
}

// Success writes a 200 SUCCESS envelope around data.
func Success(c *fiber.Ctx, traceID string, data any) error {
	if data == nil {
		data = struct{}{}
	}
	return c.Status(http.StatusOK).JSON(Body{
		StatusCode: util.StatusSuccess,
		TraceID:    traceID,
		Message:    "Success",
		Data:       data,
	})
}

// Failure writes the envelope for a classified error with an empty data
// object. Internal error detail never reaches the body.
func Failure(c *fiber.Ctx, traceID string, apiErr *util.ApiError) error {
	return c.Status(apiErr.HTTPStatus).JSON(Body{
		StatusCode: apiErr.StatusCode,
		TraceID:    traceID,
		Message:    apiErr.Message,
		Data:       struct{}{},
	})
}
