package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/enquiry-service/internal/api/dto"
	"github.com/spec-kit/enquiry-service/internal/api/http/response"
	"github.com/spec-kit/enquiry-service/internal/observability"
	"github.com/spec-kit/enquiry-service/internal/service"
	"github.com/spec-kit/enquiry-service/pkg/util"
)

// EnquiryHandler exposes enquiry intake and management endpoints.
type EnquiryHandler struct {
	enquiryService *service.EnquiryService
}

// NewEnquiryHandler constructs the handler.
func NewEnquiryHandler(enquiryService *service.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquiryService: enquiryService}
}

// Create handles POST /enquiry (public intake, no auth).
func (h *EnquiryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEnquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewInvalidArgument("invalid request body")
	}

	result, err := h.enquiryService.CreateEnquiry(c.UserContext(), req)
	if err != nil {
		return err
	}
	return response.Success(c, observability.TraceID(c), result)
}

// Get handles GET /enquiry/:id.
func (h *EnquiryHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	result, err := h.enquiryService.GetEnquiry(c.UserContext(), dto.GetEnquiryRequest{ID: id})
	if err != nil {
		return err
	}
	return response.Success(c, observability.TraceID(c), result)
}

// List handles GET /enquiry.
func (h *EnquiryHandler) List(c *fiber.Ctx) error {
	query, err := parseListQuery(c)
	if err != nil {
		return err
	}

	result, err := h.enquiryService.ListEnquiries(c.UserContext(), dto.ListEnquiriesRequest{ListQuery: query})
	if err != nil {
		return err
	}
	return response.Success(c, observability.TraceID(c), result)
}

// Update handles PUT /enquiry/:id.
func (h *EnquiryHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateEnquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewInvalidArgument("invalid request body")
	}
	req.ID = id

	result, err := h.enquiryService.UpdateEnquiry(c.UserContext(), req)
	if err != nil {
		return err
	}
	return response.Success(c, observability.TraceID(c), result)
}

// Delete handles DELETE /enquiry/:id.
func (h *EnquiryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	result, err := h.enquiryService.DeleteEnquiry(c.UserContext(), dto.DeleteEnquiryRequest{ID: id})
	if err != nil {
		return err
	}
	return response.Success(c, observability.TraceID(c), result)
}
