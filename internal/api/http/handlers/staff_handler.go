package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/enquiry-service/internal/api/dto"
	"github.com/spec-kit/enquiry-service/internal/api/http/response"
	"github.com/spec-kit/enquiry-service/internal/auth"
	"github.com/spec-kit/enquiry-service/internal/observability"
	"github.com/spec-kit/enquiry-service/internal/service"
	"github.com/spec-kit/enquiry-service/pkg/util"
)

// StaffHandler exposes staff management and session endpoints.
type StaffHandler struct {
	staffService *service.StaffService
}

// NewStaffHandler constructs the handler.
func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// Create handles POST /staff.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewInvalidArgument("invalid request body")
	}

	result, err := h.staffService.CreateStaff(c.UserContext(), req)
	if err != nil {
		return err
	}
	return response.Success(c, observability.TraceID(c), result)
}

// Get handles GET /staff/:id.
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	result, err := h.staffService.GetStaff(c.UserContext(), dto.GetStaffRequest{ID: id})
	if err != nil {
		return err
	}
	return response.Success(c, observability.TraceID(c), result)
}

// List handles GET /staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	query, err := parseListQuery(c)
	if err != nil {
		return err
	}

	result, err := h.staffService.ListStaff(c.UserContext(), dto.ListStaffRequest{ListQuery: query})
	if err != nil {
		return err
	}
	return response.Success(c, observability.TraceID(c), result)
}

// Update handles PUT /staff/:id.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewInvalidArgument("invalid request body")
	}
	req.ID = id

	result, err := h.staffService.UpdateStaff(c.UserContext(), req)
	if err != nil {
		return err
	}
	return response.Success(c, observability.TraceID(c), result)
}

// Delete handles DELETE /staff/:id.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	result, err := h.staffService.DeleteStaff(c.UserContext(), dto.DeleteStaffRequest{ID: id})
	if err != nil {
		return err
	}
	return response.Success(c, observability.TraceID(c), result)
}

// Login handles POST /staff/login.
func (h *StaffHandler) Login(c *fiber.Ctx) error {
	var req dto.StaffLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewInvalidArgument("invalid request body")
	}

	result, err := h.staffService.Login(c.UserContext(), req)
	if err != nil {
		return err
	}
	return response.Success(c, observability.TraceID(c), result)
}

// ChangePassword handles POST /me/staff/change-password. The target account
// is always the caller's own, taken from the verified token.
func (h *StaffHandler) ChangePassword(c *fiber.Ctx) error {
	actorID, ok := auth.ActorID(c)
	if !ok {
		return util.NewUnauthorized("User has no permission")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewInvalidArgument("invalid request body")
	}

	result, err := h.staffService.ChangePassword(c.UserContext(), actorID, req)
	if err != nil {
		return err
	}
	return response.Success(c, observability.TraceID(c), result)
}
