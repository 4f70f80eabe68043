package dto

import (
	"time"

	"github.com/spec-kit/enquiry-service/internal/domain"
	"github.com/spec-kit/enquiry-service/pkg/util"
)

var staffOrderFields = []string{"id", "email", "name", "createdAt", "updatedAt"}

// CreateStaffRequest payload.
type CreateStaffRequest struct {
	Email    string  `json:"email"`
	Name     *string `json:"name"`
	RoleID   int     `json:"roleId"`
	Password string  `json:"password"`
}

// Validate enforces field constraints, reporting the first violation.
func (r CreateStaffRequest) Validate() error {
	if r.Email == "" {
		return util.NewInvalidArgument("email is required")
	}
	if len(r.Email) > 255 {
		return util.NewInvalidArgument("email must be less than 255 characters")
	}
	if !emailPattern.MatchString(r.Email) {
		return util.NewInvalidArgument("Invalid email format")
	}
	if r.Name != nil {
		if len(*r.Name) < 1 {
			return util.NewInvalidArgument("name must be at least 1 character")
		}
		if len(*r.Name) > 100 {
			return util.NewInvalidArgument("name must be less than 100 characters")
		}
	}
	if r.RoleID <= 0 {
		return util.NewInvalidArgument("roleId must be a positive number")
	}
	if !domain.StaffRole(r.RoleID).Valid() {
		return util.NewInvalidArgument("roleId must be a known role")
	}
	if len(r.Password) < 6 {
		return util.NewInvalidArgument("password must be at least 6 characters")
	}
	if len(r.Password) > 255 {
		return util.NewInvalidArgument("password must be less than 255 characters")
	}
	return nil
}

// GetStaffRequest identifies a staff row.
type GetStaffRequest struct {
	ID int64
}

func (r GetStaffRequest) Validate() error {
	return validateID(r.ID)
}

// ListStaffRequest captures list parameters for staff.
type ListStaffRequest struct {
	ListQuery
}

func (r ListStaffRequest) Validate() error {
	return r.validate(staffOrderFields)
}

// UpdateStaffRequest carries partial updates; absent fields are preserved.
type UpdateStaffRequest struct {
	ID     int64   `json:"-"`
	Email  *string `json:"email"`
	Name   *string `json:"name"`
	RoleID *int    `json:"roleId"`
}

func (r UpdateStaffRequest) Validate() error {
	if err := validateID(r.ID); err != nil {
		return err
	}
	if r.Email != nil {
		if len(*r.Email) > 255 {
			return util.NewInvalidArgument("email must be less than 255 characters")
		}
		if !emailPattern.MatchString(*r.Email) {
			return util.NewInvalidArgument("Invalid email format")
		}
	}
	if r.Name != nil {
		if len(*r.Name) < 1 {
			return util.NewInvalidArgument("name must be at least 1 character")
		}
		if len(*r.Name) > 100 {
			return util.NewInvalidArgument("name must be less than 100 characters")
		}
	}
	if r.RoleID != nil {
		if *r.RoleID <= 0 {
			return util.NewInvalidArgument("roleId must be a positive number")
		}
		if !domain.StaffRole(*r.RoleID).Valid() {
			return util.NewInvalidArgument("roleId must be a known role")
		}
	}
	return nil
}

// DeleteStaffRequest identifies a staff row.
type DeleteStaffRequest struct {
	ID int64
}

func (r DeleteStaffRequest) Validate() error {
	return validateID(r.ID)
}

// StaffLoginRequest payload.
type StaffLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r StaffLoginRequest) Validate() error {
	if r.Email == "" {
		return util.NewInvalidArgument("email is required")
	}
	if len(r.Email) > 255 {
		return util.NewInvalidArgument("email must be less than 255 characters")
	}
	if !emailPattern.MatchString(r.Email) {
		return util.NewInvalidArgument("Invalid email format")
	}
	if len(r.Password) < 6 {
		return util.NewInvalidArgument("password must be at least 6 characters")
	}
	if len(r.Password) > 255 {
		return util.NewInvalidArgument("password must be less than 255 characters")
	}
	return nil
}

// ChangePasswordRequest payload. The target staff id always derives from the
// verified session token, never from the payload.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (r ChangePasswordRequest) Validate() error {
	if len(r.OldPassword) < 6 {
		return util.NewInvalidArgument("oldPassword must be at least 6 characters")
	}
	if len(r.OldPassword) > 255 {
		return util.NewInvalidArgument("oldPassword must be less than 255 characters")
	}
	if len(r.NewPassword) < 6 {
		return util.NewInvalidArgument("newPassword must be at least 6 characters")
	}
	if len(r.NewPassword) > 255 {
		return util.NewInvalidArgument("newPassword must be less than 255 characters")
	}
	return nil
}

// StaffResponse is the public projection of a staff account. The password
// hash is never exposed.
type StaffResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name,omitempty"`
	RoleID    int       `json:"roleId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewStaffResponse projects a domain staff row.
func NewStaffResponse(staff *domain.Staff) StaffResponse {
	return StaffResponse{
		ID:        staff.ID,
		Email:     staff.Email,
		Name:      staff.Name,
		RoleID:    int(staff.Role),
		CreatedAt: staff.CreatedAt,
		UpdatedAt: staff.UpdatedAt,
	}
}

// ListStaffResponse wraps a staff page with its total count.
type ListStaffResponse struct {
	Staffs []StaffResponse `json:"staffs"`
	Total  int64           `json:"total"`
}

// StaffLoginResponse carries the issued session token.
type StaffLoginResponse struct {
	Token string `json:"token"`
}

// ChangePasswordResponse is the post-rotation projection (no role, no hash).
type ChangePasswordResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
