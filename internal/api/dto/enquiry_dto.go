package dto

import (
	"time"

	"github.com/spec-kit/enquiry-service/internal/domain"
	"github.com/spec-kit/enquiry-service/pkg/util"
)

var enquiryOrderFields = []string{"id", "email", "name", "phone", "message", "createdAt", "updatedAt"}

// CreateEnquiryRequest payload for the public intake channel.
type CreateEnquiryRequest struct {
	Email   *string `json:"email"`
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Message string  `json:"message"`
}

// Validate enforces field constraints, reporting the first violation.
func (r CreateEnquiryRequest) Validate() error {
	if r.Email != nil && !emailPattern.MatchString(*r.Email) {
		return util.NewInvalidArgument("email must be a valid email")
	}
	if r.Name != nil {
		if len(*r.Name) < 1 {
			return util.NewInvalidArgument("name must not be empty")
		}
		if len(*r.Name) > 255 {
			return util.NewInvalidArgument("name must be less than 255 characters")
		}
	}
	if r.Phone != nil {
		if len(*r.Phone) < 3 {
			return util.NewInvalidArgument("phone must be at least 3 characters")
		}
		if len(*r.Phone) > 50 {
			return util.NewInvalidArgument("phone must be less than 50 characters")
		}
	}
	if len(r.Message) < 1 {
		return util.NewInvalidArgument("message must not be empty")
	}
	if len(r.Message) > 2000 {
		return util.NewInvalidArgument("message must be less than 2000 characters")
	}
	return nil
}

// GetEnquiryRequest identifies an enquiry.
type GetEnquiryRequest struct {
	ID int64
}

func (r GetEnquiryRequest) Validate() error {
	return validateID(r.ID)
}

// ListEnquiriesRequest captures list parameters for enquiries.
type ListEnquiriesRequest struct {
	ListQuery
}

func (r ListEnquiriesRequest) Validate() error {
	return r.validate(enquiryOrderFields)
}

// UpdateEnquiryRequest carries partial updates; absent fields are preserved.
type UpdateEnquiryRequest struct {
	ID      int64   `json:"-"`
	Email   *string `json:"email"`
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Message *string `json:"message"`
}

func (r UpdateEnquiryRequest) Validate() error {
	if err := validateID(r.ID); err != nil {
		return err
	}
	if r.Email != nil && !emailPattern.MatchString(*r.Email) {
		return util.NewInvalidArgument("email must be a valid email")
	}
	if r.Name != nil {
		if len(*r.Name) < 1 {
			return util.NewInvalidArgument("name must not be empty")
		}
		if len(*r.Name) > 255 {
			return util.NewInvalidArgument("name must be less than 255 characters")
		}
	}
	if r.Phone != nil {
		if len(*r.Phone) < 3 {
			return util.NewInvalidArgument("phone must be at least 3 characters")
		}
		if len(*r.Phone) > 50 {
			return util.NewInvalidArgument("phone must be less than 50 characters")
		}
	}
	if r.Message != nil {
		if len(*r.Message) < 1 {
			return util.NewInvalidArgument("message must not be empty")
		}
		if len(*r.Message) > 2000 {
			return util.NewInvalidArgument("message must be less than 2000 characters")
		}
	}
	return nil
}

// DeleteEnquiryRequest identifies an enquiry.
type DeleteEnquiryRequest struct {
	ID int64
}

func (r DeleteEnquiryRequest) Validate() error {
	return validateID(r.ID)
}

// EnquiryResponse is the public projection of an enquiry.
type EnquiryResponse struct {
	ID        int64     `json:"id"`
	Email     *string   `json:"email,omitempty"`
	Name      *string   `json:"name,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewEnquiryResponse projects a domain enquiry row.
func NewEnquiryResponse(enquiry *domain.Enquiry) EnquiryResponse {
	return EnquiryResponse{
		ID:        enquiry.ID,
		Email:     enquiry.Email,
		Name:      enquiry.Name,
		Phone:     enquiry.Phone,
		Message:   enquiry.Message,
		CreatedAt: enquiry.CreatedAt,
		UpdatedAt: enquiry.UpdatedAt,
	}
}

// ListEnquiriesResponse wraps an enquiry page with its total count.
type ListEnquiriesResponse struct {
	Enquiries []EnquiryResponse `json:"enquiries"`
	Total     int64             `json:"total"`
}
