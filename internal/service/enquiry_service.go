package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/enquiry-service/internal/api/dto"
	"github.com/spec-kit/enquiry-service/internal/domain"
	"github.com/spec-kit/enquiry-service/internal/events"
	"github.com/spec-kit/enquiry-service/internal/repository"
	"github.com/spec-kit/enquiry-service/pkg/util"
)

// Enquiry lists default to ten rows when no limit is supplied.
const defaultEnquiryListLimit = 10

// EnquiryService orchestrates the public intake channel and staff-facing
// enquiry management.
type EnquiryService struct {
	enquiries  repository.EnquiryRepository
	tx         repository.TxManager
	dispatcher events.Dispatcher
}

// EnquiryDependencies encapsulates collaborators for the enquiry service.
type EnquiryDependencies struct {
	EnquiryRepo repository.EnquiryRepository
	Tx          repository.TxManager
	Dispatcher  events.Dispatcher
}

// NewEnquiryService builds the service.
func NewEnquiryService(deps EnquiryDependencies) *EnquiryService {
	return &EnquiryService{
		enquiries:  deps.EnquiryRepo,
		tx:         deps.Tx,
		dispatcher: deps.Dispatcher,
	}
}

// CreateEnquiry persists a public submission. No authentication is required.
func (s *EnquiryService) CreateEnquiry(ctx context.Context, req dto.CreateEnquiryRequest) (*dto.EnquiryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	enquiry := &domain.Enquiry{
		Email:   req.Email,
		Name:    req.Name,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := s.enquiries.Create(ctx, s.tx.Handle(), enquiry); err != nil {
		return nil, err
	}

	s.publishEnquiryCreated(ctx, enquiry)

	resp := dto.NewEnquiryResponse(enquiry)
	return &resp, nil
}

// GetEnquiry fetches a live enquiry by id; soft-deleted rows report not found.
func (s *EnquiryService) GetEnquiry(ctx context.Context, req dto.GetEnquiryRequest) (*dto.EnquiryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	enquiry, err := s.enquiries.GetByID(ctx, s.tx.Handle(), req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("Enquiry not found")
		}
		return nil, err
	}

	resp := dto.NewEnquiryResponse(enquiry)
	return &resp, nil
}

// ListEnquiries returns a page of live enquiries plus their total count.
func (s *EnquiryService) ListEnquiries(ctx context.Context, req dto.ListEnquiriesRequest) (*dto.ListEnquiriesResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	page := req.Page()
	if page.Limit == nil {
		limit := defaultEnquiryListLimit
		page.Limit = &limit
	}

	items, total, err := s.enquiries.List(ctx, s.tx.Handle(), page)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListEnquiriesResponse{Enquiries: make([]dto.EnquiryResponse, 0, len(items)), Total: total}
	for i := range items {
		resp.Enquiries = append(resp.Enquiries, dto.NewEnquiryResponse(&items[i]))
	}
	return resp, nil
}

// UpdateEnquiry applies a partial update to a live enquiry; absent fields
// keep their prior values.
func (s *EnquiryService) UpdateEnquiry(ctx context.Context, req dto.UpdateEnquiryRequest) (*dto.EnquiryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	update := repository.EnquiryUpdate{
		Email:   req.Email,
		Name:    req.Name,
		Phone:   req.Phone,
		Message: req.Message,
	}
	enquiry, err := s.enquiries.UpdateByID(ctx, s.tx.Handle(), req.ID, update)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("Enquiry not found")
		}
		return nil, err
	}

	resp := dto.NewEnquiryResponse(enquiry)
	return &resp, nil
}

// DeleteEnquiry soft-deletes an enquiry. Deleting one that is already gone
// reports not found.
func (s *EnquiryService) DeleteEnquiry(ctx context.Context, req dto.DeleteEnquiryRequest) (*dto.DeleteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.enquiries.DeleteByID(ctx, s.tx.Handle(), req.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("Enquiry not found")
		}
		return nil, err
	}
	return &dto.DeleteResponse{Success: true, Message: "Enquiry deleted successfully"}, nil
}

func (s *EnquiryService) publishEnquiryCreated(ctx context.Context, enquiry *domain.Enquiry) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventEnquiryCreated,
		Timestamp: time.Now(),
		Payload: events.EnquiryCreatedPayload{
			EnquiryID: enquiry.ID,
			Email:     enquiry.Email,
			Name:      enquiry.Name,
		},
	})
}
