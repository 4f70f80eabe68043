package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/enquiry-service/internal/api/dto"
	"github.com/spec-kit/enquiry-service/internal/auth"
	"github.com/spec-kit/enquiry-service/internal/config"
	"github.com/spec-kit/enquiry-service/internal/domain"
	"github.com/spec-kit/enquiry-service/internal/events"
	"github.com/spec-kit/enquiry-service/internal/repository"
	"github.com/spec-kit/enquiry-service/pkg/util"
)

// StaffService orchestrates staff lifecycle, login and password rotation.
type StaffService struct {
	staff      repository.StaffRepository
	tx         repository.TxManager
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
	pepper     string
	bcryptCost int
}

// StaffDependencies encapsulates collaborators for the staff service.
type StaffDependencies struct {
	StaffRepo  repository.StaffRepository
	Tx         repository.TxManager
	Tokens     *auth.TokenManager
	Dispatcher events.Dispatcher
}

// NewStaffService builds the service.
func NewStaffService(cfg config.Config, deps StaffDependencies) *StaffService {
	return &StaffService{
		staff:      deps.StaffRepo,
		tx:         deps.Tx,
		tokens:     deps.Tokens,
		dispatcher: deps.Dispatcher,
		pepper:     cfg.Auth.PasswordPepper,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// CreateStaff registers a staff account. The uniqueness check and insert run
// in one transaction; the unique index on email settles concurrent races.
func (s *StaffService) CreateStaff(ctx context.Context, req dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Staff
	err := s.tx.WithinTx(ctx, func(db repository.DB) error {
		if _, err := s.staff.GetByEmail(ctx, db, req.Email); err == nil {
			return util.NewBusinessRule("Staff already exists")
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		hash, err := auth.HashPassword(req.Password, s.pepper, s.bcryptCost)
		if err != nil {
			return err
		}

		staff := &domain.Staff{
			Email:        req.Email,
			Name:         req.Name,
			Role:         domain.StaffRole(req.RoleID),
			PasswordHash: hash,
		}
		if err := s.staff.Create(ctx, db, staff); err != nil {
			if repository.IsUniqueViolation(err) {
				return util.NewBusinessRule("Staff already exists")
			}
			return err
		}
		created = staff
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishStaffCreated(ctx, created)

	resp := dto.NewStaffResponse(created)
	return &resp, nil
}

// GetStaff fetches a staff account by id.
func (s *StaffService) GetStaff(ctx context.Context, req dto.GetStaffRequest) (*dto.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	staff, err := s.staff.GetByID(ctx, s.tx.Handle(), req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("Staff not found")
		}
		return nil, err
	}

	resp := dto.NewStaffResponse(staff)
	return &resp, nil
}

// ListStaff returns a staff page plus the total count.
func (s *StaffService) ListStaff(ctx context.Context, req dto.ListStaffRequest) (*dto.ListStaffResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	items, total, err := s.staff.List(ctx, s.tx.Handle(), req.Page())
	if err != nil {
		return nil, err
	}

	resp := &dto.ListStaffResponse{Staffs: make([]dto.StaffResponse, 0, len(items)), Total: total}
	for i := range items {
		resp.Staffs = append(resp.Staffs, dto.NewStaffResponse(&items[i]))
	}
	return resp, nil
}

// UpdateStaff applies a partial update: fields absent from the payload keep
// their prior values, the name field included.
func (s *StaffService) UpdateStaff(ctx context.Context, req dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	update := repository.StaffUpdate{Email: req.Email, Name: req.Name}
	if req.RoleID != nil {
		role := domain.StaffRole(*req.RoleID)
		update.Role = &role
	}

	staff, err := s.staff.UpdateByID(ctx, s.tx.Handle(), req.ID, update)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("Staff not found")
		}
		return nil, err
	}

	resp := dto.NewStaffResponse(staff)
	return &resp, nil
}

// DeleteStaff removes a staff account permanently.
func (s *StaffService) DeleteStaff(ctx context.Context, req dto.DeleteStaffRequest) (*dto.DeleteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.staff.DeleteByID(ctx, s.tx.Handle(), req.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("Staff not found")
		}
		return nil, err
	}
	return &dto.DeleteResponse{Success: true, Message: "Staff deleted successfully"}, nil
}

// Login authenticates by email and password. Unknown email and password
// mismatch are deliberately indistinguishable to the caller.
func (s *StaffService) Login(ctx context.Context, req dto.StaffLoginRequest) (*dto.StaffLoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	invalid := util.NewNotFound("Invalid email or password")

	staff, err := s.staff.GetByEmail(ctx, s.tx.Handle(), req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invalid
		}
		return nil, err
	}
	if err := auth.ComparePassword(staff.PasswordHash, req.Password, s.pepper); err != nil {
		return nil, invalid
	}

	token, _, err := s.tokens.Generate(staff.ID, staff.Role)
	if err != nil {
		return nil, err
	}
	return &dto.StaffLoginResponse{Token: token}, nil
}

// ChangePassword rotates the caller's own password. actorID is the id from
// the verified session token; the read-verify-write sequence runs in one
// transaction so concurrent rotations serialize.
func (s *StaffService) ChangePassword(ctx context.Context, actorID int64, req dto.ChangePasswordRequest) (*dto.ChangePasswordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Staff
	err := s.tx.WithinTx(ctx, func(db repository.DB) error {
		staff, err := s.staff.GetByID(ctx, db, actorID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return util.NewNotFound("Staff not found")
			}
			return err
		}

		if err := auth.ComparePassword(staff.PasswordHash, req.OldPassword, s.pepper); err != nil {
			return util.NewBusinessRule("Old password is incorrect")
		}

		hash, err := auth.HashPassword(req.NewPassword, s.pepper, s.bcryptCost)
		if err != nil {
			return err
		}

		updated, err = s.staff.UpdateByID(ctx, db, actorID, repository.StaffUpdate{PasswordHash: &hash})
		return err
	})
	if err != nil {
		return nil, err
	}

	return &dto.ChangePasswordResponse{
		ID:        updated.ID,
		Email:     updated.Email,
		Name:      updated.Name,
		CreatedAt: updated.CreatedAt,
		UpdatedAt: updated.UpdatedAt,
	}, nil
}

func (s *StaffService) publishStaffCreated(ctx context.Context, staff *domain.Staff) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventStaffCreated,
		Timestamp: time.Now(),
		Payload: events.StaffCreatedPayload{
			StaffID: staff.ID,
			Email:   staff.Email,
			RoleID:  int(staff.Role),
		},
	})
}
