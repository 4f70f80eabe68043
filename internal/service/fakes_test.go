package service

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/enquiry-service/internal/domain"
	"github.com/spec-kit/enquiry-service/internal/repository"
)

// stubTxManager hands fn a nil handle; the fakes below ignore it.
type stubTxManager struct{}

func (stubTxManager) Handle() repository.DB { return nil }

func (stubTxManager) WithinTx(ctx context.Context, fn func(db repository.DB) error) error {
	return fn(nil)
}

type fakeStaffRepo struct {
	nextID int64
	rows   map[int64]domain.Staff
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{rows: make(map[int64]domain.Staff)}
}

func (f *fakeStaffRepo) Create(_ context.Context, _ repository.DB, staff *domain.Staff) error {
	f.nextID++
	staff.ID = f.nextID
	staff.CreatedAt = time.Now()
	staff.UpdatedAt = staff.CreatedAt
	f.rows[staff.ID] = *staff
	return nil
}

func (f *fakeStaffRepo) GetByID(_ context.Context, _ repository.DB, id int64) (*domain.Staff, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &row, nil
}

func (f *fakeStaffRepo) GetByEmail(_ context.Context, _ repository.DB, email string) (*domain.Staff, error) {
	for _, row := range f.rows {
		if row.Email == email {
			row := row
			return &row, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeStaffRepo) List(_ context.Context, _ repository.DB, page repository.ListPage) ([]domain.Staff, int64, error) {
	ids := make([]int64, 0, len(f.rows))
	for id := range f.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	all := make([]domain.Staff, 0, len(ids))
	for _, id := range ids {
		all = append(all, f.rows[id])
	}
	return paginate(all, page), int64(len(all)), nil
}

func (f *fakeStaffRepo) UpdateByID(_ context.Context, _ repository.DB, id int64, update repository.StaffUpdate) (*domain.Staff, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if update.Email != nil {
		row.Email = *update.Email
	}
	if update.Name != nil {
		row.Name = update.Name
	}
	if update.Role != nil {
		row.Role = *update.Role
	}
	if update.PasswordHash != nil {
		row.PasswordHash = *update.PasswordHash
	}
	row.UpdatedAt = time.Now()
	f.rows[id] = row
	return &row, nil
}

func (f *fakeStaffRepo) DeleteByID(_ context.Context, _ repository.DB, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.rows, id)
	return nil
}

type fakeEnquiryRepo struct {
	nextID   int64
	rows     map[int64]domain.Enquiry
	lastPage repository.ListPage
}

func newFakeEnquiryRepo() *fakeEnquiryRepo {
	return &fakeEnquiryRepo{rows: make(map[int64]domain.Enquiry)}
}

func (f *fakeEnquiryRepo) Create(_ context.Context, _ repository.DB, enquiry *domain.Enquiry) error {
	f.nextID++
	enquiry.ID = f.nextID
	enquiry.CreatedAt = time.Now()
	enquiry.UpdatedAt = enquiry.CreatedAt
	f.rows[enquiry.ID] = *enquiry
	return nil
}

func (f *fakeEnquiryRepo) GetByID(_ context.Context, _ repository.DB, id int64) (*domain.Enquiry, error) {
	row, ok := f.rows[id]
	if !ok || row.IsDeleted {
		return nil, pgx.ErrNoRows
	}
	return &row, nil
}

func (f *fakeEnquiryRepo) List(_ context.Context, _ repository.DB, page repository.ListPage) ([]domain.Enquiry, int64, error) {
	f.lastPage = page

	ids := make([]int64, 0, len(f.rows))
	for id, row := range f.rows {
		if !row.IsDeleted {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	live := make([]domain.Enquiry, 0, len(ids))
	for _, id := range ids {
		live = append(live, f.rows[id])
	}
	return paginate(live, page), int64(len(live)), nil
}

func (f *fakeEnquiryRepo) UpdateByID(_ context.Context, _ repository.DB, id int64, update repository.EnquiryUpdate) (*domain.Enquiry, error) {
	row, ok := f.rows[id]
	if !ok || row.IsDeleted {
		return nil, pgx.ErrNoRows
	}
	if update.Email != nil {
		row.Email = update.Email
	}
	if update.Name != nil {
		row.Name = update.Name
	}
	if update.Phone != nil {
		row.Phone = update.Phone
	}
	if update.Message != nil {
		row.Message = *update.Message
	}
	row.UpdatedAt = time.Now()
	f.rows[id] = row
	return &row, nil
}

func (f *fakeEnquiryRepo) DeleteByID(_ context.Context, _ repository.DB, id int64) error {
	row, ok := f.rows[id]
	if !ok || row.IsDeleted {
		return pgx.ErrNoRows
	}
	now := time.Now()
	row.IsDeleted = true
	row.DeletedAt = &now
	row.UpdatedAt = now
	f.rows[id] = row
	return nil
}

func paginate[T any](items []T, page repository.ListPage) []T {
	if page.Offset != nil {
		if *page.Offset >= len(items) {
			return nil
		}
		items = items[*page.Offset:]
	}
	if page.Limit != nil && *page.Limit < len(items) {
		items = items[:*page.Limit]
	}
	return items
}
