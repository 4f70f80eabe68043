package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/enquiry-service/internal/domain"
)

// StaffRepository handles persistence for staff accounts. Staff deletion is a
// hard delete; there is no soft-delete flag on this resource.
type StaffRepository interface {
	Create(ctx context.Context, db DB, staff *domain.Staff) error
	GetByID(ctx context.Context, db DB, id int64) (*domain.Staff, error)
	GetByEmail(ctx context.Context, db DB, email string) (*domain.Staff, error)
	List(ctx context.Context, db DB, page ListPage) ([]domain.Staff, int64, error)
	UpdateByID(ctx context.Context, db DB, id int64, update StaffUpdate) (*domain.Staff, error)
	DeleteByID(ctx context.Context, db DB, id int64) error
}

// StaffUpdate carries partial-update fields; nil means preserve.
type StaffUpdate struct {
	Email        *string
	Name         *string
	Role         *domain.StaffRole
	PasswordHash *string
}

var staffOrderColumns = map[string]string{
	"id":        "id",
	"email":     "email",
	"name":      "name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

const staffColumns = "id, email, name, role_id, password_hash, created_at, updated_at"

type staffRepository struct{}

// NewStaffRepository instantiates the repository.
func NewStaffRepository() StaffRepository {
	return &staffRepository{}
}

func (r *staffRepository) Create(ctx context.Context, db DB, staff *domain.Staff) error {
	const query = `
        INSERT INTO staff (email, name, role_id, password_hash)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`

	return db.QueryRow(ctx, query,
		staff.Email,
		staff.Name,
		staff.Role,
		staff.PasswordHash,
	).Scan(&staff.ID, &staff.CreatedAt, &staff.UpdatedAt)
}

func (r *staffRepository) GetByID(ctx context.Context, db DB, id int64) (*domain.Staff, error) {
	const query = `SELECT ` + staffColumns + ` FROM staff WHERE id=$1`
	return scanStaffRow(db.QueryRow(ctx, query, id))
}

func (r *staffRepository) GetByEmail(ctx context.Context, db DB, email string) (*domain.Staff, error) {
	const query = `SELECT ` + staffColumns + ` FROM staff WHERE email=$1`
	return scanStaffRow(db.QueryRow(ctx, query, email))
}

// List returns a page of staff plus the total count under the same predicate.
// Count and page are two sequential reads; the drift window is accepted.
func (r *staffRepository) List(ctx context.Context, db DB, page ListPage) ([]domain.Staff, int64, error) {
	query := `SELECT ` + staffColumns + ` FROM staff` + orderClause(staffOrderColumns, page.OrderBy)
	if page.Limit != nil {
		query += fmt.Sprintf(" LIMIT %d", *page.Limit)
	}
	if page.Offset != nil {
		query += fmt.Sprintf(" OFFSET %d", *page.Offset)
	}

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Staff
	for rows.Next() {
		var staff domain.Staff
		if err := rows.Scan(
			&staff.ID,
			&staff.Email,
			&staff.Name,
			&staff.Role,
			&staff.PasswordHash,
			&staff.CreatedAt,
			&staff.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		result = append(result, staff)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM staff`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *staffRepository) UpdateByID(ctx context.Context, db DB, id int64, update StaffUpdate) (*domain.Staff, error) {
	sets := []string{}
	args := []any{}

	if update.Email != nil {
		args = append(args, *update.Email)
		sets = append(sets, fmt.Sprintf("email=$%d", len(args)))
	}
	if update.Name != nil {
		args = append(args, *update.Name)
		sets = append(sets, fmt.Sprintf("name=$%d", len(args)))
	}
	if update.Role != nil {
		args = append(args, *update.Role)
		sets = append(sets, fmt.Sprintf("role_id=$%d", len(args)))
	}
	if update.PasswordHash != nil {
		args = append(args, *update.PasswordHash)
		sets = append(sets, fmt.Sprintf("password_hash=$%d", len(args)))
	}
	sets = append(sets, "updated_at=NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE staff SET %s WHERE id=$%d RETURNING %s",
		strings.Join(sets, ", "), len(args), staffColumns)

	return scanStaffRow(db.QueryRow(ctx, query, args...))
}

func (r *staffRepository) DeleteByID(ctx context.Context, db DB, id int64) error {
	cmd, err := db.Exec(ctx, `DELETE FROM staff WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanStaffRow(row pgx.Row) (*domain.Staff, error) {
	var staff domain.Staff
	if err := row.Scan(
		&staff.ID,
		&staff.Email,
		&staff.Name,
		&staff.Role,
		&staff.PasswordHash,
		&staff.CreatedAt,
		&staff.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &staff, nil
}
