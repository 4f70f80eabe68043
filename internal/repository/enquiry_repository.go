package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/enquiry-service/internal/domain"
)

// EnquiryRepository handles persistence for enquiries. Deletion is a soft
// delete; every lookup, page and count filters on is_deleted=FALSE so deleted
// rows are invisible to all read paths.
type EnquiryRepository interface {
	Create(ctx context.Context, db DB, enquiry *domain.Enquiry) error
	GetByID(ctx context.Context, db DB, id int64) (*domain.Enquiry, error)
	List(ctx context.Context, db DB, page ListPage) ([]domain.Enquiry, int64, error)
	UpdateByID(ctx context.Context, db DB, id int64, update EnquiryUpdate) (*domain.Enquiry, error)
	DeleteByID(ctx context.Context, db DB, id int64) error
}

// EnquiryUpdate carries partial-update fields; nil means preserve.
type EnquiryUpdate struct {
	Email   *string
	Name    *string
	Phone   *string
	Message *string
}

var enquiryOrderColumns = map[string]string{
	"id":        "id",
	"email":     "email",
	"name":      "name",
	"phone":     "phone",
	"message":   "message",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

const enquiryColumns = "id, email, name, phone, message, is_deleted, deleted_at, created_at, updated_at"

type enquiryRepository struct{}

// NewEnquiryRepository instantiates the repository.
func NewEnquiryRepository() EnquiryRepository {
	return &enquiryRepository{}
}

func (r *enquiryRepository) Create(ctx context.Context, db DB, enquiry *domain.Enquiry) error {
	const query = `
        INSERT INTO enquiries (email, name, phone, message)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`

	return db.QueryRow(ctx, query,
		enquiry.Email,
		enquiry.Name,
		enquiry.Phone,
		enquiry.Message,
	).Scan(&enquiry.ID, &enquiry.CreatedAt, &enquiry.UpdatedAt)
}

func (r *enquiryRepository) GetByID(ctx context.Context, db DB, id int64) (*domain.Enquiry, error) {
	const query = `SELECT ` + enquiryColumns + ` FROM enquiries WHERE id=$1 AND is_deleted=FALSE`
	return scanEnquiryRow(db.QueryRow(ctx, query, id))
}

// List returns a page of live enquiries plus the total count under the same
// is_deleted=FALSE predicate. Count and page are two sequential reads; the
// drift window is accepted.
func (r *enquiryRepository) List(ctx context.Context, db DB, page ListPage) ([]domain.Enquiry, int64, error) {
	query := `SELECT ` + enquiryColumns + ` FROM enquiries WHERE is_deleted=FALSE` +
		orderClause(enquiryOrderColumns, page.OrderBy)
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

	var result []domain.Enquiry
	for rows.Next() {
		var enquiry domain.Enquiry
		if err := rows.Scan(
			&enquiry.ID,
			&enquiry.Email,
			&enquiry.Name,
			&enquiry.Phone,
			&enquiry.Message,
			&enquiry.IsDeleted,
			&enquiry.DeletedAt,
			&enquiry.CreatedAt,
			&enquiry.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		result = append(result, enquiry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM enquiries WHERE is_deleted=FALSE`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *enquiryRepository) UpdateByID(ctx context.Context, db DB, id int64, update EnquiryUpdate) (*domain.Enquiry, error) {
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
	if update.Phone != nil {
		args = append(args, *update.Phone)
		sets = append(sets, fmt.Sprintf("phone=$%d", len(args)))
	}
	if update.Message != nil {
		args = append(args, *update.Message)
		sets = append(sets, fmt.Sprintf("message=$%d", len(args)))
	}
	sets = append(sets, "updated_at=NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE enquiries SET %s WHERE id=$%d AND is_deleted=FALSE RETURNING %s",
		strings.Join(sets, ", "), len(args), enquiryColumns)

	return scanEnquiryRow(db.QueryRow(ctx, query, args...))
}

// DeleteByID soft-deletes. Re-deleting an already deleted row reports
// pgx.ErrNoRows because the predicate excludes it.
func (r *enquiryRepository) DeleteByID(ctx context.Context, db DB, id int64) error {
	const query = `
        UPDATE enquiries SET is_deleted=TRUE, deleted_at=NOW(), updated_at=NOW()
        WHERE id=$1 AND is_deleted=FALSE`

	cmd, err := db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanEnquiryRow(row pgx.Row) (*domain.Enquiry, error) {
	var enquiry domain.Enquiry
	if err := row.Scan(
		&enquiry.ID,
		&enquiry.Email,
		&enquiry.Name,
		&enquiry.Phone,
		&enquiry.Message,
		&enquiry.IsDeleted,
		&enquiry.DeletedAt,
		&enquiry.CreatedAt,
		&enquiry.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &enquiry, nil
}
