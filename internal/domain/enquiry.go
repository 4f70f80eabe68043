package domain

import "time"

// Enquiry models a publicly submitted contact enquiry. Deletion is a soft
// delete: rows are marked and timestamped, never removed.
type Enquiry struct {
	ID        int64
	Email     *string
	Name      *string
	Phone     *string
	Message   string
	IsDeleted bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
