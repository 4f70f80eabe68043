package domain

import "time"

// StaffRole enumerates operator roles. The set is closed; unknown values are
// rejected at every boundary that accepts a role.
type StaffRole int

const (
	StaffRoleAdmin  StaffRole = 1
	StaffRoleViewer StaffRole = 2
)

// Valid reports whether the role is a known member of the enum.
func (r StaffRole) Valid() bool {
	return r == StaffRoleAdmin || r == StaffRoleViewer
}

// Staff models an internal operator account.
type Staff struct {
	ID           int64
	Email        string
	Name         *string
	Role         StaffRole
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
