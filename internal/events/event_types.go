package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEnquiryCreated EventType = "enquiry_created"
	EventStaffCreated   EventType = "staff_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EnquiryCreatedPayload payload.
type EnquiryCreatedPayload struct {
	EnquiryID int64   `json:"enquiry_id"`
	Email     *string `json:"email,omitempty"`
	Name      *string `json:"name,omitempty"`
}

// StaffCreatedPayload payload.
type StaffCreatedPayload struct {
	StaffID int64  `json:"staff_id"`
	Email   string `json:"email"`
	RoleID  int    `json:"role_id"`
}
