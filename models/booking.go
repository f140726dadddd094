package models

import "time"

// Booking statuses. Every booking is created as StatusPending and only
// an authorized admin operation may move it to approved or rejected.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Booking represents a single appointment request record.
type Booking struct {
	ID        int64      `json:"id"`                  // assigned at creation from the creation timestamp
	Service   string     `json:"service"`             // display name of the selected service
	Date      string     `json:"date"`                // calendar date, "YYYY-MM-DD"
	Time      string     `json:"time"`                // one of the fixed slot labels
	Name      string     `json:"name"`                // customer full name
	Email     string     `json:"email,omitempty"`     // contact email
	Phone     string     `json:"phone"`               // contact phone
	Address   string     `json:"address"`             // service address
	Notes     string     `json:"notes,omitempty"`     // optional free text
	Status    string     `json:"status"`              // pending | approved | rejected
	BookedAt  time.Time  `json:"bookedAt"`            // creation timestamp
	UpdatedAt *time.Time `json:"updatedAt,omitempty"` // set only when status transitions
}

// BookingInput is the request body accepted by the booking endpoints.
// Presence of the contact fields is checked by the wizard before
// submission, not enforced here.
type BookingInput struct {
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// ToBooking maps the input onto a fresh Booking record. Identity,
// status and timestamps are owned by the repository.
func (in BookingInput) ToBooking() *Booking {
	return &Booking{
		Service: in.Service,
		Date:    in.Date,
		Time:    in.Time,
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
		Notes:   in.Notes,
	}
}
