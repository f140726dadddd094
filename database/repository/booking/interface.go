package bookingRepo

import (
	"context"
	"errors"

	"rhiclean/models"
)

// ErrNotFound is returned when no booking with the requested ID exists.
var ErrNotFound = errors.New("booking not found")

// Repository stores booking records for the lifetime of the process.
// It is injected into the services so tests can substitute their own
// instance instead of touching process globals.
type Repository interface {
	// Append assigns identity, forces status to pending, stamps the
	// creation time and adds the record at the end of the sequence.
	// It always succeeds; no deduplication or validation is applied.
	Append(ctx context.Context, b *models.Booking) *models.Booking

	// List returns all records in insertion order.
	List(ctx context.Context) []models.Booking

	// FindByID returns the record with the given ID or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*models.Booking, error)

	// Remove deletes the first record with the given ID. Removing an
	// absent ID is a no-op reported as handled.
	Remove(ctx context.Context, id int64) bool

	// SetStatus overwrites the record's status and stamps UpdatedAt.
	// Unknown IDs yield ErrNotFound.
	SetStatus(ctx context.Context, id int64, status string) (*models.Booking, error)
}
