package bookingRepo

import (
	"context"
	"sync"
	"time"

	"rhiclean/models"
)

// MemoryRepo keeps bookings in a process-wide ordered slice. The store
// lives exactly as long as the process; there is no durability across
// restarts. Concurrent status overwrites are last-writer-wins.
type MemoryRepo struct {
	mu       sync.Mutex
	bookings []*models.Booking
}

// NewMemoryRepo returns an empty in-memory booking repository.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Append assigns an ID derived from the creation timestamp, forces the
// status to pending and appends the record. IDs are monotonic-ish;
// uniqueness is best-effort under high-frequency creation.
func (r *MemoryRepo) Append(ctx context.Context, b *models.Booking) *models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	b.ID = now.UnixMilli()
	b.Status = models.StatusPending
	b.BookedAt = now
	b.UpdatedAt = nil

	r.bookings = append(r.bookings, b)
	out := *b
	return &out
}

// List returns copies of all records in insertion order.
func (r *MemoryRepo) List(ctx context.Context) []models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out
}

// FindByID returns a copy of the record with the given ID.
func (r *MemoryRepo) FindByID(ctx context.Context, id int64) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.ID == id {
			out := *b
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// Remove deletes the first record matching the ID. Absent IDs are
// reported as handled so deletion stays idempotent.
func (r *MemoryRepo) Remove(ctx context.Context, id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.bookings {
		if b.ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return true
		}
	}
	return true
}

// SetStatus overwrites the status and stamps UpdatedAt.
func (r *MemoryRepo) SetStatus(ctx context.Context, id int64, status string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.ID == id {
			now := time.Now().UTC()
			b.Status = status
			b.UpdatedAt = &now
			out := *b
			return &out, nil
		}
	}
	return nil, ErrNotFound
}
