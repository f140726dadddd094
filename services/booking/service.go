package booking

import (
	"context"

	"rhiclean/models"
	"rhiclean/utils"

	"go.uber.org/zap"
)

// Create appends a new booking record. The repository owns identity,
// the pending status and the creation timestamp, so creation cannot
// produce any other initial state.
func (s *DefaultService) Create(ctx context.Context, in models.BookingInput) (*models.Booking, error) {
	b := s.Repo.Append(ctx, in.ToBooking())
	utils.GetLogger().Info("booking created",
		zap.Int64("id", b.ID),
		zap.String("service", b.Service),
		zap.String("date", b.Date),
		zap.String("time", b.Time),
	)
	return b, nil
}

// ListAll returns every booking record in insertion order.
func (s *DefaultService) ListAll(ctx context.Context) []models.Booking {
	return s.Repo.List(ctx)
}

// Get fetches a single booking by ID.
func (s *DefaultService) Get(ctx context.Context, id int64) (*models.Booking, error) {
	b, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, NewNotFoundError(id)
	}
	return b, nil
}

// Transition moves a booking to approved or rejected. Those are the
// only transition targets the API exposes; there is no path back to
// pending. The store overwrite itself is last-writer-wins.
func (s *DefaultService) Transition(ctx context.Context, id int64, status string) (*models.Booking, error) {
	if status != models.StatusApproved && status != models.StatusRejected {
		return nil, NewInvalidStatusError(status)
	}

	b, err := s.Repo.SetStatus(ctx, id, status)
	if err != nil {
		return nil, NewNotFoundError(id)
	}

	utils.GetLogger().Info("booking status updated",
		zap.Int64("id", b.ID),
		zap.String("status", b.Status),
	)

	// TODO: on approval, send the confirmation email once an SMTP
	// account is provisioned for the cleaning team.
	return b, nil
}

// Delete removes the booking regardless of its status. Deleting an
// absent ID is a no-op that still reports success.
func (s *DefaultService) Delete(ctx context.Context, id int64) error {
	s.Repo.Remove(ctx, id)
	utils.GetLogger().Info("booking deleted", zap.Int64("id", id))
	return nil
}
