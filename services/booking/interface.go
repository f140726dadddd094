package booking

import (
	"context"

	bookingRepo "rhiclean/database/repository/booking"
	"rhiclean/models"
)

// Service governs the booking lifecycle: creation as pending, admin
// listing, the pending -> approved/rejected transition, and deletion.
type Service interface {
	Create(ctx context.Context, in models.BookingInput) (*models.Booking, error)
	ListAll(ctx context.Context) []models.Booking
	Get(ctx context.Context, id int64) (*models.Booking, error)
	Transition(ctx context.Context, id int64, status string) (*models.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// DefaultService implements Service on top of a booking repository.
type DefaultService struct {
	Repo bookingRepo.Repository
}
