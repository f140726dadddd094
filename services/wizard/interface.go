package wizard

import (
	"context"

	"rhiclean/models"
	"rhiclean/services/availability"
	"rhiclean/services/booking"
)

// Service drives the four-step booking wizard:
// service -> datetime -> details -> confirmation. The flow is strictly
// linear; Restart is the only way back and clears every selection.
type Service interface {
	Start(ctx context.Context) (*models.WizardSession, error)
	Get(ctx context.Context, sessionID string) (*models.WizardSession, error)
	SelectService(ctx context.Context, sessionID string, serviceID int) (*models.WizardSession, error)
	SelectDateTime(ctx context.Context, sessionID, date, slot string) (*models.WizardSession, error)
	SubmitDetails(ctx context.Context, sessionID string, details models.CustomerDetails) (*models.WizardSession, error)
	Restart(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Cancel(ctx context.Context, sessionID string) error
}

// DefaultService implements Service.
type DefaultService struct {
	Store        SessionStore
	Availability availability.Source
	Bookings     booking.Service
}
