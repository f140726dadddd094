package wizard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rhiclean/models"
	"rhiclean/services/availability"
	"rhiclean/services/catalog"
	"rhiclean/utils"
)

// Start creates a fresh session at the service-selection step.
func (s *DefaultService) Start(ctx context.Context) (*models.WizardSession, error) {
	session := &models.WizardSession{
		SessionID: uuid.New().String(),
		Step:      models.StepService,
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("wizard session started", zap.String("sessionID", session.SessionID))
	return session, nil
}

// Get returns the current session state.
func (s *DefaultService) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.Store.Fetch(ctx, sessionID)
}

// SelectService records the chosen catalog service and advances to the
// datetime step.
func (s *DefaultService) SelectService(ctx context.Context, sessionID string, serviceID int) (*models.WizardSession, error) {
	session, err := s.Store.Fetch(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepService {
		return nil, NewStepError(fmt.Sprintf("service selection is not available at step %q", session.Step))
	}

	svc, ok := catalog.FindByID(serviceID)
	if !ok {
		return nil, NewUnknownServiceError(serviceID)
	}

	session.Service = svc
	session.Step = models.StepDateTime
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectDateTime records the chosen date and slot and advances to the
// details step. The slot must be a catalog label and must not be
// occupied on that date according to the availability source.
func (s *DefaultService) SelectDateTime(ctx context.Context, sessionID, date, slot string) (*models.WizardSession, error) {
	session, err := s.Store.Fetch(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepDateTime || session.Service == nil {
		return nil, NewStepError("a service must be chosen before selecting a date and time")
	}
	if date == "" {
		return nil, NewValidationError("a date is required")
	}
	if !availability.ValidSlot(slot) {
		return nil, NewSlotError(fmt.Sprintf("%q is not a bookable time slot", slot))
	}
	if s.Availability.IsBooked(date, slot) {
		return nil, NewSlotError(fmt.Sprintf("slot %s on %s is already booked", slot, date))
	}

	session.Date = date
	session.Time = slot
	session.Step = models.StepDetails
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SubmitDetails validates the contact fields, performs a best-effort
// write to the booking store and advances to confirmation. The wizard
// reaches confirmation even when the write fails; Acknowledged on the
// session separates a confirmed write from an attempted one.
func (s *DefaultService) SubmitDetails(ctx context.Context, sessionID string, details models.CustomerDetails) (*models.WizardSession, error) {
	session, err := s.Store.Fetch(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepDetails || session.Date == "" || session.Time == "" {
		return nil, NewStepError("a date and time must be chosen before submitting details")
	}
	if err := validateDetails(details); err != nil {
		return nil, err
	}

	session.Details = &details
	session.Step = models.StepConfirmation

	input := models.BookingInput{
		Service: session.Service.Name,
		Date:    session.Date,
		Time:    session.Time,
		Name:    details.Name,
		Email:   details.Email,
		Phone:   details.Phone,
		Address: details.Address,
		Notes:   details.Notes,
	}
	b, err := s.Bookings.Create(ctx, input)
	if err != nil {
		utils.GetLogger().Warn("wizard submission write unconfirmed",
			zap.String("sessionID", sessionID), zap.Error(err))
		session.Booking = nil
		session.Acknowledged = false
	} else {
		session.Booking = b
		session.Acknowledged = true
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Restart returns the session to the service step and clears every
// collected selection.
func (s *DefaultService) Restart(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.Store.Fetch(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Step = models.StepService
	session.Service = nil
	session.Date = ""
	session.Time = ""
	session.Details = nil
	session.Booking = nil
	session.Acknowledged = false

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Cancel drops the session entirely.
func (s *DefaultService) Cancel(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

func validateDetails(d models.CustomerDetails) error {
	switch {
	case d.Name == "":
		return NewValidationError("name is required")
	case d.Email == "":
		return NewValidationError("email is required")
	case d.Phone == "":
		return NewValidationError("phone is required")
	case d.Address == "":
		return NewValidationError("address is required")
	}
	return nil
}
