package wizard

import (
	"context"
	"testing"

	bookingRepo "rhiclean/database/repository/booking"
	"rhiclean/models"
	"rhiclean/services/availability"
	"rhiclean/services/booking"
)

func newWizard() *DefaultService {
	return &DefaultService{
		Store: NewMemoryStore(),
		Availability: availability.NewStaticSchedule(map[string][]string{
			"2025-01-11": {"9:00 AM"},
		}),
		Bookings: &booking.DefaultService{Repo: bookingRepo.NewMemoryRepo()},
	}
}

func details() models.CustomerDetails {
	return models.CustomerDetails{
		Name:    "Jane",
		Email:   "j@x.com",
		Phone:   "555",
		Address: "1 Rd",
	}
}

func TestFullFlow(t *testing.T) {
	svc := newWizard()
	ctx := context.Background()

	session, err := svc.Start(ctx)
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if session.Step != models.StepService {
		t.Fatalf("expected fresh session at step %q, got %q", models.StepService, session.Step)
	}

	if _, err := svc.SelectService(ctx, session.SessionID, 1); err != nil {
		t.Fatalf("SelectService error: %v", err)
	}
	if _, err := svc.SelectDateTime(ctx, session.SessionID, "2025-01-10", "9:00 AM"); err != nil {
		t.Fatalf("SelectDateTime error: %v", err)
	}

	confirmed, err := svc.SubmitDetails(ctx, session.SessionID, details())
	if err != nil {
		t.Fatalf("SubmitDetails error: %v", err)
	}
	if confirmed.Step != models.StepConfirmation {
		t.Fatalf("expected step %q after submission, got %q", models.StepConfirmation, confirmed.Step)
	}
	if !confirmed.Acknowledged {
		t.Fatalf("expected the store write to be acknowledged")
	}
	if confirmed.Booking == nil || confirmed.Booking.Status != models.StatusPending {
		t.Fatalf("expected a pending booking on the session, got %+v", confirmed.Booking)
	}
	if confirmed.Booking.Service != "Standard Clean" {
		t.Fatalf("expected booking for the selected service, got %q", confirmed.Booking.Service)
	}
}

func TestStepsAreStrictlyOrdered(t *testing.T) {
	svc := newWizard()
	ctx := context.Background()

	session, err := svc.Start(ctx)
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}

	// Date/time before a service is chosen.
	if _, err := svc.SelectDateTime(ctx, session.SessionID, "2025-01-10", "9:00 AM"); !IsStepViolation(err) {
		t.Fatalf("expected step violation, got %v", err)
	}

	// Details before a date/time is chosen.
	if _, err := svc.SubmitDetails(ctx, session.SessionID, details()); !IsStepViolation(err) {
		t.Fatalf("expected step violation, got %v", err)
	}

	// Re-selecting a service after leaving the service step.
	if _, err := svc.SelectService(ctx, session.SessionID, 2); err != nil {
		t.Fatalf("SelectService error: %v", err)
	}
	if _, err := svc.SelectService(ctx, session.SessionID, 1); !IsStepViolation(err) {
		t.Fatalf("expected step violation on repeated service selection, got %v", err)
	}
}

func TestBookedSlotIsRejected(t *testing.T) {
	svc := newWizard()
	ctx := context.Background()

	session, _ := svc.Start(ctx)
	if _, err := svc.SelectService(ctx, session.SessionID, 1); err != nil {
		t.Fatalf("SelectService error: %v", err)
	}

	if _, err := svc.SelectDateTime(ctx, session.SessionID, "2025-01-11", "9:00 AM"); err == nil {
		t.Fatalf("expected occupied slot to be rejected")
	}
	// The same slot on a free date is fine.
	if _, err := svc.SelectDateTime(ctx, session.SessionID, "2025-01-12", "9:00 AM"); err != nil {
		t.Fatalf("SelectDateTime error on free date: %v", err)
	}
}

func TestUnknownSlotLabelIsRejected(t *testing.T) {
	svc := newWizard()
	ctx := context.Background()

	session, _ := svc.Start(ctx)
	svc.SelectService(ctx, session.SessionID, 1)

	if _, err := svc.SelectDateTime(ctx, session.SessionID, "2025-01-10", "8:00 PM"); err == nil {
		t.Fatalf("expected non-catalog slot label to be rejected")
	}
}

func TestDetailsValidation(t *testing.T) {
	svc := newWizard()
	ctx := context.Background()

	session, _ := svc.Start(ctx)
	svc.SelectService(ctx, session.SessionID, 1)
	svc.SelectDateTime(ctx, session.SessionID, "2025-01-10", "9:00 AM")

	missing := details()
	missing.Email = ""
	if _, err := svc.SubmitDetails(ctx, session.SessionID, missing); !IsValidationFailure(err) {
		t.Fatalf("expected validation failure for empty email, got %v", err)
	}
}

func TestRestartClearsEverything(t *testing.T) {
	svc := newWizard()
	ctx := context.Background()

	session, _ := svc.Start(ctx)
	svc.SelectService(ctx, session.SessionID, 1)
	svc.SelectDateTime(ctx, session.SessionID, "2025-01-10", "9:00 AM")
	if _, err := svc.SubmitDetails(ctx, session.SessionID, details()); err != nil {
		t.Fatalf("SubmitDetails error: %v", err)
	}

	restarted, err := svc.Restart(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("Restart error: %v", err)
	}
	if restarted.Step != models.StepService {
		t.Fatalf("expected restart to return to step %q, got %q", models.StepService, restarted.Step)
	}
	if restarted.Service != nil || restarted.Date != "" || restarted.Time != "" ||
		restarted.Details != nil || restarted.Booking != nil || restarted.Acknowledged {
		t.Fatalf("expected all selections cleared after restart, got %+v", restarted)
	}
}

func TestCancelDropsSession(t *testing.T) {
	svc := newWizard()
	ctx := context.Background()

	session, _ := svc.Start(ctx)
	if err := svc.Cancel(ctx, session.SessionID); err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if _, err := svc.Get(ctx, session.SessionID); !IsSessionNotFound(err) {
		t.Fatalf("expected cancelled session to be gone, got %v", err)
	}
}
