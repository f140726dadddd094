package booking

import (
	"context"
	"testing"

	bookingRepo "rhiclean/database/repository/booking"
	"rhiclean/models"
)

func newService() *DefaultService {
	return &DefaultService{Repo: bookingRepo.NewMemoryRepo()}
}

func TestCreateStartsPending(t *testing.T) {
	svc := newService()

	b, err := svc.Create(context.Background(), models.BookingInput{
		Service: "Standard Clean",
		Date:    "2025-01-10",
		Time:    "9:00 AM",
		Name:    "Jane",
		Email:   "j@x.com",
		Phone:   "555",
		Address: "1 Rd",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if b.Status != models.StatusPending {
		t.Fatalf("expected status %q, got %q", models.StatusPending, b.Status)
	}
	if b.ID == 0 || b.BookedAt.IsZero() {
		t.Fatalf("expected id and bookedAt to be assigned, got %+v", b)
	}
}

func TestApproveThenRefetch(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, models.BookingInput{Service: "Deep Clean"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := svc.Transition(ctx, created.ID, models.StatusApproved); err != nil {
		t.Fatalf("Transition error: %v", err)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Status != models.StatusApproved {
		t.Fatalf("expected %q after approval, got %q", models.StatusApproved, got.Status)
	}
	if got.UpdatedAt == nil {
		t.Fatalf("expected updatedAt to be populated after approval")
	}
}

func TestTransitionRejectsInvalidTargets(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, models.BookingInput{Service: "Standard Clean"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	for _, target := range []string{models.StatusPending, "cancelled", ""} {
		if _, err := svc.Transition(ctx, created.ID, target); !IsInvalidStatus(err) {
			t.Fatalf("target %q: expected invalid-status error, got %v", target, err)
		}
	}

	// The record must be untouched by the rejected requests.
	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Status != models.StatusPending || got.UpdatedAt != nil {
		t.Fatalf("expected untouched pending record, got %+v", got)
	}
}

func TestTransitionUnknownID(t *testing.T) {
	svc := newService()

	_, err := svc.Transition(context.Background(), 12345, models.StatusApproved)
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestDeleteAbsentIDSucceeds(t *testing.T) {
	svc := newService()

	if err := svc.Delete(context.Background(), 98765); err != nil {
		t.Fatalf("expected deleting an absent id to succeed, got %v", err)
	}
}
