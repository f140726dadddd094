package bookingRepo

import (
	"context"
	"testing"

	"rhiclean/models"
)

func TestAppendStartsPending(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	b := repo.Append(ctx, &models.Booking{
		Service: "Standard Clean",
		Date:    "2025-01-10",
		Time:    "9:00 AM",
		Name:    "Jane",
		// Even a caller-supplied status must not survive creation.
		Status: models.StatusApproved,
	})

	if b.Status != models.StatusPending {
		t.Fatalf("expected status %q, got %q", models.StatusPending, b.Status)
	}
	if b.ID == 0 {
		t.Fatalf("expected a non-zero id")
	}
	if b.BookedAt.IsZero() {
		t.Fatalf("expected bookedAt to be stamped")
	}
	if b.UpdatedAt != nil {
		t.Fatalf("expected updatedAt to be absent at creation, got %v", b.UpdatedAt)
	}
}

func TestListInsertionOrder(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	repo.Append(ctx, &models.Booking{Service: "Standard Clean"})
	repo.Append(ctx, &models.Booking{Service: "Deep Clean"})
	repo.Append(ctx, &models.Booking{Service: "Kitchen & Bath Focus"})

	got := repo.List(ctx)
	if len(got) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(got))
	}
	want := []string{"Standard Clean", "Deep Clean", "Kitchen & Bath Focus"}
	for i, w := range want {
		if got[i].Service != w {
			t.Fatalf("position %d: expected %q, got %q", i, w, got[i].Service)
		}
	}
}

func TestFindByID(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	created := repo.Append(ctx, &models.Booking{Service: "Deep Clean"})

	got, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if got.Service != "Deep Clean" {
		t.Fatalf("expected service %q, got %q", "Deep Clean", got.Service)
	}

	if _, err := repo.FindByID(ctx, 42); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	created := repo.Append(ctx, &models.Booking{Service: "Standard Clean"})

	if ok := repo.Remove(ctx, created.ID); !ok {
		t.Fatalf("expected removal of existing id to report handled")
	}
	if got := repo.List(ctx); len(got) != 0 {
		t.Fatalf("expected empty store after removal, got %d records", len(got))
	}

	// Removing the same id again, or an id that never existed, must
	// still be reported as handled.
	if ok := repo.Remove(ctx, created.ID); !ok {
		t.Fatalf("expected repeat removal to report handled")
	}
	if ok := repo.Remove(ctx, 9999); !ok {
		t.Fatalf("expected removal of absent id to report handled")
	}
}

func TestSetStatusStampsUpdatedAt(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	created := repo.Append(ctx, &models.Booking{Service: "Standard Clean"})

	updated, err := repo.SetStatus(ctx, created.ID, models.StatusApproved)
	if err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}
	if updated.Status != models.StatusApproved {
		t.Fatalf("expected status %q, got %q", models.StatusApproved, updated.Status)
	}
	if updated.UpdatedAt == nil {
		t.Fatalf("expected updatedAt to be stamped on transition")
	}

	// Re-fetching must observe the mutation.
	got, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if got.Status != models.StatusApproved || got.UpdatedAt == nil {
		t.Fatalf("expected persisted approved status with updatedAt, got %+v", got)
	}
}

func TestSetStatusUnknownID(t *testing.T) {
	repo := NewMemoryRepo()

	if _, err := repo.SetStatus(context.Background(), 7, models.StatusApproved); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
