package catalog

import "testing"

func TestServicesReturnsFullCatalog(t *testing.T) {
	got := Services()
	if len(got) != 4 {
		t.Fatalf("expected 4 services, got %d", len(got))
	}
	if got[0].Name != "Standard Clean" || got[0].Price != 150 {
		t.Fatalf("unexpected first service: %+v", got[0])
	}
}

func TestFindByID(t *testing.T) {
	svc, ok := FindByID(3)
	if !ok {
		t.Fatalf("expected service 3 to exist")
	}
	if svc.Name != "Move-in / Move-out Clean" {
		t.Fatalf("unexpected service name: %s", svc.Name)
	}

	if _, ok := FindByID(99); ok {
		t.Fatalf("expected unknown id to be reported missing")
	}
}

func TestCatalogCopiesAreIsolated(t *testing.T) {
	a := Services()
	a[0].Name = "mutated"

	b := Services()
	if b[0].Name != "Standard Clean" {
		t.Fatalf("catalog must not be mutable through returned slices")
	}
}
