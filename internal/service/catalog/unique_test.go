package catalog

import (
	"context"
	"log/slog"
	"testing"

	"github.com/mfigueiredo/cursos-backend/internal/domain"
)

func int64Ptr(v int64) *int64 { return &v }

func strPtr(s string) *string { return &s }

func statusPtr(s domain.Status) *domain.Status { return &s }

func discardLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

func newAreaService(store Store[domain.Area]) *AreaService {
	return NewAreaService(discardLogger(), store)
}

func areasInStore(areas ...domain.Area) *storeMock[domain.Area] {
	return &storeMock[domain.Area]{
		GetAllFunc: func(ctx context.Context) ([]domain.Area, error) {
			return areas, nil
		},
	}
}

func TestIsNameTaken_EmptyCollection(t *testing.T) {
	t.Parallel()

	svc := newAreaService(areasInStore())

	taken, err := svc.isNameTaken(context.Background(), "Math", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if taken {
		t.Error("empty collection can never hold a duplicate")
	}
}

func TestIsNameTaken_CaseInsensitive(t *testing.T) {
	t.Parallel()

	svc := newAreaService(areasInStore(
		domain.Area{ID: int64Ptr(1), Name: "Math"},
	))

	for _, candidate := range []string{"Math", "math", "MATH", "mAtH"} {
		taken, err := svc.isNameTaken(context.Background(), candidate, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !taken {
			t.Errorf("%q should collide with existing %q", candidate, "Math")
		}
	}
}

func TestIsNameTaken_NoMatch(t *testing.T) {
	t.Parallel()

	svc := newAreaService(areasInStore(
		domain.Area{ID: int64Ptr(1), Name: "Math"},
		domain.Area{ID: int64Ptr(2), Name: "History"},
	))

	taken, err := svc.isNameTaken(context.Background(), "Biology", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if taken {
		t.Error("no record carries this name")
	}
}

func TestIsNameTaken_ExcludesRecordUnderEdit(t *testing.T) {
	t.Parallel()

	svc := newAreaService(areasInStore(
		domain.Area{ID: int64Ptr(1), Name: "Math"},
	))

	taken, err := svc.isNameTaken(context.Background(), "math", int64Ptr(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if taken {
		t.Error("the only match is the record being edited; not a duplicate")
	}
}

func TestIsNameTaken_OtherRecordStillCollides(t *testing.T) {
	t.Parallel()

	svc := newAreaService(areasInStore(
		domain.Area{ID: int64Ptr(1), Name: "Math"},
		domain.Area{ID: int64Ptr(2), Name: "History"},
	))

	taken, err := svc.isNameTaken(context.Background(), "history", int64Ptr(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !taken {
		t.Error("a different record carries the name; must collide")
	}
}
