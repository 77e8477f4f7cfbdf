package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func strPtr(s string) *string       { return &s }
func statusPtr(s Status) *Status    { return &s }
func timePtr(t time.Time) *time.Time { return &t }

func TestAreaPatch_Apply_OnlySuppliedFields(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	target := Area{
		ID:          int64Ptr(1),
		Name:        "Math",
		Description: strPtr("old text"),
		Status:      StatusActive,
		CreatedAt:   created,
	}
	before := target

	patch := AreaPatch{ID: int64Ptr(1), Description: strPtr("new text")}
	patch.Apply(&target)

	if target.Description == nil || *target.Description != "new text" {
		t.Errorf("description: got %v, want %q", target.Description, "new text")
	}

	// Everything else stays byte-identical to the pre-patch record.
	target.Description = before.Description
	if diff := cmp.Diff(before, target); diff != "" {
		t.Errorf("untouched fields changed (-want +got):\n%s", diff)
	}
}

func TestAreaPatch_Apply_Idempotent(t *testing.T) {
	t.Parallel()

	target := Area{ID: int64Ptr(1), Name: "Math", Status: StatusActive, CreatedAt: time.Now()}
	patch := AreaPatch{
		Name:       strPtr("Mathematics"),
		Status:     statusPtr(StatusInactive),
		InactiveAt: timePtr(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
	}

	once := target
	patch.Apply(&once)
	twice := target
	patch.Apply(&twice)
	patch.Apply(&twice)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("re-applying the same patch changed the result (-once +twice):\n%s", diff)
	}
}

func TestAreaPatch_Apply_NeverOverwritesID(t *testing.T) {
	t.Parallel()

	target := Area{ID: int64Ptr(1), Name: "Math"}
	patch := AreaPatch{ID: int64Ptr(999), Name: strPtr("Physics")}
	patch.Apply(&target)

	if *target.ID != 1 {
		t.Errorf("target id overwritten: got %d, want 1", *target.ID)
	}
	if target.Name != "Physics" {
		t.Errorf("name: got %q, want %q", target.Name, "Physics")
	}
}

func TestCursoPatch_Apply_NilAreaLeavesRelation(t *testing.T) {
	t.Parallel()

	target := Curso{ID: int64Ptr(5), Name: "Algebra", Area: &AreaRef{ID: 1, Name: strPtr("Math")}}

	patch := CursoPatch{Name: strPtr("Algebra I")}
	patch.Apply(&target)

	if target.Area == nil || target.Area.ID != 1 {
		t.Error("nil patch area must not clear the relation")
	}
}

func TestCursoPatch_Apply_SetsRelation(t *testing.T) {
	t.Parallel()

	target := Curso{ID: int64Ptr(5), Name: "Algebra"}

	patch := CursoPatch{Area: &AreaRef{ID: 9}}
	patch.Apply(&target)

	if target.Area == nil || target.Area.ID != 9 {
		t.Errorf("area: got %v, want ref to 9", target.Area)
	}
}

func TestPatch_TargetID(t *testing.T) {
	t.Parallel()

	if got := (AreaPatch{ID: int64Ptr(4)}).TargetID(); got == nil || *got != 4 {
		t.Errorf("AreaPatch.TargetID: got %v", got)
	}
	if got := (CursoPatch{}).TargetID(); got != nil {
		t.Errorf("CursoPatch.TargetID on empty patch: got %v, want nil", got)
	}
}
