package focus

import (
	"testing"

	"github.com/softco/smartdraft/internal/contract"
)

func TestGuard_EmptyStore(t *testing.T) {
	store, _ := newTestStore(t)

	d, err := store.ShouldWarnBeforeFinalize()
	if err != nil {
		t.Fatalf("guard failed: %v", err)
	}
	if d.Warn {
		t.Error("empty store must not warn")
	}
	if d.UnresolvedCount != 0 {
		t.Errorf("UnresolvedCount = %d, want 0", d.UnresolvedCount)
	}
}

func TestGuard_LowSeverityDoesNotWarn(t *testing.T) {
	store, _ := newTestStore(t)

	store.Add(AddInput{AnchorID: "a", Title: "A", Source: contract.SourceClause, Severity: contract.SeverityLow})
	store.Add(AddInput{AnchorID: "b", Title: "B", Source: contract.SourceClause})

	d, err := store.ShouldWarnBeforeFinalize()
	if err != nil {
		t.Fatalf("guard failed: %v", err)
	}
	if d.Warn {
		t.Error("low and unassessed items must not warn")
	}
	if d.UnresolvedCount != 2 {
		t.Errorf("UnresolvedCount = %d, want 2", d.UnresolvedCount)
	}
}

func TestGuard_MediumSeverityWarns(t *testing.T) {
	store, _ := newTestStore(t)

	store.Add(AddInput{AnchorID: "a", Title: "A", Source: contract.SourceInsight, Severity: contract.SeverityMedium})

	d, err := store.ShouldWarnBeforeFinalize()
	if err != nil {
		t.Fatalf("guard failed: %v", err)
	}
	if !d.Warn {
		t.Error("unresolved medium item must warn")
	}
}

func TestGuard_ResolvedSevereDoesNotWarn(t *testing.T) {
	store, _ := newTestStore(t)

	item, _ := store.Add(AddInput{AnchorID: "a", Title: "A", Source: contract.SourceClause, Severity: contract.SeverityHigh})
	if _, err := store.ToggleResolved(item.ID); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	d, err := store.ShouldWarnBeforeFinalize()
	if err != nil {
		t.Fatalf("guard failed: %v", err)
	}
	if d.Warn {
		t.Error("resolved items must not warn")
	}
	if d.UnresolvedCount != 0 {
		t.Errorf("UnresolvedCount = %d, want 0", d.UnresolvedCount)
	}
}

func TestGuard_WarnKeysOnSeverityNotSource(t *testing.T) {
	store, _ := newTestStore(t)

	store.Add(AddInput{AnchorID: "a", Title: "Hand-added flag", Source: contract.SourceOCR, Severity: contract.SeverityLow})

	d, err := store.ShouldWarnBeforeFinalize()
	if err != nil {
		t.Fatalf("guard failed: %v", err)
	}
	if d.Warn {
		t.Error("a low-severity item must not warn regardless of source")
	}
	if d.UnresolvedOCRCount != 1 {
		t.Errorf("UnresolvedOCRCount = %d, want 1", d.UnresolvedOCRCount)
	}
}

func TestGuard_CountsUnresolvedOCR(t *testing.T) {
	store, _ := newTestStore(t)

	store.Add(AddInput{AnchorID: "a", Title: "OCR flag", Source: contract.SourceOCR, Severity: contract.SeverityMedium})
	store.Add(AddInput{AnchorID: "b", Title: "Manual", Source: contract.SourceClause, Severity: contract.SeverityMedium})

	d, err := store.ShouldWarnBeforeFinalize()
	if err != nil {
		t.Fatalf("guard failed: %v", err)
	}
	if d.UnresolvedOCRCount != 1 {
		t.Errorf("UnresolvedOCRCount = %d, want 1", d.UnresolvedOCRCount)
	}
	if !d.Warn {
		t.Error("unresolved medium items must warn")
	}
}
