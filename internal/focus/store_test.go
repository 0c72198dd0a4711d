package focus

import (
	"strings"
	"testing"
	"time"

	"github.com/softco/smartdraft/internal/contract"
	"github.com/softco/smartdraft/internal/db"
	"github.com/softco/smartdraft/internal/errors"
)

// clockAt returns a fixed clock for deterministic timestamps.
func clockAt(unix int64) func() time.Time {
	return func() time.Time { return time.Unix(unix, 0) }
}

// recordedEvent captures one audit emission.
type recordedEvent struct {
	Action string
	Detail string
}

// fakeRecorder collects audit events for assertions.
type fakeRecorder struct {
	events []recordedEvent
}

func (f *fakeRecorder) Record(action, detail string) error {
	f.events = append(f.events, recordedEvent{Action: action, Detail: detail})
	return nil
}

func newTestStore(t *testing.T) (*Store, *fakeRecorder) {
	t.Helper()

	database, err := db.Init(t.TempDir())
	if err != nil {
		t.Fatalf("db.Init failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	rec := &fakeRecorder{}
	return NewStore(database, rec, 140), rec
}

func TestAdd_Basic(t *testing.T) {
	store, rec := newTestStore(t)

	item, err := store.Add(AddInput{
		AnchorID: "clause-8-liability",
		Title:    "Limitation of Liability",
		Source:   contract.SourceClause,
		Severity: contract.SeverityHigh,
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if item.ID == "" {
		t.Error("ID should be generated")
	}
	if item.Resolved {
		t.Error("new items must start unresolved")
	}
	if item.CreatedAt == 0 {
		t.Error("CreatedAt should be stamped")
	}

	if len(rec.events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(rec.events))
	}
	if rec.events[0].Action != "Added Focus bookmark" {
		t.Errorf("Action = %q, want 'Added Focus bookmark'", rec.events[0].Action)
	}
	if rec.events[0].Detail != "Limitation of Liability (clause)" {
		t.Errorf("Detail = %q", rec.events[0].Detail)
	}
}

func TestAdd_Validation(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Add(AddInput{Source: "bogus", Severity: "extreme"})
	if !errors.Is(err, errors.ErrValidation) {
		t.Fatalf("err = %v, want VALIDATION", err)
	}

	dErr := err.(*errors.DraftError)
	for _, field := range []string{"anchor_id", "title", "source", "severity"} {
		if _, ok := dErr.Details[field]; !ok {
			t.Errorf("Details missing field %q", field)
		}
	}
}

func TestAdd_NoteTooLong(t *testing.T) {
	store, rec := newTestStore(t)

	_, err := store.Add(AddInput{
		AnchorID: "clause-2-term",
		Title:    "Term",
		Source:   contract.SourceClause,
		Note:     strings.Repeat("x", 141),
	})
	if !errors.Is(err, errors.ErrNoteTooLong) {
		t.Fatalf("err = %v, want NOTE_TOO_LONG", err)
	}
	if len(rec.events) != 0 {
		t.Error("rejected add must not emit an audit event")
	}
}

func TestAdd_NoteAtBound(t *testing.T) {
	store, _ := newTestStore(t)

	item, err := store.Add(AddInput{
		AnchorID: "clause-2-term",
		Title:    "Term",
		Source:   contract.SourceClause,
		Note:     strings.Repeat("y", 140),
	})
	if err != nil {
		t.Fatalf("Add failed at exactly 140 chars: %v", err)
	}
	if len(item.Note) != 140 {
		t.Errorf("note truncated to %d chars; must never truncate", len(item.Note))
	}
}

func TestAdd_DuplicateAnchorsAllowed(t *testing.T) {
	store, _ := newTestStore(t)

	first, err := store.Add(AddInput{AnchorID: "clause-2-term", Title: "One", Source: contract.SourceClause})
	if err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	second, err := store.Add(AddInput{AnchorID: "clause-2-term", Title: "Two", Source: contract.SourceSearch})
	if err != nil {
		t.Fatalf("second Add failed: %v", err)
	}
	if first.ID == second.ID {
		t.Error("duplicate anchors must produce distinct items")
	}
}

func TestRemove(t *testing.T) {
	store, rec := newTestStore(t)

	item, _ := store.Add(AddInput{AnchorID: "clause-2-term", Title: "Term", Source: contract.SourceClause})

	removed, err := store.Remove(item.ID)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if !removed {
		t.Error("removed = false for an existing item")
	}

	if _, err := store.Get(item.ID); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("Get after Remove = %v, want NOT_FOUND", err)
	}

	last := rec.events[len(rec.events)-1]
	if last.Action != "Removed Focus bookmark" || last.Detail != "Term" {
		t.Errorf("last event = %+v", last)
	}
}

func TestRemove_MissingIDIsNoOp(t *testing.T) {
	store, rec := newTestStore(t)

	removed, err := store.Remove("no-such-id")
	if err != nil {
		t.Fatalf("Remove of a missing id must not error: %v", err)
	}
	if removed {
		t.Error("removed = true for a missing id")
	}
	if len(rec.events) != 0 {
		t.Errorf("no-op removal must not emit an audit event, got %+v", rec.events)
	}
}

func TestToggleResolved_MissingIDIsNoOp(t *testing.T) {
	store, rec := newTestStore(t)

	item, err := store.ToggleResolved("no-such-id")
	if err != nil {
		t.Fatalf("ToggleResolved of a missing id must not error: %v", err)
	}
	if item != nil {
		t.Errorf("item = %+v, want nil for a missing id", item)
	}
	if len(rec.events) != 0 {
		t.Errorf("no-op toggle must not emit an audit event, got %+v", rec.events)
	}
}

func TestToggleResolved_RoundTrip(t *testing.T) {
	store, rec := newTestStore(t)

	item, _ := store.Add(AddInput{AnchorID: "clause-2-term", Title: "Term", Source: contract.SourceClause})

	resolved, err := store.ToggleResolved(item.ID)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !resolved.Resolved {
		t.Error("first toggle should resolve")
	}

	reopened, err := store.ToggleResolved(item.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if reopened.Resolved {
		t.Error("second toggle should reopen")
	}

	actions := []string{rec.events[1].Action, rec.events[2].Action}
	if actions[0] != "Resolved Focus item" || actions[1] != "Reopened Focus item" {
		t.Errorf("toggle actions = %v", actions)
	}
}

func TestUpdateNote(t *testing.T) {
	store, _ := newTestStore(t)

	item, _ := store.Add(AddInput{AnchorID: "clause-2-term", Title: "Term", Source: contract.SourceClause})

	updated, err := store.UpdateNote(item.ID, "check renewal window")
	if err != nil {
		t.Fatalf("UpdateNote failed: %v", err)
	}
	if updated.Note != "check renewal window" {
		t.Errorf("Note = %q", updated.Note)
	}

	if _, err := store.UpdateNote(item.ID, strings.Repeat("z", 200)); !errors.Is(err, errors.ErrNoteTooLong) {
		t.Errorf("oversize note err = %v, want NOTE_TOO_LONG", err)
	}
}

func TestFindByAnchor(t *testing.T) {
	store, _ := newTestStore(t)

	store.Clock = clockAt(1000)
	first, _ := store.Add(AddInput{AnchorID: "clause-8-liability", Title: "First", Source: contract.SourceClause})
	store.Clock = clockAt(2000)
	store.Add(AddInput{AnchorID: "clause-8-liability", Title: "Second", Source: contract.SourceSearch})

	found, err := store.FindByAnchor("clause-8-liability")
	if err != nil {
		t.Fatalf("FindByAnchor failed: %v", err)
	}
	if found == nil || found.ID != first.ID {
		t.Errorf("FindByAnchor should return the oldest item")
	}
}

func TestFindByAnchor_Missing(t *testing.T) {
	store, _ := newTestStore(t)

	found, err := store.FindByAnchor("clause-2-term")
	if err != nil {
		t.Fatalf("FindByAnchor failed: %v", err)
	}
	if found != nil {
		t.Errorf("found = %+v, want nil for unbookmarked anchor", found)
	}
}

func TestList_CreationOrder(t *testing.T) {
	store, _ := newTestStore(t)

	store.Clock = clockAt(100)
	store.Add(AddInput{AnchorID: "a", Title: "A", Source: contract.SourceClause})
	store.Clock = clockAt(200)
	store.Add(AddInput{AnchorID: "b", Title: "B", Source: contract.SourceClause})
	store.Clock = clockAt(300)
	store.Add(AddInput{AnchorID: "c", Title: "C", Source: contract.SourceClause})

	items, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	for i, want := range []string{"A", "B", "C"} {
		if items[i].Title != want {
			t.Errorf("items[%d] = %q, want %q", i, items[i].Title, want)
		}
	}
}
