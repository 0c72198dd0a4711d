package ocr

import (
	"strings"
	"testing"

	"github.com/softco/smartdraft/internal/contract"
	"github.com/softco/smartdraft/internal/db"
	"github.com/softco/smartdraft/internal/focus"
)

type recordedEvent struct {
	Action string
	Detail string
}

type fakeRecorder struct {
	events []recordedEvent
}

func (f *fakeRecorder) Record(action, detail string) error {
	f.events = append(f.events, recordedEvent{Action: action, Detail: detail})
	return nil
}

type fakeDirty struct {
	marks int
}

func (f *fakeDirty) MarkDirty() error {
	f.marks++
	return nil
}

func newTestImporter(t *testing.T) (*Importer, *focus.Store, *fakeRecorder, *fakeDirty) {
	t.Helper()

	database, err := db.Init(t.TempDir())
	if err != nil {
		t.Fatalf("db.Init failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	rec := &fakeRecorder{}
	dirty := &fakeDirty{}
	store := focus.NewStore(database, rec, 140)
	return NewImporter(store, rec, dirty), store, rec, dirty
}

func TestSampleBlocks_Confidences(t *testing.T) {
	blocks := SampleBlocks()
	if len(blocks) != 3 {
		t.Fatalf("len(blocks) = %d, want 3", len(blocks))
	}

	low := 0
	for _, b := range blocks {
		if b.LowConfidence() {
			low++
		}
	}
	if low != 1 {
		t.Errorf("low-confidence blocks = %d, want exactly 1", low)
	}

	if !blocks[2].LowConfidence() {
		t.Error("the 0.79 governing law block should be low confidence")
	}
	if blocks[1].LowConfidence() {
		t.Error("0.88 is at or above the threshold; must not flag")
	}
}

func TestSteps_Order(t *testing.T) {
	steps := Steps()
	want := []string{
		"Preprocess (deskew & enhance)",
		"Recognize text",
		"Segment into clauses",
		"Extract key metadata",
	}
	if len(steps) != len(want) {
		t.Fatalf("len(steps) = %d, want %d", len(steps), len(want))
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Errorf("steps[%d] = %q, want %q", i, steps[i], want[i])
		}
	}
}

func TestApply_FlagsLowConfidenceOnly(t *testing.T) {
	im, store, _, _ := newTestImporter(t)

	result, err := im.Apply("scanned-msa.pdf")
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if len(result.Proposed) != 3 {
		t.Errorf("len(Proposed) = %d, want 3", len(result.Proposed))
	}
	if len(result.Flagged) != 1 {
		t.Fatalf("len(Flagged) = %d, want 1", len(result.Flagged))
	}

	flag := result.Flagged[0]
	if flag.Title != "Low confidence OCR: Governing Law" {
		t.Errorf("Title = %q", flag.Title)
	}
	if flag.Source != contract.SourceOCR {
		t.Errorf("Source = %q, want ocr", flag.Source)
	}
	if flag.Severity != contract.SeverityMedium {
		t.Errorf("Severity = %q, want medium", flag.Severity)
	}
	if len([]rune(flag.Snippet)) > 120 {
		t.Errorf("snippet length = %d, want <= 120", len([]rune(flag.Snippet)))
	}

	items, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("persisted focus items = %d, want 1", len(items))
	}
}

func TestApply_MarksDirtyAndAudits(t *testing.T) {
	im, _, rec, dirty := newTestImporter(t)

	if _, err := im.Apply("scanned-msa.pdf"); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if dirty.marks != 1 {
		t.Errorf("MarkDirty calls = %d, want 1", dirty.marks)
	}

	var actions []string
	for _, e := range rec.events {
		actions = append(actions, e.Action)
	}

	// Focus add first, then the two import events
	want := []string{"Added Focus bookmark", "OCR processing completed", "OCR import applied"}
	if len(actions) != len(want) {
		t.Fatalf("actions = %v", actions)
	}
	for i := range want {
		if actions[i] != want[i] {
			t.Errorf("actions[%d] = %q, want %q", i, actions[i], want[i])
		}
	}

	last := rec.events[len(rec.events)-1]
	if last.Detail != "Applied 3 clauses from scanned-msa.pdf" {
		t.Errorf("Detail = %q", last.Detail)
	}
}

func TestApply_NavigatesToRedlines(t *testing.T) {
	im, _, _, _ := newTestImporter(t)

	result, err := im.Apply("scan.pdf")
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if result.NextView != "redlines" {
		t.Errorf("NextView = %q, want redlines", result.NextView)
	}
}

func TestApply_NeverMutatesRecognizedText(t *testing.T) {
	im, _, _, _ := newTestImporter(t)

	result, err := im.Apply("scan.pdf")
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	for i, p := range result.Proposed {
		if !strings.Contains(SampleBlocks()[i].Text, p.Text[:20]) {
			t.Errorf("Proposed[%d] text diverged from recognition output", i)
		}
	}
}
