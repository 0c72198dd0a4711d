// Package focus implements the Focus bookmark watchlist: user-curated
// items anchored to clauses, insights, redlines, or OCR findings.
package focus

import (
	"crypto/rand"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/softco/smartdraft/internal/audit"
	"github.com/softco/smartdraft/internal/contract"
	"github.com/softco/smartdraft/internal/db"
	"github.com/softco/smartdraft/internal/errors"
)

// Store manages focus items and emits audit events for every mutation.
type Store struct {
	db    *sql.DB
	audit audit.Recorder

	// MaxNoteChars bounds note length; drawn from config at wiring time.
	MaxNoteChars int

	// Clock supplies creation timestamps; defaults to time.Now.
	Clock func() time.Time

	// NewID supplies item ids; defaults to a monotonic ULID.
	NewID func() string
}

// NewStore creates a focus store over the session database.
func NewStore(database *sql.DB, recorder audit.Recorder, maxNoteChars int) *Store {
	return &Store{
		db:           database,
		audit:        recorder,
		MaxNoteChars: maxNoteChars,
		Clock:        time.Now,
		NewID:        newULID,
	}
}

func newULID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.Monotonic(rand.Reader, 0)).String()
}

// AddInput carries the fields a caller supplies when bookmarking.
type AddInput struct {
	AnchorID string            `json:"anchor_id"`
	Title    string            `json:"title"`
	Snippet  string            `json:"snippet,omitempty"`
	Source   contract.Source   `json:"source"`
	Severity contract.Severity `json:"severity,omitempty"`
	Note     string            `json:"note,omitempty"`
}

// Add creates a focus item. Duplicate anchors are permitted: each Add
// produces a distinct item with its own id.
func (s *Store) Add(in AddInput) (*contract.FocusItem, error) {
	fields := map[string]string{}
	if strings.TrimSpace(in.AnchorID) == "" {
		fields["anchor_id"] = "anchor_id is required"
	}
	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = "title is required"
	}
	if !contract.ValidSource(in.Source) {
		fields["source"] = fmt.Sprintf("unknown source %q", in.Source)
	}
	if !contract.ValidSeverity(in.Severity) {
		fields["severity"] = fmt.Sprintf("unknown severity %q", in.Severity)
	}
	if len(fields) > 0 {
		return nil, errors.NewValidation(fields)
	}
	if err := s.checkNote(in.Note); err != nil {
		return nil, err
	}

	item := &contract.FocusItem{
		ID:        s.NewID(),
		AnchorID:  strings.TrimSpace(in.AnchorID),
		Title:     strings.TrimSpace(in.Title),
		Snippet:   in.Snippet,
		Source:    in.Source,
		Severity:  in.Severity,
		Note:      in.Note,
		CreatedAt: s.Clock().Unix(),
	}

	if err := db.InsertFocusItem(s.db, item); err != nil {
		return nil, err
	}

	s.record("Added Focus bookmark", fmt.Sprintf("%s (%s)", item.Title, item.Source))
	return item, nil
}

// Remove deletes a focus item by id. Removing an id that does not
// exist is a no-op, not an error; removed reports whether an item was
// actually deleted. No-op removals emit no audit event.
func (s *Store) Remove(id string) (removed bool, err error) {
	item, err := db.GetFocusItem(s.db, id)
	if errors.Is(err, errors.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	ok, err := db.DeleteFocusItem(s.db, id)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	s.record("Removed Focus bookmark", item.Title)
	return true, nil
}

// ToggleResolved flips the resolved flag and returns the updated item.
// Toggling an id that does not exist is a no-op: it returns (nil, nil)
// and emits no audit event.
func (s *Store) ToggleResolved(id string) (*contract.FocusItem, error) {
	item, err := db.GetFocusItem(s.db, id)
	if errors.Is(err, errors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	item.Resolved = !item.Resolved
	ok, err := db.UpdateFocusResolved(s.db, id, item.Resolved)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	action := "Resolved Focus item"
	if !item.Resolved {
		action = "Reopened Focus item"
	}
	s.record(action, item.Title)
	return item, nil
}

// UpdateNote replaces the note on a focus item. Notes beyond the
// configured character bound are rejected, never truncated.
func (s *Store) UpdateNote(id, note string) (*contract.FocusItem, error) {
	if err := s.checkNote(note); err != nil {
		return nil, err
	}

	ok, err := db.UpdateFocusNote(s.db, id, note)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NewNotFound(id)
	}

	return db.GetFocusItem(s.db, id)
}

// Get retrieves a single focus item by id.
func (s *Store) Get(id string) (*contract.FocusItem, error) {
	return db.GetFocusItem(s.db, id)
}

// FindByAnchor returns the oldest focus item bookmarking the given
// anchor, or nil when the anchor has no bookmark. This backs the
// toggle affordance: bookmarked anchors toggle off via the found item.
func (s *Store) FindByAnchor(anchorID string) (*contract.FocusItem, error) {
	item, err := db.GetFocusItemByAnchor(s.db, anchorID)
	if errors.Is(err, errors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// List returns all focus items in creation order.
func (s *Store) List() ([]contract.FocusItem, error) {
	return db.ListFocusItems(s.db)
}

// UnresolvedCount returns the number of open items.
func (s *Store) UnresolvedCount() (int, error) {
	return db.CountUnresolvedFocusItems(s.db)
}

func (s *Store) checkNote(note string) error {
	if s.MaxNoteChars > 0 && len([]rune(note)) > s.MaxNoteChars {
		return errors.NewNoteTooLong(s.MaxNoteChars, len([]rune(note)))
	}
	return nil
}

// record emits an audit event, tolerating a nil recorder in tests.
func (s *Store) record(action, detail string) {
	if s.audit != nil {
		// Audit failures do not roll back the mutation.
		_ = s.audit.Record(action, detail)
	}
}
