// Package session tracks the draft's dirty/saved state for the life of
// the session database.
package session

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/softco/smartdraft/internal/audit"
	"github.com/softco/smartdraft/internal/db"
)

// Status is the current draft session state.
type Status struct {
	// Dirty is true when unsaved edits exist.
	Dirty bool `json:"dirty"`

	// SavedAt is the Unix timestamp of the last save; nil before any save.
	SavedAt *int64 `json:"saved_at,omitempty"`
}

// Tracker manages the single draft session row.
type Tracker struct {
	db    *sql.DB
	audit audit.Recorder

	// Clock supplies save timestamps; defaults to time.Now.
	Clock func() time.Time
}

// NewTracker creates a session tracker over the session database.
func NewTracker(database *sql.DB, recorder audit.Recorder) *Tracker {
	return &Tracker{
		db:    database,
		audit: recorder,
		Clock: time.Now,
	}
}

// MarkDirty flags unsaved edits. Idempotent: marking an already-dirty
// session changes nothing.
func (t *Tracker) MarkDirty() error {
	return db.SetSessionDirty(t.db, true)
}

// Save clears the dirty flag and stamps the save time. Saving a clean
// session is a no-op and emits no audit event; saved reports whether a
// save actually happened.
func (t *Tracker) Save() (saved bool, err error) {
	row, err := db.GetSession(t.db)
	if err != nil {
		return false, err
	}
	if !row.Dirty {
		return false, nil
	}

	now := t.Clock()
	if err := db.SetSessionSaved(t.db, now.Unix()); err != nil {
		return false, err
	}

	if t.audit != nil {
		_ = t.audit.Record("Saved draft", fmt.Sprintf("Saved at %s", now.Format("15:04")))
	}
	return true, nil
}

// Current returns the session status.
func (t *Tracker) Current() (*Status, error) {
	row, err := db.GetSession(t.db)
	if err != nil {
		return nil, err
	}
	return &Status{Dirty: row.Dirty, SavedAt: row.SavedAt}, nil
}

// Reset discards all session state: focus items, audit trail, and the
// dirty/saved flags. Equivalent to starting a fresh session.
func (t *Tracker) Reset() error {
	return db.Reset(t.db)
}
