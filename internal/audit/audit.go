// Package audit records user-visible actions as an append-only trail.
package audit

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/softco/smartdraft/internal/db"
)

// Recorder is the narrow interface collaborating stores use to emit
// audit events. Satisfied by *Log; tests substitute a capture fake.
type Recorder interface {
	Record(action, detail string) error
}

// Log appends audit events to the session database.
type Log struct {
	db *sql.DB

	// Clock supplies event timestamps; defaults to time.Now.
	Clock func() time.Time

	// NewID supplies event ids; defaults to uuid.NewString.
	NewID func() string
}

// NewLog creates an audit log over the given database handle.
func NewLog(database *sql.DB) *Log {
	return &Log{
		db:    database,
		Clock: time.Now,
		NewID: uuid.NewString,
	}
}

// Record appends one event. Events are ordered by insertion; the
// timestamp is informational, not the ordering key.
func (l *Log) Record(action, detail string) error {
	return db.InsertAuditEvent(l.db, l.NewID(), action, detail, l.Clock().Unix())
}

// List returns all events oldest first.
func (l *Log) List() ([]db.AuditEvent, error) {
	return db.ListAuditEvents(l.db)
}

// Clear discards the trail.
func (l *Log) Clear() error {
	return db.ClearAuditEvents(l.db)
}
