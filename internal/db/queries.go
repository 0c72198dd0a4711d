package db

import (
	"database/sql"

	"github.com/softco/smartdraft/internal/contract"
	"github.com/softco/smartdraft/internal/errors"
)

// InsertFocusItem stores a new focus item.
func InsertFocusItem(db *sql.DB, item *contract.FocusItem) error {
	query := `
		INSERT INTO focus_items (
			id, anchor_id, title, snippet, source, severity, note,
			created_at, resolved
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		item.ID, item.AnchorID, item.Title, nullIfEmpty(item.Snippet),
		string(item.Source), nullIfEmpty(string(item.Severity)),
		nullIfEmpty(item.Note), item.CreatedAt, boolToInt(item.Resolved),
	)
	if err != nil {
		return errors.NewInternal(err)
	}

	return nil
}

// GetFocusItem retrieves a focus item by id.
func GetFocusItem(db *sql.DB, id string) (*contract.FocusItem, error) {
	query := focusSelect + " WHERE id = ?"

	row := db.QueryRow(query, id)
	item, err := scanFocusItem(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(id)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	return item, nil
}

// GetFocusItemByAnchor retrieves the oldest focus item pointing at the
// given anchor, or NOT_FOUND. The store permits multiple items per
// anchor; the oldest is the one the bookmark toggle affordance flips.
func GetFocusItemByAnchor(db *sql.DB, anchorID string) (*contract.FocusItem, error) {
	query := focusSelect + " WHERE anchor_id = ? ORDER BY created_at ASC, rowid ASC LIMIT 1"

	row := db.QueryRow(query, anchorID)
	item, err := scanFocusItem(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(anchorID)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	return item, nil
}

// ListFocusItems returns all focus items in creation order.
func ListFocusItems(db *sql.DB) ([]contract.FocusItem, error) {
	query := focusSelect + " ORDER BY created_at ASC, rowid ASC"

	rows, err := db.Query(query)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	items := make([]contract.FocusItem, 0)
	for rows.Next() {
		item, err := scanFocusItem(rows)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return items, nil
}

// DeleteFocusItem removes a focus item. Returns false if no row matched.
func DeleteFocusItem(db *sql.DB, id string) (bool, error) {
	result, err := db.Exec("DELETE FROM focus_items WHERE id = ?", id)
	if err != nil {
		return false, errors.NewInternal(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, errors.NewInternal(err)
	}
	return n > 0, nil
}

// UpdateFocusResolved sets the resolved flag. Returns false if no row matched.
func UpdateFocusResolved(db *sql.DB, id string, resolved bool) (bool, error) {
	result, err := db.Exec("UPDATE focus_items SET resolved = ? WHERE id = ?", boolToInt(resolved), id)
	if err != nil {
		return false, errors.NewInternal(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, errors.NewInternal(err)
	}
	return n > 0, nil
}

// UpdateFocusNote replaces the note. Returns false if no row matched.
// The focus store validates length before calling; the query stores what
// it is given.
func UpdateFocusNote(db *sql.DB, id, note string) (bool, error) {
	result, err := db.Exec("UPDATE focus_items SET note = ? WHERE id = ?", nullIfEmpty(note), id)
	if err != nil {
		return false, errors.NewInternal(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, errors.NewInternal(err)
	}
	return n > 0, nil
}

// CountUnresolvedFocusItems returns the number of items with resolved = false.
func CountUnresolvedFocusItems(db *sql.DB) (int, error) {
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM focus_items WHERE resolved = 0").Scan(&n)
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	return n, nil
}

// HasUnresolvedHighOrMedium reports whether any unresolved item carries
// high or medium severity.
func HasUnresolvedHighOrMedium(db *sql.DB) (bool, error) {
	query := `
		SELECT 1 FROM focus_items
		WHERE resolved = 0 AND severity IN ('high', 'medium')
		LIMIT 1
	`

	var one int
	err := db.QueryRow(query).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.NewInternal(err)
	}
	return true, nil
}

// CountUnresolvedBySource returns the number of unresolved items created
// from the given source.
func CountUnresolvedBySource(db *sql.DB, source contract.Source) (int, error) {
	var n int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM focus_items WHERE resolved = 0 AND source = ?",
		string(source),
	).Scan(&n)
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	return n, nil
}

// AuditEvent is a stored audit record.
type AuditEvent struct {
	Seq       int64  `json:"seq"`
	ID        string `json:"id"`
	Action    string `json:"action"`
	Detail    string `json:"detail"`
	CreatedAt int64  `json:"created_at"`
}

// InsertAuditEvent appends an audit event. Insertion order is preserved
// by the autoincrement sequence.
func InsertAuditEvent(db *sql.DB, id, action, detail string, createdAt int64) error {
	_, err := db.Exec(
		"INSERT INTO audit_events (id, action, detail, created_at) VALUES (?, ?, ?, ?)",
		id, action, detail, createdAt,
	)
	if err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// ListAuditEvents returns all audit events in insertion order.
func ListAuditEvents(db *sql.DB) ([]AuditEvent, error) {
	rows, err := db.Query(
		"SELECT seq, id, action, detail, created_at FROM audit_events ORDER BY seq ASC",
	)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	events := make([]AuditEvent, 0)
	for rows.Next() {
		var e AuditEvent
		if err := rows.Scan(&e.Seq, &e.ID, &e.Action, &e.Detail, &e.CreatedAt); err != nil {
			return nil, errors.NewInternal(err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return events, nil
}

// ClearAuditEvents removes all audit events.
func ClearAuditEvents(db *sql.DB) error {
	if _, err := db.Exec("DELETE FROM audit_events"); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// SessionRow is the single draft session row.
type SessionRow struct {
	Dirty   bool
	SavedAt *int64
}

// GetSession reads the draft session row.
func GetSession(db *sql.DB) (*SessionRow, error) {
	var (
		dirty   int
		savedAt sql.NullInt64
	)
	err := db.QueryRow("SELECT dirty, saved_at FROM draft_session WHERE id = 1").Scan(&dirty, &savedAt)
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	row := &SessionRow{Dirty: dirty != 0}
	if savedAt.Valid {
		row.SavedAt = &savedAt.Int64
	}
	return row, nil
}

// SetSessionDirty sets the dirty flag without touching saved_at.
func SetSessionDirty(db *sql.DB, dirty bool) error {
	_, err := db.Exec("UPDATE draft_session SET dirty = ? WHERE id = 1", boolToInt(dirty))
	if err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// SetSessionSaved clears the dirty flag and stamps saved_at.
func SetSessionSaved(db *sql.DB, savedAt int64) error {
	_, err := db.Exec("UPDATE draft_session SET dirty = 0, saved_at = ? WHERE id = 1", savedAt)
	if err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

const focusSelect = `
	SELECT id, anchor_id, title, snippet, source, severity, note,
		created_at, resolved
	FROM focus_items`

// rowScanner abstracts *sql.Row and *sql.Rows for scanFocusItem.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanFocusItem scans a single row into a FocusItem.
func scanFocusItem(row rowScanner) (*contract.FocusItem, error) {
	var (
		item     contract.FocusItem
		snippet  sql.NullString
		severity sql.NullString
		note     sql.NullString
		source   string
		resolved int
	)

	err := row.Scan(
		&item.ID, &item.AnchorID, &item.Title, &snippet, &source,
		&severity, &note, &item.CreatedAt, &resolved,
	)
	if err != nil {
		return nil, err
	}

	item.Source = contract.Source(source)
	item.Snippet = snippet.String
	item.Severity = contract.Severity(severity.String)
	item.Note = note.String
	item.Resolved = resolved != 0

	return &item, nil
}

// nullIfEmpty converts an empty string to sql NULL.
func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// boolToInt converts a bool to the 0/1 representation stored in SQLite.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
