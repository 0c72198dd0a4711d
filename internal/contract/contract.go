package contract

// ClauseType classifies a clause into the closed set the playbook knows about.
type ClauseType string

const (
	TypeTerm          ClauseType = "Term"
	TypeServiceLevels ClauseType = "Service Levels"
	TypePayment       ClauseType = "Payment"
	TypeLiability     ClauseType = "Liability"
	TypeGoverningLaw  ClauseType = "Governing Law"
	TypeDataResidency ClauseType = "Data Residency"
	TypeOther         ClauseType = "Other"

	// TypeAll is the filter wildcard; it is never the type of a clause.
	TypeAll ClauseType = "All"
)

// Clause is a named, typed segment of the contract document.
// Clauses are created once at package init and never mutated.
type Clause struct {
	// ID is the stable anchor identifier, unique across the document.
	ID string `json:"id"`

	// Title is the display name shown in the document outline.
	Title string `json:"title"`

	// Type classifies the clause for filtering and playbook evaluation.
	Type ClauseType `json:"type"`

	// Text is the full clause body, plain text.
	Text string `json:"text"`
}

// Severity is a risk tier attached to insights and focus items.
type Severity string

const (
	SeverityNone   Severity = ""
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ValidSeverity reports whether s is one of the known severities
// (the empty severity counts as valid: FocusItem severity is optional).
func ValidSeverity(s Severity) bool {
	switch s {
	case SeverityNone, SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// Source identifies where a focus item was created from.
type Source string

const (
	SourceClause  Source = "clause"
	SourceInsight Source = "insight"
	SourceRedline Source = "redline"
	SourceSearch  Source = "search"
	SourceOCR     Source = "ocr"
)

// ValidSource reports whether s is one of the known focus sources.
func ValidSource(s Source) bool {
	switch s {
	case SourceClause, SourceInsight, SourceRedline, SourceSearch, SourceOCR:
		return true
	}
	return false
}

// FocusItem is a user-created watchlist entry pointing at an anchor.
type FocusItem struct {
	// ID uniquely identifies the item across the store (ULID).
	ID string `json:"id"`

	// AnchorID references a Clause.ID or other document anchor.
	// It is not required to resolve to an existing clause.
	AnchorID string `json:"anchor_id"`

	// Title is the display name for the watchlist entry.
	Title string `json:"title"`

	// Snippet is an optional excerpt captured at creation time.
	Snippet string `json:"snippet,omitempty"`

	// Source records which surface created the item.
	Source Source `json:"source"`

	// Severity is optional; empty means unassessed.
	Severity Severity `json:"severity,omitempty"`

	// Note is optional free text, bounded by the focus store (140 chars).
	Note string `json:"note,omitempty"`

	// CreatedAt is the Unix timestamp when the item was created.
	CreatedAt int64 `json:"created_at"`

	// Resolved starts false and flips only via explicit user action.
	Resolved bool `json:"resolved"`
}

// RiskInsight is a derived classification result; never stored,
// recomputed from the playbook each time it is needed.
type RiskInsight struct {
	Title        string   `json:"title"`
	Message      string   `json:"message"`
	Severity     Severity `json:"severity"`
	RationaleKey string   `json:"rationale_key,omitempty"`
}
