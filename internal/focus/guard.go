package focus

import (
	"github.com/softco/smartdraft/internal/contract"
	"github.com/softco/smartdraft/internal/db"
)

// Decision is the finalize guard outcome. Warn never blocks: the caller
// decides whether to proceed, the guard only surfaces what is open.
type Decision struct {
	Warn bool `json:"warn"`

	// UnresolvedCount is the total number of open focus items.
	UnresolvedCount int `json:"unresolved_count"`

	// HighOrMedium is true when at least one open item carries high or
	// medium severity; this alone is what trips the warning.
	HighOrMedium bool `json:"high_or_medium"`

	// UnresolvedOCRCount counts open items created by OCR import.
	UnresolvedOCRCount int `json:"unresolved_ocr_count"`
}

// ShouldWarnBeforeFinalize checks open focus items and reports whether
// finalizing the draft deserves a confirmation step. Low-severity and
// unassessed items never warn. OCR low-confidence flags participate
// through the severity check: the importer stamps every flag medium,
// so an unresolved flag always trips the warning.
func (s *Store) ShouldWarnBeforeFinalize() (*Decision, error) {
	total, err := db.CountUnresolvedFocusItems(s.db)
	if err != nil {
		return nil, err
	}

	severe, err := db.HasUnresolvedHighOrMedium(s.db)
	if err != nil {
		return nil, err
	}

	ocr, err := db.CountUnresolvedBySource(s.db, contract.SourceOCR)
	if err != nil {
		return nil, err
	}

	return &Decision{
		Warn:               severe,
		UnresolvedCount:    total,
		HighOrMedium:       severe,
		UnresolvedOCRCount: ocr,
	}, nil
}
