// Package ocr simulates importing a scanned contract: fixed recognition
// output with per-block confidence, low-confidence blocks flagged into
// the Focus watchlist.
package ocr

import (
	"fmt"

	"github.com/softco/smartdraft/internal/audit"
	"github.com/softco/smartdraft/internal/contract"
	"github.com/softco/smartdraft/internal/focus"
)

// LowConfidenceThreshold is the confidence below which a recognized
// block is flagged for human review.
const LowConfidenceThreshold = 0.85

// snippetChars bounds the excerpt captured onto a flagged focus item.
const snippetChars = 120

// Block is one recognized clause from the scanned document.
type Block struct {
	ID string `json:"id"`

	// AnchorID is the document clause the block maps onto.
	AnchorID string `json:"anchor_id"`

	Title string `json:"title"`
	Text  string `json:"text"`

	// Confidence is the recognition confidence in [0, 1].
	Confidence float64 `json:"confidence"`
}

// LowConfidence reports whether the block needs review.
func (b Block) LowConfidence() bool {
	return b.Confidence < LowConfidenceThreshold
}

// SampleBlocks is the fixed recognition output for the bundled scan.
func SampleBlocks() []Block {
	return []Block{
		{
			ID:         "ocr-1",
			AnchorID:   "clause-5-service-levels",
			Title:      "Service Levels",
			Text:       "Provider shall maintain 99.9% uptime measured monthly. Service credits of 5% of monthly fees apply for each 0.1% below the commitment, up to 30% of monthly fees.",
			Confidence: 0.92,
		},
		{
			ID:         "ocr-2",
			AnchorID:   "clause-8-liability",
			Title:      "Limitation of Liability",
			Text:       "Neither party's aggregate liability shall exceed two times the annual fees paid or payable under this Agreement, except for breaches of confidentiality or IP infringement.",
			Confidence: 0.88,
		},
		{
			ID:         "ocr-3",
			AnchorID:   "clause-12-governing-law",
			Title:      "Governing Law",
			Text:       "This Agreement shall be governed by and construed in accordance with the laws of the State of [ILLEGIBLE], without regard to its conflict of laws principles.",
			Confidence: 0.79,
		},
	}
}

// Steps returns the processing pipeline stage names, in order.
func Steps() []string {
	return []string{
		"Preprocess (deskew & enhance)",
		"Recognize text",
		"Segment into clauses",
		"Extract key metadata",
	}
}

// ProposedText is a recognized clause body offered as a replacement for
// an existing anchor. The document itself is never mutated by import;
// proposals flow into the redline review instead.
type ProposedText struct {
	AnchorID   string  `json:"anchor_id"`
	Title      string  `json:"title"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// Result is the outcome of applying an OCR import.
type Result struct {
	File     string               `json:"file"`
	Steps    []string             `json:"steps"`
	Blocks   []Block              `json:"blocks"`
	Proposed []ProposedText       `json:"proposed"`
	Flagged  []contract.FocusItem `json:"flagged"`

	// NextView is a navigation hint for front ends: review the
	// proposals as redlines.
	NextView string `json:"next_view"`
}

// DirtyMarker flags unsaved edits; satisfied by *session.Tracker.
type DirtyMarker interface {
	MarkDirty() error
}

// Importer applies OCR results to the working draft.
type Importer struct {
	focus   *focus.Store
	audit   audit.Recorder
	session DirtyMarker
}

// NewImporter creates an OCR importer.
func NewImporter(store *focus.Store, recorder audit.Recorder, session DirtyMarker) *Importer {
	return &Importer{focus: store, audit: recorder, session: session}
}

// Apply runs the simulated import for the named file: every block
// becomes a proposed clause text, low-confidence blocks additionally
// become medium-severity focus items. Marks the draft dirty.
func (im *Importer) Apply(file string) (*Result, error) {
	blocks := SampleBlocks()

	result := &Result{
		File:     file,
		Steps:    Steps(),
		Blocks:   blocks,
		Proposed: make([]ProposedText, 0, len(blocks)),
		Flagged:  make([]contract.FocusItem, 0),
		NextView: "redlines",
	}

	for _, b := range blocks {
		result.Proposed = append(result.Proposed, ProposedText{
			AnchorID:   b.AnchorID,
			Title:      b.Title,
			Text:       b.Text,
			Confidence: b.Confidence,
		})

		if !b.LowConfidence() {
			continue
		}

		item, err := im.focus.Add(focus.AddInput{
			AnchorID: b.AnchorID,
			Title:    fmt.Sprintf("Low confidence OCR: %s", b.Title),
			Snippet:  snippet(b.Text),
			Source:   contract.SourceOCR,
			Severity: contract.SeverityMedium,
		})
		if err != nil {
			return nil, err
		}
		result.Flagged = append(result.Flagged, *item)
	}

	if im.session != nil {
		if err := im.session.MarkDirty(); err != nil {
			return nil, err
		}
	}
	if im.audit != nil {
		_ = im.audit.Record("OCR processing completed", file)
		_ = im.audit.Record("OCR import applied", fmt.Sprintf("Applied %d clauses from %s", len(result.Proposed), file))
	}

	return result, nil
}

func snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= snippetChars {
		return text
	}
	return string(runes[:snippetChars])
}
