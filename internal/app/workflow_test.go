package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/softco/smartdraft/internal/contract"
	"github.com/softco/smartdraft/internal/export"
	"github.com/softco/smartdraft/internal/focus"
	"github.com/softco/smartdraft/internal/redline"
	"github.com/softco/smartdraft/internal/search"
)

// TestDraftingWorkflow exercises a full review session:
// search → bookmark → redline responses → OCR import → finalize guard →
// resolve → save → export → reset.
func TestDraftingWorkflow(t *testing.T) {
	a, err := Init(t.TempDir())
	require.NoError(t, err)
	defer a.Close()

	// 1. Search for the liability clause
	searchResult := search.Search(a.Index, "liability cap", "")
	require.NotEmpty(t, searchResult.Items)
	top := searchResult.Items[0]
	require.Equal(t, "clause-8-liability", top.Clause.ID)

	// 2. Bookmark the hit
	item, err := a.Focus.Add(focus.AddInput{
		AnchorID: top.Clause.ID,
		Title:    top.Clause.Title,
		Snippet:  top.Snippet,
		Source:   contract.SourceSearch,
		Severity: contract.SeverityHigh,
	})
	require.NoError(t, err)

	// The bookmark is discoverable by anchor
	found, err := a.Focus.FindByAnchor(top.Clause.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, item.ID, found.ID)

	// 3. Review redlines and counter the liability change
	overview := a.Redlines.List()
	require.Len(t, overview.Changes, 3)
	require.Equal(t, 2, overview.Summary.Acceptable)

	resp, err := a.Redlines.Respond("rl-2", redline.ActionCounter)
	require.NoError(t, err)
	require.NotEmpty(t, resp.AppliedText)

	status, err := a.Session.Current()
	require.NoError(t, err)
	require.True(t, status.Dirty)

	// 4. Import the scanned contract; one low-confidence flag appears
	ocrResult, err := a.OCR.Apply("countersigned-scan.pdf")
	require.NoError(t, err)
	require.Len(t, ocrResult.Flagged, 1)

	// 5. Finalize guard warns while severe items remain open
	decision, err := a.Focus.ShouldWarnBeforeFinalize()
	require.NoError(t, err)
	require.True(t, decision.Warn)
	require.Equal(t, 2, decision.UnresolvedCount)
	require.Equal(t, 1, decision.UnresolvedOCRCount)

	// 6. Resolve everything; the guard stands down
	items, err := a.Focus.List()
	require.NoError(t, err)
	for _, it := range items {
		_, err := a.Focus.ToggleResolved(it.ID)
		require.NoError(t, err)
	}

	decision, err = a.Focus.ShouldWarnBeforeFinalize()
	require.NoError(t, err)
	require.False(t, decision.Warn)
	require.Zero(t, decision.UnresolvedCount)

	// 7. Save the draft
	saved, err := a.Session.Save()
	require.NoError(t, err)
	require.True(t, saved)

	status, err = a.Session.Current()
	require.NoError(t, err)
	require.False(t, status.Dirty)
	require.NotNil(t, status.SavedAt)

	// 8. Export reflects the resolved watchlist
	items, err = a.Focus.List()
	require.NoError(t, err)
	summary := export.FocusSummary(items)
	require.Contains(t, summary, "Focus Summary (2 items)")
	require.Contains(t, summary, "Status: Resolved")
	require.NotContains(t, summary, "Status: Open")

	// The audit trail recorded the whole session in order
	events, err := a.Audit.List()
	require.NoError(t, err)
	var actions []string
	for _, e := range events {
		actions = append(actions, e.Action)
	}
	require.Contains(t, actions, "Added Focus bookmark")
	require.Contains(t, actions, "Countered redline")
	require.Contains(t, actions, "OCR import applied")
	require.Contains(t, actions, "Saved draft")

	// 9. Reset clears the session wholesale
	require.NoError(t, a.Session.Reset())

	items, err = a.Focus.List()
	require.NoError(t, err)
	require.Empty(t, items)

	events, err = a.Audit.List()
	require.NoError(t, err)
	require.Empty(t, events)

	status, err = a.Session.Current()
	require.NoError(t, err)
	require.False(t, status.Dirty)
	require.Nil(t, status.SavedAt)
}

// TestNoteBoundFlowsFromConfig verifies the configured note bound
// reaches the focus store.
func TestNoteBoundFlowsFromConfig(t *testing.T) {
	a, err := Init(t.TempDir())
	require.NoError(t, err)
	defer a.Close()

	require.Equal(t, 140, a.Focus.MaxNoteChars)

	_, err = a.Focus.Add(focus.AddInput{
		AnchorID: "clause-2-term",
		Title:    "Term",
		Source:   contract.SourceClause,
		Note:     strings.Repeat("x", 141),
	})
	require.Error(t, err)
}
