package export

import (
	"strings"
	"testing"

	"github.com/softco/smartdraft/internal/contract"
)

func TestFocusSummary_Empty(t *testing.T) {
	got := FocusSummary(nil)
	if !strings.Contains(got, "Focus Summary (0 items)") {
		t.Errorf("header missing: %q", got)
	}
	if !strings.Contains(got, "No focus items.") {
		t.Errorf("empty marker missing: %q", got)
	}
}

func TestFocusSummary_RendersItems(t *testing.T) {
	items := []contract.FocusItem{
		{
			ID:        "01A",
			AnchorID:  "clause-8-liability",
			Title:     "Limitation of Liability",
			Source:    contract.SourceClause,
			Severity:  contract.SeverityHigh,
			Note:      "escalate to legal",
			CreatedAt: 1767225600, // 2026-01-01 00:00 UTC
		},
		{
			ID:        "01B",
			AnchorID:  "clause-2-term",
			Title:     "Term",
			Source:    contract.SourceSearch,
			CreatedAt: 1767225660,
			Resolved:  true,
		},
	}

	got := FocusSummary(items)

	if !strings.Contains(got, "Focus Summary (2 items)") {
		t.Errorf("header wrong: %q", got)
	}
	if !strings.Contains(got, "1. Limitation of Liability") {
		t.Error("first item missing")
	}
	if !strings.Contains(got, "Severity: high") {
		t.Error("severity line missing")
	}
	if !strings.Contains(got, "Note: escalate to legal") {
		t.Error("note line missing")
	}
	if !strings.Contains(got, "Status: Open") || !strings.Contains(got, "Status: Resolved") {
		t.Error("status lines missing")
	}
	if !strings.Contains(got, "Added: 2026-01-01 00:00 UTC") {
		t.Errorf("timestamp wrong: %q", got)
	}
	// Optional fields omitted when empty
	if strings.Count(got, "Severity:") != 1 {
		t.Error("unassessed item must not render a severity line")
	}
}

func TestFocusSummary_Deterministic(t *testing.T) {
	items := []contract.FocusItem{
		{ID: "01A", Title: "One", Source: contract.SourceClause, CreatedAt: 100},
	}
	if FocusSummary(items) != FocusSummary(items) {
		t.Error("summary must be deterministic")
	}
}

func TestDocumentMarkdown(t *testing.T) {
	got := DocumentMarkdown(contract.NewIndex())

	if !strings.HasPrefix(got, "# Master SaaS Agreement") {
		t.Errorf("title heading missing: %q", got[:40])
	}
	if !strings.Contains(got, "Acme Corporation") {
		t.Error("preamble missing")
	}
	if !strings.Contains(got, "## 2. Service Levels") {
		t.Error("numbered clause heading missing")
	}
	if !strings.Contains(got, "Payment due within 30 days of invoice (Net-30).") {
		t.Error("clause body missing")
	}
}

func TestDocumentHTML(t *testing.T) {
	got, err := DocumentHTML(contract.NewIndex())
	if err != nil {
		t.Fatalf("DocumentHTML failed: %v", err)
	}

	if !strings.Contains(got, "<h1") {
		t.Error("rendered HTML missing title heading")
	}
	if !strings.Contains(got, "Service Levels") {
		t.Error("rendered HTML missing clause title")
	}
}
