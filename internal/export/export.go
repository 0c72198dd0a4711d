// Package export renders the draft and the Focus watchlist into
// portable formats: plain text, markdown, and HTML.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/softco/smartdraft/internal/contract"
	"github.com/softco/smartdraft/internal/errors"
)

// FocusSummary renders focus items as a deterministic plain-text
// report. Items render in the order given; timestamps are UTC so the
// same store produces the same bytes everywhere.
func FocusSummary(items []contract.FocusItem) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Focus Summary (%d items)\n", len(items))
	b.WriteString(strings.Repeat("=", 24) + "\n")

	if len(items) == 0 {
		b.WriteString("\nNo focus items.\n")
		return b.String()
	}

	for i, item := range items {
		status := "Open"
		if item.Resolved {
			status = "Resolved"
		}

		fmt.Fprintf(&b, "\n%d. %s\n", i+1, item.Title)
		fmt.Fprintf(&b, "   Source: %s | Status: %s\n", item.Source, status)
		if item.Severity != contract.SeverityNone {
			fmt.Fprintf(&b, "   Severity: %s\n", item.Severity)
		}
		if item.Snippet != "" {
			fmt.Fprintf(&b, "   Snippet: %s\n", item.Snippet)
		}
		if item.Note != "" {
			fmt.Fprintf(&b, "   Note: %s\n", item.Note)
		}
		fmt.Fprintf(&b, "   Added: %s\n", time.Unix(item.CreatedAt, 0).UTC().Format("2006-01-02 15:04 UTC"))
	}

	return b.String()
}

// DocumentMarkdown assembles the full contract as markdown: title,
// preamble, then every clause as a numbered section.
func DocumentMarkdown(ix *contract.Index) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", contract.DocumentTitle)
	b.WriteString(contract.Preamble + "\n")

	for i, c := range ix.All() {
		fmt.Fprintf(&b, "\n## %d. %s\n\n", i+1, c.Title)
		b.WriteString(c.Text + "\n")
	}

	return b.String()
}

// DocumentHTML renders the contract markdown to HTML.
func DocumentHTML(ix *contract.Index) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(DocumentMarkdown(ix)), &buf); err != nil {
		return "", errors.NewInternal(err)
	}
	return buf.String(), nil
}
