package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/softco/smartdraft/internal/app"
)

// setupTestApp wires a full application over a temporary directory.
func setupTestApp(t *testing.T) *app.App {
	t.Helper()

	a, err := app.Init(t.TempDir())
	if err != nil {
		t.Fatalf("app.Init failed: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

// runCLI runs the CLI with args and returns captured stdout.
func runCLI(t *testing.T, a *app.App, args ...string) (string, error) {
	t.Helper()

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	cliApp := newCLIApp(a)
	err := cliApp.Run(append([]string{"smartdraft"}, args...))

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String(), err
}

func TestIsCLIMode(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"smartdraft"}, false},
		{[]string{"smartdraft", "search"}, true},
		{[]string{"smartdraft", "focus"}, true},
		{[]string{"smartdraft", "--help"}, true},
		{[]string{"smartdraft", "-v"}, true},
		{[]string{"smartdraft", "unknown"}, false},
	}

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	for _, tt := range tests {
		os.Args = tt.args
		if got := isCLIMode(); got != tt.want {
			t.Errorf("isCLIMode(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestCLISearch(t *testing.T) {
	a := setupTestApp(t)

	out, err := runCLI(t, a, "search", "uptime")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	var result struct {
		Empty bool `json:"empty"`
		Items []struct {
			Clause struct {
				ID string `json:"id"`
			} `json:"clause"`
		} `json:"items"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if result.Empty {
		t.Error("Empty = true for a real query")
	}
	if len(result.Items) != 1 || result.Items[0].Clause.ID != "clause-5-service-levels" {
		t.Errorf("items = %+v", result.Items)
	}
}

func TestCLIFocusLifecycle(t *testing.T) {
	a := setupTestApp(t)

	out, err := runCLI(t, a, "focus", "add",
		"--anchor=clause-8-liability",
		"--title=Limitation of Liability",
		"--source=clause",
		"--severity=high",
	)
	if err != nil {
		t.Fatalf("focus add failed: %v", err)
	}

	var item struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(out), &item); err != nil {
		t.Fatalf("add output is not JSON: %v\n%s", err, out)
	}
	if item.ID == "" {
		t.Fatal("no item id in output")
	}

	out, err = runCLI(t, a, "focus", "list")
	if err != nil {
		t.Fatalf("focus list failed: %v", err)
	}
	if !strings.Contains(out, item.ID) {
		t.Errorf("list output missing the added item:\n%s", out)
	}

	if _, err := runCLI(t, a, "focus", "resolve", item.ID); err != nil {
		t.Fatalf("focus resolve failed: %v", err)
	}

	out, err = runCLI(t, a, "finalize")
	if err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	var decision struct {
		Warn bool `json:"warn"`
	}
	if err := json.Unmarshal([]byte(out), &decision); err != nil {
		t.Fatalf("finalize output is not JSON: %v", err)
	}
	if decision.Warn {
		t.Error("resolved item must not warn")
	}
}

func TestCLIFocusRemove_Unknown(t *testing.T) {
	a := setupTestApp(t)

	_, err := runCLI(t, a, "focus", "remove", "no-such-id")
	if err == nil {
		t.Fatal("expected error for unknown id at the CLI boundary")
	}
	if !strings.Contains(err.Error(), "NOT_FOUND") {
		t.Errorf("err = %v, want NOT_FOUND code", err)
	}
}

func TestCLIFocusAdd_NoteTooLong(t *testing.T) {
	a := setupTestApp(t)

	_, err := runCLI(t, a, "focus", "add",
		"--anchor=clause-2-term",
		"--title=Term",
		"--note="+strings.Repeat("x", 141),
	)
	if err == nil {
		t.Fatal("expected error for oversize note")
	}
	if !strings.Contains(err.Error(), "NOTE_TOO_LONG") {
		t.Errorf("err = %v, want NOTE_TOO_LONG code in message", err)
	}
}

func TestCLIRespondAndSave(t *testing.T) {
	a := setupTestApp(t)

	if _, err := runCLI(t, a, "respond", "rl-1", "accept"); err != nil {
		t.Fatalf("respond failed: %v", err)
	}

	out, err := runCLI(t, a, "session", "save")
	if err != nil {
		t.Fatalf("session save failed: %v", err)
	}

	var result struct {
		Saved  bool `json:"saved"`
		Status struct {
			Dirty bool `json:"dirty"`
		} `json:"status"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("save output is not JSON: %v", err)
	}
	if !result.Saved {
		t.Error("Saved = false after a dirtying response")
	}
	if result.Status.Dirty {
		t.Error("Dirty = true after save")
	}
}

func TestCLIRespond_BadAction(t *testing.T) {
	a := setupTestApp(t)

	_, err := runCLI(t, a, "respond", "rl-1", "approve")
	if err == nil {
		t.Fatal("expected error for unknown action")
	}
	if !strings.Contains(err.Error(), "INVALID_REQUEST") {
		t.Errorf("err = %v, want INVALID_REQUEST code", err)
	}
}

func TestCLIDeal_Validation(t *testing.T) {
	a := setupTestApp(t)

	_, err := runCLI(t, a, "deal",
		"--client=Acme Corporation",
		"--type=lease",
		"--value=0",
		"--start=2020-01-01",
	)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "VALIDATION") {
		t.Errorf("err = %v, want VALIDATION code", err)
	}
}

func TestCLIDocumentExport(t *testing.T) {
	a := setupTestApp(t)

	out, err := runCLI(t, a, "document")
	if err != nil {
		t.Fatalf("document failed: %v", err)
	}
	if !strings.HasPrefix(out, "# Master SaaS Agreement") {
		t.Errorf("markdown output wrong:\n%s", out[:min(len(out), 80)])
	}

	out, err = runCLI(t, a, "document", "--format=html")
	if err != nil {
		t.Fatalf("document --format=html failed: %v", err)
	}
	if !strings.Contains(out, "<h1") {
		t.Error("html output missing heading markup")
	}
}

func TestCLIAudit(t *testing.T) {
	a := setupTestApp(t)

	runCLI(t, a, "focus", "add", "--anchor=clause-2-term", "--title=Term")

	out, err := runCLI(t, a, "audit")
	if err != nil {
		t.Fatalf("audit failed: %v", err)
	}
	if !strings.Contains(out, "Added Focus bookmark") {
		t.Errorf("audit output missing event:\n%s", out)
	}
}
