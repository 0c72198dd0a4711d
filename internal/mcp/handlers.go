package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/softco/smartdraft/internal/app"
	"github.com/softco/smartdraft/internal/assistant"
	"github.com/softco/smartdraft/internal/contract"
	"github.com/softco/smartdraft/internal/deal"
	"github.com/softco/smartdraft/internal/errors"
	"github.com/softco/smartdraft/internal/export"
	"github.com/softco/smartdraft/internal/focus"
	"github.com/softco/smartdraft/internal/playbook"
	"github.com/softco/smartdraft/internal/redline"
	"github.com/softco/smartdraft/internal/search"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	app *app.App
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(a *app.App) *Handlers {
	return &Handlers{app: a}
}

// Request types for each tool

// SearchRequest represents the arguments for clause_search.
type SearchRequest struct {
	Query string `json:"query"`
	Type  string `json:"type,omitempty"`
}

// ClauseGetRequest represents the arguments for clause_get.
type ClauseGetRequest struct {
	AnchorID string `json:"anchor_id"`
}

// WhyRequest represents the arguments for insight_why.
type WhyRequest struct {
	Key string `json:"key"`
}

// RespondRequest represents the arguments for redline_respond.
type RespondRequest struct {
	ID     string `json:"id"`
	Action string `json:"action"`
}

// RedlineChatRequest represents the arguments for redline_chat.
type RedlineChatRequest struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// FocusAddRequest represents the arguments for focus_add.
type FocusAddRequest struct {
	AnchorID string `json:"anchor_id"`
	Title    string `json:"title"`
	Snippet  string `json:"snippet,omitempty"`
	Source   string `json:"source"`
	Severity string `json:"severity,omitempty"`
	Note     string `json:"note,omitempty"`
}

// FocusIDRequest identifies a focus item for remove and resolve.
type FocusIDRequest struct {
	ID string `json:"id"`
}

// FocusNoteRequest represents the arguments for focus_note.
type FocusNoteRequest struct {
	ID   string `json:"id"`
	Note string `json:"note"`
}

// ChatRequest represents the arguments for chat_ask.
type ChatRequest struct {
	Message string `json:"message"`
}

// OCRImportRequest represents the arguments for ocr_import.
type OCRImportRequest struct {
	File string `json:"file"`
}

// DealCreateRequest represents the arguments for deal_create.
type DealCreateRequest struct {
	ClientName   string  `json:"client_name"`
	ContractType string  `json:"contract_type"`
	Value        float64 `json:"value"`
	TermMonths   int     `json:"term_months"`
	StartDate    string  `json:"start_date"`
	SpecialTerms string  `json:"special_terms,omitempty"`
}

// DocumentExportRequest represents the arguments for document_export.
type DocumentExportRequest struct {
	Format string `json:"format,omitempty"`
}

// Handler implementations

// HandleSearch handles the clause_search tool call.
func (h *Handlers) HandleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SearchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result := search.Search(h.app.Index, input.Query, contract.ClauseType(input.Type))
	return successResult(result)
}

// HandleClauseList handles the clause_list tool call.
func (h *Handlers) HandleClauseList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return successResult(map[string]any{
		"title":   contract.DocumentTitle,
		"clauses": h.app.Index.All(),
		"types":   h.app.Index.Types(),
	})
}

// HandleClauseGet handles the clause_get tool call.
func (h *Handlers) HandleClauseGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ClauseGetRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	clause, ok := h.app.Index.ByAnchor(input.AnchorID)
	if !ok {
		return errorResult(errors.NewNotFound(input.AnchorID)), nil
	}
	return successResult(clause)
}

// HandleInsightList handles the insight_list tool call.
func (h *Handlers) HandleInsightList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return successResult(playbook.DocumentInsights())
}

// HandleInsightWhy handles the insight_why tool call.
func (h *Handlers) HandleInsightWhy(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[WhyRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	why, ok := playbook.Why(input.Key)
	if !ok {
		return errorResult(errors.NewNotFound(input.Key)), nil
	}
	return successResult(why)
}

// HandleRedlineList handles the redline_list tool call.
func (h *Handlers) HandleRedlineList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return successResult(h.app.Redlines.List())
}

// HandleRedlineRespond handles the redline_respond tool call.
func (h *Handlers) HandleRedlineRespond(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[RespondRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := h.app.Redlines.Respond(input.ID, redline.Action(input.Action))
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleRedlineChat handles the redline_chat tool call.
func (h *Handlers) HandleRedlineChat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[RedlineChatRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	change, err := h.app.Redlines.Get(input.ID)
	if err != nil {
		return errorResult(err), nil
	}

	reply := assistant.AskAboutChange(change.ClauseType, change.Verdict.Severity, input.Message)
	return successResult(reply)
}

// HandleFocusAdd handles the focus_add tool call.
func (h *Handlers) HandleFocusAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FocusAddRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	item, err := h.app.Focus.Add(focus.AddInput{
		AnchorID: input.AnchorID,
		Title:    input.Title,
		Snippet:  input.Snippet,
		Source:   contract.Source(input.Source),
		Severity: contract.Severity(input.Severity),
		Note:     input.Note,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(item)
}

// HandleFocusRemove handles the focus_remove tool call.
func (h *Handlers) HandleFocusRemove(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FocusIDRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	removed, err := h.app.Focus.Remove(input.ID)
	if err != nil {
		return errorResult(err), nil
	}
	if !removed {
		return errorResult(errors.NewNotFound(input.ID)), nil
	}
	return successResult(map[string]any{"removed": input.ID})
}

// HandleFocusResolve handles the focus_resolve tool call.
func (h *Handlers) HandleFocusResolve(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FocusIDRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	item, err := h.app.Focus.ToggleResolved(input.ID)
	if err != nil {
		return errorResult(err), nil
	}
	if item == nil {
		return errorResult(errors.NewNotFound(input.ID)), nil
	}
	return successResult(item)
}

// HandleFocusNote handles the focus_note tool call.
func (h *Handlers) HandleFocusNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FocusNoteRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	item, err := h.app.Focus.UpdateNote(input.ID, input.Note)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(item)
}

// HandleFocusList handles the focus_list tool call.
func (h *Handlers) HandleFocusList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, err := h.app.Focus.List()
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(map[string]any{"items": items, "count": len(items)})
}

// HandleFocusExport handles the focus_export tool call.
func (h *Handlers) HandleFocusExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, err := h.app.Focus.List()
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(map[string]any{"summary": export.FocusSummary(items)})
}

// HandleSessionStatus handles the session_status tool call.
func (h *Handlers) HandleSessionStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := h.app.Session.Current()
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(status)
}

// HandleSessionSave handles the session_save tool call.
func (h *Handlers) HandleSessionSave(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	saved, err := h.app.Session.Save()
	if err != nil {
		return errorResult(err), nil
	}

	status, err := h.app.Session.Current()
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(map[string]any{"saved": saved, "status": status})
}

// HandleSessionReset handles the session_reset tool call.
func (h *Handlers) HandleSessionReset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.app.Session.Reset(); err != nil {
		return errorResult(err), nil
	}
	return successResult(map[string]any{"reset": true})
}

// HandleFinalizeCheck handles the finalize_check tool call.
func (h *Handlers) HandleFinalizeCheck(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	decision, err := h.app.Focus.ShouldWarnBeforeFinalize()
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(decision)
}

// HandleChatAsk handles the chat_ask tool call.
func (h *Handlers) HandleChatAsk(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ChatRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	return successResult(assistant.Ask(input.Message))
}

// HandleAuditList handles the audit_list tool call.
func (h *Handlers) HandleAuditList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	events, err := h.app.Audit.List()
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(map[string]any{"events": events, "count": len(events)})
}

// HandleOCRImport handles the ocr_import tool call.
func (h *Handlers) HandleOCRImport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[OCRImportRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if input.File == "" {
		return errorResult(errors.NewInvalidRequest("file is required")), nil
	}

	result, err := h.app.OCR.Apply(input.File)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleDealCreate handles the deal_create tool call.
func (h *Handlers) HandleDealCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DealCreateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	draft, err := h.app.Deals.Generate(deal.Input{
		ClientName:   input.ClientName,
		ContractType: deal.ContractType(input.ContractType),
		Value:        int64(input.Value),
		TermMonths:   input.TermMonths,
		StartDate:    input.StartDate,
		SpecialTerms: input.SpecialTerms,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(draft)
}

// HandleDocumentExport handles the document_export tool call.
func (h *Handlers) HandleDocumentExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DocumentExportRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	switch input.Format {
	case "", "markdown":
		return successResult(map[string]any{"format": "markdown", "content": export.DocumentMarkdown(h.app.Index)})
	case "html":
		content, err := export.DocumentHTML(h.app.Index)
		if err != nil {
			return errorResult(err), nil
		}
		return successResult(map[string]any{"format": "html", "content": content})
	default:
		return errorResult(errors.NewInvalidRequest(fmt.Sprintf("unknown format %q", input.Format))), nil
	}
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if dErr, ok := err.(*errors.DraftError); ok {
		errorObj := map[string]any{
			"code":    dErr.Code,
			"message": dErr.Message,
			"status":  dErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if dErr.Code != errors.ErrInternal && dErr.Details != nil {
			errorObj["details"] = dErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
