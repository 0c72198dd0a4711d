package mcp

import "github.com/mark3labs/mcp-go/mcp"

// Tool definitions. Names follow the "type_action" pattern so types can
// be disabled wholesale via config.

var searchToolDef = mcp.NewTool("clause_search",
	mcp.WithDescription("Search contract clauses by keyword. Returns up to 5 ranked matches with highlighted snippets."),
	mcp.WithString("query", mcp.Required(),
		mcp.Description("Free-text search query. Tokens shorter than 2 characters are ignored.")),
	mcp.WithString("type",
		mcp.Description("Optional clause type filter, e.g. 'Payment' or 'Liability'. 'All' or empty matches every type.")),
)

var clauseListToolDef = mcp.NewTool("clause_list",
	mcp.WithDescription("List all clauses of the contract in document order."),
)

var clauseGetToolDef = mcp.NewTool("clause_get",
	mcp.WithDescription("Fetch a single clause by its anchor id."),
	mcp.WithString("anchor_id", mcp.Required(),
		mcp.Description("Clause anchor id, e.g. 'clause-5-service-levels'.")),
)

var insightListToolDef = mcp.NewTool("insight_list",
	mcp.WithDescription("List the playbook risk insights for the document: non-standard terms, assumptions, and confirmed standards."),
)

var insightWhyToolDef = mcp.NewTool("insight_why",
	mcp.WithDescription("Explain the rationale behind an insight or redline suggestion."),
	mcp.WithString("key", mcp.Required(),
		mcp.Description("Rationale key, e.g. 'sla-999' or 'redline-liability-1x'.")),
)

var redlineListToolDef = mcp.NewTool("redline_list",
	mcp.WithDescription("List the counterparty's proposed changes with playbook verdicts and summary counts."),
)

var redlineRespondToolDef = mcp.NewTool("redline_respond",
	mcp.WithDescription("Respond to a proposed change: accept it, counter with playbook language, or flag for discussion. Marks the draft dirty."),
	mcp.WithString("id", mcp.Required(),
		mcp.Description("Redline change id, e.g. 'rl-2'.")),
	mcp.WithString("action", mcp.Required(),
		mcp.Description("One of 'accept', 'counter', 'discuss'.")),
)

var redlineChatToolDef = mcp.NewTool("redline_chat",
	mcp.WithDescription("Ask the assistant about one redline change: explain the risk, draft a counter clause, or draft a customer email."),
	mcp.WithString("id", mcp.Required(),
		mcp.Description("Redline change id.")),
	mcp.WithString("message", mcp.Required(),
		mcp.Description("Question about the change. Keywords 'risk', 'counter', and 'email' select the intent.")),
)

var focusAddToolDef = mcp.NewTool("focus_add",
	mcp.WithDescription("Bookmark a clause, insight, redline, search hit, or OCR finding into the Focus watchlist."),
	mcp.WithString("anchor_id", mcp.Required(),
		mcp.Description("Document anchor the bookmark points at.")),
	mcp.WithString("title", mcp.Required(),
		mcp.Description("Display title for the watchlist entry.")),
	mcp.WithString("snippet",
		mcp.Description("Optional excerpt captured at creation time.")),
	mcp.WithString("source", mcp.Required(),
		mcp.Description("Creating surface: 'clause', 'insight', 'redline', 'search', or 'ocr'.")),
	mcp.WithString("severity",
		mcp.Description("Optional risk tier: 'low', 'medium', or 'high'.")),
	mcp.WithString("note",
		mcp.Description("Optional free-text note, bounded at 140 characters.")),
)

var focusRemoveToolDef = mcp.NewTool("focus_remove",
	mcp.WithDescription("Remove a focus item by id."),
	mcp.WithString("id", mcp.Required(),
		mcp.Description("Focus item id.")),
)

var focusResolveToolDef = mcp.NewTool("focus_resolve",
	mcp.WithDescription("Toggle the resolved flag on a focus item."),
	mcp.WithString("id", mcp.Required(),
		mcp.Description("Focus item id.")),
)

var focusNoteToolDef = mcp.NewTool("focus_note",
	mcp.WithDescription("Replace the note on a focus item. Notes over the character bound are rejected, never truncated."),
	mcp.WithString("id", mcp.Required(),
		mcp.Description("Focus item id.")),
	mcp.WithString("note", mcp.Required(),
		mcp.Description("New note text.")),
)

var focusListToolDef = mcp.NewTool("focus_list",
	mcp.WithDescription("List all focus items in creation order."),
)

var focusExportToolDef = mcp.NewTool("focus_export",
	mcp.WithDescription("Render the focus watchlist as a plain-text summary report."),
)

var sessionStatusToolDef = mcp.NewTool("session_status",
	mcp.WithDescription("Report the draft session state: dirty flag and last save time."),
)

var sessionSaveToolDef = mcp.NewTool("session_save",
	mcp.WithDescription("Save the draft: clears the dirty flag and stamps the save time. Saving a clean draft is a no-op."),
)

var sessionResetToolDef = mcp.NewTool("session_reset",
	mcp.WithDescription("Discard all session state: focus items, audit trail, and the dirty/saved flags."),
)

var finalizeCheckToolDef = mcp.NewTool("finalize_check",
	mcp.WithDescription("Check whether finalizing the draft deserves a warning: unresolved high or medium severity focus items trip it."),
)

var chatAskToolDef = mcp.NewTool("chat_ask",
	mcp.WithDescription("Ask the drafting assistant a question about the document."),
	mcp.WithString("message", mcp.Required(),
		mcp.Description("Free-text question.")),
)

var auditListToolDef = mcp.NewTool("audit_list",
	mcp.WithDescription("List the audit trail of user-visible actions, oldest first."),
)

var ocrImportToolDef = mcp.NewTool("ocr_import",
	mcp.WithDescription("Import a scanned contract: recognized clauses become redline proposals, low-confidence blocks are flagged into the Focus watchlist."),
	mcp.WithString("file", mcp.Required(),
		mcp.Description("Name of the scanned file being imported.")),
)

var dealCreateToolDef = mcp.NewTool("deal_create",
	mcp.WithDescription("Validate new-deal intake and generate a draft. Validation failure generates nothing and reports per-field messages."),
	mcp.WithString("client_name", mcp.Required(),
		mcp.Description("Client legal name, at most 80 characters.")),
	mcp.WithString("contract_type", mcp.Required(),
		mcp.Description("One of 'msa', 'sow', 'nda', 'sla'.")),
	mcp.WithNumber("value", mcp.Required(),
		mcp.Description("Deal value in whole dollars, greater than zero.")),
	mcp.WithNumber("term_months", mcp.Required(),
		mcp.Description("Contract term, 1 to 120 months.")),
	mcp.WithString("start_date", mcp.Required(),
		mcp.Description("Effective date, YYYY-MM-DD, not in the past.")),
	mcp.WithString("special_terms",
		mcp.Description("Optional special terms, at most 500 characters.")),
)

var documentExportToolDef = mcp.NewTool("document_export",
	mcp.WithDescription("Export the contract document as markdown or rendered HTML."),
	mcp.WithString("format",
		mcp.Description("'markdown' (default) or 'html'.")),
)
