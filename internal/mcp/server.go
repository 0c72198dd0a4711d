package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/softco/smartdraft/internal/app"
)

// KnownTypes lists all valid type names.
var KnownTypes = []string{
	"clause", "insight", "redline", "focus", "session",
	"finalize", "chat", "audit", "ocr", "deal", "document",
}

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"clause_search": {
		def:     searchToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSearch },
	},
	"clause_list": {
		def:     clauseListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleClauseList },
	},
	"clause_get": {
		def:     clauseGetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleClauseGet },
	},
	"insight_list": {
		def:     insightListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleInsightList },
	},
	"insight_why": {
		def:     insightWhyToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleInsightWhy },
	},
	"redline_list": {
		def:     redlineListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleRedlineList },
	},
	"redline_respond": {
		def:     redlineRespondToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleRedlineRespond },
	},
	"redline_chat": {
		def:     redlineChatToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleRedlineChat },
	},
	"focus_add": {
		def:     focusAddToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleFocusAdd },
	},
	"focus_remove": {
		def:     focusRemoveToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleFocusRemove },
	},
	"focus_resolve": {
		def:     focusResolveToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleFocusResolve },
	},
	"focus_note": {
		def:     focusNoteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleFocusNote },
	},
	"focus_list": {
		def:     focusListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleFocusList },
	},
	"focus_export": {
		def:     focusExportToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleFocusExport },
	},
	"session_status": {
		def:     sessionStatusToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSessionStatus },
	},
	"session_save": {
		def:     sessionSaveToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSessionSave },
	},
	"session_reset": {
		def:     sessionResetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSessionReset },
	},
	"finalize_check": {
		def:     finalizeCheckToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleFinalizeCheck },
	},
	"chat_ask": {
		def:     chatAskToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleChatAsk },
	},
	"audit_list": {
		def:     auditListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleAuditList },
	},
	"ocr_import": {
		def:     ocrImportToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleOCRImport },
	},
	"deal_create": {
		def:     dealCreateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleDealCreate },
	},
	"document_export": {
		def:     documentExportToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleDocumentExport },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// ValidateDisabledTypes returns a list of unknown type names from the given list.
func ValidateDisabledTypes(names []string) []string {
	known := make(map[string]bool, len(KnownTypes))
	for _, t := range KnownTypes {
		known[t] = true
	}

	unknown := make([]string, 0)
	for _, name := range names {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// GetTypeForTool extracts the type name from a tool name.
// Tool names follow the pattern "type_action" (e.g., "focus_add" → "focus").
func GetTypeForTool(toolName string) string {
	if idx := strings.Index(toolName, "_"); idx > 0 {
		return toolName[:idx]
	}
	return ""
}

// ExpandTypesToTools returns all tool names belonging to the given types.
func ExpandTypesToTools(types []string) []string {
	if len(types) == 0 {
		return nil
	}

	typeSet := make(map[string]bool, len(types))
	for _, t := range types {
		typeSet[t] = true
	}

	tools := make([]string, 0)
	for name := range toolRegistry {
		typ := GetTypeForTool(name)
		if typeSet[typ] {
			tools = append(tools, name)
		}
	}
	return tools
}

// NewServer creates a new MCP server with SmartDraft tools registered.
// Tools listed in cfg.DisabledTools or belonging to cfg.DisabledTypes
// are excluded from registration.
func NewServer(a *app.App, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"smartdraft",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(a)

	// Expand disabled types first, then add individually disabled tools
	disabled := make(map[string]bool)
	for _, tool := range ExpandTypesToTools(a.Config.DisabledTypes) {
		disabled[tool] = true
	}
	for _, name := range a.Config.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(a *app.App, version string) error {
	s := NewServer(a, version)
	return server.ServeStdio(s)
}

// ToolHandlerFunc is the signature for tool handlers.
type ToolHandlerFunc func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
