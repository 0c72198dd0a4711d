// Package assistant provides the scripted drafting assistant: keyword
// routed answers about the document and about individual redlines.
package assistant

import (
	"fmt"
	"strings"

	"github.com/softco/smartdraft/internal/contract"
	"github.com/softco/smartdraft/internal/playbook"
)

// Reply is one assistant answer.
type Reply struct {
	Text string `json:"text"`

	// Tags carry escalation markers such as "Needs Legal approval".
	Tags []string `json:"tags,omitempty"`

	// Route names the keyword rule that produced the answer; "fallback"
	// when nothing matched.
	Route string `json:"route"`
}

// documentRoute pairs a keyword predicate with its scripted answer.
type documentRoute struct {
	name  string
	match func(string) bool
	reply string
}

var documentRoutes = []documentRoute{
	{
		name:  "sla",
		match: func(m string) bool { return strings.Contains(m, "99.9") },
		reply: "The 99.9% uptime commitment allows roughly 43 minutes of downtime per month. Our standard is 99.0% (about 7.2 hours); the higher commitment increases service-credit exposure and needs Ops approval.",
	},
	{
		name:  "summary",
		match: func(m string) bool { return strings.Contains(m, "summarize") || strings.Contains(m, "summary") },
		reply: "This is a Master SaaS Agreement between SoftCo, Inc. and Acme Corporation: a 12-month term with a 99.9% uptime commitment, Net-30 payment, liability capped at fees paid in the twelve months preceding a claim, and New York governing law.",
	},
	{
		name:  "clause-5",
		match: func(m string) bool { return strings.Contains(m, "clause 5") },
		reply: "Clause 5 (Service Levels) commits Provider to 99.9% monthly uptime, measured per calendar month, with service credits as the exclusive remedy for missed targets.",
	},
	{
		name:  "risks",
		match: func(m string) bool { return strings.Contains(m, "risky") || strings.Contains(m, "risk") },
		reply: "Two items stand out: the 99.9% SLA is above our 99.0% standard (medium risk, Ops approval), and the governing law was assumed as New York and should be confirmed. The liability cap matches policy.",
	},
}

const fallbackReply = "In plain language: either party can end the agreement with 30 days written notice after the initial term, and Customer keeps access to its data for export during that window."

// Ask routes a free-text question about the document. Matching is
// case-insensitive, first route wins.
func Ask(message string) Reply {
	m := strings.ToLower(message)
	for _, r := range documentRoutes {
		if r.match(m) {
			return Reply{Text: r.reply, Route: r.name}
		}
	}
	return Reply{Text: fallbackReply, Route: "fallback"}
}

// AskAboutChange routes a question asked in the context of one redline
// change. The three intents are risk explanation, counter drafting, and
// customer email drafting.
func AskAboutChange(clauseType contract.ClauseType, risk contract.Severity, message string) Reply {
	m := strings.ToLower(message)

	switch {
	case strings.Contains(m, "risk") || strings.Contains(m, "why"):
		text, tags := playbook.ExplainRisk(clauseType, risk)
		return Reply{Text: text, Tags: tags, Route: "risk"}
	case strings.Contains(m, "counter"):
		return Reply{
			Text:  fmt.Sprintf("Here's a counter draft:\n\n%s", playbook.CounterDraft(clauseType)),
			Route: "counter",
		}
	case strings.Contains(m, "email"):
		return Reply{
			Text:  fmt.Sprintf("Here's a draft email to the customer:\n\n%s", playbook.EmailDraft(clauseType)),
			Route: "email",
		}
	default:
		return Reply{
			Text:  "I can explain the risk, draft a counter clause, or draft a customer email for this change. Which would you like?",
			Route: "fallback",
		}
	}
}
