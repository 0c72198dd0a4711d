package playbook

import (
	"fmt"
	"strings"

	"github.com/softco/smartdraft/internal/contract"
)

// Policy thresholds. These encode the negotiation playbook and must not
// drift: downstream suggestions (counter drafts, approval routing) quote
// them verbatim.
const (
	// BaselineUptimePercent is the standard SLA commitment.
	BaselineUptimePercent = 99.0

	// ElevatedUptimePercent is the lowest uptime commitment treated as
	// above-standard (anything >= this needs Ops approval).
	ElevatedUptimePercent = 99.1

	// StandardLiabilityMultiplier is the playbook liability cap (2x annual fees).
	StandardLiabilityMultiplier = 2.0

	// MinimumLiabilityMultiplier is the floor below which a cap needs
	// review; the standard counter is the 1.5x compromise.
	MinimumLiabilityMultiplier = 1.5

	// MaxPaymentNetDays is the payment term ceiling (Net-45) acceptable
	// without escalation.
	MaxPaymentNetDays = 45

	// DefaultJurisdiction is assumed when the counterparty specifies none.
	DefaultJurisdiction = "New York"
)

// Observation is the contextual value handed to the classifier alongside
// a clause type. Only the fields relevant to the clause type are read.
type Observation struct {
	ClauseType contract.ClauseType

	// UptimePercent is the committed SLA (Service Levels).
	UptimePercent float64

	// LiabilityMultiplier is the cap expressed as a multiple of annual
	// value (Liability). Ignored when Uncapped is set.
	LiabilityMultiplier float64

	// Uncapped marks a liability clause with no cap at all (Liability).
	Uncapped bool

	// Jurisdiction is the proposed governing law; empty means the
	// counterparty specified none (Governing Law).
	Jurisdiction string

	// PaymentNetDays is the invoice term in days (Payment).
	PaymentNetDays int

	// DataResidency marks a data residency requirement.
	DataResidency bool

	// FallbackRisk is the caller-supplied tier used when no rule matches.
	FallbackRisk contract.Severity
}

// Verdict is the classification result. The classifier is total: every
// observation produces a verdict, via the generic fallback if necessary.
type Verdict struct {
	Severity contract.Severity `json:"severity"`

	// Acceptable means the observation is within playbook and needs no flag.
	Acceptable bool `json:"acceptable"`

	// RationaleKey selects the "Why?" content; empty for the generic fallback.
	RationaleKey string `json:"rationale_key,omitempty"`

	Message string `json:"message"`

	// RequiresApproval names the team that must sign off, if any.
	RequiresApproval string `json:"requires_approval,omitempty"`
}

// rule pairs a match predicate with its verdict. Rules are evaluated in
// order, first match wins.
type rule struct {
	match   func(Observation) bool
	verdict func(Observation) Verdict
}

var rules = []rule{
	{
		match: func(o Observation) bool {
			return o.ClauseType == contract.TypeServiceLevels && o.UptimePercent >= ElevatedUptimePercent
		},
		verdict: func(o Observation) Verdict {
			return Verdict{
				Severity:         contract.SeverityMedium,
				RationaleKey:     "sla-999",
				Message:          "SLA above standard.",
				RequiresApproval: "Ops",
			}
		},
	},
	{
		match: func(o Observation) bool {
			return o.ClauseType == contract.TypeServiceLevels
		},
		verdict: func(o Observation) Verdict {
			return Verdict{
				Severity:   contract.SeverityNone,
				Acceptable: true,
				Message:    "SLA within standard commitment.",
			}
		},
	},
	{
		match: func(o Observation) bool {
			return o.ClauseType == contract.TypeLiability && o.Uncapped
		},
		verdict: func(o Observation) Verdict {
			return Verdict{
				Severity:         contract.SeverityHigh,
				RationaleKey:     "redline-liability-uncapped-high",
				Message:          "Uncapped liability violates baseline risk thresholds.",
				RequiresApproval: "Legal",
			}
		},
	},
	{
		match: func(o Observation) bool {
			return o.ClauseType == contract.TypeLiability &&
				o.LiabilityMultiplier >= 1.0 && o.LiabilityMultiplier < MinimumLiabilityMultiplier
		},
		verdict: func(o Observation) Verdict {
			return Verdict{
				Severity:     contract.SeverityMedium,
				RationaleKey: "redline-liability-1x",
				Message:      "Cap below standard 2x multiplier; counter with 1.5x compromise.",
			}
		},
	},
	{
		match: func(o Observation) bool {
			return o.ClauseType == contract.TypeLiability && o.LiabilityMultiplier >= MinimumLiabilityMultiplier
		},
		verdict: func(o Observation) Verdict {
			return Verdict{
				Severity:     contract.SeverityNone,
				Acceptable:   true,
				RationaleKey: "liability-standard",
				Message:      "Liability cap matches policy.",
			}
		},
	},
	{
		match: func(o Observation) bool {
			return o.ClauseType == contract.TypeGoverningLaw && strings.TrimSpace(o.Jurisdiction) == ""
		},
		verdict: func(o Observation) Verdict {
			return Verdict{
				Severity:     contract.SeverityLow,
				RationaleKey: "law-default-ny",
				Message:      "No jurisdiction provided; defaulted to New York. Please confirm.",
			}
		},
	},
	{
		match: func(o Observation) bool {
			return o.ClauseType == contract.TypeGoverningLaw &&
				!strings.EqualFold(strings.TrimSpace(o.Jurisdiction), DefaultJurisdiction)
		},
		verdict: func(o Observation) Verdict {
			return Verdict{
				Severity:     contract.SeverityMedium,
				RationaleKey: "redline-govlaw-ca-medium",
				Message:      fmt.Sprintf("Proposed %s law; default is NY. Counter with NY or DE.", strings.TrimSpace(o.Jurisdiction)),
			}
		},
	},
	{
		match: func(o Observation) bool {
			return o.ClauseType == contract.TypeGoverningLaw
		},
		verdict: func(o Observation) Verdict {
			return Verdict{
				Severity:   contract.SeverityNone,
				Acceptable: true,
				Message:    "Governing law matches the playbook default.",
			}
		},
	},
	{
		match: func(o Observation) bool {
			return o.ClauseType == contract.TypePayment && o.PaymentNetDays > 0 && o.PaymentNetDays <= MaxPaymentNetDays
		},
		verdict: func(o Observation) Verdict {
			return Verdict{
				Severity:     contract.SeverityLow,
				Acceptable:   true,
				RationaleKey: "redline-net45-acceptable",
				Message:      fmt.Sprintf("Net-%d is within the Net-%d ceiling for standard SaaS deals.", o.PaymentNetDays, MaxPaymentNetDays),
			}
		},
	},
	{
		match: func(o Observation) bool {
			return o.ClauseType == contract.TypePayment && o.PaymentNetDays > MaxPaymentNetDays
		},
		verdict: func(o Observation) Verdict {
			return Verdict{
				Severity: contract.SeverityMedium,
				Message:  fmt.Sprintf("Net-%d exceeds the Net-%d ceiling; counter with shorter terms.", o.PaymentNetDays, MaxPaymentNetDays),
			}
		},
	},
	{
		match: func(o Observation) bool {
			return o.ClauseType == contract.TypeDataResidency || o.DataResidency
		},
		verdict: func(o Observation) Verdict {
			return Verdict{
				Severity:     contract.SeverityLow,
				Acceptable:   true,
				RationaleKey: "redline-data-residency",
				Message:      "Data residency acceptable if infrastructure supports it; verify before accepting.",
			}
		},
	},
}

// Evaluate runs the rule table over the observation, first match wins.
// When no rule matches it falls back to the caller-supplied risk tier
// with no specific rationale.
func Evaluate(obs Observation) Verdict {
	for _, r := range rules {
		if r.match(obs) {
			return r.verdict(obs)
		}
	}

	severity := obs.FallbackRisk
	if !contract.ValidSeverity(severity) {
		severity = contract.SeverityNone
	}
	label := "Unassessed"
	if severity != contract.SeverityNone {
		label = strings.ToUpper(string(severity[0])) + string(severity[1:])
	}
	return Verdict{
		Severity: severity,
		Message:  fmt.Sprintf("%s risk level detected for this change.", label),
	}
}
