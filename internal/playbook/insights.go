package playbook

import "github.com/softco/smartdraft/internal/contract"

// Insight is a static document annotation tied to a clause anchor.
type Insight struct {
	contract.RiskInsight

	// AnchorID points at the clause the insight annotates.
	AnchorID string `json:"anchor_id"`

	// Category is the panel grouping: "Non-Standard", "Assumptions", "Standards".
	Category string `json:"category"`

	// Acceptable marks within-playbook findings (the checkmark row).
	Acceptable bool `json:"acceptable"`
}

// DocumentInsights classifies the fixed contract against the playbook
// and returns the standing annotations for the insights panel. Derived,
// never stored; recomputed on each call.
func DocumentInsights() []Insight {
	sla := Evaluate(Observation{
		ClauseType:    contract.TypeServiceLevels,
		UptimePercent: 99.9,
	})
	law := Evaluate(Observation{
		ClauseType:   contract.TypeGoverningLaw,
		Jurisdiction: "",
	})
	liability := Evaluate(Observation{
		ClauseType:          contract.TypeLiability,
		LiabilityMultiplier: StandardLiabilityMultiplier,
	})

	return []Insight{
		{
			RiskInsight: contract.RiskInsight{
				Title:        "Non-Standard",
				Message:      "Service Level (99.9%) — Above standard (99.0%). Risk: Medium. May need Ops approval.",
				Severity:     sla.Severity,
				RationaleKey: sla.RationaleKey,
			},
			AnchorID: "clause-5-service-levels",
			Category: "Non-Standard",
		},
		{
			RiskInsight: contract.RiskInsight{
				Title:        "Assumptions",
				Message:      "Governing Law — Assumed New York (default). Please confirm.",
				Severity:     law.Severity,
				RationaleKey: law.RationaleKey,
			},
			AnchorID: "clause-12-governing-law",
			Category: "Assumptions",
		},
		{
			RiskInsight: contract.RiskInsight{
				Title:        "Standards",
				Message:      "Liability cap — Matches policy.",
				Severity:     liability.Severity,
				RationaleKey: liability.RationaleKey,
			},
			AnchorID:   "clause-8-liability",
			Category:   "Standards",
			Acceptable: true,
		},
	}
}
