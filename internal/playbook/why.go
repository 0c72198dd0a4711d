package playbook

// WhyContent is the rationale behind a classification, shown when the
// user asks "Why?" on an insight or redline suggestion.
type WhyContent struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

// whyText maps rationale keys to their explanation content.
var whyText = map[string]WhyContent{
	// Insights
	"sla-999": {
		Title: "SLA above standard",
		Bullets: []string{
			"Our playbook standard is 99.0%; 99.9% triggers Ops approval.",
			"Higher SLA increases service-credit exposure. Consider 99.0% or 99.5% cap.",
		},
	},
	"law-default-ny": {
		Title: "Default jurisdiction",
		Bullets: []string{
			"No input provided; defaulted to New York per policy.",
			"If customer insists, prefer Delaware; escalate if needed.",
		},
	},
	"liability-standard": {
		Title: "Liability cap is compliant",
		Bullets: []string{
			"Cap = fees (12 months). Unlimited only for IP/confidentiality/gross negligence.",
		},
	},

	// Redlines
	"redline-net45-acceptable": {
		Title: "Why accept Net-45",
		Bullets: []string{
			"Playbook allows up to Net-45 for standard SaaS deals.",
			"If ACV < $50k, consider late-fee clause.",
		},
	},
	"redline-govlaw-ca-medium": {
		Title: "Why counter CA law",
		Bullets: []string{
			"Default is NY; CA can increase litigation cost.",
			"Counter with NY or DE; escalate if customer insists.",
		},
	},
	"redline-liability-uncapped-high": {
		Title: "Why reject uncapped",
		Bullets: []string{
			"Violates baseline risk thresholds.",
			"Counter with 12-month fees or 2x ACV cap.",
		},
	},
	"redline-liability-1x": {
		Title: "Why counter 1x cap",
		Bullets: []string{
			"Standard is 2x annual fees; 1x is below threshold.",
			"Counter with 1.5x as compromise.",
		},
	},
	"redline-data-residency": {
		Title: "Why accept residency",
		Bullets: []string{
			"Data residency is acceptable if infrastructure supports it.",
			"Verify capability before accepting.",
		},
	},
}

// Why returns the rationale content for a key. ok is false for unknown
// keys (including the empty key of generic fallback verdicts).
func Why(key string) (WhyContent, bool) {
	w, ok := whyText[key]
	return w, ok
}

// RationaleKeys returns all known rationale keys. Order is unspecified.
func RationaleKeys() []string {
	keys := make([]string, 0, len(whyText))
	for k := range whyText {
		keys = append(keys, k)
	}
	return keys
}
