package playbook

import (
	"fmt"

	"github.com/softco/smartdraft/internal/contract"
)

// CounterDraft returns the playbook counter-clause text for a clause type.
func CounterDraft(clauseType contract.ClauseType) string {
	switch clauseType {
	case contract.TypePayment:
		return "Fees are due within 45 days of invoice. A 1% monthly late fee applies to overdue amounts."
	case contract.TypeGoverningLaw:
		return "This Agreement is governed by the laws of New York, USA. Each party submits to NY courts."
	case contract.TypeLiability:
		return "Each party's liability is capped at fees paid in the 12 months preceding the claim, except for IP/confidentiality breaches or gross negligence."
	case contract.TypeServiceLevels:
		return "Provider maintains 99.5% monthly uptime. Credits per Schedule A; liability limited as set out herein."
	case contract.TypeDataResidency:
		return "Customer data shall be stored in Provider's EU data centers, subject to Section 6 data protection terms."
	default:
		return "Counter language based on standard playbook terms for this clause type."
	}
}

// EmailDraft returns the scripted customer email for a clause type.
func EmailDraft(clauseType contract.ClauseType) string {
	switch clauseType {
	case contract.TypePayment:
		return "Hi team — thanks for the redline. Net-45 is workable on our standard SaaS terms. We'll include a 1% monthly late fee to align with policy. Please confirm and we'll update the draft."
	case contract.TypeGoverningLaw:
		return "Hi — we appreciate the proposed changes. Our standard agreement uses New York law for consistency. Would NY or Delaware work as a neutral alternative? Let me know if you'd like to discuss."
	case contract.TypeLiability:
		return "Thanks for sharing your redline. We'd like to propose a 1.5x cap as a middle ground that protects both parties. This aligns with our standard risk framework. Can we move forward with this compromise?"
	case contract.TypeDataResidency:
		return "Hi team — we can accommodate EU data residency for your data. We'll confirm infrastructure capacity and update the agreement accordingly. Please let us know if you need any additional compliance documentation."
	default:
		return "Hi — thanks for the proposed changes. We've reviewed them and would like to discuss a few points. Let me know when you're available for a quick call."
	}
}

// ExplainRisk returns the one-line risk explanation for a
// (clause type, risk tier) pair, plus any escalation tags.
func ExplainRisk(clauseType contract.ClauseType, risk contract.Severity) (string, []string) {
	switch {
	case clauseType == contract.TypePayment && risk == contract.SeverityLow:
		return "Within playbook for standard SaaS; cash impact minimal.", nil
	case clauseType == contract.TypeGoverningLaw && risk == contract.SeverityMedium:
		return "Default is NY; CA may increase cost—counter with NY/DE.", nil
	case clauseType == contract.TypeLiability && risk == contract.SeverityHigh:
		return "Violates baseline; only carve-outs can be unlimited—needs Legal approval.", []string{"Needs Legal approval"}
	case clauseType == contract.TypeLiability && risk == contract.SeverityMedium:
		return "Lower than standard 2x multiplier; consider countering with 1.5x compromise.", nil
	case clauseType == contract.TypeServiceLevels && risk == contract.SeverityMedium:
		return "Above standard; increases credit exposure—seek Ops approval.", nil
	case clauseType == contract.TypeDataResidency && risk == contract.SeverityLow:
		return "Standard GDPR compliance request; acceptable if infrastructure supports EU hosting.", nil
	default:
		return fmt.Sprintf("%s risk level detected for this change.", capitalize(string(risk))), nil
	}
}

func capitalize(s string) string {
	if s == "" {
		return "Unassessed"
	}
	return string(s[0]-'a'+'A') + s[1:]
}
