// Package redline models the counterparty's proposed contract changes
// and the playbook-driven responses to them.
package redline

import (
	"fmt"

	"github.com/softco/smartdraft/internal/audit"
	"github.com/softco/smartdraft/internal/contract"
	"github.com/softco/smartdraft/internal/errors"
	"github.com/softco/smartdraft/internal/playbook"
)

// Action is a response to a proposed change.
type Action string

const (
	ActionAccept  Action = "accept"
	ActionCounter Action = "counter"
	ActionDiscuss Action = "discuss"
)

// ValidAction reports whether a is a known response action.
func ValidAction(a Action) bool {
	switch a {
	case ActionAccept, ActionCounter, ActionDiscuss:
		return true
	}
	return false
}

// Change is one counterparty edit under review.
type Change struct {
	ID         string              `json:"id"`
	AnchorID   string              `json:"anchor_id"`
	ClauseType contract.ClauseType `json:"clause_type"`

	// Section is the contract section reference, e.g. "4.2".
	Section string `json:"section"`

	Label        string `json:"label"`
	CurrentText  string `json:"current_text"`
	ProposedText string `json:"proposed_text"`

	// Verdict is the playbook classification of the proposal.
	Verdict playbook.Verdict `json:"verdict"`
}

// changes is the fixed set of proposed edits in the sample negotiation.
// Verdicts are derived at init so the table can never disagree with the
// playbook.
var changes = func() []Change {
	return []Change{
		{
			ID:           "rl-1",
			AnchorID:     "clause-4-payment",
			ClauseType:   contract.TypePayment,
			Section:      "4.2",
			Label:        "Payment Terms",
			CurrentText:  "Payment due within 30 days of invoice (Net-30).",
			ProposedText: "Payment due within 45 days of invoice (Net-45).",
			Verdict: playbook.Evaluate(playbook.Observation{
				ClauseType:     contract.TypePayment,
				PaymentNetDays: 45,
			}),
		},
		{
			ID:           "rl-2",
			AnchorID:     "clause-8-liability",
			ClauseType:   contract.TypeLiability,
			Section:      "8.1",
			Label:        "Liability Cap",
			CurrentText:  "Liability capped at 2x annual fees.",
			ProposedText: "Liability capped at 1x annual fees.",
			Verdict: playbook.Evaluate(playbook.Observation{
				ClauseType:          contract.TypeLiability,
				LiabilityMultiplier: 1.0,
			}),
		},
		{
			ID:           "rl-3",
			AnchorID:     "clause-6-data-storage",
			ClauseType:   contract.TypeDataResidency,
			Section:      "6.3",
			Label:        "Data Storage",
			CurrentText:  "Customer data may be stored in any Provider data center.",
			ProposedText: "All customer data must be stored on EU servers only.",
			Verdict: playbook.Evaluate(playbook.Observation{
				ClauseType:    contract.TypeDataResidency,
				DataResidency: true,
			}),
		},
	}
}()

// Summary buckets the change set by playbook disposition.
type Summary struct {
	Acceptable  int `json:"acceptable"`
	NeedsReview int `json:"needs_review"`
	Reject      int `json:"reject"`
}

// Overview is the redline review listing.
type Overview struct {
	Changes []Change `json:"changes"`
	Summary Summary  `json:"summary"`
}

// DirtyMarker flags unsaved edits; satisfied by *session.Tracker.
type DirtyMarker interface {
	MarkDirty() error
}

// Service answers redline queries and applies responses.
type Service struct {
	audit   audit.Recorder
	session DirtyMarker
}

// NewService creates a redline service.
func NewService(recorder audit.Recorder, session DirtyMarker) *Service {
	return &Service{audit: recorder, session: session}
}

// List returns the change set with its summary counts.
func (s *Service) List() Overview {
	items := make([]Change, len(changes))
	copy(items, changes)

	var sum Summary
	for _, c := range items {
		switch {
		case c.Verdict.Severity == contract.SeverityHigh:
			sum.Reject++
		case c.Verdict.Acceptable:
			sum.Acceptable++
		default:
			sum.NeedsReview++
		}
	}

	return Overview{Changes: items, Summary: sum}
}

// Get returns a single change by id.
func (s *Service) Get(id string) (*Change, error) {
	for i := range changes {
		if changes[i].ID == id {
			c := changes[i]
			return &c, nil
		}
	}
	return nil, errors.NewNotFound(id)
}

// Response is the outcome of acting on a change.
type Response struct {
	Change Change `json:"change"`
	Action Action `json:"action"`

	// AppliedText is the clause text the draft takes on: the proposal
	// when accepting, the playbook counter when countering, empty when
	// the change is only flagged for discussion.
	AppliedText string `json:"applied_text,omitempty"`
}

// Respond applies an action to a change, marks the draft dirty, and
// records the decision.
func (s *Service) Respond(id string, action Action) (*Response, error) {
	if !ValidAction(action) {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("unknown action %q", action))
	}

	change, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	resp := &Response{Change: *change, Action: action}

	var auditAction string
	switch action {
	case ActionAccept:
		resp.AppliedText = change.ProposedText
		auditAction = "Accepted redline"
	case ActionCounter:
		resp.AppliedText = playbook.CounterDraft(change.ClauseType)
		auditAction = "Countered redline"
	case ActionDiscuss:
		auditAction = "Flagged redline for discussion"
	}

	if s.session != nil {
		if err := s.session.MarkDirty(); err != nil {
			return nil, err
		}
	}
	if s.audit != nil {
		_ = s.audit.Record(auditAction, fmt.Sprintf("%s (%s)", change.Label, change.Section))
	}

	return resp, nil
}
