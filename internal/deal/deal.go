// Package deal validates new-deal intake and gates draft generation.
package deal

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/softco/smartdraft/internal/audit"
	"github.com/softco/smartdraft/internal/errors"
)

// Field bounds for the intake form.
const (
	MaxClientNameChars   = 80
	MinTermMonths        = 1
	MaxTermMonths        = 120
	MaxSpecialTermsChars = 500
)

// ContractType is the closed set of drafts we can generate.
type ContractType string

const (
	TypeMSA ContractType = "msa"
	TypeSOW ContractType = "sow"
	TypeNDA ContractType = "nda"
	TypeSLA ContractType = "sla"
)

// ValidContractType reports whether t is a known contract type.
func ValidContractType(t ContractType) bool {
	switch t {
	case TypeMSA, TypeSOW, TypeNDA, TypeSLA:
		return true
	}
	return false
}

// Input is the new-deal intake form.
type Input struct {
	ClientName   string       `json:"client_name"`
	ContractType ContractType `json:"contract_type"`

	// Value is the deal value in whole dollars.
	Value int64 `json:"value"`

	// TermMonths is the contract term length.
	TermMonths int `json:"term_months"`

	// StartDate is the intended effective date, "2006-01-02".
	StartDate string `json:"start_date"`

	SpecialTerms string `json:"special_terms,omitempty"`
}

// Validator checks intake input against the form rules.
type Validator struct {
	// Clock anchors the not-in-the-past check; defaults to time.Now.
	Clock func() time.Time
}

// NewValidator creates a validator using the wall clock.
func NewValidator() *Validator {
	return &Validator{Clock: time.Now}
}

// Validate checks every field and returns a VALIDATION error carrying
// one message per failing field, or nil when the input is clean.
func (v *Validator) Validate(in Input) error {
	fields := map[string]string{}

	name := strings.TrimSpace(in.ClientName)
	if name == "" {
		fields["client_name"] = "client name is required"
	} else if utf8.RuneCountInString(name) > MaxClientNameChars {
		fields["client_name"] = fmt.Sprintf("client name exceeds %d characters", MaxClientNameChars)
	}

	if !ValidContractType(in.ContractType) {
		fields["contract_type"] = fmt.Sprintf("contract type must be one of msa, sow, nda, sla; got %q", in.ContractType)
	}

	if in.Value <= 0 {
		fields["value"] = "deal value must be greater than zero"
	}

	if in.TermMonths < MinTermMonths || in.TermMonths > MaxTermMonths {
		fields["term_months"] = fmt.Sprintf("term must be between %d and %d months", MinTermMonths, MaxTermMonths)
	}

	if start, err := time.Parse("2006-01-02", in.StartDate); err != nil {
		fields["start_date"] = "start date must be formatted YYYY-MM-DD"
	} else {
		// Compare calendar dates in the clock's zone; truncating the
		// instant would shift the boundary for non-UTC clocks.
		now := v.Clock()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if start.Before(today) {
			fields["start_date"] = "start date must not be in the past"
		}
	}

	if utf8.RuneCountInString(in.SpecialTerms) > MaxSpecialTermsChars {
		fields["special_terms"] = fmt.Sprintf("special terms exceed %d characters", MaxSpecialTermsChars)
	}

	if len(fields) > 0 {
		return errors.NewValidation(fields)
	}
	return nil
}

// Draft is the generation result.
type Draft struct {
	Input Input `json:"input"`

	// Title is the generated document title.
	Title string `json:"title"`

	// NextView is a navigation hint: open the drafting workspace.
	NextView string `json:"next_view"`
}

var typeTitles = map[ContractType]string{
	TypeMSA: "Master SaaS Agreement",
	TypeSOW: "Statement of Work",
	TypeNDA: "Mutual Non-Disclosure Agreement",
	TypeSLA: "Service Level Agreement",
}

// Generator produces new drafts from validated intake.
type Generator struct {
	validator *Validator
	audit     audit.Recorder
}

// NewGenerator creates a draft generator.
func NewGenerator(v *Validator, recorder audit.Recorder) *Generator {
	return &Generator{validator: v, audit: recorder}
}

// Generate validates the intake and, when clean, produces a draft and
// records the action. Validation failure generates nothing.
func (g *Generator) Generate(in Input) (*Draft, error) {
	if err := g.validator.Validate(in); err != nil {
		return nil, err
	}

	draft := &Draft{
		Input:    in,
		Title:    fmt.Sprintf("%s between SoftCo, Inc. and %s", typeTitles[in.ContractType], strings.TrimSpace(in.ClientName)),
		NextView: "editor",
	}

	if g.audit != nil {
		_ = g.audit.Record("Generated draft", draft.Title)
	}
	return draft, nil
}
