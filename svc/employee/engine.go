package employee

import (
	"errors"
	"maps"
	"slices"

	"github.com/drdl/portal/pkg/validator"
)

// Engine evaluates a RuleSet against drafts. It is immutable after
// construction and safe for concurrent use.
type Engine struct {
	rules RuleSet
	order []string
}

// NewEngine creates an engine for rules. A nil or empty set means DefaultRules.
// Fields are evaluated in form order; fields the form does not know follow,
// sorted by name.
func NewEngine(rules RuleSet) *Engine {
	if len(rules) == 0 {
		rules = DefaultRules()
	}

	own := maps.Clone(rules)
	order := make([]string, 0, len(own))
	for _, field := range fieldOrder {
		if _, ok := own[field]; ok {
			order = append(order, field)
		}
	}

	var extra []string
	for field := range own {
		if !slices.Contains(fieldOrder, field) {
			extra = append(extra, field)
		}
	}
	slices.Sort(extra)

	return &Engine{
		rules: own,
		order: append(order, extra...),
	}
}

// Fields returns the fields the engine has rules for, in evaluation order.
func (e *Engine) Fields() []string {
	return slices.Clone(e.order)
}

// Has reports whether field has a rule.
func (e *Engine) Has(field string) bool {
	_, ok := e.rules[field]
	return ok
}

// ValidateField evaluates the rule of field against raw. ctx supplies the
// other fields for cross-field rules. Fields without a rule are accepted.
func (e *Engine) ValidateField(field, raw string, ctx Draft) validator.Outcome {
	rule, ok := e.rules[field]
	if !ok {
		return validator.Accepted()
	}
	return rule(raw, ctx)
}

// Outcomes evaluates every field of d.
func (e *Engine) Outcomes(d Draft) map[string]validator.Outcome {
	outcomes := make(map[string]validator.Outcome, len(e.order))
	for _, field := range e.order {
		outcomes[field] = e.ValidateField(field, d.Get(field), d)
	}
	return outcomes
}

// Validate evaluates every field of d and returns one error per rejected
// field, in evaluation order. Empty means the draft is submittable.
func (e *Engine) Validate(d Draft) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, field := range e.order {
		e.ValidateField(field, d.Get(field), d).AddTo(&errs)
	}
	return errs
}

// Submittable reports whether every field of d is accepted.
func (e *Engine) Submittable(d Draft) bool {
	return e.Validate(d).IsEmpty()
}

// Payload validates d and converts it into the API request body.
// It returns the validation errors wrapped with ErrNotSubmittable when any field is rejected.
func (e *Engine) Payload(d Draft) (Payload, error) {
	if errs := e.Validate(d); !errs.IsEmpty() {
		return Payload{}, errors.Join(ErrNotSubmittable, errs)
	}
	return NewPayload(d)
}
