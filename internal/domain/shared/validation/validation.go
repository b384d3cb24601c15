// Package validation provides composable field validators.
//
// Each field is checked against an ordered list of rules. The first failing
// rule of a field records its message; later rules of that field are skipped.
// Rules backed by the store receive the request context and may return an
// error, which aborts validation instead of producing a field message.
package validation

import (
	"context"
	"sort"
	"strings"
)

// Rule is a single predicate over an input value. It reports false when the
// value is rejected.
type Rule func(ctx context.Context) (bool, error)

// Check pairs a rule with the message reported when it fails.
type Check struct {
	rule    Rule
	message string
}

// Must builds a check from a rule and its failure message.
func Must(rule Rule, message string) Check {
	return Check{rule: rule, message: message}
}

type field struct {
	name   string
	checks []Check
}

// Validator collects field checks and evaluates them in declaration order.
type Validator struct {
	fields []field
}

// New creates an empty validator
func New() *Validator {
	return &Validator{}
}

// Field registers the ordered checks for one field.
func (v *Validator) Field(name string, checks ...Check) *Validator {
	v.fields = append(v.fields, field{name: name, checks: checks})
	return v
}

// Validate runs every registered field. It returns *Error when at least one
// field failed, or the first store error raised by a rule.
func (v *Validator) Validate(ctx context.Context) error {
	failed := make(map[string]string)
	order := make([]string, 0)
	for _, f := range v.fields {
		for _, c := range f.checks {
			ok, err := c.rule(ctx)
			if err != nil {
				return err
			}
			if !ok {
				if _, seen := failed[f.name]; !seen {
					order = append(order, f.name)
				}
				failed[f.name] = c.message
				break
			}
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return &Error{Fields: failed, order: order}
}

// Error is the structured field to message mapping of a failed validation.
type Error struct {
	Fields map[string]string
	order  []string
}

// Error implements the error interface
func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, name := range e.Names() {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Names returns the failed field names in the order they were declared.
func (e *Error) Names() []string {
	if len(e.order) == len(e.Fields) {
		return e.order
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FirstMessage returns the message of the first failed field.
func (e *Error) FirstMessage() string {
	names := e.Names()
	if len(names) == 0 {
		return ""
	}
	return e.Fields[names[0]]
}

// NewFieldError builds an Error for a single field.
func NewFieldError(name, message string) *Error {
	return &Error{Fields: map[string]string{name: message}, order: []string{name}}
}
