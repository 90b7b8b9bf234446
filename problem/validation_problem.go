package problem

import "github.com/arlen-voss/typeforge/severity"

// ValidationProblem is emitted directly by a registered ValidationRule
// (spec.md §4.7).
type ValidationProblem struct {
	base
	Severity severity.Severity
	Node     any
	// Property and HasIndex/Index pinpoint the offending location within
	// Node for precise reporting, per spec.md §4.7. Property is "" and
	// HasIndex is false when the rule reports against the whole node.
	Property string
	HasIndex bool
	Index    int
}

// NewValidationProblem builds a ValidationProblem for node at the given
// severity.
func NewValidationProblem(sev severity.Severity, message string, node any) *ValidationProblem {
	return &ValidationProblem{
		base:     base{kind: KindValidation, message: message},
		Severity: sev,
		Node:     node,
	}
}

// WithProperty returns a copy of p annotated with the offending property
// name.
func (p *ValidationProblem) WithProperty(property string) *ValidationProblem {
	cp := *p
	cp.Property = property
	return &cp
}

// WithIndex returns a copy of p annotated with the offending positional
// index.
func (p *ValidationProblem) WithIndex(index int) *ValidationProblem {
	cp := *p
	cp.HasIndex = true
	cp.Index = index
	return &cp
}
