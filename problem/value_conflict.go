package problem

import "fmt"

// ValueConflict reports two mismatched primitive fields, e.g. a
// Multiplicity's lower bound not matching its supertype's.
type ValueConflict struct {
	base
	Field    string
	Expected any
	Actual   any
}

// NewValueConflict builds a ValueConflict for field, where expected was
// required but actual was found.
func NewValueConflict(field string, expected, actual any) *ValueConflict {
	return &ValueConflict{
		base: base{
			kind:    KindValueConflict,
			message: fmt.Sprintf("%s: expected %v, got %v", field, expected, actual),
			details: []Detail{
				{Key: DetailField, Value: field},
				{Key: DetailExpected, Value: fmt.Sprint(expected)},
				{Key: DetailActual, Value: fmt.Sprint(actual)},
			},
		},
		Field:    field,
		Expected: expected,
		Actual:   actual,
	}
}
