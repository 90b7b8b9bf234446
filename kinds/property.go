package kinds

import "github.com/arlen-voss/typeforge/typedef"

// Property is an immutable, tagged value used for Custom kind
// properties (CustomConfig.Properties).
// Modeled on the teacher's immutable.Value, narrowed to the scalar/slice
// shapes type configuration needs (no map support: property bags are
// represented as named Property slices, not nested maps).
type Property struct {
	name string
	val  any
}

// TypeSelector tags a Property's value as a pending reference to
// another Type rather than a scalar — the Custom kind's equivalent of
// ClassConfig.Super or FunctionConfig.Params. Ref may still be Invalid
// (not yet Identifiable) when the property is built: spec.md §8's
// "delayed creation" scenario, where a Custom type C2 declares a
// dependsOn property naming C1 before C1 has reached Identifiable.
// kinds.Custom walks every Properties entry and, for each TypeSelector,
// registers a typedef.NewReference precondition on
// Initializer.AddReferencesToBeIdentifiable, so C2 itself stays Invalid
// until C1 does too.
type TypeSelector struct {
	Ref *typedef.Type
}

// NewTypeSelector wraps t as a type-valued property value.
func NewTypeSelector(t *typedef.Type) TypeSelector {
	return TypeSelector{Ref: t}
}

// NewProperty wraps name/value as a Property. val should be a string,
// bool, int64, float64, TypeSelector (for type-valued properties), or a
// []Property (for repeated/list-valued properties).
func NewProperty(name string, val any) Property {
	return Property{name: name, val: val}
}

// Name returns the property's name.
func (p Property) Name() string { return p.name }

// Value returns the raw wrapped value.
func (p Property) Value() any { return p.val }

// String returns the value as a string, and whether it was one.
func (p Property) String() (string, bool) {
	s, ok := p.val.(string)
	return s, ok
}

// Int returns the value as an int64, and whether it was one.
func (p Property) Int() (int64, bool) {
	n, ok := p.val.(int64)
	return n, ok
}

// Float returns the value as a float64, and whether it was one.
func (p Property) Float() (float64, bool) {
	f, ok := p.val.(float64)
	return f, ok
}

// Bool returns the value as a bool, and whether it was one.
func (p Property) Bool() (bool, bool) {
	b, ok := p.val.(bool)
	return b, ok
}

// List returns the value as a []Property, and whether it was one.
func (p Property) List() ([]Property, bool) {
	l, ok := p.val.([]Property)
	return l, ok
}

// TypeSelector returns the value as a TypeSelector, and whether it was
// one.
func (p Property) TypeSelector() (TypeSelector, bool) {
	ts, ok := p.val.(TypeSelector)
	return ts, ok
}
