// Package kindreg implements the instance-scoped Kind registry every
// Engine owns: a name -> typedef.Kind map populated once during engine
// construction, from which a kind is looked up by name with Get or
// MustGet.
package kindreg
