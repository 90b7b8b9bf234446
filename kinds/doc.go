// Package kinds implements the eight built-in type kinds named by
// spec.md §4.3: Primitive, Function, Class, FixedParameters,
// Multiplicity, Top, Bottom, and Custom.
//
// Each kind is a typedef.Kind singleton (one instance per Engine,
// registered in a kindreg.Registry) plus a per-type configuration struct
// that becomes that type's typedef.Type.Data(). A kind's factory function
// (e.g. Class(kind, cfg, ctx, register)) takes that config value, adds
// its typedef.Reference precondition lists to a typedef.Initializer, then
// calls typedef.Initializer.Finish to either create a new Type or dedup
// onto an existing one.
//
// Custom kind property values are held in a kinds.Property, a tagged
// scalar/slice value modeled on
// the teacher's immutable.Value — deliberately slimmed down to what type
// configuration needs, since typeforge has no JSON adapter layer to
// round-trip arbitrary host values through.
package kinds
