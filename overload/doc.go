// Package overload implements the Overload Manager described by spec.md
// §4.6: functions sharing a name are grouped, and a composite
// [infer.Rule] resolves a call site by inferring its argument types and
// picking the unique overload whose parameter list is argument-
// assignable, tie-broken by match strength (equality beats conversion
// beats subtype).
package overload
