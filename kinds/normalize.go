package kinds

import "golang.org/x/text/unicode/norm"

// normalizeIdentifier NFC-normalizes a computed type identifier before it
// is used as a graph dedup key, so visually identical identifiers built
// from differently-composed Unicode code points collide correctly.
// Grounded on the teacher's location/canonical_path.go, which normalizes
// path segments the same way before using them as map keys.
func normalizeIdentifier(s string) string {
	return norm.NFC.String(s)
}
