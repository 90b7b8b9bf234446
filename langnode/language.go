// Package langnode defines the boundary between typeforge and a host
// language's syntax tree.
//
// typeforge never parses, walks, or otherwise understands a concrete host
// AST. It only asks the host, through [Language], for a string "language
// key" describing a node's shape, and for that key's sub/super keys so
// inference and validation rules registered under a general key also match
// more specific ones (and vice versa). Host-language parsers, lexers, and
// document/workspace managers are explicitly out of scope for this module;
// see spec.md §1.
package langnode

// Node is an opaque host-language syntax node. typeforge treats it as an
// any value; only a [Language] implementation knows how to interpret it.
type Node = any

// Language lets the host expose its syntax tree's shape to the engine
// without the engine importing the host's AST package.
//
// Implementations must be side-effect free and safe to call repeatedly for
// the same node; the core caches on the assumption that GetLanguageNodeKey
// is stable for a given node across the lifetime of one inference or
// validation pass.
type Language interface {
	// GetLanguageNodeKey returns the language key for node, or "", false if
	// node is not a recognized language node.
	GetLanguageNodeKey(node Node) (string, bool)

	// GetAllSubKeys returns every key that is a (possibly indirect)
	// specialization of key, not including key itself.
	GetAllSubKeys(key string) []string

	// GetAllSuperKeys returns every key that is a (possibly indirect)
	// generalization of key, not including key itself.
	GetAllSuperKeys(key string) []string

	// IsLanguageNode reports whether value is a node this Language
	// implementation can introspect.
	IsLanguageNode(value any) bool
}

// astNodeKey is the catch-all language key. Rules registered under this key
// run after every key-specific rule for a node, regardless of the node's
// own key. See spec.md §4.4 step 4.
const astNodeKey = "AstNode"

// ASTNodeKey returns the catch-all language key used for rules that apply
// to every node regardless of its specific key.
func ASTNodeKey() string {
	return astNodeKey
}

// nopLanguage is the zero-configuration default: every node is unrecognized.
// An Engine constructed without WithLanguage uses this, so inference and
// validation simply produce InferenceProblem/no-matching-rule outcomes
// instead of panicking.
type nopLanguage struct{}

func (nopLanguage) GetLanguageNodeKey(Node) (string, bool) { return "", false }
func (nopLanguage) GetAllSubKeys(string) []string          { return nil }
func (nopLanguage) GetAllSuperKeys(string) []string        { return nil }
func (nopLanguage) IsLanguageNode(any) bool                { return false }

// Nop returns a [Language] that recognizes no nodes. Useful as a default
// and in tests that only need the Kind/Graph layers.
func Nop() Language {
	return nopLanguage{}
}
