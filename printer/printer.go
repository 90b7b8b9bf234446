package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/arlen-voss/typeforge/problem"
	"github.com/arlen-voss/typeforge/typedef"
)

// colorBold and colorReset mirror diag.Renderer's ANSI palette: bold
// red for failure-shaped output, since every Problem is itself a failure
// report.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1;31m"
)

// Printer formats Types and Problems as indented text (spec.md §4.8).
// Create with New and configure with Option functions.
type Printer struct {
	indent   string
	colorize bool
}

// New constructs a Printer.
func New(opts ...Option) *Printer {
	cfg := &rendererConfig{indent: "  "}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Printer{indent: cfg.indent, colorize: cfg.colorize}
}

// Format writes v's text rendering to w. v must be a *typedef.Type or a
// problem.Problem; any other value is an error.
func (p *Printer) Format(w io.Writer, v any) error {
	switch val := v.(type) {
	case *typedef.Type:
		_, err := io.WriteString(w, p.FormatType(val))
		return err
	case problem.Problem:
		_, err := io.WriteString(w, p.FormatProblem(val))
		return err
	default:
		return fmt.Errorf("printer: unsupported value type %T", v)
	}
}

// FormatType renders t's user-visible name (spec.md §4.8: "Types
// (user-visible name)"). A Class's declared Name, not its structural
// identifier, is what's shown — see the Open Question decision recorded
// in SPEC_FULL.md on structural-vs-display identity.
func (p *Printer) FormatType(t *typedef.Type) string {
	if t == nil {
		return "<nil type>"
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.Identifier()
}

// FormatProblem renders pr and its SubProblems tree as multi-line text,
// each nesting level indented and prefixed with "-> ".
func (p *Printer) FormatProblem(pr problem.Problem) string {
	var sb strings.Builder
	p.writeProblem(&sb, pr, 0)
	return sb.String()
}

func (p *Printer) writeProblem(sb *strings.Builder, pr problem.Problem, depth int) {
	if pr == nil {
		return
	}
	sb.WriteString(strings.Repeat(p.indent, depth))
	if depth > 0 {
		sb.WriteString("-> ")
	}
	p.writeKind(sb, pr.Kind())
	sb.WriteString(": ")
	sb.WriteString(pr.Message())
	if details := pr.Details(); len(details) > 0 {
		sb.WriteString(" (")
		for i, d := range details {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(d.Key)
			sb.WriteString("=")
			sb.WriteString(d.Value)
		}
		sb.WriteString(")")
	}
	for _, sub := range pr.SubProblems() {
		sb.WriteString("\n")
		p.writeProblem(sb, sub, depth+1)
	}
}

func (p *Printer) writeKind(sb *strings.Builder, kind problem.Kind) {
	label := kind.String()
	if p.colorize {
		sb.WriteString(colorBold)
		sb.WriteString(label)
		sb.WriteString(colorReset)
		return
	}
	sb.WriteString(label)
}
