package printer

// rendererConfig holds Printer configuration, named after yammm's
// rendererConfig/RendererOption pair.
type rendererConfig struct {
	indent   string
	colorize bool
}

// Option configures a Printer built by New.
type Option func(*rendererConfig)

// WithIndent sets the string repeated once per nesting level. Default is
// two spaces.
func WithIndent(s string) Option {
	return func(c *rendererConfig) { c.indent = s }
}

// WithColors enables ANSI color on the Kind label of each rendered
// Problem line.
func WithColors(on bool) Option {
	return func(c *rendererConfig) { c.colorize = on }
}
