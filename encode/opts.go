package encode

// Option configures one encode call.
type Option func(*config)

type config struct {
	indent          int
	startIndent     int
	compact         bool
	escapeNewlines  bool
	colorize        bool
	includeComments bool
	includeSize     bool
	includeSchema   bool
	includeType     bool
	includeMeta     bool
	promptOutput    bool
}

func defaultConfig() config {
	return config{
		indent:          2,
		includeComments: true,
		includeSchema:   true,
		includeType:     true,
		includeMeta:     true,
	}
}

// Indent sets the number of spaces per nesting level. Default 2.
func Indent(n int) Option {
	return func(c *config) { c.indent = n }
}

// StartIndent applies a base indentation offset to every line, for
// embedding output in an already indented context.
func StartIndent(n int) Option {
	return func(c *config) { c.startIndent = n }
}

// Compact removes all optional whitespace and newlines.
func Compact(v bool) Option {
	return func(c *config) { c.compact = v }
}

// EscapeNewlines renders newlines inside strings as literal \n.
func EscapeNewlines(v bool) Option {
	return func(c *config) { c.escapeNewlines = v }
}

// Colorize enables ANSI colors regardless of terminal detection.
func Colorize(v bool) Option {
	return func(c *config) { c.colorize = v }
}

// Comments controls whether /* */ comments are emitted. Default on.
func Comments(v bool) Option {
	return func(c *config) { c.includeComments = v }
}

// ArraySize emits a $size attribute in list headers.
func ArraySize(v bool) Option {
	return func(c *config) { c.includeSize = v }
}

// WithSchema controls the schema header before the data. Default on.
func WithSchema(v bool) Option {
	return func(c *config) { c.includeSchema = v }
}

// WithType controls type signatures on schema fields: true gives
// <name:string>, false gives <name>. Default on.
func WithType(v bool) Option {
	return func(c *config) { c.includeType = v }
}

// WithMeta controls $attributes and #tags. Default on.
func WithMeta(v bool) Option {
	return func(c *config) { c.includeMeta = v }
}

// PromptOutput switches to blueprint mode: instead of data, the
// output is the schema expanded as a curly-brace template with field
// types and comments, the shape LLMs fill in reliably.
func PromptOutput(v bool) Option {
	return func(c *config) { c.promptOutput = v }
}
