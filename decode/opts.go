package decode

// Option configures one Decode call.
type Option func(*options)

type options struct {
	schema    string
	stripANSI bool
}

// WithSchema prepends a schema definition to the input, so callers can
// pair a stored schema with schema-less payloads.
func WithSchema(schema string) Option {
	return func(o *options) {
		o.schema = schema
	}
}

// StripANSI removes ANSI color escapes from the input before parsing.
// Useful when feeding back output that went through a colorizing
// terminal.
func StripANSI(v bool) Option {
	return func(o *options) {
		o.stripANSI = v
	}
}
