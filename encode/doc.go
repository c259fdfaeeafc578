// Package encode renders an ir.Node tree back into ADF text.
//
// Output order is schema header first, then data. Nodes whose schema
// drifted from the declared field or element type during decoding get
// an inline override tag ("<string> 3") so a re-decode reconstructs
// the same tree; this is what makes decode/encode cycles stabilize.
//
// # Usage
//
//	text := encode.String(node, encode.Compact(true))
//	err := encode.Encode(node, os.Stdout, encode.Colorize(true))
//
// Prompt mode (encode.PromptOutput) drops the data entirely and emits
// a fill-in blueprint of the schema, meant for embedding in LLM
// prompts.
//
// # Related Packages
//
//   - github.com/arkadia-format/go-adf/decode - the inverse operation
//   - github.com/arkadia-format/go-adf/gomap - build nodes from Go values
package encode
