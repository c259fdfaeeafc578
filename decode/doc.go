// Package decode parses ADF text into an ir.Node tree.
//
// The decoder is a recursive-descent parser over a character cursor,
// carrying two context stacks: the schema currently expected at the
// cursor and the node currently being built. Malformed input never
// fails the decode; syntax errors accumulate (up to MaxErrors) while
// parsing continues best-effort, and type mismatches are not errors at
// all - the mismatching node simply keeps its inferred schema and the
// encoder marks it with an override tag later.
//
// # Usage
//
//	res := decode.Decode(`@User<id:int,name:string> @User(1, "Admin")`)
//	if len(res.Errors) > 0 {
//	    return res.Err()
//	}
//	id := res.Node.Field("id").Value.Int
//
// # Related Packages
//
//   - github.com/arkadia-format/go-adf/ir - the node/schema model
//   - github.com/arkadia-format/go-adf/encode - render nodes back to text
package decode
