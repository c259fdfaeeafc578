// Package ir holds the in-memory representation of ADF documents: the
// Schema type descriptors, the Node value tree bound to them, and the
// Meta bag (comments, attributes, tags, required flag) attached to both.
//
// # Usage
//
//	node := ir.NewNode(ir.PrimitiveSchema("number"))
//	node.Value = ir.Int(42)
//
//	rec := ir.NewSchema(ir.Record, "User")
//	rec.AddField(ir.NamedField("id", ir.PrimitiveSchema("number")))
//
// # Related Packages
//
//   - github.com/arkadia-format/go-adf/decode - parse ADF text into nodes
//   - github.com/arkadia-format/go-adf/encode - render nodes back to text
//   - github.com/arkadia-format/go-adf/gomap - build nodes from Go values
package ir
