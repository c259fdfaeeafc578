// Package adf is the top-level convenience surface for the Arkadia
// Data Format: a schema-aware, human-writable interchange format
// designed to be compact in LLM prompts while staying round-trippable.
//
// The heavy lifting lives in the subpackages (decode, encode, gomap,
// ir); this package just wires the common paths together.
package adf

import (
	"github.com/arkadia-format/go-adf/decode"
	"github.com/arkadia-format/go-adf/encode"
	"github.com/arkadia-format/go-adf/gomap"
	"github.com/arkadia-format/go-adf/ir"
)

// Decode parses ADF text. See package decode for options and the
// error model; decoding never fails outright.
func Decode(text string, opts ...decode.Option) *decode.Result {
	return decode.Decode(text, opts...)
}

// Encode renders data as ADF text. It accepts an *ir.Node directly or
// any plain Go value, which is first mapped to a node with an inferred
// schema.
func Encode(data any, opts ...encode.Option) (string, error) {
	node, ok := data.(*ir.Node)
	if !ok {
		var err error
		node, err = gomap.FromValue(data)
		if err != nil {
			return "", err
		}
	}
	return encode.String(node, opts...), nil
}

// RoundTrip re-encodes text through a decode, normalizing formatting
// and making inferred types explicit.
func RoundTrip(text string, opts ...encode.Option) string {
	res := decode.Decode(text)
	return encode.String(res.Node, opts...)
}
