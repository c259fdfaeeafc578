package encode

import (
	"bytes"
	"strings"

	"github.com/arkadia-format/go-adf/ir"
)

// MustString renders the node with default options, trimmed. It exists
// for tests and debug paths where the writer cannot fail.
func MustString(node *ir.Node, opts ...Option) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
