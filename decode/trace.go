package decode

import (
	"fmt"
	"strings"

	"github.com/arkadia-format/go-adf/debug"
)

// trace emits one parser trace line when ADF_DEBUG_DECODE is set. The
// line shows the cursor position, a window around it and the current
// stack depths.
func (d *decoder) trace(msg string, args ...any) {
	if !debug.Decode() {
		return
	}
	d.traceLine(msg, args...)
}

// traceStacks is trace gated on ADF_DEBUG_STACKS, for the very noisy
// push/pop stream.
func (d *decoder) traceStacks(msg string, args ...any) {
	if !debug.Stacks() {
		return
	}
	d.traceLine(msg, args...)
}

func (d *decoder) traceLine(msg string, args ...any) {
	before, at, after := d.c.Window(10)
	if at == "" {
		at = "·EOF"
	}
	window := flatten(before) + "·" + flatten(at+after)
	pos := d.c.Pos()
	debug.Logf("|%d:%d|%24s |n%d s%d d%d| %s\n",
		pos.Line+1, pos.Col+1, window,
		len(d.nodeStack), len(d.schemaStack), d.depth,
		fmt.Sprintf(msg, args...))
}

func flatten(s string) string {
	s = strings.ReplaceAll(s, "\n", "\\n")
	return strings.ReplaceAll(s, "\t", "\\t")
}
