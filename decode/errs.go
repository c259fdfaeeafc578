package decode

import (
	"errors"
	"fmt"

	"github.com/arkadia-format/go-adf/ir"
	"github.com/arkadia-format/go-adf/token"
)

// MaxErrors caps how many errors a single decode records. Once the cap
// is reached further errors are dropped silently; parsing itself keeps
// going.
const MaxErrors = 50

// MaxDepth bounds structural nesting so pathological input cannot blow
// the goroutine stack.
const MaxDepth = 256

// Error is one recoverable decode failure, snapshotting the cursor
// position and the contexts active when it was recorded.
type Error struct {
	Message string
	Pos     token.Pos
	Schema  *ir.Schema
	Node    *ir.Node
}

func (e *Error) Error() string {
	return fmt.Sprintf("[decode] %s at %s", e.Message, e.Pos)
}

// Warning is a non-fatal diagnostic: deprecated syntax, metadata with
// no parent, unknown flags. Warnings are not capped.
type Warning struct {
	Message string
	Pos     token.Pos
}

func (w *Warning) String() string {
	return fmt.Sprintf("[decode] warning: %s at %s", w.Message, w.Pos)
}

// Result is what Decode always returns: the best-effort node tree plus
// everything that went wrong building it. Node and Schema are non-nil
// even for garbage input.
type Result struct {
	Node     *ir.Node
	Schema   *ir.Schema
	Errors   []*Error
	Warnings []*Warning
}

// Err joins all recorded errors into one, or nil when the decode was
// clean.
func (r *Result) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}
