package token

import (
	"fmt"
	"strings"
)

// Pos is a location in the input, with a small context window captured
// at creation so it can be printed without the document.
type Pos struct {
	Offset int
	// Line counts from 0; Col resets to 1 after each newline.
	Line, Col int
	Context   string
}

func (p Pos) String() string {
	if p.Context == "" {
		return fmt.Sprintf("%d:%d (offset %d)", p.Line+1, p.Col+1, p.Offset)
	}
	ctx := strings.ReplaceAll(p.Context, "\n", "\\n")
	ctx = strings.ReplaceAll(ctx, "\r", "")
	return fmt.Sprintf("%d:%d (offset %d) near %q", p.Line+1, p.Col+1, p.Offset, ctx)
}
