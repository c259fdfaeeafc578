package bench

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const barWidth = 40

// Bars renders the token counts of every lane as a colored horizontal
// bar chart, scaled so the largest lane fills the full width.
func (r *Report) Bars() string {
	lanes := []struct {
		name  string
		color color.Attribute
		m     Measure
	}{
		{"adf", color.FgHiCyan, r.ADF},
		{"adf-compact", color.FgHiGreen, r.ADFCompact},
		{"json", color.FgHiYellow, r.JSON},
		{"yaml", color.FgHiMagenta, r.YAML},
	}

	maxTokens := 1
	for _, l := range lanes {
		maxTokens = max(maxTokens, l.m.Tokens)
	}

	var b strings.Builder
	for _, l := range lanes {
		n := l.m.Tokens * barWidth / maxTokens
		c := color.New(l.color)
		c.EnableColor()
		fmt.Fprintf(&b, "%-12s %s %d tokens\n",
			l.name, c.Sprint(strings.Repeat("█", max(n, 1))), l.m.Tokens)
	}
	return b.String()
}
