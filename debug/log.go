package debug

import (
	"encoding/json"
	"fmt"
	"os"
)

// Logf writes a debug trace line to stderr. Map and slice arguments are
// pretty-printed as JSON so traces of node trees stay readable.
func Logf(msg string, args ...any) {
	for i := range args {
		switch a := args[i].(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case bool, string, float64, int:
			_ = a
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
