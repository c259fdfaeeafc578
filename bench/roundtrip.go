package bench

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/arkadia-format/go-adf/decode"
	"github.com/arkadia-format/go-adf/encode"
)

// roundTrip re-decodes encoded text twice. Schema inference is allowed
// to shift the text once (inferred types become explicit), so
// stability means the second and third encodings agree. Returns the
// diff of the first disagreeing pair otherwise.
func roundTrip(encoded string) (bool, string) {
	second := reencode(encoded)
	third := reencode(second)
	if second == third {
		return true, ""
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(second, third, false)
	return false, diffCfg.DiffPrettyText(diffs)
}

func reencode(text string) string {
	res := decode.Decode(text)
	return encode.String(res.Node)
}
