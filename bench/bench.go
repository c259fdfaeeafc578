package bench

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/arkadia-format/go-adf/debug"
	"github.com/arkadia-format/go-adf/decode"
	"github.com/arkadia-format/go-adf/encode"
)

// Measure is one serialization's cost.
type Measure struct {
	Bytes  int
	Tokens int
	Time   time.Duration
}

// Report compares one ADF document across serializations.
type Report struct {
	ADF        Measure
	ADFCompact Measure
	JSON       Measure
	YAML       Measure

	DecodeTime time.Duration
	Errors     int
	Warnings   int

	// Stable reports whether re-decoding the encoded form reproduces
	// the same text by the second pass. Diff holds the offending delta
	// when it does not.
	Stable bool
	Diff   string
}

// Run decodes ADF text once and measures every output lane.
func Run(text string) (*Report, error) {
	return RunN(text, 1)
}

// RunN measures with repeats; reported times are the median over the
// runs, which steadies the numbers on small documents.
func RunN(text string, repeats int) (*Report, error) {
	if repeats < 1 {
		repeats = 1
	}
	r := &Report{}

	var res *decode.Result
	r.DecodeTime = median(repeats, func() {
		res = decode.Decode(text)
	})
	r.Errors = len(res.Errors)
	r.Warnings = len(res.Warnings)

	var pretty string
	d := median(repeats, func() {
		pretty = encode.String(res.Node)
	})
	r.ADF = measure(pretty, d)

	var compact string
	d = median(repeats, func() {
		compact = encode.String(res.Node, encode.Compact(true))
	})
	r.ADFCompact = measure(compact, d)

	var jsonText []byte
	var jsonErr error
	d = median(repeats, func() {
		jsonText, jsonErr = json.MarshalIndent(res.Node.Interface(), "", "  ")
	})
	if jsonErr != nil {
		return nil, fmt.Errorf("json lane: %w", jsonErr)
	}
	r.JSON = measure(string(jsonText), d)

	var yamlText []byte
	var yamlErr error
	d = median(repeats, func() {
		yamlText, yamlErr = yaml.Marshal(res.Node.Interface())
	})
	if yamlErr != nil {
		return nil, fmt.Errorf("yaml lane: %w", yamlErr)
	}
	r.YAML = measure(string(yamlText), d)

	r.Stable, r.Diff = roundTrip(pretty)

	if debug.Bench() {
		debug.Logf("bench: adf=%d adfc=%d json=%d yaml=%d stable=%v\n",
			r.ADF.Bytes, r.ADFCompact.Bytes, r.JSON.Bytes, r.YAML.Bytes, r.Stable)
	}
	return r, nil
}

func measure(text string, d time.Duration) Measure {
	return Measure{
		Bytes:  len(text),
		Tokens: EstimateTokens(text),
		Time:   d,
	}
}

// median times f repeats times and returns the middle duration.
func median(repeats int, f func()) time.Duration {
	times := make([]time.Duration, repeats)
	for i := range times {
		start := time.Now()
		f()
		times[i] = time.Since(start)
	}
	slices.Sort(times)
	return times[len(times)/2]
}

// String renders the report as an aligned table.
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %8s %8s %12s\n", "format", "bytes", "tokens", "encode")
	row := func(name string, m Measure) {
		fmt.Fprintf(&b, "%-12s %8d %8d %12s\n", name, m.Bytes, m.Tokens, m.Time)
	}
	row("adf", r.ADF)
	row("adf-compact", r.ADFCompact)
	row("json", r.JSON)
	row("yaml", r.YAML)
	fmt.Fprintf(&b, "decode %s, %d errors, %d warnings, round-trip stable: %v\n",
		r.DecodeTime, r.Errors, r.Warnings, r.Stable)
	if !r.Stable && r.Diff != "" {
		b.WriteString(r.Diff)
	}
	return b.String()
}
