package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Decode bool
	Stacks bool
	Bench  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("ADF_DEBUG_DECODE")
	d.Stacks = boolEnv("ADF_DEBUG_STACKS")
	d.Bench = boolEnv("ADF_DEBUG_BENCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Stacks() bool {
	return d.Stacks
}
func Bench() bool {
	return d.Bench
}
