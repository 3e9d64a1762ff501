// Package debug provides environment-gated debug logging for this module.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Decode bool
	Encode bool
	Query  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("PLORTH_DEBUG_DECODE")
	d.Encode = boolEnv("PLORTH_DEBUG_ENCODE")
	d.Query = boolEnv("PLORTH_DEBUG_QUERY")
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
func Encode() bool {
	return d.Encode
}
func Query() bool {
	return d.Query
}
