package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Load    bool
	Merge   bool
	Include bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("YEXP_DEBUG_LOAD")
	d.Merge = boolEnv("YEXP_DEBUG_MERGE")
	d.Include = boolEnv("YEXP_DEBUG_INCLUDE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Merge() bool {
	return d.Merge
}
func Include() bool {
	return d.Include
}
