package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Desc    bool
	Walk    bool
	Catalog bool
}

var d *debug

func init() {
	d = &debug{}
	d.Desc = boolEnv("TABSTER_DEBUG_DESC")
	d.Walk = boolEnv("TABSTER_DEBUG_WALK")
	d.Catalog = boolEnv("TABSTER_DEBUG_CATALOG")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Desc() bool {
	return d.Desc
}
func Walk() bool {
	return d.Walk
}
func Catalog() bool {
	return d.Catalog
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte("\n"))
}
