package dbg

import (
	"fmt"

	"github.com/kr/pretty"
)

// Dump formats v as an indented Go literal, for eyeballing results.
func Dump(v interface{}) string {
	return fmt.Sprintf("%# v", pretty.Formatter(v))
}
