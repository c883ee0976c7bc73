//go:build !release

package util

import "fmt"

// Assert panics with the formatted message when cond is false.
// Builds tagged release compile it out.
func Assert(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
