//go:build release

package util

func Assert(cond bool, format string, args ...interface{}) {}
