//go:build debug

// Package debug provides assertion helpers for kernel preconditions.
// Assertions are compiled in only when building with the 'debug' tag;
// release builds reduce every helper to a no-op so hot paths carry no
// per-call checks.
package debug

import "fmt"

// Enabled reports whether assertions are compiled in. It is a constant so
// guarded blocks are eliminated entirely in release builds.
const Enabled = true

// Assert panics with msg if cond is false.
func Assert(cond bool, msg string) {
	if !cond {
		panic("debug: assertion failed: " + msg)
	}
}

// Assertf panics with a formatted message if cond is false.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("debug: assertion failed: "+format, args...))
	}
}
