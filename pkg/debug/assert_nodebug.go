//go:build !debug

// Package debug provides assertion helpers for kernel preconditions.
// This file contains the no-op implementations used when building without
// the 'debug' tag.
package debug

// Enabled reports whether assertions are compiled in.
const Enabled = false

// Assert is a no-op in release builds.
func Assert(cond bool, msg string) {}

// Assertf is a no-op in release builds.
func Assertf(cond bool, format string, args ...any) {}
