//go:build !debug

// Package debug exposes the compile-time debug flag.
package debug

// Debug is true when the binary is built with the debug tag.
const Debug = false
