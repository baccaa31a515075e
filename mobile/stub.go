//go:build !mobile

// Package mobile is the ebitenmobile binding entry point. Build it with
// -tags mobile; this file keeps the package importable otherwise.
package mobile

// Dummy is an exported function so ebitenmobile recognizes the package.
func Dummy() {}
