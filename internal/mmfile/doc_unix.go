//go:build unix

// Package mmfile loads container files into memory, memory-mapping them
// where the platform allows.
package mmfile
