//go:build !unix

// Package mmfile loads container files into memory, memory-mapping them
// where the platform allows.
package mmfile

import "os"

// Map reads the entire file when mmap is not available. The returned
// release function is a no-op.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
