// Package types holds the error taxonomy shared by every msbkit package.
//
// Errors carry a stable ErrKind so callers can branch on intent:
//
//	if errors.Is(err, types.ErrFormat) {
//	    // reject the input and let the user retry
//	}
//
// This package has no dependencies beyond the standard library.
package types
