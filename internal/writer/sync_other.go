//go:build !unix

package writer

import "os"

func syncFile(f *os.File) error {
	return f.Sync()
}
