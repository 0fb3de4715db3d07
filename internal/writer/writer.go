// Package writer exposes sinks for encoded containers.
package writer

// Writer receives a fully encoded container.
type Writer interface {
	WriteMSB(buf []byte) error
}

// MemWriter captures container bytes in memory.
type MemWriter struct {
	Buf []byte
}

// WriteMSB stores a copy of buf.
func (w *MemWriter) WriteMSB(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}
