// Package store holds the enemy records of one loaded container and
// applies edits to them.
//
// Every operation either succeeds completely or leaves the store as it was.
// A Store is not safe for concurrent use; callers that share one must
// serialize access.
package store

import (
	"io"
	"log/slog"
	"slices"

	"github.com/joshuapare/msbkit/internal/mmfile"
	"github.com/joshuapare/msbkit/internal/writer"
	"github.com/joshuapare/msbkit/msb"
	"github.com/joshuapare/msbkit/pkg/types"
)

// Store is an ordered, editable list of enemy records plus the rest of the
// container they were loaded from.
type Store struct {
	doc     *msb.Document
	records []msb.EnemyRecord
	// reshaped is set by deletes and duplicates, which change the output
	// without modifying any remaining record.
	reshaped bool
	log      *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load, save and edit events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New returns an empty store. Nothing is loaded until Load or LoadFile.
func New(opts ...Option) *Store {
	s := &Store{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Loaded reports whether a container has been loaded.
func (s *Store) Loaded() bool { return s.doc != nil }

// Document returns the loaded container skeleton, or nil.
func (s *Store) Document() *msb.Document { return s.doc }

// Load replaces the store contents with the records decoded from b. On
// failure the previous contents are kept.
func (s *Store) Load(b []byte) error {
	doc, records, err := msb.Decode(b)
	if err != nil {
		s.log.Debug("load failed", "bytes", len(b), "error", err)
		return err
	}
	s.doc, s.records, s.reshaped = doc, records, false
	s.log.Debug("loaded", "bytes", len(b), "enemies", len(records))
	return nil
}

// LoadFile reads the container at path and loads it.
func (s *Store) LoadFile(path string) (err error) {
	data, unmap, err := mmfile.Map(path)
	if err != nil {
		return types.IOError("open "+path, err)
	}
	defer func() {
		if cerr := unmap(); cerr != nil && err == nil {
			err = types.IOError("unmap "+path, cerr)
		}
	}()
	// Decode copies data, so nothing refers to the mapping once Load returns.
	return s.Load(data)
}

// Serialize encodes the current records into a complete container.
func (s *Store) Serialize() ([]byte, error) {
	if s.doc == nil {
		return nil, types.StateError("nothing loaded")
	}
	return s.doc.Encode(s.records)
}

// SaveTo encodes the container and hands it to w.
func (s *Store) SaveTo(w writer.Writer) error {
	out, err := s.Serialize()
	if err != nil {
		return err
	}
	return w.WriteMSB(out)
}

// SaveFile encodes the container and atomically replaces path with it.
// Nothing is written if encoding fails.
func (s *Store) SaveFile(path string) error {
	out, err := s.Serialize()
	if err != nil {
		return err
	}
	w := &writer.FileWriter{Path: path}
	if err := w.WriteMSB(out); err != nil {
		return types.IOError("save "+path, err)
	}
	s.log.Info("saved", "path", path, "bytes", len(out), "enemies", len(s.records))
	return nil
}

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// Get returns a copy of record i.
func (s *Store) Get(i int) (msb.EnemyRecord, error) {
	if err := s.check(i); err != nil {
		return msb.EnemyRecord{}, err
	}
	return s.records[i].Clone(), nil
}

// Records returns a copy of every record in order.
func (s *Store) Records() []msb.EnemyRecord {
	return slices.Clone(s.records)
}

// FieldString returns the display text of field f of record i.
func (s *Store) FieldString(i int, f msb.Field) (string, error) {
	if err := s.check(i); err != nil {
		return "", err
	}
	return s.records[i].FieldString(f), nil
}

// SetField parses raw for field f and stores it in record i. A value that
// does not parse is reported as a *msb.ValidationError and nothing changes.
func (s *Store) SetField(i int, f msb.Field, raw string) error {
	if err := s.check(i); err != nil {
		return err
	}
	if err := s.records[i].SetField(f, raw); err != nil {
		s.log.Debug("rejected value", "index", i, "field", f.String(), "error", err)
		return err
	}
	s.log.Debug("set field", "index", i, "field", f.String())
	return nil
}

// DeleteAt removes record i.
func (s *Store) DeleteAt(i int) error {
	return s.DeleteMany([]int{i})
}

// DeleteMany removes every listed record. Indices refer to positions before
// the call, may repeat and may come in any order. If any index is out of
// range nothing is removed.
func (s *Store) DeleteMany(indices []int) error {
	for _, i := range indices {
		if err := s.check(i); err != nil {
			return err
		}
	}
	idx := slices.Clone(indices)
	slices.Sort(idx)
	idx = slices.Compact(idx)
	for k := len(idx) - 1; k >= 0; k-- {
		s.records = slices.Delete(s.records, idx[k], idx[k]+1)
	}
	if len(idx) > 0 {
		s.reshaped = true
	}
	s.log.Debug("deleted", "count", len(idx), "remaining", len(s.records))
	return nil
}

// DuplicateAt inserts a copy of record i directly after it and returns the
// index of the copy.
func (s *Store) DuplicateAt(i int) (int, error) {
	if err := s.check(i); err != nil {
		return 0, err
	}
	s.records = slices.Insert(s.records, i+1, s.records[i].Clone())
	s.reshaped = true
	s.log.Debug("duplicated", "index", i, "copy", i+1)
	return i + 1, nil
}

// Modified reports whether any record was edited, deleted or duplicated
// since the last load.
func (s *Store) Modified() bool {
	if s.reshaped {
		return true
	}
	for i := range s.records {
		if s.records[i].Modified() {
			return true
		}
	}
	return false
}

// RecordModified reports whether record i differs from what was loaded.
func (s *Store) RecordModified(i int) (bool, error) {
	if err := s.check(i); err != nil {
		return false, err
	}
	return s.records[i].Modified(), nil
}

func (s *Store) check(i int) error {
	if i < 0 || i >= len(s.records) {
		return types.IndexError(i, len(s.records))
	}
	return nil
}
