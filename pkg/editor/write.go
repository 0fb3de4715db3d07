package editor

import (
	"github.com/joshuapare/msbkit/msb"
	"github.com/joshuapare/msbkit/msb/store"
)

// SetField sets one field of enemy i. field is a column name such as
// "ThinkParamID" and matched case-insensitively; value uses the same text
// form FieldString produces.
//
// Example:
//
//	err := editor.SetField("m30.msb", 0, "Position", "<1, 2, 3>", nil)
func SetField(path string, i int, field, value string, opts *Options) error {
	f, err := msb.ParseField(field)
	if err != nil {
		return err
	}
	return modify(path, opts, func(s *store.Store) error {
		return s.SetField(i, f, value)
	})
}

// Delete removes the listed enemies. Indices refer to the file before the
// call; if any is out of range the file is left alone.
func Delete(path string, indices []int, opts *Options) error {
	return modify(path, opts, func(s *store.Store) error {
		return s.DeleteMany(indices)
	})
}

// Duplicate inserts a copy of enemy i after it and returns the index of the
// copy.
func Duplicate(path string, i int, opts *Options) (int, error) {
	var idx int
	err := modify(path, opts, func(s *store.Store) error {
		var err error
		idx, err = s.DuplicateAt(i)
		return err
	})
	if err != nil {
		return 0, err
	}
	return idx, nil
}
