package editor

import (
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/msbkit/msb/store"
	"github.com/joshuapare/msbkit/pkg/types"
)

// open loads path into a new store.
func open(path string, opts *Options) (*store.Store, error) {
	s := store.New(store.WithLogger(opts.logger()))
	if err := s.LoadFile(path); err != nil {
		return nil, err
	}
	return s, nil
}

// modify loads path, runs fn against it and saves the result, honoring
// DryRun and CreateBackup.
func modify(path string, opts *Options, fn func(*store.Store) error) error {
	if opts == nil {
		opts = &Options{}
	}
	log := opts.logger()

	s, err := open(path, opts)
	if err != nil {
		return err
	}
	if err := fn(s); err != nil {
		return err
	}

	if opts.DryRun {
		if _, err := s.Serialize(); err != nil {
			return err
		}
		log.Info("dry run, not writing", "path", path)
		return nil
	}

	if opts.CreateBackup {
		backup := opts.backupPath(path)
		if err := copyFile(path, backup); err != nil {
			return types.IOError("create backup at "+backup, err)
		}
		log.Debug("backup written", "path", backup)
	}

	return s.SaveFile(path)
}

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	defer dstFile.Close()

	if _, copyErr := io.Copy(dstFile, srcFile); copyErr != nil {
		return fmt.Errorf("copy data: %w", copyErr)
	}

	return dstFile.Close()
}
