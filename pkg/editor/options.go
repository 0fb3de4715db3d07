package editor

import (
	"io"
	"log/slog"
)

// DefaultBackupSuffix is appended to the file name when CreateBackup is set
// and BackupSuffix is empty.
const DefaultBackupSuffix = ".bak"

// Options controls write operations.
type Options struct {
	// CreateBackup copies the original file to <path><BackupSuffix> before
	// it is replaced.
	CreateBackup bool

	// BackupSuffix defaults to DefaultBackupSuffix.
	BackupSuffix string

	// DryRun applies the edit in memory and validates that the result
	// encodes, but writes nothing.
	DryRun bool

	// Logger receives progress messages. Nil discards them.
	Logger *slog.Logger
}

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

func (o *Options) backupPath(path string) string {
	suffix := DefaultBackupSuffix
	if o != nil && o.BackupSuffix != "" {
		suffix = o.BackupSuffix
	}
	return path + suffix
}
