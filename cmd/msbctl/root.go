package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/msbkit/internal/config"
	"github.com/joshuapare/msbkit/internal/logging"
	"github.com/joshuapare/msbkit/pkg/editor"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	configFile string
	logLevel   string
	backup     bool

	// Shared by the commands that rewrite files
	dryRun bool

	cfg      = defaultConfig()
	logger   = logging.Discard()
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "msbctl",
	Short: "Inspect and edit enemy placements in MSB map files",
	Long: `msbctl lists, edits, duplicates and deletes the enemy parts of MSB map
files. Everything else in the file is written back byte for byte, and edits
are saved atomically.

Files use the msbkit container: MSB3 header and section framing with a flat
part entry layout (type at 0x10, names inline). Map files shipped with the
game use the full MSB3 part layout and are not supported. Event entries that
refer to parts by index are not renumbered after delete or duplicate.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		_ = closeLog()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	pf.BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	pf.BoolVar(&jsonOut, "json", false, "Output in JSON format")
	pf.StringVar(&configFile, "config", "", "Config file (default: msbctl.{json,yaml,toml} in . or the user config dir)")
	pf.StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.BoolVar(&backup, "backup", false, "Copy the original file before rewriting it")
}

func defaultConfig() config.Config {
	return config.Config{
		Log:  config.LogConfig{Level: "warn", Format: "text"},
		Save: config.SaveConfig{BackupSuffix: editor.DefaultBackupSuffix},
	}
}

// setup resolves configuration and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	v := config.New()
	pf := cmd.Root().PersistentFlags()
	if err := v.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level")); err != nil {
		return err
	}
	if err := v.BindPFlag(config.KeyBackup, pf.Lookup("backup")); err != nil {
		return err
	}

	c, err := config.Load(v, configFile)
	if err != nil {
		return err
	}
	if verbose && !pf.Changed("log-level") {
		c.Log.Level = "debug"
	}

	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return err
	}
	l, closeFn, err := logging.New(logging.Options{Level: level, Format: c.Log.Format, File: c.Log.File})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	cfg, logger, closeLog = c, l, closeFn
	logger.Debug("config resolved", "file", v.ConfigFileUsed(), "backup", c.Save.Backup)
	return nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// editOptions builds the options for commands that rewrite a file.
func editOptions() *editor.Options {
	return &editor.Options{
		CreateBackup: cfg.Save.Backup,
		BackupSuffix: cfg.Save.BackupSuffix,
		DryRun:       dryRun,
		Logger:       logger,
	}
}

func addEditFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Apply the edit in memory only")
}

// parseIndex parses a zero-based record index argument.
func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("invalid index %q: want a non-negative integer", s)
	}
	return i, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
