// Package config loads msbctl settings from defaults, an optional config
// file, MSBCTL_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. MSBCTL_LOG_LEVEL.
const EnvPrefix = "MSBCTL"

// Keys.
const (
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
	KeyLogFile      = "log.file"
	KeyBackup       = "save.backup"
	KeyBackupSuffix = "save.backupSuffix"
)

// Config is the resolved configuration.
type Config struct {
	Log  LogConfig  `mapstructure:"log"`
	Save SaveConfig `mapstructure:"save"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// SaveConfig holds settings for commands that rewrite files.
type SaveConfig struct {
	Backup       bool   `mapstructure:"backup"`
	BackupSuffix string `mapstructure:"backupSuffix"`
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyBackup, false)
	v.SetDefault(KeyBackupSuffix, ".bak")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file and resolves v into a Config. When file is
// empty, msbctl.{json,yaml,toml} is looked up in the working directory and
// the user config directory, and a missing file is not an error.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("msbctl")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "msbctl"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
