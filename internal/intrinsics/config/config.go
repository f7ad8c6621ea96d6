package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/timescale/intrinsic-names/internal/intrinsics/util"
)

// Config is read-only: the tool never writes its config file.
type Config struct {
	Debug     bool   `mapstructure:"debug" json:"debug" yaml:"debug"`
	ConfigDir string `mapstructure:"-" json:"config_dir" yaml:"config_dir"`
}

const (
	DefaultDebug = false
	FileName     = "config.yaml"
	EnvPrefix    = "INTRINSIC_NAMES"
	DirEnv       = EnvPrefix + "_CONFIG_DIR"
)

// Setup points the global viper instance at dir/config.yaml with
// INTRINSIC_NAMES_* env overrides. A missing file is not an error.
func Setup(dir string) error {
	v := viper.GetViper()
	v.SetConfigFile(File(dir))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("debug", DefaultDebug)

	err := v.ReadInConfig()
	if err == nil || errors.Is(err, fs.ErrNotExist) || errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return nil
	}
	return fmt.Errorf("error reading %s: %w", v.ConfigFileUsed(), err)
}

// Load decodes the state prepared by Setup.
func Load() (*Config, error) {
	v := viper.GetViper()
	cfg := &Config{ConfigDir: filepath.Dir(v.ConfigFileUsed())}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return cfg, nil
}

func File(dir string) string {
	return filepath.Join(dir, FileName)
}

func DefaultDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./.config/intrinsic-names"
	}
	return filepath.Join(homeDir, ".config", "intrinsic-names")
}

// Dir picks the config directory: an explicit --config-dir, then
// INTRINSIC_NAMES_CONFIG_DIR, then DefaultDir.
func Dir(flag *pflag.Flag) string {
	if flag != nil && flag.Changed {
		return util.ExpandPath(flag.Value.String())
	}
	if dir := os.Getenv(DirEnv); dir != "" {
		return util.ExpandPath(dir)
	}
	return DefaultDir()
}
