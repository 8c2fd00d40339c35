package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"walletcore/internal/address"
	"walletcore/internal/store"
)

const (
	// ConfigFileName is looked up under the home directory when no explicit
	// config path is given.
	ConfigFileName = "config.yaml"

	envHome      = "WALLETCORE_HOME"
	envHRP       = "WALLETCORE_HRP"
	envLogLevel  = "WALLETCORE_LOG_LEVEL"
	envLogFormat = "WALLETCORE_LOG_FORMAT"
	envScryptN   = "WALLETCORE_SCRYPT_N"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home     string             `yaml:"home"` // wallet directory, e.g. $HOME/.walletcore
	HRP      string             `yaml:"hrp"`  // bech32 address prefix
	Log      LogConfig          `yaml:"log"`
	Keystore store.ScryptParams `yaml:"keystore"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	home := ".walletcore"
	if dir, err := os.UserHomeDir(); err == nil {
		home = filepath.Join(dir, ".walletcore")
	}
	return Config{
		Home:     home,
		HRP:      address.DefaultHRP,
		Log:      LogConfig{Level: "info", Format: "text"},
		Keystore: store.DefaultScryptParams(),
	}
}

// LoadConfig builds a Config from defaults, the YAML file at path and the
// environment, in that order of precedence. A non-empty home overrides all
// of them and is where config.yaml is looked up when path is empty; that
// file may be absent, an explicit path must exist.
func LoadConfig(path, home string) (Config, error) {
	cfg := DefaultConfig()
	if env := strings.TrimSpace(os.Getenv(envHome)); env != "" {
		cfg.Home = env
	}
	if home != "" {
		cfg.Home = home
	}

	explicit := path != ""
	if !explicit {
		path = filepath.Join(cfg.Home, ConfigFileName)
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var parsed Config
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
		Merge(&cfg, parsed)
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, err
	}

	if err := ApplyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	if home != "" {
		cfg.Home = home
	}
	return cfg, nil
}

// Merge copies the set fields of src onto dst.
func Merge(dst *Config, src Config) {
	if src.Home != "" {
		dst.Home = src.Home
	}
	if src.HRP != "" {
		dst.HRP = src.HRP
	}
	if src.Log.Level != "" {
		dst.Log.Level = src.Log.Level
	}
	if src.Log.Format != "" {
		dst.Log.Format = src.Log.Format
	}
	if src.Keystore.N != 0 {
		dst.Keystore.N = src.Keystore.N
	}
	if src.Keystore.R != 0 {
		dst.Keystore.R = src.Keystore.R
	}
	if src.Keystore.P != 0 {
		dst.Keystore.P = src.Keystore.P
	}
}

// ApplyEnvOverrides applies WALLETCORE_* variables on top of cfg.
func ApplyEnvOverrides(cfg *Config) error {
	if home := strings.TrimSpace(os.Getenv(envHome)); home != "" {
		cfg.Home = home
	}
	if hrp := strings.TrimSpace(os.Getenv(envHRP)); hrp != "" {
		cfg.HRP = hrp
	}
	if level := strings.TrimSpace(os.Getenv(envLogLevel)); level != "" {
		cfg.Log.Level = level
	}
	if format := strings.TrimSpace(os.Getenv(envLogFormat)); format != "" {
		cfg.Log.Format = format
	}
	if raw := strings.TrimSpace(os.Getenv(envScryptN)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", envScryptN, err)
		}
		cfg.Keystore.N = n
	}
	return nil
}
