/*
Package config loads the optional pathpick configuration file. YAML and
TOML are both accepted; the format is chosen by file extension.
*/
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	appDirName        = "pathpick"
	defaultConfigFile = "config.yaml"
)

// DefaultHeaderExtensions are the suffixes the header collector matches.
var DefaultHeaderExtensions = []string{".h", ".hpp", ".hh"}

// Config holds the settings that may come from the configuration file.
type Config struct {
	StateFile        string    `yaml:"state_file" toml:"state_file"`
	StartPath        string    `yaml:"start_path" toml:"start_path"`
	HeaderExtensions []string  `yaml:"header_extensions" toml:"header_extensions"`
	Log              LogConfig `yaml:"log" toml:"log"`
}

// LogConfig configures the diagnostics log.
type LogConfig struct {
	File  string `yaml:"file" toml:"file"`
	Level string `yaml:"level" toml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	exts := make([]string, len(DefaultHeaderExtensions))
	copy(exts, DefaultHeaderExtensions)
	return Config{HeaderExtensions: exts}
}

// DefaultPath returns the per-user configuration file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, appDirName, defaultConfigFile), nil
}

/*
Load reads the configuration at path on top of Default. A missing file is
only an error when required is set (the user named it explicitly).
*/
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&cfg)
	default:
		return Default(), fmt.Errorf("unsupported config format %q (use .yaml, .yml or .toml)", ext)
	}
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(cfg.HeaderExtensions) == 0 {
		cfg.HeaderExtensions = Default().HeaderExtensions
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
