package rename

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

type Config struct {
	Dir    string   `toml:"dir" yaml:"dir"`
	Ext    string   `toml:"ext" yaml:"ext"`
	Ignore []string `toml:"ignore" yaml:"ignore"`
	Self   string   `toml:"-" yaml:"-"`
	DryRun bool     `toml:"dry-run" yaml:"dry-run"`
}

const (
	DefaultExt = "ipynb"
)

var (
	ErrConfig = errors.New("invalid configuration")

	DefaultIgnore = []string{"app.py"}
)

// LoadConfig reads the configuration file at path into cfg.
// Only keys present in the file overwrite fields of cfg.
// The format is chosen from the file extension: ".toml", ".yaml" or ".yml".
//
// Non-nil returned error wraps [ErrConfig].
func LoadConfig(path string, cfg *Config) error {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("%w: failed to read config file %q: %s", ErrConfig, path, err.Error())
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err = toml.Decode(string(contents), cfg); err != nil {
			return fmt.Errorf("%w: failed to parse TOML config file %q: %s", ErrConfig, path, err.Error())
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(contents, cfg); err != nil {
			return fmt.Errorf("%w: failed to parse YAML config file %q: %s", ErrConfig, path, err.Error())
		}
	default:
		return fmt.Errorf("%w: config file %q must end with .toml, .yaml or .yml", ErrConfig, path)
	}

	return cfg.Validate()
}

// Non-nil returned error wraps [ErrConfig].
func (c *Config) Validate() error {
	c.Ext = strings.TrimPrefix(c.Ext, ".")

	if c.Ext == "" {
		return fmt.Errorf("%w: target extension must not be empty", ErrConfig)
	}

	if strings.ContainsAny(c.Ext, `/\`) {
		return fmt.Errorf("%w: target extension %q must not contain path separators", ErrConfig, c.Ext)
	}

	for _, name := range c.Ignore {
		if name != filepath.Base(name) {
			return fmt.Errorf("%w: ignored name %q must be a plain file name", ErrConfig, name)
		}
	}

	return nil
}
