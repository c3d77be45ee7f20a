// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/syp-convert/internal/kvstore"
	"fjacquet/syp-convert/internal/logging"
	"fjacquet/syp-convert/internal/parsererror"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// AppDir is the per-user directory holding configuration and preferences.
const AppDir = ".syp-convert"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Storage struct {
		Backend string `mapstructure:"backend" yaml:"backend"`
		Path    string `mapstructure:"path" yaml:"path"`
		Key     string `mapstructure:"key" yaml:"key"`
	} `mapstructure:"storage" yaml:"storage"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Display struct {
		Color bool `mapstructure:"color" yaml:"color"`
	} `mapstructure:"display" yaml:"display"`
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":     "log.level",
	"log-format":    "log.format",
	"storage":       "storage.backend",
	"storage-path":  "storage.path",
	"csv-delimiter": "csv.delimiter",
	"color":         "display.color",
}

// Load builds the configuration from defaults, a config file, SYP_*
// environment variables and command-line flags, in increasing order of
// precedence. An empty configFile searches for config.yaml in
// $HOME/.syp-convert, ./.syp-convert and the working directory; flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join("$HOME", AppDir))
		v.AddConfigPath(AppDir)
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix("SYP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Flags
	if flags != nil {
		for flag, key := range flagKeys {
			if f := flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
				}
			}
		}
	}

	// 5. Read config file (optional unless named explicitly)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if config.Storage.Path == "" {
		config.Storage.Path = DefaultStoragePath(kvstore.Backend(config.Storage.Backend))
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("storage.backend", string(kvstore.BackendFile))
	v.SetDefault("storage.path", "")
	v.SetDefault("storage.key", "sy-settings")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("display.color", false)
}

// DefaultStoragePath returns where a backend keeps preferences when no path
// is configured.
func DefaultStoragePath(backend kvstore.Backend) string {
	dir, err := os.UserHomeDir()
	if err != nil {
		dir = "."
	}
	name := "preferences.yaml"
	if backend == kvstore.BackendSQLite {
		name = "preferences.db"
	}
	return filepath.Join(dir, AppDir, name)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, ok := logging.ParseLevel(config.Log.Level); !ok {
		return &parsererror.ConfigError{Key: "log.level", Value: config.Log.Level, Reason: "unknown log level"}
	}

	format := strings.ToLower(config.Log.Format)
	if format != "text" && format != "json" {
		return &parsererror.ConfigError{Key: "log.format", Value: config.Log.Format, Reason: "must be 'text' or 'json'"}
	}

	backend, err := kvstore.ParseBackend(config.Storage.Backend)
	if err != nil {
		return &parsererror.ConfigError{Key: "storage.backend", Value: config.Storage.Backend, Reason: "must be file, sqlite or memory"}
	}
	config.Storage.Backend = string(backend)

	if strings.TrimSpace(config.Storage.Key) == "" {
		return &parsererror.ConfigError{Key: "storage.key", Value: config.Storage.Key, Reason: "must not be empty"}
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return &parsererror.ConfigError{Key: "csv.delimiter", Value: config.CSV.Delimiter, Reason: "must be a single character"}
	}

	return nil
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	return []rune(c.CSV.Delimiter)[0]
}
