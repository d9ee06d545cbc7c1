package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "yaml"
	envPrefix  = "FOLIO"
)

// Config holds application settings
type Config struct {
	Content       string        `mapstructure:"content"`
	DataDir       string        `mapstructure:"data_dir"`
	Breakpoint    int           `mapstructure:"breakpoint"`
	CellWidth     int           `mapstructure:"cell_width"`
	FeedbackDelay time.Duration `mapstructure:"feedback_delay"`
	Log           LogConfig     `mapstructure:"log"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Dir returns the directory searched for config.yaml
func Dir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "folio")
	}
	return ".folio"
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".folio")
	}
	return ".folio"
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("content", "")
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("breakpoint", 768)
	v.SetDefault("cell_width", 8)
	v.SetDefault("feedback_delay", 3*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from path (or config.yaml in Dir() when path is
// empty), then env vars with the FOLIO_ prefix, then any bound flags.
// A missing default config file is not an error.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := newViper()
	v.SetConfigType(configType)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName(configName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// flagKeys maps CLI flag names to config keys
var flagKeys = map[string]string{
	"content":   "content",
	"data-dir":  "data_dir",
	"log-level": "log.level",
	"log-file":  "log.file",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

func (c *Config) validate() error {
	if c.Breakpoint <= 0 {
		return fmt.Errorf("breakpoint must be positive, got %d", c.Breakpoint)
	}
	if c.CellWidth <= 0 {
		return fmt.Errorf("cell_width must be positive, got %d", c.CellWidth)
	}
	if c.FeedbackDelay <= 0 {
		return fmt.Errorf("feedback_delay must be positive, got %s", c.FeedbackDelay)
	}
	return nil
}

// Columns converts a breakpoint in logical pixels to terminal columns
func (c *Config) Columns() int {
	return c.Breakpoint / c.CellWidth
}

// LogPath returns the log file path, defaulting to folio.log in the data dir
func (c *Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(c.DataDir, "folio.log")
}
