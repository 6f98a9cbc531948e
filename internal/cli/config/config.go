// Package config loads the trellis.yml tooling configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the Trellis tooling configuration.
type Config struct {
	ProjectName string           `mapstructure:"project_name"`
	Introspect  IntrospectConfig `mapstructure:"introspect"`
}

// IntrospectConfig holds defaults for the introspect commands.
type IntrospectConfig struct {
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

// Load reads trellis.yml (or trellis.yaml) from the working directory. A
// missing file yields the defaults; a malformed file is an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("introspect.format", "table")
	v.SetDefault("introspect.no_color", false)

	v.SetConfigName("trellis")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.ProjectName == "" {
		if wd, err := os.Getwd(); err == nil {
			cfg.ProjectName = filepath.Base(wd)
		}
	}
	return &cfg, nil
}
