// Package config loads the process-wide goparsing settings (message
// language and log level) from an optional file and GOPARSING_* environment
// variables.
package config

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	goparsing "github.com/reoring/goparsing"
	"github.com/reoring/goparsing/dsl"
	"github.com/reoring/goparsing/i18n"
)

const envPrefix = "GOPARSING"

type Config struct {
	Language string `mapstructure:"language"`
	LogLevel string `mapstructure:"log_level"`
}

// settings validates the loaded values before they are applied.
var settings = dsl.Object(
	dsl.Field("language", dsl.Union(dsl.Literal("en"), dsl.Literal("ja"))),
	dsl.Field("log_level", dsl.String().Trim().ToLower().PostParse(func(_ context.Context, v any) (any, error) {
		if _, err := zerolog.ParseLevel(v.(string)); err != nil {
			return nil, goparsing.NewError("config.logLevel", "Unknown log level {{level}}", map[string]any{"level": v})
		}
		return v, nil
	})),
)

// Load reads the settings. path names an optional config file (any format
// viper understands, chosen by extension); an empty path skips the file.
// Environment variables such as GOPARSING_LANGUAGE override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("language", "en")
	v.SetDefault("log_level", "warn")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	out, err := settings.Parse(context.Background(), map[string]any{
		"language":  cfg.Language,
		"log_level": cfg.LogLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.LogLevel = out.(map[string]any)["log_level"].(string)
	return cfg, nil
}

// Apply switches the i18n language and the global log level.
func Apply(cfg *Config) error {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	i18n.SetLanguage(cfg.Language)
	goparsing.SetLogLevel(level)
	return nil
}
