// Package config loads runtime settings from flags, environment, and an
// optional config file via viper.
package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/valpere/promptran/internal/completion"
	"github.com/valpere/promptran/internal/translation"
)

const EnvPrefix = "PROMPTRAN"

type ServerConfig struct {
	Addr              string        `mapstructure:"addr" json:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" json:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" json:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
}

type Config struct {
	Provider    string        `mapstructure:"provider" json:"provider"`
	Model       string        `mapstructure:"model" json:"model"`
	APIKey      string        `mapstructure:"api_key" json:"-"`
	BaseURL     string        `mapstructure:"base_url" json:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout" json:"timeout"`
	CleanOutput bool          `mapstructure:"clean_output" json:"clean_output"`
	Server      ServerConfig  `mapstructure:"server" json:"server"`
	Log         LogConfig     `mapstructure:"log" json:"log"`
}

// providerKeyEnv maps a provider to the conventional env var holding its key.
var providerKeyEnv = map[string]string{
	"openai":     "OPENAI_API_KEY",
	"openrouter": "OPENROUTER_API_KEY",
	"gemini":     "GEMINI_API_KEY",
}

// SetDefaults registers default values and env bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("provider", "openai")
	v.SetDefault("model", "")
	v.SetDefault("api_key", "")
	v.SetDefault("base_url", "")
	v.SetDefault("timeout", 120*time.Second)
	v.SetDefault("clean_output", false)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load decodes v into a Config. An unset model falls back to the provider's
// default. When no api_key is set, the provider's conventional env var is
// consulted.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Provider = strings.ToLower(cfg.Provider)
	if cfg.Model == "" {
		cfg.Model = completion.DefaultModel(cfg.Provider)
	}
	if cfg.APIKey == "" {
		if env, ok := providerKeyEnv[cfg.Provider]; ok {
			_ = v.BindEnv("provider_api_key", env)
			cfg.APIKey = v.GetString("provider_api_key")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if !slices.Contains(completion.Providers, c.Provider) {
		return fmt.Errorf("unknown provider %q (supported: %s)", c.Provider, strings.Join(completion.Providers, ", "))
	}
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unknown log format %q (supported: json, console)", c.Log.Format)
	}
	return nil
}

// Completion returns the settings for the completion client.
func (c *Config) Completion() completion.Config {
	return completion.Config{
		Provider: c.Provider,
		APIKey:   c.APIKey,
		BaseURL:  c.BaseURL,
		Timeout:  c.Timeout,
	}
}

// Translation returns the settings for the translation service.
func (c *Config) Translation() translation.ServiceConfig {
	return translation.ServiceConfig{
		Model:       c.Model,
		CleanOutput: c.CleanOutput,
	}
}
