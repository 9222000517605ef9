/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/valpere/promptran/internal/config"
)

var version = "0.1.0"

var (
	cfgFile string
	verbose bool

	v      = viper.New()
	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "promptran",
	Short: "LLM-backed translator with dialect, tone and plurality control",
	Long: `A translator that composes an instruction prompt from the source and
target languages plus optional modifiers (dialect, tone, plurality) and asks
a chat-completion model for the translation.

Supported providers: openai (default), openrouter, ollama, gemini

Use "promptran serve" to run the HTTP API or "promptran translate" for a
one-shot translation.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		var err error
		logger, err = newLogger(cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	config.SetDefaults(v)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default ./promptran.yaml or $HOME/.config/promptran/promptran.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.String("provider", "openai", "Completion provider: openai, openrouter, ollama, gemini")
	flags.String("model", "", "Model identifier (default depends on provider; openai: gpt-5.2)")
	flags.String("api-key", "", "Provider API key (prefer PROMPTRAN_API_KEY or the provider's env var)")
	flags.String("base-url", "", "Override the provider base URL")
	flags.Duration("timeout", 0, "Completion request timeout (default 2m)")
	flags.Bool("clean-output", false, "Strip echoed labels, delimiters and reasoning blocks from model output")
	flags.String("log-format", "json", "Log format: json or console")

	for key, flag := range map[string]string{
		"provider":     "provider",
		"model":        "model",
		"api_key":      "api-key",
		"base_url":     "base-url",
		"timeout":      "timeout",
		"clean_output": "clean-output",
		"log.format":   "log-format",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}
}

func initConfig() error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("promptran")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.config/promptran")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if verbose {
		v.Set("log.level", "debug")
	}

	var err error
	cfg, err = config.Load(v)
	return err
}

func newLogger(lc config.LogConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(strings.ToLower(lc.Level))
	if err != nil {
		return nil, err
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
