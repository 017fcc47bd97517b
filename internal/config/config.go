// Package config loads the application configuration from the environment.
package config

import (
	"log/slog"

	"github.com/spf13/viper"

	"github.com/codegrade/codegrade/internal/logger"
)

// MistralConfig holds the settings for the completion service.
type MistralConfig struct {
	// APIKey may be empty at startup; its absence is surfaced on first use.
	APIKey  string
	Model   string
	BaseURL string
}

// Config holds the application's configuration values.
type Config struct {
	ServerPort  string
	Logging     logger.Config
	GitHubToken string
	Mistral     MistralConfig
	PolicyPath  string
}

// LoadConfig reads configuration from environment variables and a .env file,
// and sets sensible defaults. It uses the Viper library to handle
// configuration loading and precedence.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LOG_OUTPUT", "stdout")
	viper.SetDefault("MISTRAL_MODEL", "mistral-small-latest")
	viper.SetDefault("MISTRAL_BASE_URL", "https://api.mistral.ai")
	viper.SetDefault("REVIEW_POLICY_PATH", ".codegrade.yml")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Debug("no .env file loaded", "error", err)
		}
	}

	return &Config{
		ServerPort: viper.GetString("SERVER_PORT"),
		Logging: logger.Config{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
			Output: viper.GetString("LOG_OUTPUT"),
		},
		GitHubToken: viper.GetString("GITHUB_TOKEN"),
		Mistral: MistralConfig{
			APIKey:  viper.GetString("MISTRAL_API_KEY"),
			Model:   viper.GetString("MISTRAL_MODEL"),
			BaseURL: viper.GetString("MISTRAL_BASE_URL"),
		},
		PolicyPath: viper.GetString("REVIEW_POLICY_PATH"),
	}, nil
}
