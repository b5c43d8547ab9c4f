package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envAliases binds config keys to the plain variable names used by
// existing deployments, in addition to the TODO_ prefixed ones.
var envAliases = map[string][]string{
	"server.port":              {"PORT"},
	"server.log_level":         {"LOG_LEVEL"},
	"server.allowed_origin":    {"FRONTEND_URL"},
	"server.api_base_url":      {"API_URL", "REACT_APP_API_URL"},
	"llm.provider":             {"LLM_PROVIDER"},
	"llm.openai_api_key":       {"OPENAI_API_KEY"},
	"llm.gemini_api_key":       {"GEMINI_API_KEY"},
	"llm.model_name":           {"LLM_MODEL"},
	"llm.base_url":             {"OPENAI_BASE_URL"},
	"notify.slack_webhook_url": {"SLACK_WEBHOOK_URL"},
}

// Load reads the server configuration from an optional .env file and the
// environment. TODO_ prefixed variables win over the plain aliases.
// Returns a populated Config or an error if loading/validation fails.
func Load() (*Config, error) {
	loadDotEnv()

	v := newViper()

	v.SetDefault("server.port", 5000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.allowed_origin", "http://localhost:3000")
	v.SetDefault("server.api_base_url", "")
	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.openai_api_key", "")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", "")
	v.SetDefault("llm.base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.timeout_seconds", 10)
	v.SetDefault("notify.slack_webhook_url", "")
	v.SetDefault("notify.timeout_seconds", 5)
	v.SetDefault("notify.header", "*Todo Summary*")

	for key, aliases := range envAliases {
		if err := bindEnv(v, key, aliases...); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadClient reads the terminal client configuration.
func LoadClient() (*ClientConfig, error) {
	loadDotEnv()

	v := newViper()
	v.SetDefault("api_url", "http://localhost:5000")
	v.SetDefault("timeout_seconds", 15)

	if err := bindEnv(v, "api_url", "API_URL", "REACT_APP_API_URL"); err != nil {
		return nil, err
	}

	var cfg ClientConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal client config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("TODO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// bindEnv binds key to its TODO_ variable first and then to each alias.
// viper uses the first variable that is set.
func bindEnv(v *viper.Viper, key string, aliases ...string) error {
	prefixed := "TODO_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	args := append([]string{key, prefixed}, aliases...)
	if err := v.BindEnv(args...); err != nil {
		return fmt.Errorf("failed to bind environment for %s: %w", key, err)
	}
	return nil
}

func validate(cfg interface{}) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// loadDotEnv loads .env from the working directory when present.
// Variables already in the environment are not overridden.
func loadDotEnv() {
	_ = godotenv.Load()
}
