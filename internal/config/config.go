package config

import "time"

// Config holds all server configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Notify NotifyConfig `mapstructure:"notify" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// AllowedOrigin is the browser origin allowed by CORS.
	AllowedOrigin string `mapstructure:"allowed_origin" validate:"required"`
	// APIBaseURL is handed to the web client; empty means same origin.
	APIBaseURL string `mapstructure:"api_base_url" validate:"omitempty,url"`
}

// LLMConfig contains the text-generation settings. API keys may be empty:
// a missing key disables summaries at request time, not at startup.
type LLMConfig struct {
	Provider       string  `mapstructure:"provider"        validate:"required,oneof=openai gemini"`
	OpenAIAPIKey   string  `mapstructure:"openai_api_key"`
	GeminiAPIKey   string  `mapstructure:"gemini_api_key"`
	ModelName      string  `mapstructure:"model_name"`
	BaseURL        string  `mapstructure:"base_url"        validate:"required,url"`
	Temperature    float64 `mapstructure:"temperature"     validate:"gte=0,lte=2"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" validate:"gt=0"`
}

// NotifyConfig contains the chat webhook settings.
type NotifyConfig struct {
	SlackWebhookURL string `mapstructure:"slack_webhook_url" validate:"omitempty,url"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"   validate:"gt=0"`
	Header          string `mapstructure:"header"            validate:"required"`
}

// ClientConfig holds the settings of the terminal client.
type ClientConfig struct {
	APIURL         string `mapstructure:"api_url"         validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gt=0"`
}

// APIKey returns the credential of the configured provider.
func (c LLMConfig) APIKey() string {
	if c.Provider == "gemini" {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

// Timeout returns the per-call text-generation timeout.
func (c LLMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Timeout returns the per-call webhook timeout.
func (c NotifyConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Timeout returns the client's request timeout.
func (c ClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
