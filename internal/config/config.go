package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm"     validate:"required"`
	Tutor   TutorConfig   `mapstructure:"tutor"   validate:"required"`
	Roadmap RoadmapConfig `mapstructure:"roadmap"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// APIKey is the bearer credential sent to the completion endpoint.
	APIKey string `mapstructure:"api_key" validate:"required"`

	// ModelName is the model identifier placed in every request body.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// Endpoint is the chat completion URL requests are posted to.
	Endpoint string `mapstructure:"endpoint" validate:"required,url"`

	// TimeoutSeconds bounds a single request/response cycle.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gt=0"`
}

// TutorConfig contains the prompt settings shared by all tutor operations.
type TutorConfig struct {
	SystemPrompt string `mapstructure:"system_prompt" validate:"required"`
	MaxTokens    int    `mapstructure:"max_tokens"    validate:"gte=0"`
}

// RoadmapConfig locates the roadmap of thematics to work on.
type RoadmapConfig struct {
	FilePath string `mapstructure:"file_path"`
}
