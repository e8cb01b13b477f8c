package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default values applied before any other source is read.
const (
	DefaultPort           = 8080
	DefaultLogLevel       = "info"
	DefaultModelName      = "gpt-3.5-turbo"
	DefaultEndpoint       = "https://api.openai.com/v1/chat/completions"
	DefaultTimeoutSeconds = 60
	DefaultSystemPrompt   = "You are my mentor and also a senior software engineer."
	DefaultMaxTokens      = 500
)

// envPrefix is prepended to every environment variable viper looks up.
const envPrefix = "TUTOR"

// legacyEnvAliases maps configuration keys to the unprefixed environment
// variable names earlier versions of the tool read.
var legacyEnvAliases = map[string]string{
	"llm.api_key":       "OPENAI_SK",
	"roadmap.file_path": "ROADMAP_FILE_PATH",
}

// DotEnvPath is the .env file read by Load. Variables it defines only take
// effect when they are not already present in the process environment.
var DotEnvPath = ".env"

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	if err := loadDotEnv(DotEnvPath); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", DotEnvPath, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about, so every key
	// is bound explicitly, together with its legacy alias when one exists.
	for _, key := range v.AllKeys() {
		names := []string{envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}
		if alias, ok := legacyEnvAliases[key]; ok {
			names = append(names, alias)
		}
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// setDefaults registers every known key so that environment binding and
// unmarshalling see the full key set even when no config file exists.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model_name", DefaultModelName)
	v.SetDefault("llm.endpoint", DefaultEndpoint)
	v.SetDefault("llm.timeout_seconds", DefaultTimeoutSeconds)
	v.SetDefault("tutor.system_prompt", DefaultSystemPrompt)
	v.SetDefault("tutor.max_tokens", DefaultMaxTokens)
	v.SetDefault("roadmap.file_path", "")
}

// loadDotEnv copies the variables of a dotenv file into the process
// environment without overriding anything already set. A missing file is
// not an error.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	dotenv := viper.New()
	dotenv.SetConfigFile(path)
	dotenv.SetConfigType("env")
	if err := dotenv.ReadInConfig(); err != nil {
		return err
	}

	for _, key := range dotenv.AllKeys() {
		name := strings.ToUpper(key)
		if _, set := os.LookupEnv(name); set {
			continue
		}
		if err := os.Setenv(name, dotenv.GetString(key)); err != nil {
			return err
		}
	}
	return nil
}
