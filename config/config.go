package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"ai-chatbot-backend/internal/chat"
	"ai-chatbot-backend/internal/model"
	"ai-chatbot-backend/pkg/openai"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	OpenAI OpenAIConfig
	Chat   ChatConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// OpenAIConfig configures the completion service client.
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
}

// ChatConfig configures session memory and the system prompt.
type ChatConfig struct {
	SystemPrompt string
	MemoryTurns  int
	MaxSessions  int
	SessionTTL   time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	cfg.OpenAI.Temperature = viper.GetFloat64("openai.temperature")

	// Flat env fallbacks matching the conventional variable names.
	if key := viper.GetString("openai_api_key"); key != "" {
		cfg.OpenAI.APIKey = key
	}
	if m := viper.GetString("model"); m != "" {
		cfg.OpenAI.Model = m
	}

	cfg.Chat.SystemPrompt = viper.GetString("chat.system_prompt")
	cfg.Chat.MemoryTurns = viper.GetInt("chat.memory_turns")
	cfg.Chat.MaxSessions = viper.GetInt("chat.max_sessions")
	cfg.Chat.SessionTTL = viper.GetDuration("chat.session_ttl")

	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("openai.api_key is required - set OPENAI_API_KEY or add it to config.yaml")
	}
	if cfg.Chat.MemoryTurns < 1 {
		return nil, fmt.Errorf("chat.memory_turns must be >= 1, got %d", cfg.Chat.MemoryTurns)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("openai.base_url", openai.DefaultBaseURL)
	viper.SetDefault("openai.model", openai.DefaultModel)
	viper.SetDefault("openai.temperature", openai.DefaultTemperature)

	viper.SetDefault("chat.system_prompt", model.DefaultSystemPrompt)
	viper.SetDefault("chat.memory_turns", chat.DefaultMemoryTurns)
	viper.SetDefault("chat.max_sessions", 0)
	viper.SetDefault("chat.session_ttl", time.Duration(0))
}
