// Package config provides configuration management for the application.
package config

import (
	"log"
	"time"

	"github.com/hibare/GoCommon/v2/pkg/env"
	commonLogger "github.com/hibare/GoCommon/v2/pkg/logger"
	"github.com/swarms-world/swarms-cli/internal/constants"
)

// LoggerConfig defines logging configuration parameters.
type LoggerConfig struct {
	Level string
	Mode  string
}

// LLMConfig defines chat completion endpoint configuration parameters.
type LLMConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Config represents the complete application configuration.
type Config struct {
	Logger LoggerConfig
	LLM    LLMConfig
}

// Current holds the active application configuration.
var Current *Config

// Load initializes and loads the application configuration.
func Load() {
	env.Load()

	Current = &Config{
		LLM: LLMConfig{
			BaseURL: env.MustString("SWARMS_LLM_BASE_URL", constants.DefaultLLMBaseURL),
			APIKey:  env.MustString("OPENAI_API_KEY", ""),
			Timeout: env.MustDuration("SWARMS_HTTP_CLIENT_TIMEOUT", constants.DefaultHTTPClientTimeout),
		},
		Logger: LoggerConfig{
			Level: env.MustString("SWARMS_LOG_LEVEL", commonLogger.DefaultLoggerLevel),
			Mode:  env.MustString("SWARMS_LOG_MODE", commonLogger.DefaultLoggerMode),
		},
	}

	if !commonLogger.IsValidLogLevel(Current.Logger.Level) {
		log.Fatal("Error invalid logger level")
	}

	if !commonLogger.IsValidLogMode(Current.Logger.Mode) {
		log.Fatal("Error invalid logger mode")
	}

	commonLogger.InitLogger(&Current.Logger.Level, &Current.Logger.Mode)
}
