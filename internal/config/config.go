package config

import (
	"os"
	"strconv"
)

type Config struct {
	SlackBotToken  string
	SlackAppToken  string
	DatabasePath   string
	UTCOffsetHours int
	TickSpec       string
	LogLevel       string
	Environment    string
}

func Load() *Config {
	return &Config{
		SlackBotToken:  getEnv("SLACK_BOT_TOKEN", ""),
		SlackAppToken:  getEnv("SLACK_APP_TOKEN", ""),
		DatabasePath:   getEnv("DATABASE_PATH", "./standup.db"),
		UTCOffsetHours: getEnvInt("UTC_OFFSET_HOURS", 0),
		TickSpec:       getEnv("TICK_SPEC", "@every 1m"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Environment:    getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
