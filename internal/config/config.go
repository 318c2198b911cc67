package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	History HistoryConfig
	Events  EventsConfig
	LLM     LLMConfig
	Fetch   FetchConfig
	Tracing TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type HistoryConfig struct {
	Backend  string // "memory" or "redis"
	RedisURL string
	TTL      time.Duration
}

type EventsConfig struct {
	Topic   string
	NatsURL string // empty disables forwarding
}

type LLMConfig struct {
	Provider    string // "mock", "openai", "ollama"
	BaseURL     string
	Model       string
	APIKey      string
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
}

type FetchConfig struct {
	Timeout time.Duration
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8100"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/amdlingo.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		History: HistoryConfig{
			Backend:  getEnv("HISTORY_BACKEND", "memory"),
			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
			TTL:      time.Duration(getEnvAsInt("HISTORY_TTL_MINUTES", 60)) * time.Minute,
		},
		Events: EventsConfig{
			Topic:   getEnv("EVENTS_TOPIC", "analysis.completed"),
			NatsURL: getEnv("NATS_URL", ""),
		},
		LLM: LLMConfig{
			Provider:    getEnv("LLM_PROVIDER", "mock"),
			BaseURL:     getEnv("LLM_BASE_URL", "http://localhost:8000/v1"),
			Model:       getEnv("LLM_MODEL", "openai/gpt-oss-120b"),
			APIKey:      getEnv("LLM_API_KEY", "dummy-key"),
			Timeout:     time.Duration(getEnvAsInt("LLM_TIMEOUT_SECONDS", 120)) * time.Second,
			Temperature: getEnvAsFloat("LLM_TEMPERATURE", 0.2),
			MaxTokens:   getEnvAsInt("LLM_MAX_TOKENS", 800),
		},
		Fetch: FetchConfig{
			Timeout: time.Duration(getEnvAsInt("FETCH_TIMEOUT_SECONDS", 5)) * time.Second,
		},
		Tracing: TracingConfig{
			Enabled:  getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

// IsProduction switches logging to JSON on the console.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
