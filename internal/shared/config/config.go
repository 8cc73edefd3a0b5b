package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultModel is used when LLM_MODEL is not set.
	DefaultModel = "deepseek/deepseek-r1-distill-llama-70b:free"
	// DefaultBaseURL is the OpenRouter-compatible endpoint used when
	// LLM_BASE_URL is not set.
	DefaultBaseURL = "https://openrouter.ai/api/v1"
)

// Config holds application configuration.
type Config struct {
	Port             string
	CORSAllowOrigin  []string
	OpenRouterAPIKey string
	LLMBaseURL       string
	LLMModel         string
	LLMReferer       string
	LLMAppTitle      string
	LLMMaxTokens     int
	DatabaseURL      string
	DemoMode         bool
	Env              string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && os.Getenv("OPENROUTER_API_KEY") == "" {
		log.Printf("OPENROUTER_API_KEY is not set; generation endpoints will be unavailable")
	}

	return Config{
		Port:             getEnv("PORT", "8080"),
		CORSAllowOrigin:  splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", defaultCORSOrigins)),
		OpenRouterAPIKey: getEnv("OPENROUTER_API_KEY", ""),
		LLMBaseURL:       getEnv("LLM_BASE_URL", DefaultBaseURL),
		LLMModel:         getEnv("LLM_MODEL", DefaultModel),
		LLMReferer:       getEnv("LLM_REFERER", "http://localhost:3000"),
		LLMAppTitle:      getEnv("LLM_APP_TITLE", "PDF Processing App"),
		LLMMaxTokens:     getInt("LLM_MAX_TOKENS", 2000),
		DatabaseURL:      dbURL,
		DemoMode:         getBool("DEMO_MODE", true),
		Env:              env,
	}
}

// defaultCORSOrigins mirrors the local frontend dev ports the API is
// typically paired with.
const defaultCORSOrigins = "http://localhost:3000,http://localhost:3001,http://localhost:3002,http://localhost:3003," +
	"http://127.0.0.1:3000,http://127.0.0.1:3001,http://127.0.0.1:3002,http://127.0.0.1:3003"

// loadEnvFiles loads KEY=VALUE pairs from the given files if they exist.
// It is a best-effort helper for local development; errors are ignored.
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		_ = godotenv.Load(path)
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getBool(key string, def bool) bool {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return def
	}
	return b
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
