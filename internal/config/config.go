package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultModels is the ordered provider chain tried for every query; list
// order is priority order.
var DefaultModels = []string{
	"deepseek/deepseek-r1-0528-qwen3-8b:free",
	"mistralai/mistral-small-3.2-24b-instruct:free",
	"openrouter/horizon-beta",
}

type Config struct {
	OpenRouterKey string
	OpenRouterURL string
	Models        []string
	MaxTokens     int
	MongoURI      string
	MongoDB       string
	MongoColl     string
	Port          string
	HTTPTimeout   time.Duration
	LogLevel      slog.Level
}

func FromEnv() Config {
	to := 30 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil {
			to = d
		}
	}
	lvl := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		lvl = slog.LevelDebug
	}
	maxTok := 500
	if v := os.Getenv("MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxTok = n
		}
	}
	return Config{
		OpenRouterKey: os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterURL: envOr("OPENROUTER_URL", "https://openrouter.ai/api/v1/chat/completions"),
		Models:        modelsFromEnv(),
		MaxTokens:     maxTok,
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDB:       envOr("MONGO_DB", "adverai"),
		MongoColl:     envOr("MONGO_COLLECTION", "stats"),
		Port:          envOr("PORT", "8080"),
		HTTPTimeout:   to,
		LogLevel:      lvl,
	}
}

// PROVIDER_MODELS is a comma-separated override of the default chain.
func modelsFromEnv() []string {
	v := os.Getenv("PROVIDER_MODELS")
	if v == "" {
		out := make([]string, len(DefaultModels))
		copy(out, DefaultModels)
		return out
	}
	var out []string
	for _, m := range strings.Split(v, ",") {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		return DefaultModels
	}
	return out
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
