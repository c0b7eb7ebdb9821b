package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port              string        `validate:"required,numeric"`
	ReplyDelay        time.Duration `validate:"gte=0"`
	ReplyPreviewRunes int           `validate:"gt=0"`
	LogMode           string        `validate:"oneof=dev prod development production"`

	// DatabaseURL пустой — карточки хранятся в памяти.
	DatabaseURL string `validate:"omitempty,url"`
	// RedisURL пустой — история бесед хранится в памяти.
	RedisURL   string        `validate:"omitempty,url"`
	HistoryTTL time.Duration `validate:"gte=0"`

	CardsDir      string `validate:"required"`
	PublicBaseURL string `validate:"required,url"`

	JWTSecret     string `validate:"required"`
	JWTIssuer     string `validate:"required"`
	JWTTTLMinutes int    `validate:"gt=0"`
}

// ClientConfig — настройки терминального клиента.
type ClientConfig struct {
	APIURL  string `validate:"required,url"`
	LogMode string `validate:"oneof=dev prod development production"`
}

var validate = validator.New()

// Load reads environment variables, optionally from a .env file if present.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:              getEnv("PORT", "8000"),
		ReplyDelay:        getEnvDuration("REPLY_DELAY", 400*time.Millisecond),
		ReplyPreviewRunes: getEnvInt("REPLY_PREVIEW_RUNES", 140),
		LogMode:           getEnv("LOG_MODE", "dev"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		HistoryTTL:        getEnvDuration("HISTORY_TTL", 24*time.Hour),
		CardsDir:          getEnv("CARDS_DIR", "cards_export"),
		PublicBaseURL:     getEnv("PUBLIC_BASE_URL", "http://127.0.0.1:8000"),
		JWTSecret:         getEnv("CARDS_JWT_SECRET", "dev-secret-change"),
		JWTIssuer:         getEnv("CARDS_JWT_ISSUER", "workvibe"),
		JWTTTLMinutes:     getEnvInt("CARDS_JWT_TTL_MINUTES", 60),
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadClient reads the terminal client settings.
func LoadClient() (ClientConfig, error) {
	_ = godotenv.Load()

	cfg := ClientConfig{
		APIURL:  getEnv("VIBE_API_URL", "http://127.0.0.1:8000"),
		LogMode: getEnv("LOG_MODE", "dev"),
	}
	if err := validate.Struct(cfg); err != nil {
		return ClientConfig{}, fmt.Errorf("invalid client config: %w", err)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// getEnvDuration accepts Go durations ("400ms") or plain milliseconds ("400").
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Millisecond
	}
	return def
}
