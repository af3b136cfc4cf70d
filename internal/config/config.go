package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Upstream Upstream `validate:"required"`

	Cache Cache `validate:"required"`

	Notify Notify `validate:"required"`

	Session Session `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

// Upstream points at the HOP SHOP API origin. The base URL is the only
// externally visible knob that affects dashboard behavior.
type Upstream struct {
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gte=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type Notify struct {
	Interval time.Duration `validate:"gt=0"`
}

type Session struct {
	StorePath string `validate:"required"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Upstream: Upstream{
			BaseURL: env("HOP_API_URL", "http://localhost:5000"),
			Timeout: envDuration("HOP_API_TIMEOUT", 0),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 64),
			TTL:      envDuration("CACHE_TTL", time.Minute),
		},

		Notify: Notify{
			Interval: envDuration("NOTIFY_INTERVAL", 5*time.Minute),
		},

		Session: Session{
			StorePath: env("SESSION_STORE_PATH", ".session.json"),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if len(fallback) == 0 {
		return ""
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
