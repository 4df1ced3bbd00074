package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

const EnvDevelopment = "development"

type Config struct {
	ServiceName string
	ServerPort  int
	AppEnv      string

	DatabaseURL string

	JWTAccessSecret  []byte
	JWTRefreshSecret []byte

	// IANA zone used for the open-status computation.
	Timezone string

	KafkaBrokers []string

	NotifyURL       string
	TurnstileSecret string

	CORSOrigins []string
}

func Load() Config {
	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "repair-shop-api"),
		ServerPort:  EnvIntDefault("SERVER_PORT", 8080),
		AppEnv:      EnvDefault("APP_ENV", EnvDevelopment),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTAccessSecret:  []byte(os.Getenv("JWT_SECRET")),
		JWTRefreshSecret: []byte(os.Getenv("JWT_REFRESH_SECRET")),

		Timezone: EnvDefault("SHOP_TIMEZONE", "Europe/Rome"),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),

		NotifyURL:       os.Getenv("NOTIFY_URL"),
		TurnstileSecret: os.Getenv("TURNSTILE_SECRET"),

		CORSOrigins: CSV(EnvDefault("CORS_ORIGINS", "http://localhost:5173")),
	}
}

// Validate enforces the fail-closed secret policy: outside development mode
// the signing secrets must be configured explicitly. In development mode
// missing secrets are filled with throwaway values so the service can run
// without a .env file.
func (c *Config) Validate() error {
	if c.AppEnv == EnvDevelopment {
		if len(c.JWTAccessSecret) == 0 {
			c.JWTAccessSecret = []byte("dev-access-secret")
		}
		if len(c.JWTRefreshSecret) == 0 {
			c.JWTRefreshSecret = []byte("dev-refresh-secret")
		}
		return nil
	}
	if len(c.JWTAccessSecret) == 0 {
		return errors.New("JWT_SECRET is required outside development mode")
	}
	if len(c.JWTRefreshSecret) == 0 {
		return errors.New("JWT_REFRESH_SECRET is required outside development mode")
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required outside development mode")
	}
	return nil
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
