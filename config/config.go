// Package config loads server configuration from an optional config.json,
// with environment variables taking precedence over file values. A .env file
// is honored when present.
package config

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// RedisConfig is the connection config for the backing store.
type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

// Config structure based on config.json
type Config struct {
	Port   string `json:"port"`
	Origin string `json:"origin"`

	Redis RedisConfig `json:"redis"`

	// CookieKey encrypts the sessionId cookie value; base64, 32 bytes
	// decoded. Generated at startup when empty, which invalidates existing
	// cookies on restart.
	CookieKey string `json:"cookieKey"`

	SessionTTLHours int `json:"sessionTTLHours"`
	BcryptCost      int `json:"bcryptCost"`

	// ActivityRetention bounds the per-user signin activity log. Message
	// logs are intentionally unbounded.
	ActivityRetention int64 `json:"activityRetention"`
}

// SessionTTL returns the session expiry as a duration.
func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

// Load reads path when it exists, then applies environment overrides and
// defaults.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:              ":3001",
		Redis:             RedisConfig{Addr: "127.0.0.1:6379"},
		SessionTTLHours:   24,
		BcryptCost:        10,
		ActivityRetention: 1000,
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	} else if !os.IsNotExist(err) {
		return Config{}, err
	}

	cfg.Port = getenv("PORT", cfg.Port)
	cfg.Origin = getenv("ORIGIN", cfg.Origin)
	cfg.Redis.Addr = getenv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getenv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getint("REDIS_DB", cfg.Redis.DB)
	cfg.CookieKey = getenv("COOKIE_KEY", cfg.CookieKey)
	cfg.SessionTTLHours = getint("SESSION_TTL_HOURS", cfg.SessionTTLHours)
	cfg.BcryptCost = getint("BCRYPT_COST", cfg.BcryptCost)
	cfg.ActivityRetention = int64(getint("ACTIVITY_RETENTION", int(cfg.ActivityRetention)))

	return cfg, nil
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
