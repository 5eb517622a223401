package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	MongoURI           string
	MongoDB            string
	RedisAddr          string
	HTTPPort           string
	PublicBaseURL      string
	MinPlayers         int
	CodeLength         int
	RemovePlayerOnExit bool
	SessionTTL         time.Duration
}

func Load() *Config {
	return &Config{
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:            getEnv("MONGO_DB", "elimpostor"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		PublicBaseURL:      getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		MinPlayers:         getEnvInt("MIN_PLAYERS", 2),
		CodeLength:         getEnvInt("SESSION_CODE_LENGTH", 5),
		RemovePlayerOnExit: getEnvBool("REMOVE_PLAYER_ON_EXIT", false),
		SessionTTL:         getEnvDuration("SESSION_TTL", 24*time.Hour),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
