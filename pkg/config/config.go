package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the engine parameters supplied by the environment. The
// auction duration and minimum increment are application inputs; the engine
// never decides them.
type Config struct {
	Port                string
	AuctionDuration     time.Duration
	MinIncrementPercent float64
	SweepInterval       time.Duration
}

// Load reads configuration from the environment, applying defaults. A .env
// file is honored when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:                getEnv("PORT", "8080"),
		AuctionDuration:     getDurationEnv("AUCTION_DURATION", 72*time.Hour),
		MinIncrementPercent: getFloatEnv("MIN_INCREMENT_PERCENT", 2),
		SweepInterval:       getDurationEnv("SWEEP_INTERVAL", 30*time.Second),
	}
}

// getEnv retrieves an environment variable;
// returns the default value when missing.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}

func getFloatEnv(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}
