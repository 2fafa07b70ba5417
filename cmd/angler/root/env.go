package root

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is read from the environment, with .env as an optional convenience.
// Everything has a sensible default; nothing here is required.
type Config struct {
	DBPath  string
	LogPath string
	LogMode string
	Seed    int64
}

func LoadConfig() Config {
	// Missing .env is fine; env vars still apply.
	_ = godotenv.Load()

	return Config{
		DBPath:  os.Getenv("ANGLER_DB_PATH"),
		LogPath: os.Getenv("ANGLER_LOG_PATH"),
		LogMode: loadString("ANGLER_LOG_MODE", "prod"),
		Seed:    loadInt64("ANGLER_SEED", 0),
	}
}

func loadString(key, defValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defValue
}

func loadInt64(key string, defValue int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return defValue
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return defValue
	}
	return n
}
