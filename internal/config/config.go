package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// DataDir is the directory holding the three JSON stores (default "data").
	DataDir string

	// InventoryFile, HistoryFile, and UsersFile are the flat JSON stores.
	// Each holds one array of records and is rewritten whole on mutation.
	InventoryFile string
	HistoryFile   string
	UsersFile     string

	// ImageDir is where uploaded asset photos are copied (default "images").
	ImageDir string

	// AdminSecret is the shared key required to register an Admin account.
	AdminSecret string

	// SessionSecret signs the local session token issued on login.
	SessionSecret string

	// SessionTTLHours is the session token lifetime in hours (default 24).
	SessionTTLHours int

	// Env is "dev" (default) or "prod". Controls the log encoder.
	Env string
}

func Load() Config {
	// Best effort: a .env file is optional.
	_ = godotenv.Load()

	dataDir := getEnv("LAB_DATA_DIR", "data")

	return Config{
		DataDir: dataDir,

		InventoryFile: getEnv("LAB_INVENTORY_FILE", filepath.Join(dataDir, "inventory.json")),
		HistoryFile:   getEnv("LAB_HISTORY_FILE", filepath.Join(dataDir, "history_log.json")),
		UsersFile:     getEnv("LAB_USERS_FILE", filepath.Join(dataDir, "users.json")),

		ImageDir: getEnv("LAB_IMAGE_DIR", "images"),

		AdminSecret:   getEnv("LAB_ADMIN_SECRET", "1234"),
		SessionSecret: getEnv("LAB_SESSION_SECRET", "supersecretkey"),

		SessionTTLHours: getEnvInt("LAB_SESSION_TTL_HOURS", 24),

		Env: getEnv("ENV", "dev"),
	}
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
