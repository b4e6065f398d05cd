package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Init loads .env if present and verifies the settings the process cannot
// run without.
func Init() {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	for _, key := range []string{"DB_DSN", "REDIS_ADDR", "JWT_SECRET", "APP_PORT"} {
		if os.Getenv(key) == "" {
			Logger.Fatal(key + " is not set")
		}
	}
}
