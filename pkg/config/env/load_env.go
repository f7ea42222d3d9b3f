package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv overlays variables from a .env file onto the process environment,
// mainly SMTP credentials during local runs. ENV_PATH overrides the file
// location. A missing file is fatal only in local mode; deployed environments
// are expected to carry real environment variables instead.
func LoadDotEnv(env string, defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		envPath = defaultPath
	}

	if err := godotenv.Load(envPath); err != nil {
		if env == "local" || env == "" {
			slog.Error("Failed to load .env file", "path", envPath, "error", err)
			return err
		}
		slog.Debug("No .env file, relying on process environment", "path", envPath)
	}

	return nil
}
