package env

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from a .env file without overriding ones
// already set. ENV_PATH takes precedence over defaultPath.
//
// A missing file is only an error in local mode (env "local" or unset);
// elsewhere the process environment is used as is.
func LoadDotEnv(env string, defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		envPath = defaultPath
	}

	err := godotenv.Load(envPath)
	if err == nil {
		slog.Debug("Loaded .env", "path", envPath)
		return nil
	}

	if errors.Is(err, fs.ErrNotExist) && env != "local" && env != "" {
		slog.Debug("Skipping .env ...", "path", envPath)
		return nil
	}
	return err
}
