package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/ner-eval/pkg/config/env"
	"github.com/DjordjeVuckovic/ner-eval/pkg/stringsutil"
)

const (
	DefaultPort       = "8080"
	DefaultHealthPath = "/health"
)

type Config struct {
	Env         string
	Port        string
	UseHttp2    bool
	CorsOrigins []string
	HealthPath  string
	// DataDir, when set, is the base for relative file paths in requests.
	DataDir string
	// EvalConfigPath is an optional YAML file for evaluate.Config.
	EvalConfigPath string
}

func LoadConfig() (*Config, error) {
	appEnv := os.Getenv("ENV")
	if err := env.LoadDotEnv(appEnv, "cmd/ner_api/.env"); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	return configFromEnv(appEnv)
}

func configFromEnv(appEnv string) (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = DefaultPort
	}

	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := stringsutil.SplitAndTrim(os.Getenv("CORS_ORIGINS"), ",")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir != "" {
		info, err := os.Stat(dataDir)
		if err != nil {
			return nil, fmt.Errorf("invalid data dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("invalid data dir: %s is not a directory", dataDir)
		}
	}

	return &Config{
		Env:            appEnv,
		Port:           port,
		UseHttp2:       os.Getenv("USE_HTTP2") == "true",
		CorsOrigins:    origins,
		HealthPath:     DefaultHealthPath,
		DataDir:        dataDir,
		EvalConfigPath: os.Getenv("EVAL_CONFIG"),
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
