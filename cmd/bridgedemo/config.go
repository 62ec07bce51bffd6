package main

import (
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/tracelet/logbridge/pkg/log"
)

const (
	configDirPathEnv     = "BRIDGE_CONFIG_DIR_PATH"
	defaultConfigDirPath = "."
)

// Config represents the demo configuration.
type Config struct {
	// ServiceName becomes the service.name resource attribute.
	ServiceName string `env:"BRIDGE_SERVICE_NAME" env-default:"bridgedemo" validate:"required"`
	// ScenarioPath points at a YAML scenario file. Empty runs the built-in scenario.
	ScenarioPath string `env:"BRIDGE_SCENARIO" env-default:""`
	// BurstWorkers is the number of goroutines in the concurrent emission burst.
	BurstWorkers int `env:"BRIDGE_BURST_WORKERS" env-default:"8" validate:"min=0,max=64"`
	// BurstSize is the number of records each burst worker emits.
	BurstSize int `env:"BRIDGE_BURST_SIZE" env-default:"1000" validate:"min=0"`
}

// LoadConfig builds configuration from environment variables
func LoadConfig(logger log.Logger) (*Config, error) {
	logger = logger.WithName("config")

	configDirPath := os.Getenv(configDirPathEnv)
	if configDirPath == "" {
		configDirPath = defaultConfigDirPath
	}

	// Load .env files
	configDotEnvPath := filepath.Join(configDirPath, ".env")
	logger.Info("loading .env file", "path", configDotEnvPath)
	if err := godotenv.Load(configDotEnvPath); err != nil {
		logger.Warn(".env file not found")
	}

	var conf Config
	if err := cleanenv.ReadEnv(&conf); err != nil {
		logger.Error("failed to read env", "err", err)
		return nil, errors.Wrap(err, "read env")
	}

	if err := validator.New().Struct(&conf); err != nil {
		logger.Error("invalid configuration", "err", err)
		return nil, errors.Wrap(err, "validate config")
	}

	return &conf, nil
}
