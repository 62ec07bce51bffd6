package main

import (
	"context"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/tracelet/logbridge/pkg/log"
)

func main() {
	logConf := log.IPFSConfig{Level: log.LevelInfo, Stderr: true}
	_ = cleanenv.ReadEnv(&logConf)
	log.SetupIPFSLogging(logConf)
	logger := log.NewIPFSLogger("root")

	config, err := LoadConfig(logger)
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	pipe, err := newPipeline(config.ServiceName, nil)
	if err != nil {
		logger.Fatal("failed to build telemetry pipeline", "error", err)
	}

	scenario := DefaultScenario()
	if config.ScenarioPath != "" {
		scenario, err = LoadScenario(config.ScenarioPath)
		if err != nil {
			logger.Fatal("failed to load scenario", "path", config.ScenarioPath, "error", err)
		}
	}
	logger.Info("replaying scenario", "name", scenario.Name, "steps", len(scenario.Steps))

	ctx := context.Background()
	pipe.replay(ctx, scenario)

	if config.BurstWorkers > 0 && config.BurstSize > 0 {
		logger.Info("running concurrent burst", "workers", config.BurstWorkers, "recordsPerWorker", config.BurstSize)
		pipe.burst(ctx, config.BurstWorkers, config.BurstSize)
	}

	if err := pipe.loggerProvider.ForceFlush(ctx); err != nil {
		logger.Error("failed to flush records", "error", err)
	}
	dumpCounters(logger, pipe.registry)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pipe.shutdown(shutdownCtx, logger)

	logger.Info("demo complete")
}
