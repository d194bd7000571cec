package main

import (
	"github.com/gin-gonic/gin"

	"github.com/losefr9/egyptian-mind-arena-sub001/internal/api"
	"github.com/losefr9/egyptian-mind-arena-sub001/internal/config"
	"github.com/losefr9/egyptian-mind-arena-sub001/internal/constants"
	"github.com/losefr9/egyptian-mind-arena-sub001/internal/games"
	"github.com/losefr9/egyptian-mind-arena-sub001/internal/logging"
	"github.com/losefr9/egyptian-mind-arena-sub001/internal/version"
)

func main() {
	if err := config.LoadDotEnv(constants.DotEnvFile); err != nil {
		logging.Error("Ignoring unreadable dotenv file", err, nil)
	}
	configPath := config.ResolvePath()
	cfg := loadConfigOrExit(configPath)
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		logging.Fatal("Invalid log level", err, nil)
	}

	v := version.Get()
	logging.Info("Starting", logging.Fields{constants.LogFieldVersion: v.Version, constants.LogFieldCommit: v.Commit})

	// The compiled-in registry must be consistent before anything serves it.
	if err := games.Validate(); err != nil {
		logging.Fatal("Game registry is inconsistent", err, nil)
	}

	repo := createRepositoryOrExit(cfg.DBPath, cfg.SeedDB)
	drift, err := checkRegistry(repo)
	if err != nil {
		logging.Fatal("Failed to verify game registry", err, logging.Fields{constants.LogFieldDBPath: cfg.DBPath})
	}
	if len(drift) > 0 && cfg.StrictRegistry {
		logging.Fatal("Game registry out of sync with database", nil, logging.Fields{constants.LogFieldDriftCount: len(drift)})
	}
	startDriftMonitor(repo, cfg.CheckInterval)

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(api.NewGameHandler(repo))

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
