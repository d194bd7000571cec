package main

import (
	"github.com/losefr9/egyptian-mind-arena-sub001/internal/config"
	"github.com/losefr9/egyptian-mind-arena-sub001/internal/constants"
	"github.com/losefr9/egyptian-mind-arena-sub001/internal/dedupe"
	"github.com/losefr9/egyptian-mind-arena-sub001/internal/logging"
	"github.com/losefr9/egyptian-mind-arena-sub001/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid arena configuration", err, logging.Fields{constants.LogFieldConfigPath: path})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string, seed bool) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath, seed)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{constants.LogFieldDBPath: dbPath})
	}
	return storage.NewSQLiteRepository(db)
}

// checkRegistry compares the database with the registry and logs one warning
// per disagreement.
func checkRegistry(repo storage.Repository) ([]storage.Drift, error) {
	v, err, _ := dedupe.VerifyGroup.Do(dedupe.VerifyKey, func() (interface{}, error) {
		return storage.VerifyRegistry(repo)
	})
	if err != nil {
		return nil, err
	}
	drift, _ := v.([]storage.Drift)
	for _, d := range drift {
		logging.Warn("game registry drift", logging.Fields{
			constants.LogFieldDriftKind: string(d.Kind),
			constants.LogFieldGameID:    d.ID,
			constants.LogFieldGameKey:   d.Key,
			constants.LogFieldName:      d.Expected,
			constants.LogFieldDBName:    d.Actual,
		})
	}
	if len(drift) == 0 {
		logging.Info("game registry in sync with database", nil)
	}
	return drift, nil
}
