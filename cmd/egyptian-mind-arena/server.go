package main

import (
	"time"

	"github.com/losefr9/egyptian-mind-arena-sub001/internal/logging"
	"github.com/losefr9/egyptian-mind-arena-sub001/internal/storage"
)

// startDriftMonitor re-checks the registry against the database every
// interval. A zero interval disables it.
func startDriftMonitor(repo storage.Repository, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			if _, err := checkRegistry(repo); err != nil {
				logging.Error("drift monitor failed to verify registry", err, nil)
			}
		}
	}()
}
