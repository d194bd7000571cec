package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/losefr9/egyptian-mind-arena-sub001/internal/constants"
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	Database *struct {
		Path string `json:"path"`
		// Seed inserts registry rows missing from the database at startup.
		// Off by default: the database owns the identifiers. Meant for dev setups.
		Seed *bool `json:"seed"`
	} `json:"database"`
	Registry *struct {
		// Strict aborts startup when the database and the registry disagree.
		Strict bool `json:"strict"`
		// CheckInterval re-verifies the registry periodically, e.g. "5m".
		// Empty or "0" disables the background check.
		CheckInterval string `json:"check_interval"`
	} `json:"registry"`
	LogLevel string `json:"log_level"`
}

// LoadedConfig contains the server address, database settings and log level.
type LoadedConfig struct {
	ServerAddress  string
	DBPath         string
	SeedDB         bool
	StrictRegistry bool
	CheckInterval  time.Duration
	LogLevel       string
}

// LoadDotEnv loads path into the process environment when the file exists.
// Variables already set in the environment win over the file.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ResolvePath returns the config path from ARENA_CONFIG or the default path.
func ResolvePath() string {
	if p := os.Getenv(constants.EnvConfigPath); p != "" {
		return p
	}
	return constants.DefaultConfigPath
}

// LoadConfig reads the configuration file at path and applies environment
// overrides. A missing file at the default path is not an error; defaults are
// used instead.
func LoadConfig(path string) (*LoadedConfig, error) {
	var rc rawConfig
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(b, &rc); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && path == constants.DefaultConfigPath:
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	out := &LoadedConfig{
		ServerAddress: constants.DefaultAddr,
		DBPath:        constants.DefaultDBPath,
		LogLevel:      constants.DefaultLogLevel,
	}
	if rc.Server != nil && strings.TrimSpace(rc.Server.Address) != "" {
		out.ServerAddress = strings.TrimSpace(rc.Server.Address)
	}
	if rc.Database != nil {
		if p := strings.TrimSpace(rc.Database.Path); p != "" {
			out.DBPath = p
		}
		if rc.Database.Seed != nil {
			out.SeedDB = *rc.Database.Seed
		}
	}
	if rc.Registry != nil {
		out.StrictRegistry = rc.Registry.Strict
		if ci := strings.TrimSpace(rc.Registry.CheckInterval); ci != "" {
			d, err := time.ParseDuration(ci)
			if err != nil || d < 0 {
				return nil, fmt.Errorf("config file %s: invalid registry.check_interval %q", path, ci)
			}
			out.CheckInterval = d
		}
	}
	if lvl := strings.TrimSpace(rc.LogLevel); lvl != "" {
		out.LogLevel = strings.ToLower(lvl)
	}

	if v := os.Getenv(constants.EnvAddr); v != "" {
		out.ServerAddress = v
	}
	if v := os.Getenv(constants.EnvDBPath); v != "" {
		out.DBPath = v
	}
	if v := os.Getenv(constants.EnvLogLevel); v != "" {
		if _, err := logrus.ParseLevel(v); err != nil {
			return nil, fmt.Errorf("env %s: invalid log level %q", constants.EnvLogLevel, v)
		}
		out.LogLevel = strings.ToLower(v)
	}

	if _, err := logrus.ParseLevel(out.LogLevel); err != nil {
		return nil, fmt.Errorf("config file %s: invalid log_level %q", path, out.LogLevel)
	}
	return out, nil
}
