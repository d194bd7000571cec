package constants

// Centralized constants for env keys, routes and log fields.
const (
	// Environment variable keys
	EnvConfigPath = "ARENA_CONFIG"
	EnvDBPath     = "ARENA_DB"
	EnvAddr       = "ARENA_ADDR"
	EnvLogLevel   = "ARENA_LOG_LEVEL"

	// Defaults used when neither config nor env provide a value
	DefaultConfigPath = "./arena_config.json"
	DefaultDBPath     = "./data/arena.db"
	DefaultAddr       = ":8080"
	DefaultLogLevel   = "info"

	// Dotenv file loaded before reading the config
	DotEnvFile = ".env"
)

// Routes used by the backend router
const (
	RouteAPIPrefix      = "/api"
	RouteGames          = "/games"
	RouteGameByID       = "/games/:gameID"
	RouteGameByKey      = "/games/keys/:gameKey"
	RouteRegistryStatus = "/registry/status"
	RouteVersion        = "/version"
)

// Common JSON response keys
const (
	JSONKeyError  = "error"
	JSONKeyInSync = "in_sync"
	JSONKeyDrift  = "drift"
)

// Common error messages used across API handlers
const (
	ErrGameNotFound         = "Game not found"
	ErrUnknownGameKey       = "Unknown game key"
	ErrFailedVerifyRegistry = "Failed to verify game registry"
)

// Logging field names
const (
	LogFieldGameID      = "game_id"
	LogFieldGameKey     = "game_key"
	LogFieldDriftKind   = "drift_kind"
	LogFieldDBName      = "db_name"
	LogFieldName        = "name"
	LogFieldAddr        = "addr"
	LogFieldConfigPath  = "config_path"
	LogFieldDBPath      = "db_path"
	LogFieldDriftCount  = "drift_count"
	LogFieldVersion     = "version"
	LogFieldCommit      = "commit"
	LogFieldSeededCount = "seeded"
)
