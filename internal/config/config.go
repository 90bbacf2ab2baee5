package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Store backend selectors
const (
	StoreBackendFile   = "file"
	StoreBackendSQLite = "sqlite"
)

// Config holds the application configuration
type Config struct {
	Port         int
	LogLevel     string
	LogFormat    string
	Environment  string
	APIKey       string // API key for authentication
	StoreBackend string // "file" or "sqlite"
	DataDir      string // snapshot directory for the file backend
	DBPath       string // database path for the sqlite backend
	ConfigDir    string // directory holding vault_tiers.json and quests.json
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		Environment:  getEnv("ENVIRONMENT", "dev"),
		APIKey:       getEnv("API_KEY", ""),
		StoreBackend: getEnv("STORE_BACKEND", StoreBackendFile),
		DataDir:      getEnv("DATA_DIR", "data"),
		DBPath:       getEnv("DB_PATH", "data/vaultsim.db"),
		ConfigDir:    getEnv("CONFIG_DIR", "configs"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.StoreBackend != StoreBackendFile && cfg.StoreBackend != StoreBackendSQLite {
		return nil, fmt.Errorf("invalid STORE_BACKEND value %q: must be %q or %q",
			cfg.StoreBackend, StoreBackendFile, StoreBackendSQLite)
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// VaultCatalogPath returns the path of the vault tier catalog config
func (c *Config) VaultCatalogPath() string {
	return c.ConfigDir + "/vault_tiers.json"
}

// QuestCatalogPath returns the path of the quest catalog config
func (c *Config) QuestCatalogPath() string {
	return c.ConfigDir + "/quests.json"
}
