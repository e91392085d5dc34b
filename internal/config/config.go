package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// DefaultSecretsFile is probed when SECRETS_FILE is not set. It mirrors the
// secrets file used in local development and must never be committed.
const DefaultSecretsFile = ".secrets.toml"

type Config struct {
	AppEnv      string
	Port        string
	MongoURI    string
	MongoDBName string
	RedisURL    string
	LogLevel    string
	LogFormat   string
}

func Load() (*Config, error) {
	// Dev convenience only; ignore a missing .env.
	_ = godotenv.Load()

	secrets, err := loadSecrets(os.Getenv("SECRETS_FILE"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		AppEnv:      lookup(secrets, "APP_ENV", "development"),
		Port:        lookup(secrets, "PORT", "8080"),
		MongoURI:    lookup(secrets, "MONGO_URI", ""),
		MongoDBName: lookup(secrets, "MONGO_DB_NAME", ""),
		RedisURL:    lookup(secrets, "REDIS_URL", ""),
		LogLevel:    lookup(secrets, "LOG_LEVEL", "info"),
		LogFormat:   lookup(secrets, "LOG_FORMAT", "text"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.MongoDBName == "" {
		return nil, fmt.Errorf("MONGO_DB_NAME is required")
	}
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	return cfg, nil
}

// lookup resolves a key from the environment, then the secrets file, then
// the default.
func lookup(secrets map[string]string, key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if value := secrets[key]; value != "" {
		return value
	}
	return defaultValue
}

// loadSecrets reads a TOML secrets file. When path is empty the default
// location is probed and a missing file is not an error; an explicitly
// configured file must exist and parse.
func loadSecrets(path string) (map[string]string, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultSecretsFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read secrets file %s: %w", path, err)
	}

	secrets := make(map[string]string)
	if err := toml.Unmarshal(data, &secrets); err != nil {
		return nil, fmt.Errorf("failed to parse secrets file %s: %w", path, err)
	}
	return secrets, nil
}
