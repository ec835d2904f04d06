package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const FileName = "dbal.config.json"

type Config struct {
	Version    string   `json:"version" mapstructure:"version"`
	SchemaPath string   `json:"schema_path" mapstructure:"schema_path"`
	Database   Database `json:"database" mapstructure:"database"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

var supportedProviders = []string{"sqlite", "sqlite3", "postgresql", "postgres", "mysql", "mssql", "sqlserver"}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Version == "" {
		cfg.Version = "1"
	}
	if cfg.SchemaPath == "" {
		cfg.SchemaPath = filepath.Join("db", "schema.yaml")
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "sqlite"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.SchemaPath == "" {
		return fmt.Errorf("schema_path cannot be empty")
	}

	return nil
}

// InitializeProject writes a default config file and an example schema into
// the current directory. It fails if a config file already exists.
func InitializeProject(provider string) error {
	if IsInitialized() {
		return fmt.Errorf("%s already exists", FileName)
	}

	cfg := Config{
		Version:    "1",
		SchemaPath: filepath.Join("db", "schema.yaml"),
		Database:   Database{Provider: provider, URLEnv: "DATABASE_URL"},
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set("version", cfg.Version)
	v.Set("schema_path", cfg.SchemaPath)
	v.Set("database.provider", cfg.Database.Provider)
	v.Set("database.url_env", cfg.Database.URLEnv)
	if err := v.WriteConfigAs(FileName); err != nil {
		return fmt.Errorf("failed to write %s: %w", FileName, err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.SchemaPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(cfg.SchemaPath), err)
	}
	if _, err := os.Stat(cfg.SchemaPath); os.IsNotExist(err) {
		if err := os.WriteFile(cfg.SchemaPath, []byte(exampleSchema), 0644); err != nil {
			return fmt.Errorf("failed to write example schema: %w", err)
		}
	}
	return nil
}

func IsInitialized() bool {
	_, err := os.Stat(FileName)
	return err == nil
}

const exampleSchema = `tables:
  - name: users
    columns:
      - name: id
        kind: pk
      - name: email
        kind: string
      - name: name
        kind: string
        default: anonymous
      - name: active
        kind: boolean
        default: true
    indexes:
      - kind: unique
        columns: [email]
`
