// config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

type PathsConfig struct {
	SourceDir string `yaml:"source_dir"`
	LogDir    string `yaml:"log_dir"`
}

// SourceFilesConfig maps each entity to its extract filename under SourceDir.
type SourceFilesConfig struct {
	Customers string `yaml:"customers"`
	Drivers   string `yaml:"drivers"`
	Trips     string `yaml:"trips"`
	Payments  string `yaml:"payments"`
}

type Config struct {
	Database    DatabaseConfig    `yaml:"database"`
	Paths       PathsConfig       `yaml:"paths"`
	SourceFiles SourceFilesConfig `yaml:"source_files"`
}

// LoadConfig reads the YAML config file, fills defaults, applies RIDELAKE_DB_*
// environment overrides (so credentials can stay out of the file) and makes
// sure the log directory exists. An empty configPath searches the usual spots.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		potentialPaths := []string{
			"config.yaml",
			"config/config.yaml",
		}
		for _, p := range potentialPaths {
			if _, err := os.Stat(p); err == nil {
				configPath = p
				break
			}
		}
		if configPath == "" {
			return nil, fmt.Errorf("config.yaml not found in standard locations")
		}
	}

	file, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := os.MkdirAll(cfg.Paths.LogDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", cfg.Paths.LogDir, err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}
	if cfg.Paths.SourceDir == "" {
		cfg.Paths.SourceDir = "data"
	}
	if cfg.Paths.LogDir == "" {
		cfg.Paths.LogDir = "log"
	}
	// The extract filenames are fixed by the upstream export job; config can
	// override them but normally never does.
	if cfg.SourceFiles.Customers == "" {
		cfg.SourceFiles.Customers = "Uber rides - customers.csv"
	}
	if cfg.SourceFiles.Drivers == "" {
		cfg.SourceFiles.Drivers = "Uber rides - drivers.csv"
	}
	if cfg.SourceFiles.Trips == "" {
		cfg.SourceFiles.Trips = "Uber rides - trips.csv"
	}
	if cfg.SourceFiles.Payments == "" {
		cfg.SourceFiles.Payments = "Uber rides - payments.csv"
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RIDELAKE_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("RIDELAKE_DB_PORT"); v != "" {
		cfg.Database.Port = v
	}
	if v := os.Getenv("RIDELAKE_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("RIDELAKE_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
}

// SourcePath returns the full path of an entity's extract.
func (c *Config) SourcePath(filename string) string {
	return filepath.Join(c.Paths.SourceDir, filename)
}
