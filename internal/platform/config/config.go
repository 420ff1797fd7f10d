package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DataDir     string
	ExportDir   string
	Addr        string
	Environment string
}

type fileConfig struct {
	DataDir   string `yaml:"data_dir"`
	ExportDir string `yaml:"export_dir"`
	Addr      string `yaml:"addr"`
}

// Load builds the configuration from defaults, an optional YAML file named
// by NOMINA_CONFIG, and environment variables, in increasing precedence.
func Load() (Config, error) {
	cfg := Config{
		DataDir:     "data",
		ExportDir:   "exports",
		Addr:        ":8080",
		Environment: "development",
	}

	if path := os.Getenv("NOMINA_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
		if fc.DataDir != "" {
			cfg.DataDir = fc.DataDir
		}
		if fc.ExportDir != "" {
			cfg.ExportDir = fc.ExportDir
		}
		if fc.Addr != "" {
			cfg.Addr = fc.Addr
		}
	}

	cfg.DataDir = getEnv("NOMINA_DATA_DIR", cfg.DataDir)
	cfg.ExportDir = getEnv("NOMINA_EXPORT_DIR", cfg.ExportDir)
	cfg.Addr = getEnv("NOMINA_ADDR", cfg.Addr)
	cfg.Environment = getEnv("NOMINA_ENV", cfg.Environment)
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("data dir must not be empty")
	}
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("addr must not be empty")
	}
	return nil
}
