package storage

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Library backends.
const (
	LibraryDir    = "dir"
	LibrarySQLite = "sqlite"
)

// Config holds application configuration.
type Config struct {
	UploadDir        string        `yaml:"uploadDir"`
	Library          string        `yaml:"library"`
	SQLitePath       string        `yaml:"sqlitePath"`
	Listen           string        `yaml:"listen"`
	LinksFile        string        `yaml:"linksFile"`
	CheckConcurrency int           `yaml:"checkConcurrency"`
	CheckTimeout     time.Duration `yaml:"checkTimeout"`
	ExcludeDomains   []string      `yaml:"excludeDomains"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		UploadDir:        filepath.Join(DefaultConfigDir(), "uploaded"),
		Library:          LibraryDir,
		SQLitePath:       "file:bmx?mode=memory&cache=shared",
		Listen:           ":8080",
		LinksFile:        "links.txt",
		CheckConcurrency: 10,
		CheckTimeout:     10 * time.Second,
		ExcludeDomains:   []string{"github.com", "gitlab.com"},
	}
}

// LoadConfig reads config from the YAML file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Non-fatal: return defaults even if save fails
			_ = SaveConfig(path, &config)
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.UploadDir == "" {
		config.UploadDir = defaults.UploadDir
	}
	if config.Library == "" {
		config.Library = defaults.Library
	}
	if config.SQLitePath == "" {
		config.SQLitePath = defaults.SQLitePath
	}
	if config.Listen == "" {
		config.Listen = defaults.Listen
	}
	if config.LinksFile == "" {
		config.LinksFile = defaults.LinksFile
	}
	if config.CheckConcurrency <= 0 {
		config.CheckConcurrency = defaults.CheckConcurrency
	}
	if config.CheckTimeout <= 0 {
		config.CheckTimeout = defaults.CheckTimeout
	}
	if config.ExcludeDomains == nil {
		config.ExcludeDomains = defaults.ExcludeDomains
	}

	return &config, nil
}

// SaveConfig writes config to the YAML file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigDir returns ~/.config/bmx, or .bmx when the home directory
// is unknown.
func DefaultConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".bmx"
	}
	return filepath.Join(homeDir, ".config", "bmx")
}

// DefaultConfigFilePath returns the default config path: ~/.config/bmx/config.yaml
func DefaultConfigFilePath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}
