// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultResultsDir is where score results are appended when the config omits it.
	defaultResultsDir = "agentialData/emResults"
	// defaultLogFile is the log file used when the config omits it.
	defaultLogFile = "agential.log"
	// defaultTruncate caps how many runes of an answer are shown in text output.
	defaultTruncate = 80
)

// Config represents the top-level application configuration.
type Config struct {
	Debug      bool     `json:"debug"`
	JSONMode   bool     `json:"jsonMode"`
	LogFile    string   `json:"logFile,omitempty"`
	ResultsDir string   `json:"resultsDir,omitempty"`
	Truncate   int      `json:"truncate,omitempty"`
	Suites     []string `json:"suites,omitempty"`
	ConfigPath string   `json:"-"`
}

// ResultsPath returns the directory score results are written to.
func (c Config) ResultsPath() string {
	if dir := strings.TrimSpace(c.ResultsDir); dir != "" {
		return dir
	}
	return defaultResultsDir
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// TruncateWidth returns the maximum number of runes shown per answer.
// A negative value in the config disables truncation.
func (c Config) TruncateWidth() int {
	if c.Truncate < 0 {
		return 0
	}
	if c.Truncate == 0 {
		return defaultTruncate
	}
	return c.Truncate
}

// Load reads the application configuration from the specified path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	for i, suite := range config.Suites {
		config.Suites[i] = strings.TrimSpace(suite)
	}

	return config, nil
}
