// Package config provides application configuration management for seadream.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultModel is the generation model sent when the config does not
// name one, matching the backend's own default.
const DefaultModel = "models/gemini-2.5-pro"

// Config holds the seadream configuration.
type Config struct {
	Theme      string `json:"theme"`                 // UI theme ("dark" or "light")
	Language   string `json:"language,omitempty"`    // Locale override (e.g. "pt-BR")
	BackendURL string `json:"backend_url"`           // Playground backend base URL
	CasesPath  string `json:"cases_path,omitempty"`  // Preset catalog document
	Model      string `json:"model"`                 // Default generation model
	WatchCases bool   `json:"watch_cases"`           // Reload catalog on file change
}

// Dir returns the path to the .seadream directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".seadream"), nil
}

// Path returns the path to the main config file.
func Path() (string, error) {
	configDir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// Load loads the configuration from ~/.seadream/config.json. A missing
// file yields defaults, which are persisted for next time.
func Load() (Config, error) {
	configPath, err := Path()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		cfg := Default()
		if saveErr := Save(cfg); saveErr != nil {
			return cfg, nil // return defaults even if save fails
		}
		return cfg, nil
	} else if err != nil {
		return Config{}, err
	}

	// Start from defaults so missing keys keep working values.
	config := Default()
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}

	if config.Theme == "" {
		config.Theme = "dark"
	}
	if config.BackendURL == "" {
		config.BackendURL = "http://localhost:8000"
	}
	if config.Model == "" {
		config.Model = DefaultModel
	}

	return config, nil
}

// Default returns a default configuration with all defaults set.
func Default() Config {
	return Config{
		Theme:      "dark",
		BackendURL: "http://localhost:8000",
		CasesPath:  filepath.Join("playgrounds", "seedream_cases.json"),
		Model:      DefaultModel,
		WatchCases: true,
	}
}

// Save saves the configuration to ~/.seadream/config.json.
func Save(config Config) error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}
