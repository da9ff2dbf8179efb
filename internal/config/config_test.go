package config

import (
	"os"
	"path/filepath"
	"testing"
)

func setTestHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home) // windows
	return home
}

func TestLoad_MissingFileCreatesDefaults(t *testing.T) {
	home := setTestHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q", cfg.Theme)
	}
	if cfg.BackendURL != "http://localhost:8000" {
		t.Errorf("BackendURL = %q", cfg.BackendURL)
	}
	if cfg.Model != DefaultModel {
		t.Errorf("Model = %q", cfg.Model)
	}
	if !cfg.WatchCases {
		t.Error("WatchCases should default on")
	}

	// The defaults are persisted for next time.
	if _, err := os.Stat(filepath.Join(home, ".seadream", "config.json")); err != nil {
		t.Errorf("config not persisted: %v", err)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	home := setTestHome(t)
	dir := filepath.Join(home, ".seadream")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := `{"theme": "light", "language": "pt-BR"}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Theme != "light" || cfg.Language != "pt-BR" {
		t.Errorf("overrides lost: %+v", cfg)
	}
	if cfg.BackendURL != "http://localhost:8000" || cfg.Model != DefaultModel {
		t.Errorf("defaults not filled: %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	setTestHome(t)

	want := Config{
		Theme:      "light",
		Language:   "pt-BR",
		BackendURL: "http://10.0.0.2:9000",
		CasesPath:  "/srv/cases.json",
		Model:      "models/gemini-2.5-flash",
		WatchCases: false,
	}
	if err := Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}
}
