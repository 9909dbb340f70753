package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	content := `
app:
  name: "Test Stockroom"
database:
  path: "/tmp/test-inventory.db"
  wal_mode: true
  busy_timeout: 5
logging:
  level: "debug"
  format: "text"
`
	cfg, err := Load(writeConfigFile(t, content))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Name != "Test Stockroom" {
		t.Errorf("App.Name = %q, want %q", cfg.App.Name, "Test Stockroom")
	}
	if cfg.Database.Path != "/tmp/test-inventory.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "/tmp/test-inventory.db")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	// A minimal file should inherit every default
	cfg, err := Load(writeConfigFile(t, "app:\n  name: Minimal\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Path != "./data/inventory.db" {
		t.Errorf("Database.Path = %q, want default", cfg.Database.Path)
	}
	if !cfg.Database.WALMode {
		t.Error("Database.WALMode = false, want default true")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want default info", cfg.Logging.Level)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfigFile(t, "invalid: [yaml: content"))
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	content := `
app:
  name: ""
database:
  path: ""
`
	_, err := Load(writeConfigFile(t, content))
	if err == nil {
		t.Error("Load() expected validation error, got nil")
	}
}

func TestLoad_InMemoryNeedsNoPath(t *testing.T) {
	content := `
app:
  name: Tests
database:
  path: ""
  in_memory: true
`
	cfg, err := Load(writeConfigFile(t, content))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Database.InMemory {
		t.Error("Database.InMemory = false, want true")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STOCKROOM_DATABASE_PATH", "/override/inventory.db")
	t.Setenv("STOCKROOM_LOGGING_LEVEL", "warn")

	cfg, err := Load(writeConfigFile(t, "app:\n  name: Env\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Path != "/override/inventory.db" {
		t.Errorf("Database.Path = %q, want env override", cfg.Database.Path)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestValidate_RejectsUnknownLogLevel(t *testing.T) {
	cfg := defaultConfig()
	cfg.Logging.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() expected error for unknown log level, got nil")
	}
}
