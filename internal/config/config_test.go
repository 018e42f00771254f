package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sysdbd.yaml")
	body := "listenAddr: 0.0.0.0:9191\nlogLevel: debug\nlogJSON: true\ndebugStore: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ListenAddr != "0.0.0.0:9191" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if !cfg.LogJSON || !cfg.DebugStore {
		t.Errorf("LogJSON/DebugStore not parsed: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/sysdbd.yaml"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.ListenAddr == "" || cfg.LogLevel == "" {
		t.Fatalf("Default() left required fields empty: %+v", cfg)
	}
}
