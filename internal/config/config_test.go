package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.Bind != DefaultBind {
		t.Errorf("expected bind %s, got %s", DefaultBind, cfg.Bind)
	}
	if !cfg.Metrics {
		t.Error("expected metrics enabled by default")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("bind: 127.0.0.1\nport: 9999\naccess_log: /tmp/access.log\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Bind != "127.0.0.1" {
		t.Errorf("unexpected bind: %s", cfg.Bind)
	}
	if cfg.Port != 9999 {
		t.Errorf("unexpected port: %d", cfg.Port)
	}
	if cfg.AccessLog != "/tmp/access.log" {
		t.Errorf("unexpected access log: %s", cfg.AccessLog)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := &Config{Bind: "::1", Port: 8123, Metrics: true}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Bind != cfg.Bind || loaded.Port != cfg.Port {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestGetPreset(t *testing.T) {
	params := GetPreset("double-slit", "red-laser")
	if params == nil {
		t.Fatal("expected preset, got nil")
	}
	if params["wavelength"] != 650.0 {
		t.Errorf("expected wavelength 650, got %v", params["wavelength"])
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("double-slit", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "red-laser") != nil {
		t.Error("expected nil for nonexistent simulation")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("double-slit"); len(presets) == 0 {
		t.Error("expected presets for double-slit")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent simulation")
	}
}
