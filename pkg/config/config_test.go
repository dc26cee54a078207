package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "firewxd.yaml")
	contents := []byte(`
listen_addr: 127.0.0.1
http_port: 9090
database_path: /var/lib/firewx/runs.db
default_fuel: pine_litter
debug: true
`)
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewYAMLProvider(path).LoadConfig()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.ListenAddr != "127.0.0.1" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.HTTPPort != 9090 {
		t.Errorf("HTTPPort = %d", cfg.HTTPPort)
	}
	if cfg.DatabasePath != "/var/lib/firewx/runs.db" {
		t.Errorf("DatabasePath = %q", cfg.DatabasePath)
	}
	if cfg.DefaultFuel != "pine_litter" {
		t.Errorf("DefaultFuel = %q", cfg.DefaultFuel)
	}
	if !cfg.Debug {
		t.Error("Debug = false, expected true")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewYAMLProvider(path).LoadConfig()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.ListenAddr != "0.0.0.0" {
		t.Errorf("default ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.HTTPPort != 8080 {
		t.Errorf("default HTTPPort = %d", cfg.HTTPPort)
	}
	if cfg.DefaultFuel != "pasture_grass" {
		t.Errorf("default DefaultFuel = %q", cfg.DefaultFuel)
	}
	if cfg.DatabasePath != "" {
		t.Errorf("DatabasePath = %q, expected empty (history disabled)", cfg.DatabasePath)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := NewYAMLProvider("/nonexistent/firewxd.yaml").LoadConfig(); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("listen_addr: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewYAMLProvider(path).LoadConfig(); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
