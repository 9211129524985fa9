package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadServerConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadServerConfig: %v", err)
	}
	want := DefaultConfig()
	if cfg != want {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"board_name": "Test Board", "telnet_port": 6400, "debug": true}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadServerConfig(path)
	if err != nil {
		t.Fatalf("LoadServerConfig: %v", err)
	}
	if cfg.BoardName != "Test Board" {
		t.Errorf("BoardName = %q", cfg.BoardName)
	}
	if cfg.TelnetPort != 6400 {
		t.Errorf("TelnetPort = %d", cfg.TelnetPort)
	}
	if !cfg.Debug {
		t.Error("Debug not set")
	}
	// Unset fields keep their defaults.
	if cfg.WebPort != 8000 {
		t.Errorf("WebPort = %d, want default 8000", cfg.WebPort)
	}
	if cfg.EntryMenu != "ENTRY" {
		t.Errorf("EntryMenu = %q, want default ENTRY", cfg.EntryMenu)
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadServerConfig(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	// The returned config is still usable.
	if cfg.TelnetPort != DefaultConfig().TelnetPort {
		t.Errorf("TelnetPort = %d, want default", cfg.TelnetPort)
	}
}
