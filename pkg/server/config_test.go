package server

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "haulage.yaml")
	data := `server_name: testhaul
port: 7000
cmdlog_path: log.db
web_enabled: true
web_port: 9090
editor_mode: true
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ServerName != "testhaul" || cfg.Port != 7000 {
		t.Errorf("identity = %s/%d", cfg.ServerName, cfg.Port)
	}
	if !cfg.WebEnabled || cfg.WebPort != 9090 {
		t.Errorf("web = %v/%d", cfg.WebEnabled, cfg.WebPort)
	}
	if !cfg.EditorMode {
		t.Error("editor_mode not applied")
	}
	// Unset keys keep their defaults.
	if cfg.SavePath != "haulage.db" || cfg.CmdLogRetain != 30 {
		t.Errorf("defaults = %s/%d", cfg.SavePath, cfg.CmdLogRetain)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing config loaded")
	}
}
