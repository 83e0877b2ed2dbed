package server

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds server-level configuration parameters, loaded from YAML.
type Config struct {
	// --- Identity ---
	ServerName string `yaml:"server_name"`
	Port       int    `yaml:"port"`

	// --- Console ---
	AliasFile      string `yaml:"alias_file"`       // optional alias definitions, hot-reloaded
	WatchAliasFile bool   `yaml:"watch_alias_file"` // reload alias_file on change

	// --- Persistence ---
	SavePath string `yaml:"save_path"` // bbolt savegame database

	// --- Command log ---
	CmdLogPath   string `yaml:"cmdlog_path"`   // SQLite file, empty disables logging
	CmdLogRetain int    `yaml:"cmdlog_retain"` // days to keep entries, 0 = forever

	// --- Web/metrics ---
	WebEnabled  bool   `yaml:"web_enabled"`  // enable HTTP server (websocket console, metrics)
	WebPort     int    `yaml:"web_port"`
	WebHost     string `yaml:"web_host"`     // bind address, empty = all interfaces
	WebPassword string `yaml:"web_password"` // bcrypt hash; empty allows anyone

	// --- Simulation ---
	EditorMode bool `yaml:"editor_mode"` // start in scenario editor mode
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		ServerName:   "haulage",
		Port:         6250,
		SavePath:     "haulage.db",
		CmdLogRetain: 30,
		WebPort:      8080,
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
