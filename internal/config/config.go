// Package config loads station-64 server configuration from JSON.
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// ServerConfig is the root server configuration.
type ServerConfig struct {
	BoardName string `json:"board_name"`

	TelnetHost    string `json:"telnet_host"`
	TelnetPort    int    `json:"telnet_port"`
	TelnetEnabled bool   `json:"telnet_enabled"`

	WebHost    string `json:"web_host"`
	WebPort    int    `json:"web_port"`
	WebEnabled bool   `json:"web_enabled"`

	SSHHost        string `json:"ssh_host"`
	SSHPort        int    `json:"ssh_port"`
	SSHEnabled     bool   `json:"ssh_enabled"`
	SSHHostKeyPath string `json:"ssh_host_key_path"`

	EntryMenu   string `json:"entry_menu"`
	DefaultMenu string `json:"default_menu"`

	// SessionLogPath enables the JSONL session log collaborator when
	// non-empty. The core itself never touches it.
	SessionLogPath string `json:"session_log_path"`

	// StatsSchedule is a cron expression for the periodic session-stats
	// job; empty disables it.
	StatsSchedule string `json:"stats_schedule"`

	Debug bool `json:"debug"`
}

// DefaultConfig returns the built-in configuration. The telnet default
// stays off port 23: the historical port needs elevated privilege.
func DefaultConfig() ServerConfig {
	return ServerConfig{
		BoardName:      "Station-64 BBS",
		TelnetHost:     "0.0.0.0",
		TelnetPort:     2323,
		TelnetEnabled:  true,
		WebHost:        "0.0.0.0",
		WebPort:        8000,
		WebEnabled:     true,
		SSHHost:        "0.0.0.0",
		SSHPort:        2222,
		SSHEnabled:     false,
		SSHHostKeyPath: "ssh_host_key",
		EntryMenu:      "ENTRY",
		DefaultMenu:    "MAIN",
		StatsSchedule:  "*/5 * * * *",
	}
}

// LoadServerConfig loads configuration from the given JSON file.
// A missing file falls back to defaults; unset fields keep their
// default values.
func LoadServerConfig(filePath string) (ServerConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("WARN: config not found at %s. Using default settings.", filePath)
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config JSON from %s: %w", filePath, err)
	}

	log.Printf("INFO: Loaded server configuration from %s", filePath)
	return cfg, nil
}
