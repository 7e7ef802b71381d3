// Package config owns the MCPM configuration document: the global JSON
// file that records registered MCP servers, the known clients, and which
// servers are enabled for which client.
package config

import (
	"os"
	"path/filepath"
)

// Version written into freshly created config documents.
const Version = "0.2.0"

// ServerInfo is a registered server entry. The shape is not constrained
// by mcpm; whatever the registering side provides is stored verbatim.
type ServerInfo map[string]any

// ClientEntry is the per-client record inside the config document.
type ClientEntry struct {
	EnabledServers  []string       `json:"enabled_servers"`
	DisabledServers map[string]any `json:"disabled_servers,omitempty"`
	Installed       bool           `json:"installed"`
}

// Config is the root persisted document.
type Config struct {
	Version      string                 `json:"version"`
	ActiveClient string                 `json:"active_client"`
	Servers      map[string]ServerInfo  `json:"servers"`
	Clients      map[string]ClientEntry `json:"clients"`
}

// DefaultPath returns the default config file location
// (~/.config/mcp/config.json).
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "mcp", "config.json")
}
