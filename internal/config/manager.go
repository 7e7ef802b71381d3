package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/mcpm-sh/mcpm/internal/client"
)

// ErrUnknownClient is returned when an operation names a client that is
// not present in the config document.
var ErrUnknownClient = errors.New("unknown client")

// Manager owns the config document for its lifetime: it loads the file
// once at construction and rewrites the whole file after every mutation.
// It is not safe for concurrent use; two processes editing the same file
// race and the last writer wins.
type Manager struct {
	path    string
	clients *client.Registry
	logger  *slog.Logger
	cfg     *Config
}

// NewManager loads the config document at path, creating the containing
// directory and a default document when the file does not exist yet.
// The registry supplies client detection at first run and native-config
// edits on disable.
func NewManager(path string, clients *client.Registry, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{path: path, clients: clients, logger: logger}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating config dir: %w", err)
	}
	if err := m.load(); err != nil {
		return nil, err
	}
	return m, nil
}

// load reads the config file. A malformed file is logged and replaced
// in memory by a default document; the corrupt file stays on disk until
// the next mutation overwrites it.
func (m *Manager) load() error {
	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		m.cfg = m.defaultConfig()
		return m.save()
	}
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		m.logger.Error("error parsing config file, using defaults", "path", m.path, "error", err)
		m.cfg = m.defaultConfig()
		return nil
	}
	if cfg.Servers == nil {
		cfg.Servers = map[string]ServerInfo{}
	}
	if cfg.Clients == nil {
		cfg.Clients = map[string]ClientEntry{}
	}
	m.cfg = cfg
	return nil
}

// defaultConfig builds a fresh document with installation flags probed
// from the environment and the recommended client preselected.
func (m *Manager) defaultConfig() *Config {
	installed := m.clients.DetectInstalled()
	clients := make(map[string]ClientEntry, len(installed))
	for _, name := range m.clients.SupportedClients() {
		clients[name] = ClientEntry{Installed: installed[name]}
	}
	return &Config{
		Version:      Version,
		ActiveClient: m.clients.RecommendedClient(),
		Servers:      map[string]ServerInfo{},
		Clients:      clients,
	}
}

// save rewrites the whole config file. Write errors propagate to the
// caller unhandled.
func (m *Manager) save() error {
	data, err := json.MarshalIndent(m.cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Config returns the in-memory document. Callers share the underlying
// maps and must not hold the result across mutations.
func (m *Manager) Config() *Config {
	return m.cfg
}

// Path returns the config file location this manager owns.
func (m *Manager) Path() string {
	return m.path
}

// ServerInfo returns the registered info for a server name.
func (m *Manager) ServerInfo(name string) (ServerInfo, bool) {
	info, ok := m.cfg.Servers[name]
	return info, ok
}

// AllServers returns the full server map.
func (m *Manager) AllServers() map[string]ServerInfo {
	return m.cfg.Servers
}

// ClientServers returns the enabled servers for a client in enable
// order. Unknown clients yield an empty list rather than an error.
func (m *Manager) ClientServers(clientName string) []string {
	entry, ok := m.cfg.Clients[clientName]
	if !ok {
		return nil
	}
	return entry.EnabledServers
}

// RegisterServer inserts or overwrites a server entry and persists.
//
// Deprecated: servers are normally registered through the client
// managers; this direct path is kept for the add command.
func (m *Manager) RegisterServer(name string, info ServerInfo) error {
	m.cfg.Servers[name] = info
	return m.save()
}

// UnregisterServer removes a server and strips it from every client's
// enabled list. The file is written once no matter how many clients
// referenced the server. Removing an unknown server is a no-op.
func (m *Manager) UnregisterServer(name string) error {
	_, changed := m.cfg.Servers[name]
	delete(m.cfg.Servers, name)
	for clientName, entry := range m.cfg.Clients {
		if i := slices.Index(entry.EnabledServers, name); i >= 0 {
			entry.EnabledServers = slices.Delete(entry.EnabledServers, i, i+1)
			m.cfg.Clients[clientName] = entry
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return m.save()
}

// EnableServerForClient appends a server to a client's enabled list.
// Enabling an already enabled server is a no-op success; the file is
// only written when the list actually changed.
func (m *Manager) EnableServerForClient(server, clientName string) error {
	entry, ok := m.cfg.Clients[clientName]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownClient, clientName)
	}
	if slices.Contains(entry.EnabledServers, server) {
		return nil
	}
	entry.EnabledServers = append(entry.EnabledServers, server)
	m.cfg.Clients[clientName] = entry
	return m.save()
}

// DisableServerForClient removes a server from a client's enabled list
// and tells the client manager to drop it from the client's native
// config. It reports whether the server was actually disabled.
func (m *Manager) DisableServerForClient(server, clientName string) (bool, error) {
	entry, ok := m.cfg.Clients[clientName]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownClient, clientName)
	}
	i := slices.Index(entry.EnabledServers, server)
	if i < 0 {
		return false, nil
	}
	entry.EnabledServers = slices.Delete(entry.EnabledServers, i, i+1)
	m.cfg.Clients[clientName] = entry
	if err := m.save(); err != nil {
		return false, err
	}

	if mgr, ok := m.clients.Get(clientName); ok {
		if err := mgr.RemoveServer(server); err != nil {
			return true, fmt.Errorf("removing %s from %s config: %w", server, clientName, err)
		}
	} else {
		m.logger.Warn("no manager for client, native config not updated",
			"client", clientName, "server", server)
	}
	return true, nil
}

// ActiveClient returns the currently selected client.
func (m *Manager) ActiveClient() string {
	if m.cfg.ActiveClient == "" {
		return "claude-desktop"
	}
	return m.cfg.ActiveClient
}

// SetActiveClient selects the default target client. Unknown names are
// rejected and the previous selection stays in place.
func (m *Manager) SetActiveClient(name string) error {
	if _, ok := m.cfg.Clients[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownClient, name)
	}
	m.cfg.ActiveClient = name
	return m.save()
}

// SupportedClients returns all client names the registry knows.
func (m *Manager) SupportedClients() []string {
	return m.clients.SupportedClients()
}
