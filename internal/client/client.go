// Package client knows the MCP client applications mcpm can target
// (Claude Desktop, Cursor, Windsurf, Cline, Continue, 5ire, Goose) and
// how to edit each client's native server configuration file.
package client

// ServerConfig is a server definition as written into a client's native
// config file: a command to launch plus arguments and environment.
type ServerConfig struct {
	Command string            `json:"command"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// Manager edits one client's native MCP server configuration.
// Implementations do a full read-modify-write of the client's config
// file on every mutation and preserve keys they do not understand.
type Manager interface {
	// Name returns the client identifier used in mcpm config and CLI
	// arguments (e.g. "claude-desktop").
	Name() string

	// DisplayName returns the human-readable client name.
	DisplayName() string

	// ConfigPath returns the path of the client's native config file.
	ConfigPath() string

	// IsInstalled reports whether the client appears to be installed on
	// this machine.
	IsInstalled() bool

	// GetServer returns the named server definition from the client's
	// config, or nil if the client has no such server.
	GetServer(name string) (*ServerConfig, error)

	// AddServer inserts or replaces a server definition in the client's
	// config file.
	AddServer(name string, cfg ServerConfig) error

	// RemoveServer deletes a server definition from the client's config
	// file. Removing an absent server is not an error.
	RemoveServer(name string) error

	// ListServers returns the names of all servers in the client's
	// config, sorted.
	ListServers() ([]string, error)
}
