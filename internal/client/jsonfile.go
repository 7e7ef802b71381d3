package client

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
)

// jsonManager edits clients whose native config is a JSON document with
// a map of server definitions under a single key (usually "mcpServers").
// Everything outside that key is carried through untouched.
type jsonManager struct {
	name       string
	display    string
	path       string
	serversKey string
	binary     string // executable probed for installation detection, optional
}

// NewClaudeDesktop returns the manager for Claude Desktop.
func NewClaudeDesktop() Manager {
	return &jsonManager{
		name:       "claude-desktop",
		display:    "Claude Desktop",
		path:       claudeDesktopPath(),
		serversKey: "mcpServers",
	}
}

// NewCursor returns the manager for Cursor.
func NewCursor() Manager {
	home, _ := os.UserHomeDir()
	return &jsonManager{
		name:       "cursor",
		display:    "Cursor",
		path:       filepath.Join(home, ".cursor", "mcp.json"),
		serversKey: "mcpServers",
		binary:     "cursor",
	}
}

// NewWindsurf returns the manager for Windsurf.
func NewWindsurf() Manager {
	home, _ := os.UserHomeDir()
	return &jsonManager{
		name:       "windsurf",
		display:    "Windsurf",
		path:       filepath.Join(home, ".codeium", "windsurf", "mcp_config.json"),
		serversKey: "mcpServers",
		binary:     "windsurf",
	}
}

// NewCline returns the manager for Cline.
func NewCline() Manager {
	home, _ := os.UserHomeDir()
	return &jsonManager{
		name:       "cline",
		display:    "Cline",
		path:       filepath.Join(home, ".cline", "mcp_settings.json"),
		serversKey: "mcpServers",
	}
}

// NewFiveire returns the manager for 5ire.
func NewFiveire() Manager {
	return &jsonManager{
		name:       "5ire",
		display:    "5ire",
		path:       fiveirePath(),
		serversKey: "mcpServers",
	}
}

// NewContinue returns the manager for the Continue extension.
func NewContinue() Manager {
	home, _ := os.UserHomeDir()
	return &jsonManager{
		name:       "continue",
		display:    "Continue",
		path:       filepath.Join(home, ".continue", "config.json"),
		serversKey: "mcpServers",
		binary:     "continue",
	}
}

func claudeDesktopPath() string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Claude", "claude_desktop_config.json")
	case "windows":
		appdata := os.Getenv("APPDATA")
		if appdata == "" {
			appdata = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appdata, "Claude", "claude_desktop_config.json")
	default:
		return filepath.Join(home, ".config", "claude", "claude_desktop_config.json")
	}
}

func fiveirePath() string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "5ire", "mcp.json")
	case "windows":
		appdata := os.Getenv("APPDATA")
		if appdata == "" {
			appdata = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appdata, "5ire", "mcp.json")
	default:
		return filepath.Join(home, ".config", "5ire", "mcp.json")
	}
}

func (m *jsonManager) Name() string        { return m.name }
func (m *jsonManager) DisplayName() string { return m.display }
func (m *jsonManager) ConfigPath() string  { return m.path }

func (m *jsonManager) IsInstalled() bool {
	if fileExists(m.path) {
		return true
	}
	if m.binary != "" {
		if _, err := exec.LookPath(m.binary); err == nil {
			return true
		}
	}
	return false
}

func (m *jsonManager) GetServer(name string) (*ServerConfig, error) {
	_, servers, err := m.read()
	if err != nil {
		return nil, err
	}
	raw, ok := servers[name]
	if !ok {
		return nil, nil
	}
	var cfg ServerConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing server %q in %s: %w", name, m.path, err)
	}
	return &cfg, nil
}

func (m *jsonManager) AddServer(name string, cfg ServerConfig) error {
	root, servers, err := m.read()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	servers[name] = raw
	return m.write(root, servers)
}

func (m *jsonManager) RemoveServer(name string) error {
	root, servers, err := m.read()
	if err != nil {
		return err
	}
	if _, ok := servers[name]; !ok {
		return nil
	}
	delete(servers, name)
	return m.write(root, servers)
}

func (m *jsonManager) ListServers() ([]string, error) {
	_, servers, err := m.read()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(servers))
	for name := range servers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// read loads the client config file. A missing file yields an empty
// document so mutations can create it from scratch.
func (m *jsonManager) read() (map[string]json.RawMessage, map[string]json.RawMessage, error) {
	root := map[string]json.RawMessage{}
	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return root, map[string]json.RawMessage{}, nil
		}
		return nil, nil, err
	}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", m.path, err)
	}

	servers := map[string]json.RawMessage{}
	if raw, ok := root[m.serversKey]; ok {
		if err := json.Unmarshal(raw, &servers); err != nil {
			return nil, nil, fmt.Errorf("parsing %s key in %s: %w", m.serversKey, m.path, err)
		}
	}
	return root, servers, nil
}

func (m *jsonManager) write(root, servers map[string]json.RawMessage) error {
	raw, err := json.Marshal(servers)
	if err != nil {
		return err
	}
	root[m.serversKey] = raw

	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0o644)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
