package client

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// gooseManager edits Goose's YAML config. Goose keeps its MCP servers
// under the "extensions" map rather than "mcpServers", and the file
// carries unrelated settings that must survive a rewrite.
type gooseManager struct {
	path string
}

// NewGoose returns the manager for Goose.
func NewGoose() Manager {
	home, _ := os.UserHomeDir()
	return &gooseManager{
		path: filepath.Join(home, ".config", "goose", "config.yaml"),
	}
}

func (m *gooseManager) Name() string        { return "goose" }
func (m *gooseManager) DisplayName() string { return "Goose" }
func (m *gooseManager) ConfigPath() string  { return m.path }

func (m *gooseManager) IsInstalled() bool {
	if fileExists(m.path) {
		return true
	}
	_, err := exec.LookPath("goose")
	return err == nil
}

// gooseExtension is the per-server shape Goose expects. The enabled flag
// and type are Goose-specific; mcpm always writes stdio extensions.
type gooseExtension struct {
	Name    string            `yaml:"name"`
	Type    string            `yaml:"type"`
	Enabled bool              `yaml:"enabled"`
	Cmd     string            `yaml:"cmd"`
	Args    []string          `yaml:"args,omitempty"`
	Envs    map[string]string `yaml:"envs,omitempty"`
}

func (m *gooseManager) GetServer(name string) (*ServerConfig, error) {
	_, exts, err := m.read()
	if err != nil {
		return nil, err
	}
	raw, ok := exts[name]
	if !ok {
		return nil, nil
	}
	var ext gooseExtension
	if err := raw.Decode(&ext); err != nil {
		return nil, fmt.Errorf("parsing extension %q in %s: %w", name, m.path, err)
	}
	return &ServerConfig{Command: ext.Cmd, Args: ext.Args, Env: ext.Envs}, nil
}

func (m *gooseManager) AddServer(name string, cfg ServerConfig) error {
	root, exts, err := m.read()
	if err != nil {
		return err
	}
	var node yaml.Node
	if err := node.Encode(gooseExtension{
		Name:    name,
		Type:    "stdio",
		Enabled: true,
		Cmd:     cfg.Command,
		Args:    cfg.Args,
		Envs:    cfg.Env,
	}); err != nil {
		return err
	}
	exts[name] = node
	return m.write(root, exts)
}

func (m *gooseManager) RemoveServer(name string) error {
	root, exts, err := m.read()
	if err != nil {
		return err
	}
	if _, ok := exts[name]; !ok {
		return nil
	}
	delete(exts, name)
	return m.write(root, exts)
}

func (m *gooseManager) ListServers() ([]string, error) {
	_, exts, err := m.read()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(exts))
	for name := range exts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *gooseManager) read() (map[string]yaml.Node, map[string]yaml.Node, error) {
	root := map[string]yaml.Node{}
	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return root, map[string]yaml.Node{}, nil
		}
		return nil, nil, err
	}
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", m.path, err)
	}

	exts := map[string]yaml.Node{}
	if raw, ok := root["extensions"]; ok {
		if err := raw.Decode(&exts); err != nil {
			return nil, nil, fmt.Errorf("parsing extensions in %s: %w", m.path, err)
		}
	}
	return root, exts, nil
}

func (m *gooseManager) write(root map[string]yaml.Node, exts map[string]yaml.Node) error {
	var node yaml.Node
	if err := node.Encode(exts); err != nil {
		return err
	}
	root["extensions"] = node

	data, err := yaml.Marshal(root)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0o644)
}
