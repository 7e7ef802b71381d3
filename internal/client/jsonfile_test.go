package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJSONManager(t *testing.T) *jsonManager {
	t.Helper()
	return &jsonManager{
		name:       "cursor",
		display:    "Cursor",
		path:       filepath.Join(t.TempDir(), "mcp.json"),
		serversKey: "mcpServers",
	}
}

func TestJSONManagerAddCreatesFile(t *testing.T) {
	m := testJSONManager(t)

	err := m.AddServer("fetch", ServerConfig{Command: "uvx", Args: []string{"mcp-server-fetch"}})
	require.NoError(t, err)

	data, err := os.ReadFile(m.path)
	require.NoError(t, err)

	var doc map[string]map[string]ServerConfig
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "uvx", doc["mcpServers"]["fetch"].Command)
	assert.Equal(t, []string{"mcp-server-fetch"}, doc["mcpServers"]["fetch"].Args)
}

func TestJSONManagerPreservesSiblingKeys(t *testing.T) {
	m := testJSONManager(t)
	existing := `{"theme": "dark", "mcpServers": {"old": {"command": "node"}}}`
	require.NoError(t, os.WriteFile(m.path, []byte(existing), 0o644))

	require.NoError(t, m.AddServer("fetch", ServerConfig{Command: "uvx"}))

	data, err := os.ReadFile(m.path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.JSONEq(t, `"dark"`, string(doc["theme"]), "unrelated keys must survive a rewrite")

	names, err := m.ListServers()
	require.NoError(t, err)
	assert.Equal(t, []string{"fetch", "old"}, names)
}

func TestJSONManagerGetServer(t *testing.T) {
	m := testJSONManager(t)
	require.NoError(t, m.AddServer("github", ServerConfig{
		Command: "npx",
		Args:    []string{"-y", "@modelcontextprotocol/server-github"},
		Env:     map[string]string{"GITHUB_TOKEN": "t"},
	}))

	cfg, err := m.GetServer("github")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "npx", cfg.Command)
	assert.Equal(t, map[string]string{"GITHUB_TOKEN": "t"}, cfg.Env)

	missing, err := m.GetServer("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestJSONManagerRemoveServer(t *testing.T) {
	m := testJSONManager(t)
	require.NoError(t, m.AddServer("fetch", ServerConfig{Command: "uvx"}))

	require.NoError(t, m.RemoveServer("fetch"))
	names, err := m.ListServers()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestJSONManagerRemoveAbsentServer(t *testing.T) {
	m := testJSONManager(t)

	// No config file at all: removal is a no-op, not an error.
	require.NoError(t, m.RemoveServer("ghost"))
	_, err := os.Stat(m.path)
	assert.True(t, os.IsNotExist(err), "no-op removal should not create the file")
}

func TestJSONManagerMalformedFile(t *testing.T) {
	m := testJSONManager(t)
	require.NoError(t, os.WriteFile(m.path, []byte("{broken"), 0o644))

	_, err := m.ListServers()
	assert.Error(t, err)
}
