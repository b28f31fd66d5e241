package mcpconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murfai/murf-setup/internal/errors"
	"github.com/murfai/murf-setup/internal/logging"
)

// scriptPrompter replays canned answers to path-recovery prompts.
type scriptPrompter struct {
	answers []string
	asked   int
	err     error
}

func (p *scriptPrompter) Line(message string) (string, error) {
	p.asked++
	if p.err != nil {
		return "", p.err
	}
	if len(p.answers) == 0 {
		return "", nil
	}
	answer := p.answers[0]
	if len(p.answers) > 1 {
		p.answers = p.answers[1:]
	}
	return answer, nil
}

func testEntry() *ServerEntry {
	return &ServerEntry{
		Command: "/usr/local/bin/uvx",
		Args:    []string{"murf-mcp"},
		Env:     map[string]string{"MURF_API_KEY": "test-key"},
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "claude_desktop_config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMerger_Merge_AddsEntry(t *testing.T) {
	path := writeConfig(t, `{"mcpServers": {}}`)
	m := &Merger{Logger: logging.ForTest(t)}

	got, err := m.Merge(path, "Murf", testEntry())
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Contains(t, doc.MCPServers, "Murf")
	assert.Equal(t, "/usr/local/bin/uvx", doc.MCPServers["Murf"].Command)
	assert.Equal(t, []string{"murf-mcp"}, doc.MCPServers["Murf"].Args)
	assert.Equal(t, "test-key", doc.MCPServers["Murf"].Env["MURF_API_KEY"])
}

func TestMerger_Merge_PreservesOtherServersAndKeys(t *testing.T) {
	path := writeConfig(t, `{
  "globalShortcut": "Cmd+Space",
  "mcpServers": {
    "other": {"command": "npx", "args": ["other-server"], "env": {}}
  }
}`)
	m := &Merger{Logger: logging.ForTest(t)}

	_, err := m.Merge(path, "Murf", testEntry())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "globalShortcut", "unrelated top-level key dropped")

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Contains(t, doc.MCPServers, "other")
	assert.Equal(t, "npx", doc.MCPServers["other"].Command)
	assert.Contains(t, doc.MCPServers, "Murf")
}

func TestMerger_Merge_Idempotent(t *testing.T) {
	path := writeConfig(t, `{"mcpServers": {"other": {"command": "npx", "args": [], "env": {}}}}`)
	m := &Merger{Logger: logging.ForTest(t)}

	_, err := m.Merge(path, "Murf", testEntry())
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = m.Merge(path, "Murf", testEntry())
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestMerger_Merge_ReplacesManagedEntry(t *testing.T) {
	path := writeConfig(t, `{"mcpServers": {"Murf": {"command": "stale", "args": ["old"], "env": {"EXTRA": "x"}}}}`)
	m := &Merger{Logger: logging.ForTest(t)}

	_, err := m.Merge(path, "Murf", testEntry())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	entry := doc.MCPServers["Murf"]
	require.NotNil(t, entry)
	assert.Equal(t, "/usr/local/bin/uvx", entry.Command)
	assert.NotContains(t, entry.Env, "EXTRA", "stale entry fields must not survive")
}

func TestMerger_Merge_InvalidJSONStartsFresh(t *testing.T) {
	path := writeConfig(t, `{not json`)
	m := &Merger{Logger: logging.ForTest(t)}

	_, err := m.Merge(path, "Murf", testEntry())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc.MCPServers, 1)
	assert.Contains(t, doc.MCPServers, "Murf")
}

func TestMerger_Merge_EmptyFileStartsFresh(t *testing.T) {
	path := writeConfig(t, "")
	m := &Merger{Logger: logging.ForTest(t)}

	_, err := m.Merge(path, "Murf", testEntry())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc.MCPServers, "Murf")
}

func TestMerger_Merge_RecoversCorrectedPath(t *testing.T) {
	real := writeConfig(t, `{"mcpServers": {}}`)
	missing := filepath.Join(t.TempDir(), "nope", "config.json")
	prompter := &scriptPrompter{answers: []string{real}}
	m := &Merger{Prompter: prompter, Logger: logging.ForTest(t)}

	got, err := m.Merge(missing, "Murf", testEntry())
	require.NoError(t, err)
	assert.Equal(t, real, got)
	assert.Equal(t, 1, prompter.asked)

	data, err := os.ReadFile(real)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Murf")
}

func TestMerger_Merge_ExhaustsAttempts(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "still", "missing.json")
	prompter := &scriptPrompter{answers: []string{missing}}
	m := &Merger{Prompter: prompter, Logger: logging.ForTest(t)}

	_, err := m.Merge(missing, "Murf", testEntry())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfigNotFound))
	assert.Equal(t, DefaultMaxAttempts, prompter.asked)

	// The tool never creates a config file at an arbitrary path.
	_, statErr := os.Stat(missing)
	assert.True(t, os.IsNotExist(statErr))
}

func TestMerger_Merge_NoPrompterFailsImmediately(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	m := &Merger{Logger: logging.ForTest(t)}

	_, err := m.Merge(missing, "Murf", testEntry())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfigNotFound))
}

func TestMerger_Merge_PromptFailurePropagates(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	prompter := &scriptPrompter{err: errors.New("input closed")}
	m := &Merger{Prompter: prompter, Logger: logging.ForTest(t)}

	_, err := m.Merge(missing, "Murf", testEntry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input closed")
}
