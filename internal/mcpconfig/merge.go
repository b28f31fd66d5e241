// Package mcpconfig merges the managed server-launch entry into the MCP
// client's JSON configuration file without destroying anything else in it.
package mcpconfig

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/murfai/murf-setup/internal/errors"
	"github.com/murfai/murf-setup/pkg/fileutil"
)

// DefaultMaxAttempts bounds the interactive path-recovery loop.
const DefaultMaxAttempts = 3

// Prompter supplies a corrected config path when the detected one is missing.
type Prompter interface {
	Line(message string) (string, error)
}

// Merger performs the read-modify-write of the client configuration.
type Merger struct {
	// Prompter recovers a corrected path interactively. Required when the
	// config path may be missing.
	Prompter Prompter

	// Logger receives progress messages.
	Logger *slog.Logger

	// MaxAttempts caps the interactive re-prompt loop.
	// Zero means DefaultMaxAttempts.
	MaxAttempts int
}

// Merge upserts serverName with entry into the config file at configPath,
// prompting for a corrected path when the file is missing. It returns the
// path that was actually written.
//
// The tool only repairs a misdetected path; it never creates a config file
// from nothing, so a path that stays missing after the bounded retry loop
// is ErrConfigNotFound.
func (m *Merger) Merge(configPath, serverName string, entry *ServerEntry) (string, error) {
	path, err := m.resolvePath(configPath)
	if err != nil {
		return "", err
	}

	doc, err := load(path)
	if err != nil {
		return "", err
	}

	doc.Upsert(serverName, entry)

	if err := fileutil.AtomicWriteJSON(path, doc); err != nil {
		return "", errors.Wrap(err, "writing client config")
	}

	m.Logger.Info("config file updated", "path", path, "server", serverName)
	return path, nil
}

// resolvePath returns an existing config path, re-prompting a bounded
// number of times when the candidate is missing.
func (m *Merger) resolvePath(configPath string) (string, error) {
	maxAttempts := m.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	candidate := configPath
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		m.Logger.Warn("config file does not exist", "path", candidate)
		if m.Prompter == nil {
			break
		}

		corrected, err := m.Prompter.Line("Please enter the full path to the config file")
		if err != nil {
			return "", errors.Wrap(err, "reading corrected config path")
		}
		if corrected != "" {
			candidate = corrected
		}
	}

	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return "", errors.Wrapf(errors.ErrConfigNotFound, "at %s", candidate)
}

// load parses the config file. An empty or unparseable document, or one
// lacking the mcpServers mapping, degrades to a fresh mapping; top-level
// keys outside the mapping are preserved whenever the document parses.
func load(path string) (*Document, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading client config")
	}

	if len(data) == 0 {
		return NewDocument(), nil
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		// Unparseable content cannot be preserved; start over with an
		// empty mapping, matching the client's own recovery behavior.
		return NewDocument(), nil
	}

	if doc.MCPServers == nil {
		doc.MCPServers = make(map[string]*ServerEntry)
	}

	return &doc, nil
}
