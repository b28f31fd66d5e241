package mcpconfig

import "encoding/json"

// ServerEntry is a server-launch descriptor: everything the MCP client
// needs to start a companion server process.
type ServerEntry struct {
	// Command is the executable path.
	Command string `json:"command"`

	// Args are the command-line arguments, in order.
	Args []string `json:"args"`

	// Env contains environment variables passed to the server process.
	Env map[string]string `json:"env"`
}

// Document represents the client's configuration file: a top-level
// mcpServers mapping plus whatever other top-level keys the client keeps
// there. Unknown fields are captured on load and re-emitted on save so a
// merge never destroys them.
type Document struct {
	// MCPServers maps server names to their launch descriptors.
	MCPServers map[string]*ServerEntry `json:"mcpServers"`

	// unknownFields stores any JSON fields not explicitly defined in this
	// struct, preserving the client's own settings across a rewrite.
	unknownFields map[string]json.RawMessage
}

// NewDocument returns an empty document with an initialized server mapping.
func NewDocument() *Document {
	return &Document{
		MCPServers: make(map[string]*ServerEntry),
	}
}

// Upsert installs entry under name, fully replacing any prior entry of the
// same name. The replacement is deliberate: the managed entry is canonical
// and is never deep-merged with user edits.
func (d *Document) Upsert(name string, entry *ServerEntry) {
	if d.MCPServers == nil {
		d.MCPServers = make(map[string]*ServerEntry)
	}
	d.MCPServers[name] = entry
}

// MarshalJSON implements json.Marshaler to include unknown fields in output.
// Unknown fields are emitted from their captured raw bytes, so values this
// tool never interprets (large integers, exact number notation) re-emerge
// unchanged.
func (d *Document) MarshalJSON() ([]byte, error) {
	result := make(map[string]json.RawMessage, len(d.unknownFields)+1)

	// Copy unknown fields first (so known fields take precedence)
	for k, v := range d.unknownFields {
		result[k] = v
	}

	servers, err := json.Marshal(d.MCPServers)
	if err != nil {
		return nil, err
	}
	result["mcpServers"] = servers

	return json.Marshal(result)
}

// UnmarshalJSON implements json.Unmarshaler to capture unknown fields.
func (d *Document) UnmarshalJSON(data []byte) error {
	// First, unmarshal into a generic map to capture all fields
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	// Extract the known field
	if serversData, ok := raw["mcpServers"]; ok {
		if err := json.Unmarshal(serversData, &d.MCPServers); err != nil {
			return err
		}
		delete(raw, "mcpServers")
	}

	// Store remaining fields as unknown
	if len(raw) > 0 {
		d.unknownFields = raw
	}

	return nil
}
