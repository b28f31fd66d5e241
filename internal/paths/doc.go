// Package paths centralizes filesystem path resolution for murf-setup.
//
// It resolves the user's home directory, the XDG config home (via adrg/xdg),
// and the per-OS default location of the MCP client's configuration file.
// All functions are pure lookups; nothing here touches the filesystem except
// EnsureDir.
package paths
