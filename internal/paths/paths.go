package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"

	"github.com/murfai/murf-setup/internal/hostinfo"
)

// AppName is the application name used for config file naming.
const AppName = "murf-setup"

// clientDirName is the MCP client's directory name under the per-user
// application-data root.
const clientDirName = "Claude"

// clientConfigFile is the MCP client's configuration file name.
const clientConfigFile = "claude_desktop_config.json"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrAppDataNotSet indicates the Windows per-user application-data root
	// (%APPDATA%) is not present in the environment.
	ErrAppDataNotSet = errors.New("APPDATA environment variable not set")

	// ErrNoClientConfigPath indicates the OS family has no default client
	// config location.
	ErrNoClientConfigPath = errors.New("no default client config path for this OS")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// AppConfigDir returns the directory for murf-setup's own configuration.
// Returns: <ConfigHome>/murf-setup/
func AppConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ClientConfigPath returns the default location of the MCP client's JSON
// configuration file for the given OS family.
//
// Platform paths:
//   - darwin: ~/Library/Application Support/Claude/claude_desktop_config.json
//   - windows: %APPDATA%\Claude\claude_desktop_config.json
//
// Returns ErrNoClientConfigPath for other OS families.
func ClientConfigPath(family hostinfo.Family) (string, error) {
	switch family {
	case hostinfo.FamilyDarwin:
		// xdg.ConfigHome is ~/Library/Application Support on macOS, which
		// is exactly where the client keeps its config.
		return filepath.Join(xdg.ConfigHome, clientDirName, clientConfigFile), nil
	case hostinfo.FamilyWindows:
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", ErrAppDataNotSet
		}
		return filepath.Join(appData, clientDirName, clientConfigFile), nil
	default:
		return "", errors.Wrapf(ErrNoClientConfigPath, "os family %q", family)
	}
}
