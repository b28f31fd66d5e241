// Package shellprofile locates and patches the user's shell startup file.
//
// The installer appends a marker-guarded export block so re-runs detect the
// marker and leave the file untouched.
package shellprofile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/murfai/murf-setup/internal/errors"
)

// Marker lines delimiting the block this tool manages. The begin marker is
// the idempotence sentinel: if it is present anywhere in the file, no
// further write happens.
const (
	BeginMarker = "# >>> Added by murf-setup to include ffmpeg >>>"
	EndMarker   = "# <<< End of murf-setup changes <<<"
)

// Locate maps the invoking shell's identity to its canonical startup file
// beneath home. Unrecognized shells fall back to ~/.profile.
//
//	zsh  -> ~/.zshrc
//	bash -> ~/.bashrc
//	else -> ~/.profile
func Locate(shell, home string) string {
	switch {
	case strings.Contains(shell, "zsh"):
		return filepath.Join(home, ".zshrc")
	case strings.Contains(shell, "bash"):
		return filepath.Join(home, ".bashrc")
	default:
		return filepath.Join(home, ".profile")
	}
}

// LocateCurrent resolves the profile file for the invoking shell ($SHELL)
// under the current user's home directory.
func LocateCurrent() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "resolving home directory")
	}
	return Locate(os.Getenv("SHELL"), home), nil
}

// HasBlock reports whether the profile file already carries the managed block.
// A missing file counts as not patched.
func HasBlock(profilePath string) (bool, error) {
	data, err := os.ReadFile(profilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "reading shell profile")
	}
	return strings.Contains(string(data), BeginMarker), nil
}

// AppendBlock appends the PATH export block for binDir to the profile file,
// creating it if absent. If the marker is already present the file is left
// unchanged and the call reports that nothing was written.
func AppendBlock(profilePath, binDir string) (wrote bool, err error) {
	present, err := HasBlock(profilePath)
	if err != nil {
		return false, err
	}
	if present {
		return false, nil
	}

	f, err := os.OpenFile(profilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return false, errors.Wrap(err, "opening shell profile")
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "closing shell profile")
		}
	}()

	block := fmt.Sprintf("\n%s\nexport PATH=\"%s:$PATH\"\n%s\n", BeginMarker, binDir, EndMarker)
	if _, err := f.WriteString(block); err != nil {
		return false, errors.Wrap(err, "appending to shell profile")
	}

	return true, nil
}
