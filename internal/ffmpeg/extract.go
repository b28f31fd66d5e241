package ffmpeg

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/murfai/murf-setup/internal/errors"
)

// extractZip extracts the archive fully into destDir, creating it if needed.
// Entries resolving outside destDir are rejected.
func extractZip(archivePath, destDir string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return errors.Wrap(err, "opening archive")
	}
	defer r.Close()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return errors.Wrap(err, "creating install directory")
	}

	for _, f := range r.File {
		if err := extractEntry(f, destDir); err != nil {
			return errors.Wrapf(err, "extracting %q", f.Name)
		}
	}

	return nil
}

func extractEntry(f *zip.File, destDir string) error {
	target, err := securePath(destDir, f.Name)
	if err != nil {
		return err
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.Wrap(err, "creating parent directory")
	}

	rc, err := f.Open()
	if err != nil {
		return errors.Wrap(err, "opening archive entry")
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
	if err != nil {
		return errors.Wrap(err, "creating file")
	}

	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return errors.Wrap(err, "writing file")
	}

	return out.Close()
}

// securePath joins name under destDir and rejects entries that escape it
// (zip slip).
func securePath(destDir, name string) (string, error) {
	target := filepath.Join(destDir, filepath.FromSlash(name))
	if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return "", errors.Newf("archive entry escapes install directory: %s", name)
	}
	return target, nil
}

// resolveBinDir locates the executable directory of the extracted release.
// The archive unpacks to a single versioned top-level directory holding a
// bin subdirectory.
func resolveBinDir(installDir string) (string, error) {
	entries, err := os.ReadDir(installDir)
	if err != nil {
		return "", errors.Wrap(err, "reading install directory")
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	if len(dirs) == 0 {
		return "", errors.New("could not find extracted ffmpeg directory")
	}
	sort.Strings(dirs)

	for _, d := range dirs {
		bin := filepath.Join(installDir, d, "bin")
		if info, err := os.Stat(bin); err == nil && info.IsDir() {
			return bin, nil
		}
	}

	return "", errors.Newf("no bin directory under %s", filepath.Join(installDir, dirs[0]))
}
