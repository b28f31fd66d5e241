// Package ffmpeg ensures the ffmpeg dependency is present on the host.
//
// Presence is checked against the execution path. When absent, macOS hosts
// install through Homebrew and Windows hosts through the download pipeline
// in this package. This is the only part of the tool that installs system
// software.
package ffmpeg

import (
	"context"
	"log/slog"
	"os"
	"os/exec"

	"github.com/murfai/murf-setup/internal/errors"
)

// Present reports whether an ffmpeg executable resolves on the current
// execution path, and where.
func Present() (string, bool) {
	path, err := exec.LookPath("ffmpeg")
	return path, err == nil
}

// LookupUvx resolves the uvx executable on the execution path. When uvx is
// not found the bare name is returned so the client can resolve it at
// launch time.
func LookupUvx(logger *slog.Logger) string {
	path, err := exec.LookPath("uvx")
	if err != nil {
		logger.Warn("uvx not found in PATH, defaulting to bare name", "command", "uvx")
		return "uvx"
	}
	return path
}

// EnsureDarwin makes sure ffmpeg is installed on a macOS host.
//
// A present ffmpeg is a no-op. Otherwise Homebrew must be on the path
// (ErrPrerequisiteMissing if it is not) and `brew install ffmpeg` runs with
// its output streamed through; brew's exit status is authoritative and
// there is no retry.
func EnsureDarwin(ctx context.Context, logger *slog.Logger) error {
	if path, ok := Present(); ok {
		logger.Info("ffmpeg is already installed", "path", path)
		return nil
	}

	if _, err := exec.LookPath("brew"); err != nil {
		return errors.Wrap(errors.ErrPrerequisiteMissing, "Homebrew is not installed")
	}

	logger.Info("ffmpeg is not installed, installing via Homebrew")

	cmd := exec.CommandContext(ctx, "brew", "install", "ffmpeg")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "brew install ffmpeg")
	}

	logger.Info("ffmpeg installed")
	return nil
}
