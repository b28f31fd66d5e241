package ffmpeg

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/murfai/murf-setup/internal/errors"
	"github.com/murfai/murf-setup/internal/shellprofile"
	"github.com/murfai/murf-setup/internal/winpath"
)

// WindowsInstaller downloads, extracts, and registers ffmpeg on a Windows
// host that lacks it. Re-running is safe: the PATH append and shell-profile
// patch both detect prior runs and skip their writes.
type WindowsInstaller struct {
	// URL is the release archive to download.
	URL string

	// InstallDir is where the archive is extracted.
	InstallDir string

	// Logger receives step-by-step progress.
	Logger *slog.Logger

	// Client is the HTTP client for the download. Defaults to http.DefaultClient.
	Client *http.Client

	// OpenEnv opens the persistent environment store.
	// Defaults to winpath.OpenUserEnv.
	OpenEnv func() (winpath.Store, error)

	// ProfilePath overrides the shell profile file to patch.
	// Empty means resolve from $SHELL and the home directory.
	ProfilePath string

	// Progress receives download progress. Defaults to a stderr reporter.
	Progress ProgressFunc
}

// EnsureWindows makes sure ffmpeg is installed on a Windows host, running
// the full acquisition pipeline when it is absent.
func EnsureWindows(ctx context.Context, inst *WindowsInstaller) error {
	if path, ok := Present(); ok {
		inst.Logger.Info("ffmpeg is already installed", "path", path)
		return nil
	}
	inst.Logger.Info("ffmpeg is not installed, installing")
	return inst.Run(ctx)
}

// Run executes the acquisition pipeline: download, extract, register the
// bin directory in the user PATH, patch the shell profile, clean up.
func (inst *WindowsInstaller) Run(ctx context.Context) error {
	logger := inst.Logger
	progress := inst.Progress
	if progress == nil {
		progress = stderrProgress
	}

	logger.Info("downloading ffmpeg", "url", inst.URL)
	archive, err := download(ctx, inst.Client, inst.URL, progress)
	if err != nil {
		return err
	}
	defer func() {
		// Best effort: a stale temp archive is not worth failing the run.
		if err := os.Remove(archive); err != nil {
			logger.Warn("failed to delete temporary archive", "path", archive, "error", err)
		}
	}()

	logger.Info("extracting ffmpeg", "dir", inst.InstallDir)
	if err := extractZip(archive, inst.InstallDir); err != nil {
		return err
	}

	binDir, err := resolveBinDir(inst.InstallDir)
	if err != nil {
		return err
	}

	if err := inst.registerPath(binDir); err != nil {
		return err
	}

	logger.Info("ffmpeg installed", "bin", binDir)
	return nil
}

// registerPath appends binDir to the user-scope persistent PATH and, when a
// write actually happens, patches the shell profile. An already-registered
// binDir performs zero writes.
func (inst *WindowsInstaller) registerPath(binDir string) error {
	openEnv := inst.OpenEnv
	if openEnv == nil {
		openEnv = winpath.OpenUserEnv
	}

	store, err := openEnv()
	if err != nil {
		if errors.Is(err, errors.ErrRegistryUnavailable) {
			return errors.Wrapf(err, "please add %q to your PATH manually", binDir)
		}
		return err
	}
	defer store.Close()

	current, err := store.Get()
	if err != nil {
		return err
	}

	updated, changed := winpath.Append(current, binDir)
	if !changed {
		inst.Logger.Info("ffmpeg path is already in PATH", "bin", binDir)
		return nil
	}

	if err := store.Set(updated); err != nil {
		return err
	}
	inst.Logger.Info("added ffmpeg to user PATH", "bin", binDir)

	return inst.patchProfile(binDir)
}

// patchProfile appends the marker-guarded export block to the shell profile.
func (inst *WindowsInstaller) patchProfile(binDir string) error {
	profile := inst.ProfilePath
	if profile == "" {
		var err error
		profile, err = shellprofile.LocateCurrent()
		if err != nil {
			return err
		}
	}

	wrote, err := shellprofile.AppendBlock(profile, binDir)
	if err != nil {
		return err
	}
	if wrote {
		inst.Logger.Info("ffmpeg path added to shell profile", "profile", profile)
		inst.Logger.Info("restart your terminal or source the profile to pick it up")
	} else {
		inst.Logger.Info("ffmpeg path already set in shell profile", "profile", profile)
	}
	return nil
}

// stderrProgress writes an in-place percentage line to stderr.
func stderrProgress(pct int, received, total int64) {
	if pct < 0 {
		fmt.Fprintf(os.Stderr, "\rDownloading: %d bytes", received)
		return
	}
	fmt.Fprintf(os.Stderr, "\rDownloading: %d%%", pct)
	if pct == 100 {
		fmt.Fprintln(os.Stderr)
	}
}
