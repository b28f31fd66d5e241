// Package installer orchestrates host preparation for the Murf MCP server:
// ensure ffmpeg is present, collect the API key, and merge the server-launch
// entry into the MCP client's configuration.
package installer

import (
	"context"
	"log/slog"

	"github.com/murfai/murf-setup/internal/config"
	"github.com/murfai/murf-setup/internal/errors"
	"github.com/murfai/murf-setup/internal/ffmpeg"
	"github.com/murfai/murf-setup/internal/hostinfo"
	"github.com/murfai/murf-setup/internal/logging"
	"github.com/murfai/murf-setup/internal/mcpconfig"
	"github.com/murfai/murf-setup/internal/paths"
)

// Prompter covers the interactive input the installer needs.
type Prompter interface {
	Line(message string) (string, error)
	Secret(message string) (string, error)
}

// Installer runs the end-to-end setup for one host.
type Installer struct {
	// Host is the immutable host profile, detected once at startup.
	Host hostinfo.Profile

	// Settings is the resolved configuration.
	Settings *config.Settings

	// Logger receives progress messages.
	Logger *slog.Logger

	// Prompter collects the API key and recovers a misdetected config path.
	Prompter Prompter

	// ensureFFmpeg overrides the per-OS ffmpeg step in tests.
	ensureFFmpeg func(ctx context.Context) error

	// lookupUvx overrides server-command resolution in tests.
	lookupUvx func(logger *slog.Logger) string
}

// Run executes the installation: ffmpeg first, then the config merge.
// Steps run strictly in sequence; a failed step aborts the run.
func (i *Installer) Run(ctx context.Context) error {
	logger := i.Logger
	logger.Info("starting setup", "os", i.Host.Family, "arch", i.Host.Arch)

	if !i.Host.Family.Supported() {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrUnsupportedOS, "%s", i.Host.Family),
			"setup supports macOS and Windows hosts only",
		)
	}

	if err := i.installFFmpeg(ctx); err != nil {
		return err
	}

	return i.mergeClientConfig()
}

// installFFmpeg dispatches the per-OS ffmpeg acquisition.
func (i *Installer) installFFmpeg(ctx context.Context) error {
	if i.ensureFFmpeg != nil {
		return i.ensureFFmpeg(ctx)
	}

	switch i.Host.Family {
	case hostinfo.FamilyDarwin:
		return ffmpeg.EnsureDarwin(ctx, i.Logger)
	case hostinfo.FamilyWindows:
		return ffmpeg.EnsureWindows(ctx, &ffmpeg.WindowsInstaller{
			URL:        i.Settings.FFmpegURL,
			InstallDir: i.Settings.InstallDir,
			Logger:     i.Logger,
		})
	default:
		return errors.Wrapf(errors.ErrUnsupportedOS, "%s", i.Host.Family)
	}
}

// mergeClientConfig builds the server-launch entry and merges it into the
// client's configuration file.
func (i *Installer) mergeClientConfig() error {
	apiKey, err := i.resolveAPIKey()
	if err != nil {
		return err
	}

	entry := &mcpconfig.ServerEntry{
		Command: i.resolveUvx(),
		Args:    []string{i.Settings.ServerPackage},
		Env:     map[string]string{i.Settings.APIKeyVar: apiKey},
	}
	i.Logger.Debug("server entry prepared",
		"command", entry.Command,
		"args", entry.Args,
		"env", logging.MaskSecrets(entry.Env))

	configPath := i.Settings.ClientConfigPath
	if configPath == "" {
		configPath, err = paths.ClientConfigPath(i.Host.Family)
		if err != nil {
			return err
		}
	}

	merger := &mcpconfig.Merger{
		Prompter: i.Prompter,
		Logger:   i.Logger,
	}
	written, err := merger.Merge(configPath, i.Settings.ServerName, entry)
	if err != nil {
		if errors.Is(err, errors.ErrConfigNotFound) {
			return errors.NewUserError(err,
				"install the Claude desktop client, or point client_config_path at its config file")
		}
		return err
	}

	i.Logger.Info("setup complete, restart the client to pick up the new server",
		"server", i.Settings.ServerName, "config", written)
	return nil
}

// resolveAPIKey returns the configured API key, prompting when none is set.
func (i *Installer) resolveAPIKey() (string, error) {
	if i.Settings.APIKey != "" {
		i.Logger.Debug("using API key from configuration")
		return i.Settings.APIKey, nil
	}

	key, err := i.Prompter.Secret("Please enter your Murf API key")
	if err != nil {
		return "", errors.Wrap(err, "reading API key")
	}
	if key == "" {
		return "", errors.NewUserError(errors.New("API key is required"),
			"get an API key from your Murf account and run setup again")
	}
	return key, nil
}

func (i *Installer) resolveUvx() string {
	if i.lookupUvx != nil {
		return i.lookupUvx(i.Logger)
	}
	return ffmpeg.LookupUvx(i.Logger)
}
