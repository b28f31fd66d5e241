// Package commands implements the CLI commands for murf-setup.
package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/murfai/murf-setup/internal/cli/prompt"
	"github.com/murfai/murf-setup/internal/config"
	"github.com/murfai/murf-setup/internal/errors"
	"github.com/murfai/murf-setup/internal/hostinfo"
	"github.com/murfai/murf-setup/internal/installer"
	"github.com/murfai/murf-setup/internal/logging"
	"github.com/murfai/murf-setup/internal/paths"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
const version = "0.1.0"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// clientConfig holds the value of the --client-config flag.
var clientConfig string

// settings holds the configuration loaded during initialization.
var settings *config.Settings

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"path to a murf-setup config file")
	rootCmd.Flags().StringVar(&clientConfig, "client-config", "",
		"path to the MCP client's config file (default: autodetect)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("murf-setup version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	settings, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "murf-setup",
	Short: "Prepare this machine for the Murf MCP server",
	Long: `murf-setup prepares the local machine to run the Murf MCP server.

It installs ffmpeg when it is missing (via Homebrew on macOS, via a
downloaded release archive on Windows) and registers the Murf server in
the Claude desktop client's configuration file. Existing servers and
settings in that file are left untouched.

Run it once per machine; re-running is safe.`,
	Example: `  # Interactive setup
  murf-setup

  # Unattended setup
  MURF_SETUP_API_KEY=... murf-setup -q

  # Client config in a non-standard location
  murf-setup --client-config /path/to/claude_desktop_config.json`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if configLoadErr != nil {
			return errors.NewUserError(configLoadErr,
				"fix or remove the config file and run setup again")
		}
		if clientConfig != "" {
			settings.ClientConfigPath = clientConfig
		}

		inst := &installer.Installer{
			Host:     hostinfo.Detect(),
			Settings: settings,
			Logger:   logging.FromContext(cmd.Context()),
			Prompter: prompt.New(),
		}
		return inst.Run(cmd.Context())
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("MURF_SETUP_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 1 // Debug
				case "2":
					v = 2 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		if err := paths.EnsureDir(filepath.Dir(logFile), 0); err != nil {
			return errors.NewUserError(err, "failed to create log file directory")
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
