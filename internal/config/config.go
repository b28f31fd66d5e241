// Package config provides configuration management for murf-setup using Viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/murfai/murf-setup/internal/paths"
)

// Default values for installer settings. Every one of them can be
// overridden via config file or MURF_SETUP_* environment variables.
const (
	// DefaultServerName is the key the installer manages inside the
	// client's mcpServers mapping.
	DefaultServerName = "Murf"

	// DefaultServerPackage is the package uvx runs to start the server.
	DefaultServerPackage = "murf-mcp"

	// DefaultAPIKeyVar is the environment variable name the server entry
	// carries the API key under.
	DefaultAPIKeyVar = "MURF_API_KEY"

	// DefaultFFmpegURL is the fixed Windows ffmpeg release archive.
	DefaultFFmpegURL = "https://www.gyan.dev/ffmpeg/builds/ffmpeg-release-essentials.zip"

	// DefaultInstallDir is where the Windows archive is extracted.
	DefaultInstallDir = `C:\ffmpeg`
)

// Settings holds the resolved installer configuration.
type Settings struct {
	ServerName    string `mapstructure:"server_name" yaml:"server_name"`
	ServerPackage string `mapstructure:"server_package" yaml:"server_package"`
	APIKeyVar     string `mapstructure:"api_key_var" yaml:"api_key_var"`
	FFmpegURL     string `mapstructure:"ffmpeg_url" yaml:"ffmpeg_url"`
	InstallDir    string `mapstructure:"install_dir" yaml:"install_dir"`

	// ClientConfigPath overrides the per-OS default location of the
	// client's JSON config file. Empty means autodetect.
	ClientConfigPath string `mapstructure:"client_config_path" yaml:"client_config_path"`

	// APIKey lets unattended runs skip the interactive prompt
	// (MURF_SETUP_API_KEY). Never written to disk by this tool.
	APIKey string `mapstructure:"api_key" yaml:"-"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.AppConfigDir())

	// Environment variable support
	viper.SetEnvPrefix("MURF_SETUP")
	viper.AutomaticEnv()

	viper.SetDefault("server_name", DefaultServerName)
	viper.SetDefault("server_package", DefaultServerPackage)
	viper.SetDefault("api_key_var", DefaultAPIKeyVar)
	viper.SetDefault("ffmpeg_url", DefaultFFmpegURL)
	viper.SetDefault("install_dir", DefaultInstallDir)

	// No default values, but the keys must be registered or AutomaticEnv
	// will not surface MURF_SETUP_API_KEY / MURF_SETUP_CLIENT_CONFIG_PATH
	// during Unmarshal.
	viper.SetDefault("client_config_path", "")
	viper.SetDefault("api_key", "")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded settings or default values if no file is found (when path is empty).
func Load(path string) (*Settings, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &s, nil
}
