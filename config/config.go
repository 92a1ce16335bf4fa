package config

import (
	"fmt"
	"github.com/ncmink/biebie-cli/constants/lipgloss"
	"github.com/ncmink/biebie-cli/uploader"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"
	"strings"
)

// Config represents the structure of the configuration file
type Config struct {
	Version   string              `mapstructure:"version"`
	Theme     string              `mapstructure:"theme"`
	APIConfig *uploader.APIConfig `mapstructure:"api_config"`
}

// DefaultConfig values
var DefaultConfig = Config{
	Version: "1.2.0",
	Theme:   "dracula",
	APIConfig: &uploader.APIConfig{
		BaseURL:        "",
		APIKey:         "",
		TimeoutSeconds: 30,
	},
}

// cfgFile holds the path to the configuration file (set via CLI)
var cfgFile string

// LoadConfigs initializes the configuration from file, flags, and environment variables, and returns the final config.
func LoadConfigs(rootCmd *cobra.Command, cwd string) *Config {
	var config *Config

	// Set default values using Viper
	setDefaults()

	// Automatically read environment variables
	viper.AutomaticEnv()

	// Explicitly bind environment variables to config keys
	bindEnv()

	// Check if the user provided a config file
	if cfgFile != "" {
		// Use the config file from the flag
		viper.SetConfigFile(cfgFile)
		if fileType := GetConfigFileType(cfgFile); fileType != "" {
			viper.SetConfigType(fileType)
		}
	} else {
		// Look for configuration files in the current directory
		viper.SetConfigName("biebie-config") // Name of config file (without extension)
		viper.AddConfigPath(cwd)             // Look in the current working directory

		// Support both JSON and YAML formats
		viper.SetConfigType("yaml") // Set default type
		if err := viper.ReadInConfig(); err != nil {
			// If YAML fails, try JSON
			viper.SetConfigType("json")
			if err := viper.ReadInConfig(); err != nil {
				// If both fail, we'll continue with defaults
				fmt.Println(lipgloss.Yellow.Render("No configuration file found, using defaults"))
			}
		}
	}

	// Read the explicitly specified config file (if any)
	if cfgFile != "" {
		if err := viper.ReadInConfig(); err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error reading config file: %v", err)))
			os.Exit(1)
		}
	}

	// Bind CLI flags to override config values
	bindFlags(rootCmd)

	// Unmarshal the configuration into the Config struct
	if err := viper.Unmarshal(&config); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Unable to decode into struct: %v", err)))
		os.Exit(1)
	}

	return config
}

// setDefaults sets all default configuration values
func setDefaults() {
	viper.SetDefault("version", DefaultConfig.Version)
	viper.SetDefault("theme", DefaultConfig.Theme)
	viper.SetDefault("api_config.base_url", DefaultConfig.APIConfig.BaseURL)
	viper.SetDefault("api_config.api_key", DefaultConfig.APIConfig.APIKey)
	viper.SetDefault("api_config.timeout_seconds", DefaultConfig.APIConfig.TimeoutSeconds)
}

// bindEnv explicitly binds environment variables to configuration keys
func bindEnv() {
	_ = viper.BindEnv("theme", "THEME")
	_ = viper.BindEnv("api_config.base_url", "API_URL")
	_ = viper.BindEnv("api_config.api_key", "API_KEY")
	_ = viper.BindEnv("api_config.timeout_seconds", "UPLOAD_TIMEOUT")
}

// bindFlags binds the CLI flags to configuration values.
func bindFlags(rootCmd *cobra.Command) {
	_ = viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
	_ = viper.BindPFlag("api_config.base_url", rootCmd.PersistentFlags().Lookup("api_url"))
	_ = viper.BindPFlag("api_config.api_key", rootCmd.PersistentFlags().Lookup("api_key"))
	_ = viper.BindPFlag("api_config.timeout_seconds", rootCmd.PersistentFlags().Lookup("upload_timeout"))
}

// InitFlags initializes the flags for the root command.
func InitFlags(rootCmd *cobra.Command) {
	// Use PersistentFlags so that these flags are available in all subcommands
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Specifies the path to a configuration file (JSON or YAML) that contains all the settings for the application.")

	// Theme configuration
	rootCmd.PersistentFlags().String("theme", DefaultConfig.Theme, "Set customize theme for rendering json output. (e.g., 'dracula', 'light', 'dark')")

	// Version flag
	rootCmd.Flags().BoolP("version", "v", false, "Specifies the version of the application.")

	// Metadata API configuration
	rootCmd.PersistentFlags().String("api_url", DefaultConfig.APIConfig.BaseURL, "The endpoint of the metadata API that receives scan inventories.")
	rootCmd.PersistentFlags().String("api_key", DefaultConfig.APIConfig.APIKey, "The API key used to authenticate with the metadata API.")
	rootCmd.PersistentFlags().Int("upload_timeout", DefaultConfig.APIConfig.TimeoutSeconds, "The request timeout in seconds for uploads to the metadata API.")
}

// GetConfigFileType returns the type of the configuration file based on its extension
func GetConfigFileType(filename string) string {
	if strings.HasSuffix(filename, ".json") {
		return "json"
	} else if strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml") {
		return "yaml"
	}
	return ""
}
