// Package config handles application configuration management.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/greetly-cli/greetly/internal/args"
	"github.com/greetly-cli/greetly/pkg/types"
	"github.com/spf13/viper"
)

// Load reads configuration from files and environment variables.
func Load() (*types.Config, error) {
	// Set defaults
	setDefaults()

	// Configure viper
	viper.SetConfigName("greetly")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.greetly")
	viper.AddConfigPath("/etc/greetly")

	// Environment variable support
	viper.SetEnvPrefix("GREETLY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Read config file (optional)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is acceptable - use defaults and env vars
	}

	var config types.Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults establishes default configuration values.
func setDefaults() {
	viper.SetDefault("greeting", "Hello")
	viper.SetDefault("default_name", args.DefaultName)
}

// validate checks that the configuration is valid.
func validate(config *types.Config) error {
	if strings.TrimSpace(config.Greeting) == "" {
		return fmt.Errorf("greeting must not be blank")
	}

	if strings.TrimSpace(config.DefaultName) == "" {
		return fmt.Errorf("default_name must not be blank")
	}

	return nil
}

// WriteExample creates an example configuration file.
func WriteExample(path string) error {
	example := `# Greetly Configuration File
greeting: Hello       # Word printed before the name
default_name: World   # Name greeted when no argument is given
`

	return os.WriteFile(path, []byte(example), 0644)
}
