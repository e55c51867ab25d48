// Package types defines core types for the greetly application.
package types

// Config holds the runtime settings for greetly.
type Config struct {
	// Greeting is the word printed before the name.
	Greeting string `yaml:"greeting" mapstructure:"greeting"`

	// DefaultName is greeted when no name argument is given.
	DefaultName string `yaml:"default_name" mapstructure:"default_name"`
}
