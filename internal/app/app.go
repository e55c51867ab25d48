// Package app provides the main application logic for greetly.
package app

import (
	"fmt"
	"io"

	"github.com/greetly-cli/greetly/internal/args"
	"github.com/greetly-cli/greetly/internal/config"
	"github.com/greetly-cli/greetly/internal/greet"
	"github.com/greetly-cli/greetly/pkg/types"
)

// App represents the main greetly application.
type App struct {
	Config  *types.Config
	Greeter *greet.Greeter
}

// New creates a new application instance from the loaded configuration.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return NewWithConfig(cfg), nil
}

// NewWithConfig wires an application from an already validated configuration.
func NewWithConfig(cfg *types.Config) *App {
	return &App{
		Config:  cfg,
		Greeter: greet.New(cfg),
	}
}

// Run resolves the display name from argv and writes the greeting to out.
// argv is the full argument list, program name included. On an invalid
// argument list nothing is written and the validation error is returned.
func (a *App) Run(argv []string, out io.Writer) error {
	name, err := args.ParseName(argv, a.Config.DefaultName)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, a.Greeter.Greet(name))
	return nil
}
