// Package greet renders the greeting line for a resolved display name.
package greet

import (
	"fmt"

	"github.com/greetly-cli/greetly/pkg/types"
)

// Greeter formats greetings using the configured greeting word.
type Greeter struct {
	greeting string
}

// New creates a Greeter from the loaded configuration.
func New(cfg *types.Config) *Greeter {
	return &Greeter{greeting: cfg.Greeting}
}

// Greet returns "<greeting>, <name>!".
func (g *Greeter) Greet(name string) string {
	return fmt.Sprintf("%s, %s!", g.greeting, name)
}
