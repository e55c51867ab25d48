package greet

import (
	"testing"

	"github.com/greetly-cli/greetly/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestGreet(t *testing.T) {
	greeter := New(&types.Config{Greeting: "Hello", DefaultName: "World"})

	assert.Equal(t, "Hello, World!", greeter.Greet("World"))
	assert.Equal(t, "Hello, Alice!", greeter.Greet("Alice"))
}

func TestGreet_CustomGreeting(t *testing.T) {
	greeter := New(&types.Config{Greeting: "Howdy", DefaultName: "World"})

	assert.Equal(t, "Howdy, Bob!", greeter.Greet("Bob"))
}

func TestGreet_NameUsedVerbatim(t *testing.T) {
	greeter := New(&types.Config{Greeting: "Hello", DefaultName: "World"})

	assert.Equal(t, "Hello,   Alice  !", greeter.Greet("  Alice  "))
}
