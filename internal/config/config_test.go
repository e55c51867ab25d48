package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/greetly-cli/greetly/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Defaults(t *testing.T) {
	err := validate(&types.Config{Greeting: "Hello", DefaultName: "World"})
	assert.NoError(t, err)
}

func TestValidate_CustomValues(t *testing.T) {
	err := validate(&types.Config{Greeting: "Howdy", DefaultName: "Friend"})
	assert.NoError(t, err)
}

func TestValidate_BlankGreeting(t *testing.T) {
	err := validate(&types.Config{Greeting: "   ", DefaultName: "World"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "greeting")
}

func TestValidate_BlankDefaultName(t *testing.T) {
	err := validate(&types.Config{Greeting: "Hello", DefaultName: ""})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_name")
}

func TestWriteExample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greetly.yaml")

	require.NoError(t, WriteExample(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "greeting: Hello")
	assert.Contains(t, string(data), "default_name: World")
}
