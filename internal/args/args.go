// Package args validates the process argument list and resolves the
// display name to greet.
package args

import (
	"fmt"
	"strings"
)

// DefaultName is greeted when no name argument is supplied.
const DefaultName = "World"

// ExpectedUsage describes the accepted invocation shape.
const ExpectedUsage = "greetly [name]"

const opParseName = "args.ParseName"

// InvalidArgumentsError reports an argument list that does not match the
// expected invocation shape. It carries the operation name, the full
// argument list received and the expected usage, so the failure can be
// diagnosed from the message alone.
type InvalidArgumentsError struct {
	Op            string
	Args          []string
	ExpectedUsage string
}

func (e *InvalidArgumentsError) Error() string {
	return fmt.Sprintf("invalid arguments in %s: expected %q, got %d args %q",
		e.Op, e.ExpectedUsage, len(e.Args), e.Args)
}

// ParseName resolves the display name from the full argument list.
// argv[0] is the program name and argv[1] the optional name; anything
// beyond that fails with an *InvalidArgumentsError. A missing or blank
// name resolves to fallback; a non-blank name is returned verbatim,
// surrounding whitespace included.
func ParseName(argv []string, fallback string) (string, error) {
	if len(argv) >= 3 {
		return "", &InvalidArgumentsError{
			Op:            opParseName,
			Args:          argv,
			ExpectedUsage: ExpectedUsage,
		}
	}

	if len(argv) == 2 && strings.TrimSpace(argv[1]) != "" {
		return argv[1], nil
	}

	return fallback, nil
}
