// Package plugin defines the model for osintkit plugins: named bundles of
// commands with typed parameters, registered with a Registry and given a
// narrow logging capability when run.
package plugin

import "fmt"

// DataType is the type of a command parameter.
type DataType int

const (
	// TypeString is a plain text parameter.
	TypeString DataType = iota
)

func (dt DataType) String() string {
	if dt == TypeString {
		return "string"
	}

	return fmt.Sprintf("DataType(%d)", int(dt))
}

// Parameter describes a single required positional parameter of a command.
type Parameter struct {
	Name string
	Type DataType
}

// Args holds the parameter values a command was invoked with, keyed by
// parameter name.
type Args map[string]string

func (a Args) String(name string) string {
	return a[name]
}

// Handler runs a command. It must report its outcome through the given host
// sink rather than returning an error: a handler invocation always emits
// exactly one log event.
type Handler func(host LogSink, args Args)

// Command is a named, host-invocable operation with typed parameters.
type Command struct {
	Name       string
	Usage      string
	Parameters []Parameter
	Run        Handler
}

// Plugin is a named, describable bundle of one or more commands.
//
// Plugins are constructed by an explicit constructor in their own package and
// handed to a Registry at startup; they hold no resources and need no teardown.
type Plugin struct {
	Name        string
	Description string
	Commands    []Command
}
