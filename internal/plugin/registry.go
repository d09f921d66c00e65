package plugin

import (
	"errors"
	"fmt"
)

// Registry holds the plugins loaded into the host, ensuring that plugin and
// command names are unique across all of them.
type Registry struct {
	plugins  []*Plugin
	commands []Command
	owners   map[string]string // command name -> plugin name
	names    map[string]bool
}

func NewRegistry() *Registry {
	return &Registry{
		owners: make(map[string]string),
		names:  make(map[string]bool),
	}
}

// Register adds a plugin and its commands to the registry.
func (r *Registry) Register(p *Plugin) error {
	if p.Name == "" {
		return errors.New("plugin has no name")
	}
	if len(p.Commands) == 0 {
		return fmt.Errorf("plugin %q has no commands", p.Name)
	}
	if r.names[p.Name] {
		return fmt.Errorf("plugin %q is already registered", p.Name)
	}

	for _, command := range p.Commands {
		if command.Name == "" {
			return fmt.Errorf("plugin %q has a command with no name", p.Name)
		}
		if command.Run == nil {
			return fmt.Errorf("command %q of plugin %q has no handler", command.Name, p.Name)
		}
		if owner, ok := r.owners[command.Name]; ok {
			return fmt.Errorf("command %q of plugin %q is already registered by plugin %q", command.Name, p.Name, owner)
		}
	}

	r.names[p.Name] = true
	r.plugins = append(r.plugins, p)

	for _, command := range p.Commands {
		r.owners[command.Name] = p.Name
		r.commands = append(r.commands, command)
	}

	return nil
}

// Plugins returns the registered plugins in registration order.
func (r *Registry) Plugins() []*Plugin {
	return r.plugins
}

// Commands returns the commands of all registered plugins in registration
// order.
func (r *Registry) Commands() []Command {
	return r.commands
}
