package commands

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// DefaultCommand runs when no command is given.
const DefaultCommand = "run"

// Registry holds registered commands. Names and aliases share one namespace.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Command)}
}

// Register adds c under its name and aliases.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := append([]string{c.Name()}, c.Aliases()...)
	for _, n := range names {
		if _, taken := r.byName[n]; taken {
			return fmt.Errorf("command already registered: %s", n)
		}
	}
	for _, n := range names {
		r.byName[n] = c
	}
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byName[name]
	return c, ok
}

// All returns the registered commands sorted by primary name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	primary := make(map[string]Command)
	for _, c := range r.byName {
		primary[c.Name()] = c
	}
	result := make([]Command, 0, len(primary))
	for _, name := range slices.Sorted(maps.Keys(primary)) {
		result = append(result, primary[name])
	}
	return result
}

// DefaultRegistry is the global command registry, filled by init functions.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry and panics on conflicts.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
