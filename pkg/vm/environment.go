package vm

import (
	"sort"

	"github.com/zurustar/mybash/pkg/value"
)

// Environment maps variable names to their current values.
// There is a single flat scope for the whole run.
type Environment struct {
	variables map[string]value.Value
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{
		variables: make(map[string]value.Value),
	}
}

// Get retrieves a variable value by name.
func (e *Environment) Get(name string) (value.Value, bool) {
	v, ok := e.variables[name]
	return v, ok
}

// Set inserts or overwrites a variable.
func (e *Environment) Set(name string, v value.Value) {
	e.variables[name] = v
}

// Len returns the number of variables.
func (e *Environment) Len() int {
	return len(e.variables)
}

// Names returns the variable names in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.variables))
	for name := range e.variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
