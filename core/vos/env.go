package vos

import (
	"sort"
	"strings"
	"sync"
)

// Env is the environment the shell hands to the processes it starts. It
// starts as a copy of the host's and follows the shell as it changes
// directory.
type Env struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewEnv creates an environment from "key=value" pairs, later pairs win.
func NewEnv(environ []string) *Env {
	env := &Env{vars: make(map[string]string, len(environ))}
	for _, kv := range environ {
		key, value, _ := strings.Cut(kv, "=")
		env.vars[key] = value
	}
	return env
}

// Getenv returns the variable's value, empty if unset.
func (e *Env) Getenv(key string) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.vars[key]
}

// Setenv sets the variable.
func (e *Env) Setenv(key, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.vars[key] = value
}

// Environ returns the variables as "key=value" pairs sorted by key.
func (e *Env) Environ() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]string, 0, len(e.vars))
	for key, value := range e.vars {
		out = append(out, key+"="+value)
	}
	sort.Strings(out)
	return out
}
