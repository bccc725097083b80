package parser

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"sync"

	"sigs.k8s.io/yaml"
)

//go:embed builtins.yaml
var builtinsData []byte

// BuiltinInfo describes a builtin command in the embedded table.
type BuiltinInfo struct {
	Group   string `json:"group"`
	Usage   string `json:"usage"`
	Summary string `json:"summary"`
}

type builtinFile struct {
	Commands struct {
		Builtin map[string]BuiltinInfo `json:"builtin"`
	} `json:"commands"`
}

// Builtins is the immutable table of builtin command names.
type Builtins struct {
	entries map[string]BuiltinInfo
}

var (
	loadOnce   sync.Once
	loaded     *Builtins
	loadErr    error
	errNoTable = errors.New("builtin table is empty")
)

// ParseBuiltins decodes a builtin table resource.
func ParseBuiltins(data []byte) (*Builtins, error) {
	var file builtinFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("couldn't decode builtin table: %w", err)
	}
	if len(file.Commands.Builtin) == 0 {
		return nil, errNoTable
	}
	return &Builtins{entries: file.Commands.Builtin}, nil
}

// LoadBuiltins returns the embedded builtin table, decoding it on first use.
func LoadBuiltins() (*Builtins, error) {
	loadOnce.Do(func() {
		loaded, loadErr = ParseBuiltins(builtinsData)
	})
	return loaded, loadErr
}

// IsBuiltin reports whether name is a builtin command.
func (b *Builtins) IsBuiltin(name string) bool {
	if b == nil {
		return false
	}
	_, ok := b.entries[name]
	return ok
}

// Lookup returns the table entry for name.
func (b *Builtins) Lookup(name string) (BuiltinInfo, bool) {
	if b == nil {
		return BuiltinInfo{}, false
	}
	info, ok := b.entries[name]
	return info, ok
}

// Names returns the sorted builtin names.
func (b *Builtins) Names() []string {
	var out []string
	if b == nil {
		return out
	}
	for name := range b.entries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
