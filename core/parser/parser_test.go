package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCommand(t *testing.T) {
	cases := map[string]CommandID{
		"ls":      CmdLs,
		"cls":     CmdClear,
		"clear":   CmdClear,
		"head":    CmdHead,
		"kill":    CmdKill,
		"grep":    Unresolved,
		"":        Unresolved,
		"LS":      Unresolved,
		"history": CmdHistory,
	}

	for lexeme, want := range cases {
		t.Run(lexeme, func(t *testing.T) {
			assert.Equal(t, want, ResolveCommand(lexeme))
		})
	}
}

func TestCommandID_String(t *testing.T) {
	assert.Equal(t, "clear", CmdClear.String())
	assert.Equal(t, "ls", CmdLs.String())
	assert.Equal(t, "unresolved", Unresolved.String())
}

func TestResolveFlags(t *testing.T) {
	cases := []struct {
		name    string
		lexemes []string
		want    Flags
	}{
		{"none", nil, 0},
		{"recursive", []string{"-r"}, FlagRecursive},
		{"combined", []string{"-r", "-f"}, FlagRecursive | FlagForce},
		{"unknown ignored", []string{"-z", "--verbose", "-a"}, FlagAll},
		{"help", []string{"--help"}, FlagHelp},
		{"count", []string{"-n"}, FlagCount},
		{"duplicates", []string{"-v", "-v"}, FlagVerbose},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveFlags(tc.lexemes...))
		})
	}
}

func TestFlags_Has(t *testing.T) {
	f := ResolveFlags("-r", "-f")
	assert.True(t, f.Has(FlagRecursive))
	assert.True(t, f.Has(FlagRecursive|FlagForce))
	assert.False(t, f.Has(FlagAll))
	assert.False(t, f.Has(FlagRecursive|FlagAll))
	assert.Equal(t, "-r -f", f.String())
}

func TestGroupOf(t *testing.T) {
	assert.Equal(t, GroupFileIO, GroupOf(CmdHead))
	assert.Equal(t, GroupProcess, GroupOf(CmdPs))
	assert.Equal(t, GroupEnvironment, GroupOf(CmdCd))
	assert.Equal(t, GroupShell, GroupOf(CmdEcho))
	assert.Equal(t, GroupSystem, GroupOf(CmdSystemstats))
	assert.Equal(t, GroupUnknown, GroupOf(Unresolved))
}

func TestBuiltins_consistent(t *testing.T) {
	builtins, err := LoadBuiltins()
	assert.NoError(t, err)

	// Every table entry resolves and lives in the declared group.
	for _, name := range builtins.Names() {
		id := ResolveCommand(name)
		assert.NotEqual(t, Unresolved, id, name)

		info, ok := builtins.Lookup(name)
		assert.True(t, ok)
		assert.Equal(t, GroupOf(id).String(), info.Group, name)
		assert.NotEmpty(t, info.Usage, name)
	}

	// Every resolvable command is in the table.
	for name := range commandTable {
		assert.True(t, builtins.IsBuiltin(name), name)
	}
}

func TestParseBuiltins_errors(t *testing.T) {
	_, err := ParseBuiltins([]byte("commands: {builtin: {}}"))
	assert.Error(t, err)

	_, err = ParseBuiltins([]byte("commands: {builtin: {ls: {unknown: 1}}}"))
	assert.Error(t, err)
}

func TestBuiltins_nil(t *testing.T) {
	var b *Builtins
	assert.False(t, b.IsBuiltin("ls"))
	assert.Empty(t, b.Names())
}
