package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	defer func() {
		cfgPath, commandLine = "", ""
	}()

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_commandLine(t *testing.T) {
	stdout, stderr, err := execute(t, "--config", t.TempDir(), "-c", "echo hello")

	assert.NoError(t, err)
	assert.Equal(t, "hello\n", stdout)
	assert.Contains(t, stderr, "did you run init?")
}

func TestRoot_commandLineFails(t *testing.T) {
	_, stderr, err := execute(t, "--config", t.TempDir(), "-c", "head -n")

	assert.ErrorIs(t, err, errLineFailed)
	assert.Contains(t, stderr, "head: usage: head FILE -n COUNT")
}

func TestInitThenRun(t *testing.T) {
	dir := t.TempDir()

	_, stderr, err := execute(t, "--config", dir, "init")
	assert.NoError(t, err)
	assert.Contains(t, stderr, "Writing configuration")

	stdout, stderr, err := execute(t, "--config", dir, "-c", "echo configured")
	assert.NoError(t, err)
	assert.Equal(t, "configured\n", stdout)
	assert.Empty(t, stderr)
}

func TestBuiltins(t *testing.T) {
	stdout, _, err := execute(t, "builtins")

	assert.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Len(t, lines, 28)
	assert.Regexp(t, `^GROUP\s+NAME\s+USAGE$`, lines[0])
	assert.Contains(t, stdout, "file     head         head FILE -n COUNT\n")
}
