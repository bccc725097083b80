// Package engine selects how a tokenized line runs (as a single builtin, a
// redirected builtin or a pipeline of external processes) and owns every
// handle opened along the way.
package engine

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/josephlewis42/esh/core/lexer"
)

var diagnosticColor = color.New(color.FgRed)

// Context is the set of active standard streams and mode flags threaded
// through the execution of a single line.
type Context struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Console is the interactive terminal, it may be the same as Stdout.
	Console io.Writer

	PipelineActive    bool
	RedirectionActive bool
}

// NewContext creates a context whose console is stdout.
func NewContext(stdin io.Reader, stdout, stderr io.Writer) *Context {
	return &Context{
		Stdin:   stdin,
		Stdout:  stdout,
		Stderr:  stderr,
		Console: stdout,
	}
}

// Observe folds the operator markers of a tokenized line into the mode
// flags. A pipeline takes precedence so at most one flag is set.
func (c *Context) Observe(line lexer.Line) {
	c.PipelineActive = line.UsesPipeline
	c.RedirectionActive = line.UsesRedirection && !line.UsesPipeline
}

// Interactive is true when output is neither piped nor redirected.
func (c *Context) Interactive() bool {
	return !c.PipelineActive && !c.RedirectionActive
}

// Output returns the writer handlers print results to. Output is mirrored to
// the console only in the fully interactive case.
func (c *Context) Output() io.Writer {
	if c.Interactive() && c.Console != nil && c.Console != c.Stdout {
		return io.MultiWriter(c.Stdout, c.Console)
	}
	return c.Stdout
}

// Errorf writes a diagnostic line to the active error stream, in red when
// the line is interactive.
func (c *Context) Errorf(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	if c.Interactive() {
		diagnosticColor.Fprint(c.Stderr, msg)
		return
	}
	fmt.Fprint(c.Stderr, msg)
}

// Substitute replaces the non-nil streams and returns a func restoring the
// previous ones.
func (c *Context) Substitute(stdin io.Reader, stdout, stderr io.Writer) (restore func()) {
	oldIn, oldOut, oldErr := c.Stdin, c.Stdout, c.Stderr
	if stdin != nil {
		c.Stdin = stdin
	}
	if stdout != nil {
		c.Stdout = stdout
	}
	if stderr != nil {
		c.Stderr = stderr
	}
	return func() {
		c.Stdin, c.Stdout, c.Stderr = oldIn, oldOut, oldErr
	}
}

// saveFlags returns a func restoring the mode flags.
func (c *Context) saveFlags() (restore func()) {
	pipeline, redirection := c.PipelineActive, c.RedirectionActive
	return func() {
		c.PipelineActive, c.RedirectionActive = pipeline, redirection
	}
}
