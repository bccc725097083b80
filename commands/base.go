// Package commands implements the shell's builtin commands and routes
// resolved commands to them by group.
package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/josephlewis42/esh/core/engine"
	"github.com/josephlewis42/esh/core/parser"
	"github.com/josephlewis42/esh/core/vos"
	getopt "github.com/pborman/getopt/v2"
)

// ErrUsage is returned when a builtin is called with the wrong arguments.
var ErrUsage = errors.New("usage")

// Call holds everything a builtin gets to work with.
type Call struct {
	OS      vos.VOS
	Ctx     *engine.Context
	Flags   parser.Flags
	Args    []string
	Session Session
	Color   ColorPrinter
}

// Stdout is where results are written.
func (c *Call) Stdout() io.Writer {
	return c.Ctx.Output()
}

// Stdin is the redirected or piped input, nil when the line is interactive.
func (c *Call) Stdin() io.Reader {
	if c.Ctx.Interactive() {
		return nil
	}
	return c.Ctx.Stdin
}

// Has reports whether the flag was given.
func (c *Call) Has(flag parser.Flags) bool {
	return c.Flags.Has(flag)
}

// CommandFunc is the body of a builtin.
type CommandFunc func(call *Call) error

// Builtin is a registered builtin command.
type Builtin struct {
	*SimpleCommand
	Run CommandFunc
}

// builtins holds every registered builtin by id.
var builtins = make(map[parser.CommandID]*Builtin)

// addBuiltin registers a command, it panics on duplicates.
func addBuiltin(id parser.CommandID, cmd *SimpleCommand, run CommandFunc) {
	if _, ok := builtins[id]; ok {
		panic(fmt.Sprintf("duplicate builtin %s", id))
	}
	builtins[id] = &Builtin{SimpleCommand: cmd, Run: run}
}

// LookupBuiltin gets a registered builtin.
func LookupBuiltin(id parser.CommandID) (*Builtin, bool) {
	b, ok := builtins[id]
	return b, ok
}

type SimpleCommand struct {
	// Use holds a one line usage string
	Use string
	// Short holds a one line description of the command.
	Short string

	flags *getopt.Set
}

// Flags gets the command's flag set, it's used to describe the options the
// command understands.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
		s.flags.BoolLong("help", 0, "show this help and exit")
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// UsageError wraps ErrUsage with the command's usage line.
func (s *SimpleCommand) UsageError() error {
	return fmt.Errorf("%w: %s", ErrUsage, s.Use)
}

func BytesToHuman(bytes int64) string {
	for _, e := range []struct {
		unit  string
		power int64
	}{
		{"P", 1e15},
		{"T", 1e12},
		{"G", 1e9},
		{"M", 1e6},
		{"K", 1e3},
	} {
		quotient := bytes / e.power
		switch {
		case quotient == 0:
			continue
		case quotient > 10:
			return fmt.Sprintf("%d%s", quotient, e.unit)
		default:
			return fmt.Sprintf("%0.1f%s", float64(bytes)/float64(e.power), e.unit)
		}
	}

	return fmt.Sprintf("%d", bytes)
}

const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

var (
	ColorBoldBlue  = color.New(color.FgBlue, color.Bold)
	ColorBoldGreen = color.New(color.FgGreen, color.Bold)
	ColorBoldCyan  = color.New(color.FgCyan, color.Bold)
	ColorBoldRed   = color.New(color.FgRed, color.Bold)
)

// ColorPrinter decides whether output of a single call is colored.
type ColorPrinter struct {
	// Mode is one of always, auto or never.
	Mode string
	ctx  *engine.Context
}

func (c *ColorPrinter) ShouldColor() bool {
	switch c.Mode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		return c.ctx != nil && c.ctx.Interactive() && !color.NoColor
	}
}

func (c *ColorPrinter) Sprintf(fc *color.Color, format string, a ...interface{}) string {
	if !c.ShouldColor() {
		return fmt.Sprintf(format, a...)
	}
	forced := *fc
	forced.EnableColor()
	return forced.Sprintf(format, a...)
}
