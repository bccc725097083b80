package engine

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/josephlewis42/esh/core/lexer"
	"github.com/josephlewis42/esh/core/parser"
	"github.com/spf13/afero"
)

// Dispatcher runs a resolved builtin. Implementations report failures on the
// context's error stream before returning them.
type Dispatcher interface {
	Dispatch(id parser.CommandID, flags parser.Flags, args []string, ec *Context) error
}

// StageEnv is the part of the shell's state pipeline stages inherit.
type StageEnv interface {
	Getwd() (string, error)
	Environ() []string
}

// Executor runs tokenized lines.
type Executor struct {
	// Fs opens redirection targets, defaults to the OS filesystem.
	Fs afero.Fs
	// Dispatcher runs builtins on the simple and redirected paths.
	Dispatcher Dispatcher
	// Launcher starts pipeline stages, defaults to ExecLauncher.
	Launcher Launcher
	// Pipe creates the pipes between stages, defaults to os.Pipe.
	Pipe func() (r *os.File, w *os.File, err error)
	// Env supplies the working directory and environment of pipeline
	// stages, nil leaves both to the launcher.
	Env StageEnv
	// Log receives diagnostics that aren't shown to the user.
	Log *log.Logger
}

func (e *Executor) fs() afero.Fs {
	if e.Fs == nil {
		return afero.NewOsFs()
	}
	return e.Fs
}

func (e *Executor) launcher() Launcher {
	if e.Launcher == nil {
		return &ExecLauncher{}
	}
	return e.Launcher
}

func (e *Executor) pipe() (*os.File, *os.File, error) {
	if e.Pipe == nil {
		return os.Pipe()
	}
	return e.Pipe()
}

func (e *Executor) stageEnv() (dir string, environ []string) {
	if e.Env == nil {
		return "", nil
	}
	if wd, err := e.Env.Getwd(); err == nil {
		dir = wd
	}
	return dir, e.Env.Environ()
}

func (e *Executor) logger() *log.Logger {
	if e.Log == nil {
		return log.New(io.Discard, "", 0)
	}
	return e.Log
}

// report writes an engine failure to the active error stream.
func (e *Executor) report(ec *Context, err error) {
	ec.Errorf("esh: %v", err)
}

// Run executes one line. Pipelines take precedence over redirections; the
// mode flags and streams of ec are restored before returning.
func (e *Executor) Run(ctx context.Context, ec *Context, line lexer.Line) error {
	defer ec.saveFlags()()
	ec.Observe(line)

	switch {
	case ec.PipelineActive:
		return e.runPipeline(ctx, ec, line.Tokens)
	case ec.RedirectionActive:
		return e.runRedirected(ec, line.Tokens)
	default:
		return e.runSimple(ec, line.Tokens)
	}
}

// runRedirected opens the redirection targets, substitutes them into the
// context for the duration of the builtin and releases them afterwards.
func (e *Executor) runRedirected(ec *Context, tokens []lexer.Token) error {
	reds, err := ParseRedirections(e.fs(), tokens)
	if err != nil {
		e.report(ec, err)
		return err
	}
	defer reds.Close()

	// Typed nils must not reach Substitute.
	var stdin io.Reader
	var stdout, stderr io.Writer
	if reds.Stdin != nil {
		stdin = reds.Stdin
	}
	if reds.Stdout != nil {
		stdout = reds.Stdout
	}
	if reds.Stderr != nil {
		stderr = reds.Stderr
	}
	restore := ec.Substitute(stdin, stdout, stderr)
	defer restore()

	return e.runSimple(ec, StripRedirections(tokens))
}

// Invocation is a builtin call extracted from a token stream.
type Invocation struct {
	ID    parser.CommandID
	Flags parser.Flags
	Args  []string
}

// ParseInvocation takes the first Command token as the command, folds Flag
// tokens into a bitmask and keeps everything else that isn't an operator as
// positional arguments in order.
func ParseInvocation(tokens []lexer.Token) (Invocation, bool) {
	var out Invocation
	found := false
	var flags []string

	for _, tok := range tokens {
		switch {
		case tok.Kind == lexer.Command && !found:
			out.ID = parser.ResolveCommand(tok.Lexeme)
			found = true
		case tok.Kind == lexer.Flag:
			flags = append(flags, tok.Lexeme)
		case tok.Kind == lexer.QuotedString:
			out.Args = append(out.Args, lexer.Unquote(tok.Lexeme))
		case tok.Kind == lexer.EndOfInput, tok.Kind.IsOperator():
		default:
			out.Args = append(out.Args, tok.Lexeme)
		}
	}
	out.Flags = parser.ResolveFlags(flags...)

	return out, found && out.ID != parser.Unresolved
}

// runSimple dispatches the line's builtin, a line without one is a no-op.
func (e *Executor) runSimple(ec *Context, tokens []lexer.Token) error {
	inv, ok := ParseInvocation(tokens)
	if !ok || e.Dispatcher == nil {
		return nil
	}
	return e.Dispatcher.Dispatch(inv.ID, inv.Flags, inv.Args, ec)
}
