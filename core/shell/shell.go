// Package shell is the read-eval loop: it reads lines with readline, renders
// the prompt and hands every line to the execution engine.
package shell

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/esh/commands"
	"github.com/josephlewis42/esh/core/config"
	"github.com/josephlewis42/esh/core/engine"
	"github.com/josephlewis42/esh/core/lexer"
	"github.com/josephlewis42/esh/core/parser"
	"github.com/josephlewis42/esh/core/vos"
)

const (
	DefaultPrompt = `\u@\h:\w\$ `
	rootUser      = "root"
)

type Shell struct {
	VirtualOS vos.VOS
	Builtins  *parser.Builtins
	Executor  *engine.Executor

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Prompt is the template rendered before each line.
	Prompt string
	// HistoryLimit caps the in-memory history, 0 keeps everything.
	HistoryLimit int

	history []string

	// readlineActive is set while readline reads the terminal in the
	// background.
	readlineActive bool

	// Set to true to quit the shell
	Quit bool
}

var _ commands.Session = (*Shell)(nil)

// New creates a shell over virtualOS configured by cfg. Failing to load the
// builtin table is fatal.
func New(virtualOS vos.VOS, cfg *config.Configuration, stdin io.Reader, stdout, stderr io.Writer, logger *log.Logger) (*Shell, error) {
	builtins, err := parser.LoadBuiltins()
	if err != nil {
		return nil, fmt.Errorf("loading builtins: %w", err)
	}

	shell := &Shell{
		VirtualOS:    virtualOS,
		Builtins:     builtins,
		Stdin:        stdin,
		Stdout:       stdout,
		Stderr:       stderr,
		Prompt:       cfg.Prompt,
		HistoryLimit: cfg.HistoryLimit,
	}

	dispatcher := commands.NewDispatcher(virtualOS, shell)
	dispatcher.Color = cfg.Color

	shell.Executor = &engine.Executor{
		Fs:         virtualOS,
		Dispatcher: dispatcher,
		Launcher:   &engine.ExecLauncher{Shell: cfg.PipelineShell},
		Env:        virtualOS,
		Log:        logger,
	}

	return shell, nil
}

// Exit implements commands.Session.
func (s *Shell) Exit() {
	s.Quit = true
}

// History implements commands.Session.
func (s *Shell) History() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Shell) record(line string) {
	s.history = append(s.history, line)
	if s.HistoryLimit > 0 && len(s.history) > s.HistoryLimit {
		s.history = s.history[len(s.history)-s.HistoryLimit:]
	}
}

func (s *Shell) prompt() string {
	prompt := s.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	user := s.VirtualOS.Username()
	prompt = strings.ReplaceAll(prompt, `\u`, user)

	host, err := s.VirtualOS.Hostname()
	if err != nil {
		host = "localhost"
	}
	prompt = strings.ReplaceAll(prompt, `\h`, host)

	pwd, _ := s.VirtualOS.Getwd()
	if home, err := s.VirtualOS.UserHomeDir(); err == nil && home != "" {
		if pwd == home || strings.HasPrefix(pwd, home+"/") {
			pwd = "~" + strings.TrimPrefix(pwd, home)
		}
	}
	prompt = strings.ReplaceAll(prompt, `\w`, pwd)

	if user == rootUser {
		prompt = strings.ReplaceAll(prompt, `\$`, "#")
	} else {
		prompt = strings.ReplaceAll(prompt, `\$`, "$")
	}

	return commands.Unescape(prompt)
}

// RunLine records and executes a single line. Failures have already been
// written to the error stream when it returns.
func (s *Shell) RunLine(ctx context.Context, line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	s.record(line)

	ec := engine.NewContext(s.lineStdin(), s.Stdout, s.Stderr)
	return s.Executor.Run(ctx, ec, lexer.Tokenize(line, s.Builtins.IsBuiltin))
}

// lineStdin is the input a line reads when it isn't redirected from a file.
// Readline keeps reading the terminal while the loop runs so lines get no
// input then, pipeline stages see /dev/null and builtins report usage.
func (s *Shell) lineStdin() io.Reader {
	if s.readlineActive {
		return nil
	}
	return s.Stdin
}

// lineReader is the part of readline the loop uses.
type lineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// RunInteractive reads lines until exit or end of input. historyFile may be
// empty to keep history in memory only.
func (s *Shell) RunInteractive(ctx context.Context, historyFile string) error {
	cfg := &readline.Config{
		Prompt:       s.prompt(),
		HistoryFile:  historyFile,
		HistoryLimit: s.HistoryLimit,
		Stdin:        readline.NewCancelableStdin(s.Stdin),
		Stdout:       s.Stdout,
		Stderr:       s.Stderr,
	}
	if err := cfg.Init(); err != nil {
		return err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	defer rl.Close()

	return s.loop(ctx, rl)
}

func (s *Shell) loop(ctx context.Context, rl lineReader) error {
	s.readlineActive = true
	defer func() { s.readlineActive = false }()

	for !s.Quit {
		if err := ctx.Err(); err != nil {
			return err
		}

		rl.SetPrompt(s.prompt())
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			return nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			// Interrupt clears line.
			continue

		case err != nil:
			return err

		default:
			// Diagnostics were printed by the engine and dispatcher.
			_ = s.RunLine(ctx, line)
		}
	}
	return nil
}
