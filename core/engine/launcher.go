package engine

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
)

// NotFoundError is returned when a pipeline stage names no executable.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: command not found", e.Name)
}

// Stage is a single process of a pipeline.
type Stage struct {
	Argv []string
	// Dir and Env are the working directory and environment of the process,
	// empty values inherit the shell process's.
	Dir    string
	Env    []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Process is a started pipeline stage.
type Process interface {
	Wait() error
}

// Launcher starts pipeline stages as processes.
type Launcher interface {
	Start(ctx context.Context, stage Stage) (Process, error)
}

// ExecLauncher starts stages with os/exec.
type ExecLauncher struct {
	// Shell, if set, runs every stage as `Shell -c LINE`.
	Shell string
}

var _ Launcher = (*ExecLauncher)(nil)

// Start implements Launcher.
func (l *ExecLauncher) Start(ctx context.Context, stage Stage) (Process, error) {
	if len(stage.Argv) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	var cmd *exec.Cmd
	if l.Shell != "" {
		cmd = exec.CommandContext(ctx, l.Shell, "-c", strings.Join(stage.Argv, " "))
	} else {
		name := stage.Argv[0]
		if strings.Contains(name, "/") && !filepath.IsAbs(name) && stage.Dir != "" {
			name = filepath.Join(stage.Dir, name)
		}
		path, err := exec.LookPath(name)
		if err != nil {
			return nil, &NotFoundError{Name: stage.Argv[0]}
		}
		cmd = exec.CommandContext(ctx, path, stage.Argv[1:]...)
		cmd.Args[0] = stage.Argv[0]
	}
	cmd.Dir = stage.Dir
	cmd.Env = stage.Env
	cmd.Stdin = stage.Stdin
	cmd.Stdout = stage.Stdout
	cmd.Stderr = stage.Stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%s: %w", stage.Argv[0], err)
	}
	return cmd, nil
}
