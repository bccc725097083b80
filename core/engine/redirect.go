package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/josephlewis42/esh/core/lexer"
	"github.com/spf13/afero"
)

const (
	truncateFlags = os.O_TRUNC | os.O_CREATE | os.O_WRONLY
	appendFlags   = os.O_APPEND | os.O_CREATE | os.O_WRONLY
)

// ErrMissingTarget is returned when an operator is not followed by a target.
var ErrMissingTarget = errors.New("missing operator target")

// ErrMisplacedRedirect is returned for a pipeline redirection that would
// replace a stream already connected to a pipe.
var ErrMisplacedRedirect = errors.New("redirection conflicts with pipe")

// SyntaxError reports a malformed line.
type SyntaxError struct {
	Near string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error near '%s'", e.Near)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// RedirectError reports a redirection target that couldn't be opened.
type RedirectError struct {
	Path string
	Err  error
}

func (e *RedirectError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *RedirectError) Unwrap() error {
	return e.Err
}

// Target is the stream slot a redirection replaces.
type Target int

const (
	TargetStdin Target = iota
	TargetStdout
	TargetStderr
	TargetStdoutAndStderr
)

// Spec is a single parsed redirection.
type Spec struct {
	Target Target
	Path   string
	Append bool
}

func specFor(kind lexer.Kind, path string) Spec {
	spec := Spec{Path: path, Append: kind.IsAppend()}
	switch kind {
	case lexer.RedirectIn:
		spec.Target = TargetStdin
	case lexer.RedirectOutTruncate, lexer.RedirectOutAppend:
		spec.Target = TargetStdout
	case lexer.RedirectErrTruncate, lexer.RedirectErrAppend:
		spec.Target = TargetStderr
	default:
		spec.Target = TargetStdoutAndStderr
	}
	return spec
}

// isTarget reports whether tok can follow a redirection operator.
func isTarget(tok lexer.Token) bool {
	return tok.Kind != lexer.EndOfInput && !tok.Kind.IsOperator()
}

// ParseSpecs scans operator/target pairs in order.
func ParseSpecs(tokens []lexer.Token) ([]Spec, error) {
	var out []Spec
	for i, tok := range tokens {
		if !tok.Kind.IsRedirection() {
			continue
		}
		if i+1 >= len(tokens) || !isTarget(tokens[i+1]) {
			return nil, &SyntaxError{Near: tok.Lexeme, Err: ErrMissingTarget}
		}
		out = append(out, specFor(tok.Kind, lexer.Unquote(tokens[i+1].Lexeme)))
	}
	return out, nil
}

// StripRedirections returns the tokens without redirection operators and
// their targets.
func StripRedirections(tokens []lexer.Token) []lexer.Token {
	out := make([]lexer.Token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.Kind.IsRedirection() {
			if i+1 < len(tokens) && isTarget(tokens[i+1]) {
				i++
			}
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Redirections holds the handles opened for one command. Each distinct handle
// is closed exactly once by Close.
type Redirections struct {
	Stdin  afero.File
	Stdout afero.File
	Stderr afero.File

	closed bool
}

// OpenRedirections opens the targets of specs in order. When a slot is
// redirected again the handle it held is released unless another slot still
// uses it. On failure every handle opened so far is closed.
func OpenRedirections(fsys afero.Fs, specs []Spec) (*Redirections, error) {
	out := &Redirections{}
	for _, spec := range specs {
		fd, err := openSpec(fsys, spec)
		if err != nil {
			out.Close()
			return nil, &RedirectError{Path: spec.Path, Err: unwrapPathError(err)}
		}

		switch spec.Target {
		case TargetStdin:
			out.replace(&out.Stdin, fd)
		case TargetStdout:
			out.replace(&out.Stdout, fd)
		case TargetStderr:
			out.replace(&out.Stderr, fd)
		case TargetStdoutAndStderr:
			out.replace(&out.Stdout, fd)
			out.replace(&out.Stderr, fd)
		}
	}
	return out, nil
}

// ParseRedirections parses the redirections in tokens and opens them.
func ParseRedirections(fsys afero.Fs, tokens []lexer.Token) (*Redirections, error) {
	specs, err := ParseSpecs(tokens)
	if err != nil {
		return nil, err
	}
	return OpenRedirections(fsys, specs)
}

func openSpec(fsys afero.Fs, spec Spec) (afero.File, error) {
	switch {
	case spec.Target == TargetStdin:
		return fsys.Open(spec.Path)
	case spec.Append:
		return fsys.OpenFile(spec.Path, appendFlags, 0644)
	default:
		return fsys.OpenFile(spec.Path, truncateFlags, 0644)
	}
}

func unwrapPathError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

func (r *Redirections) replace(slot *afero.File, fd afero.File) {
	old := *slot
	*slot = fd
	if old != nil && !r.holds(old) {
		old.Close()
	}
}

func (r *Redirections) holds(fd afero.File) bool {
	return r.Stdin == fd || r.Stdout == fd || r.Stderr == fd
}

// Empty is true if nothing was redirected.
func (r *Redirections) Empty() bool {
	return r.Stdin == nil && r.Stdout == nil && r.Stderr == nil
}

// Close releases every distinct handle once, it's safe to call repeatedly.
func (r *Redirections) Close() error {
	if r == nil || r.closed {
		return nil
	}
	r.closed = true

	var firstErr error
	var seen []afero.File
	for _, fd := range []afero.File{r.Stdin, r.Stdout, r.Stderr} {
		if fd == nil || containsFile(seen, fd) {
			continue
		}
		seen = append(seen, fd)
		if err := fd.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func containsFile(files []afero.File, fd afero.File) bool {
	for _, f := range files {
		if f == fd {
			return true
		}
	}
	return false
}
