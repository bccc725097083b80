package engine

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/anmitsu/go-shlex"
	"github.com/josephlewis42/esh/core/lexer"
	"golang.org/x/sync/errgroup"
)

// SplitPipeline splits tokens at each Pipe. The EndOfInput token is dropped
// and segments may be empty.
func SplitPipeline(tokens []lexer.Token) [][]lexer.Token {
	out := [][]lexer.Token{nil}
	for _, tok := range tokens {
		switch tok.Kind {
		case lexer.Pipe:
			out = append(out, nil)
		case lexer.EndOfInput:
		default:
			out[len(out)-1] = append(out[len(out)-1], tok)
		}
	}
	return out
}

// stageArgv rebuilds the command line of a segment and splits it into
// arguments the way a shell would.
func stageArgv(segment []lexer.Token) ([]string, error) {
	return shlex.Split(lexer.Join(StripRedirections(segment)), true)
}

// checkPlacement rejects redirections of streams that are connected to a
// pipe: only the first stage reads a file and only the last writes its
// output to one.
func checkPlacement(segments [][]lexer.Token) error {
	for i, segment := range segments {
		first, last := i == 0, i == len(segments)-1
		for _, tok := range segment {
			switch tok.Kind {
			case lexer.RedirectIn:
				if first {
					continue
				}
			case lexer.RedirectOutTruncate, lexer.RedirectOutAppend,
				lexer.RedirectOutErrTruncate, lexer.RedirectOutErrAppend:
				if last {
					continue
				}
			default:
				continue
			}
			return &SyntaxError{Near: tok.Lexeme, Err: ErrMisplacedRedirect}
		}
	}
	return nil
}

// runPipeline starts every segment as a process connected to its neighbours
// by pipes, then waits for all of them. Every pipe end and redirection handle
// is closed before returning.
func (e *Executor) runPipeline(ctx context.Context, ec *Context, tokens []lexer.Token) error {
	segments := SplitPipeline(tokens)
	if err := checkPlacement(segments); err != nil {
		e.report(ec, err)
		return err
	}
	dir, environ := e.stageEnv()

	var closers closerList
	defer closers.Close()

	var group errgroup.Group
	var prevRead io.Closer
	var stdin io.Reader = ec.Stdin

	startErr := func() error {
		for i, segment := range segments {
			last := i == len(segments)-1

			argv, err := stageArgv(segment)
			if err != nil {
				return fmt.Errorf("couldn't split stage %d: %w", i+1, err)
			}
			if len(argv) == 0 {
				return &SyntaxError{Near: "|"}
			}

			reds, err := ParseRedirections(e.fs(), segment)
			if err != nil {
				return err
			}
			redsCloser := closers.add(reds)

			stage := Stage{
				Argv:   argv,
				Dir:    dir,
				Env:    environ,
				Stdin:  stdin,
				Stdout: ec.Stdout,
				Stderr: ec.Stderr,
			}
			if reds.Stdin != nil {
				stage.Stdin = reds.Stdin
			}
			if reds.Stderr != nil {
				stage.Stderr = reds.Stderr
			}

			var nextRead *os.File
			var read, write io.Closer
			if last {
				if reds.Stdout != nil {
					stage.Stdout = reds.Stdout
				}
			} else {
				r, w, err := e.pipe()
				if err != nil {
					return fmt.Errorf("couldn't create pipe: %w", err)
				}
				nextRead = r
				stage.Stdout = w
				write = closers.add(w)
				read = closers.add(r)
			}

			process, err := e.launcher().Start(ctx, stage)

			// The child holds its own copies of these now.
			if write != nil {
				write.Close()
			}
			if prevRead != nil {
				prevRead.Close()
			}
			redsCloser.Close()

			if err != nil {
				return err
			}

			name := argv[0]
			group.Go(func() error {
				if err := process.Wait(); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				return nil
			})

			if nextRead != nil {
				prevRead = read
				stdin = nextRead
			}
		}
		return nil
	}()

	if startErr != nil {
		e.report(ec, startErr)
		// Stages that already started see EOF once the pipes close.
		closers.Close()
	}

	if err := group.Wait(); err != nil {
		e.logger().Printf("pipeline stage failed: %v", err)
		if startErr == nil {
			return err
		}
	}
	return startErr
}
