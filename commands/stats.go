package commands

import (
	"fmt"
	"io"
	"unicode"

	"github.com/josephlewis42/esh/core/parser"
)

var statsCmd = &SimpleCommand{
	Use:   "stats FILE",
	Short: "Show line, word and byte counts plus file metadata.",
}

func init() {
	addBuiltin(parser.CmdStats, statsCmd, Stats)
}

type wcCount struct {
	bytes int
	lines int
	chars int
	words int

	inSpace bool
}

func (w *wcCount) Write(data []byte) (int, error) {
	for _, c := range data {
		isFirstByte := w.bytes == 0
		w.bytes++

		// Assume UTF-8 characters. Bytes following the leading byte always
		// have MSB of 0b10 indicating they're part of a previous character.
		if c < 0b10000000 || c > 0b10111111 {
			w.chars++
		}

		if c == '\n' {
			w.lines++
		}

		if unicode.IsSpace(rune(c)) {
			w.inSpace = true
		} else {
			if w.inSpace || isFirstByte {
				w.words++
			}
			w.inSpace = false
		}
	}

	return len(data), nil
}

func newWcCount(fd io.Reader) (*wcCount, error) {
	var out wcCount
	if _, err := io.Copy(&out, fd); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats prints counts and metadata for each file, or counts for its input
// when the line is piped or redirected.
func Stats(call *Call) error {
	w := call.Stdout()

	printCounts := func(count *wcCount) {
		fmt.Fprintf(w, " Lines: %d  Words: %d  Chars: %d  Bytes: %d\n", count.lines, count.words, count.chars, count.bytes)
	}

	if len(call.Args) == 0 {
		stdin := call.Stdin()
		if stdin == nil {
			return statsCmd.UsageError()
		}
		count, err := newWcCount(stdin)
		if err != nil {
			return err
		}
		printCounts(count)
		return nil
	}

	var failed error
	for i, name := range call.Args {
		if err := statFile(call, name, i > 0, printCounts); err != nil {
			call.Ctx.Errorf("stats: %s: %v", name, unwrapPathError(err))
			failed = reported(err)
		}
	}
	return failed
}

func statFile(call *Call, name string, separate bool, printCounts func(*wcCount)) error {
	info, err := call.OS.Stat(name)
	if err != nil {
		return err
	}

	w := call.Stdout()
	if separate {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "  File: %s\n", name)
	fmt.Fprintf(w, "  Size: %d (%s)\n", info.Size(), BytesToHuman(info.Size()))
	fmt.Fprintf(w, "  Mode: %s\n", info.Mode())
	fmt.Fprintf(w, "Modify: %s\n", info.ModTime().Format("2006-01-02 15:04:05 -0700"))
	if info.IsDir() {
		return nil
	}

	fd, err := call.OS.Open(name)
	if err != nil {
		return err
	}
	defer fd.Close()

	count, err := newWcCount(fd)
	if err != nil {
		return err
	}
	printCounts(count)
	return nil
}
