package commands

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/josephlewis42/esh/core/parser"
)

const defaultLineCount = 10

var (
	headCmd = &SimpleCommand{
		Use:   "head FILE -n COUNT",
		Short: "Print the first COUNT lines of a file or standard input.",
	}

	tailCmd = &SimpleCommand{
		Use:   "tail FILE -n COUNT",
		Short: "Print the last COUNT lines of a file or standard input.",
	}
)

func init() {
	headCmd.Flags().Bool('n', "number of lines to print, 10 by default")
	tailCmd.Flags().Bool('n', "number of lines to print, 10 by default")

	addBuiltin(parser.CmdHead, headCmd, Head)
	addBuiltin(parser.CmdTail, tailCmd, Tail)
}

// lineArgs splits the arguments of head and tail into the optional file and
// the line count. With -n the count is the last argument, or the first when
// the file comes after it.
func lineArgs(cmd *SimpleCommand, call *Call) (file string, count int, err error) {
	args := call.Args
	count = defaultLineCount

	if call.Has(parser.FlagCount) {
		if len(args) == 0 {
			return "", 0, cmd.UsageError()
		}

		countArg, rest := args[len(args)-1], args[:len(args)-1]
		if _, err := strconv.Atoi(countArg); err != nil && len(args) > 1 {
			if _, err := strconv.Atoi(args[0]); err == nil {
				countArg, rest = args[0], args[1:]
			}
		}

		count, err = strconv.Atoi(countArg)
		if err != nil || count < 0 {
			return "", 0, fmt.Errorf("invalid number of lines: %q", countArg)
		}
		args = rest
	}

	switch len(args) {
	case 0:
		return "", count, nil
	case 1:
		return args[0], count, nil
	default:
		return "", 0, cmd.UsageError()
	}
}

// lineSource opens the named file, or the call's input if file is empty.
func lineSource(cmd *SimpleCommand, call *Call, file string) (io.Reader, func(), error) {
	if file == "" {
		stdin := call.Stdin()
		if stdin == nil {
			return nil, nil, cmd.UsageError()
		}
		return stdin, func() {}, nil
	}

	fd, err := call.OS.Open(file)
	if err != nil {
		return nil, nil, pathError(file, err)
	}
	return fd, func() { fd.Close() }, nil
}

// Head prints the first lines of its input.
func Head(call *Call) error {
	file, count, err := lineArgs(headCmd, call)
	if err != nil {
		return err
	}
	r, done, err := lineSource(headCmd, call, file)
	if err != nil {
		return err
	}
	defer done()

	w := call.Stdout()
	scanner := bufio.NewScanner(r)
	for printed := 0; printed < count && scanner.Scan(); printed++ {
		fmt.Fprintln(w, scanner.Text())
	}
	return scanner.Err()
}

// Tail prints the last lines of its input.
func Tail(call *Call) error {
	file, count, err := lineArgs(tailCmd, call)
	if err != nil {
		return err
	}
	r, done, err := lineSource(tailCmd, call, file)
	if err != nil {
		return err
	}
	defer done()

	if count == 0 {
		return nil
	}

	// Only the last count lines are kept, the count may exceed the input.
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if len(lines) > count {
			lines = lines[len(lines)-count:]
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	w := call.Stdout()
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}
