package commands

import (
	"errors"
	"io/fs"

	"github.com/josephlewis42/esh/core/parser"
)

var rmCmd = &SimpleCommand{
	Use:   "rm [-r] [-f] PATH",
	Short: "Remove a file, or a directory tree with -r.",
}

func init() {
	rmCmd.Flags().Bool('r', "remove directories and their contents recursively")
	rmCmd.Flags().Bool('f', "ignore missing files and arguments, never prompt")

	addBuiltin(parser.CmdRm, rmCmd, Rm)
}

// Rm removes files, and directory trees when -r is given.
func Rm(call *Call) error {
	if len(call.Args) == 0 && !call.Has(parser.FlagForce) {
		return rmCmd.UsageError()
	}

	recursive, force := call.Has(parser.FlagRecursive), call.Has(parser.FlagForce)

	var failed error
	fail := func(format string, a ...interface{}) {
		call.Ctx.Errorf(format, a...)
		failed = reported(errors.New("some paths weren't removed"))
	}

	for _, file := range call.Args {
		stat, statErr := call.OS.Stat(file)
		switch {
		case errors.Is(statErr, fs.ErrNotExist):
			if !force {
				fail("rm: can't remove %q: no such file or directory", file)
			}
		case statErr != nil:
			fail("rm: can't stat %q: %v", file, unwrapPathError(statErr))
		case stat.IsDir() && !recursive:
			fail("rm: can't remove %q: is a directory", file)
		case stat.IsDir():
			if err := call.OS.RemoveAll(file); err != nil {
				fail("rm: can't remove %q: %v", file, unwrapPathError(err))
			}
		default:
			if err := call.OS.Remove(file); err != nil {
				fail("rm: can't remove %q: %v", file, unwrapPathError(err))
			}
		}
	}

	return failed
}
