package commands

import (
	"fmt"

	"github.com/josephlewis42/esh/core/parser"
)

var mkdirCmd = &SimpleCommand{
	Use:   "mkdir DIR",
	Short: "Create a directory.",
}

func init() {
	mkdirCmd.Flags().Bool('r', "make parent directories as needed")
	mkdirCmd.Flags().Bool('v', "print a line for every created directory")

	addBuiltin(parser.CmdMkdir, mkdirCmd, Mkdir)
}

// Mkdir creates directories, with -r parents are created too.
func Mkdir(call *Call) error {
	directories := call.Args
	if len(directories) == 0 {
		return mkdirCmd.UsageError()
	}

	op := call.OS.Mkdir
	if call.Has(parser.FlagRecursive) {
		op = call.OS.MkdirAll
	}

	var failed error
	for _, dir := range directories {
		err := op(dir, 0755)
		switch {
		case err != nil:
			call.Ctx.Errorf("mkdir: cannot create directory %q: %v", dir, unwrapPathError(err))
			failed = reported(err)

		case call.Has(parser.FlagVerbose):
			fmt.Fprintf(call.Stdout(), "mkdir: created directory %q\n", dir)
		}
	}

	return failed
}
