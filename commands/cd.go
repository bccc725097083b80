package commands

import (
	"github.com/josephlewis42/esh/core/parser"
)

var cdCmd = &SimpleCommand{
	Use:   "cd [DIR]",
	Short: "Change the working directory.",
}

func init() {
	addBuiltin(parser.CmdCd, cdCmd, Cd)
}

// Cd changes the working directory, without an argument it goes home.
func Cd(call *Call) error {
	var dir string
	switch len(call.Args) {
	case 0:
		home, err := call.OS.UserHomeDir()
		if err != nil {
			return err
		}
		dir = home
	case 1:
		dir = call.Args[0]
	default:
		return cdCmd.UsageError()
	}

	if err := call.OS.Chdir(dir); err != nil {
		return pathError(dir, err)
	}
	return nil
}
