package commands

import (
	"io"

	"github.com/josephlewis42/esh/core/parser"
)

var rewCmd = &SimpleCommand{
	Use:   "rew FILE",
	Short: "Print the contents of a file, or standard input when redirected.",
}

func init() {
	addBuiltin(parser.CmdRew, rewCmd, Rew)
}

// Rew prints files, or its input when the line is piped or redirected.
func Rew(call *Call) error {
	if len(call.Args) == 0 {
		stdin := call.Stdin()
		if stdin == nil {
			return rewCmd.UsageError()
		}
		_, err := io.Copy(call.Stdout(), stdin)
		return err
	}

	var failed error
	for _, arg := range call.Args {
		fd, err := call.OS.Open(arg)
		if err != nil {
			call.Ctx.Errorf("rew: %s: %v", arg, unwrapPathError(err))
			failed = reported(err)
			continue
		}

		_, err = io.Copy(call.Stdout(), fd)
		fd.Close()
		if err != nil {
			call.Ctx.Errorf("rew: %s: %v", arg, unwrapPathError(err))
			failed = reported(err)
		}
	}

	return failed
}
