package commands

import (
	"fmt"
	"strconv"

	"github.com/josephlewis42/esh/core/parser"
)

var killCmd = &SimpleCommand{
	Use:   "kill PID",
	Short: "Terminate a process.",
}

func init() {
	addBuiltin(parser.CmdKill, killCmd, Kill)
}

// Kill asks each process to terminate.
func Kill(call *Call) error {
	if len(call.Args) == 0 {
		return killCmd.UsageError()
	}

	var failed error
	for _, arg := range call.Args {
		pid, err := strconv.Atoi(arg)
		if err != nil {
			call.Ctx.Errorf("kill: %q: arguments must be process IDs", arg)
			failed = reported(err)
			continue
		}
		if err := call.OS.Kill(pid); err != nil {
			call.Ctx.Errorf("kill: (%d): %v", pid, err)
			failed = reported(err)
			continue
		}
		if call.Has(parser.FlagVerbose) {
			fmt.Fprintf(call.Stdout(), "terminated %d\n", pid)
		}
	}
	return failed
}
