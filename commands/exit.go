package commands

import (
	"github.com/josephlewis42/esh/core/parser"
)

var exitCmd = &SimpleCommand{
	Use:   "exit",
	Short: "Exit the shell.",
}

func init() {
	addBuiltin(parser.CmdExit, exitCmd, Exit)
}

// Exit stops the read-eval loop once the current line finishes.
func Exit(call *Call) error {
	if call.Session != nil {
		call.Session.Exit()
	}
	return nil
}
