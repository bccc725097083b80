package commands

import (
	"fmt"

	"github.com/josephlewis42/esh/core/parser"
)

var whoamiCmd = &SimpleCommand{
	Use:   "whoami",
	Short: "Print the current user name.",
}

func init() {
	addBuiltin(parser.CmdWhoami, whoamiCmd, Whoami)
}

// Whoami prints the current user.
func Whoami(call *Call) error {
	fmt.Fprintln(call.Stdout(), call.OS.Username())
	return nil
}
