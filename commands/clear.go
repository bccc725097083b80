package commands

import (
	"fmt"

	"github.com/josephlewis42/esh/core/parser"
)

var clearCmd = &SimpleCommand{
	Use:   "clear",
	Short: "Clear the terminal screen.",
}

func init() {
	addBuiltin(parser.CmdClear, clearCmd, Clear)
}

// Clear homes the cursor and erases the screen of an interactive terminal.
func Clear(call *Call) error {
	if call.Ctx.Interactive() {
		// Assumes VT100 compatibility.
		fmt.Fprint(call.Stdout(), "\033[H\033[2J")
	}
	return nil
}
