package commands

import (
	"fmt"

	"github.com/josephlewis42/esh/core/parser"
)

var datetimeCmd = &SimpleCommand{
	Use:   "datetime",
	Short: "Print the local date and time.",
}

func init() {
	addBuiltin(parser.CmdDatetime, datetimeCmd, Datetime)
}

// Datetime prints the current time in the date(1) format.
func Datetime(call *Call) error {
	fmt.Fprintln(call.Stdout(), call.OS.Now().Format("Mon Jan _2 15:04:05 MST 2006"))
	return nil
}
