package commands

import (
	"fmt"

	"github.com/josephlewis42/esh/core/parser"
)

var historyCmd = &SimpleCommand{
	Use:   "history",
	Short: "Display the command history.",
}

func init() {
	addBuiltin(parser.CmdHistory, historyCmd, History)
}

// History prints the numbered lines of the session.
func History(call *Call) error {
	if call.Session == nil {
		return nil
	}
	w := call.Stdout()
	for i, line := range call.Session.History() {
		fmt.Fprintf(w, "%5d  %s\n", i+1, line)
	}
	return nil
}
