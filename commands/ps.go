package commands

import (
	"fmt"

	"github.com/josephlewis42/esh/core/parser"
)

var psCmd = &SimpleCommand{
	Use:   "ps",
	Short: "Report a snapshot of running processes.",
}

func init() {
	addBuiltin(parser.CmdPs, psCmd, Ps)
}

// Ps prints the process table.
func Ps(call *Call) error {
	processes, err := call.OS.Processes()
	if err != nil {
		return err
	}

	w := call.Stdout()
	fmt.Fprintln(w, "PID     PPID    NAME")
	fmt.Fprintln(w, "----------------------------------------")
	for _, p := range processes {
		fmt.Fprintf(w, "%-7d %-7d %s\n", p.PID, p.PPID, p.Name)
	}
	return nil
}
