package commands

import (
	"fmt"

	"github.com/josephlewis42/esh/core/parser"
)

var hostnameCmd = &SimpleCommand{
	Use:   "hostname",
	Short: "Print the host name.",
}

func init() {
	addBuiltin(parser.CmdHostname, hostnameCmd, Hostname)
}

// Hostname prints the host name.
func Hostname(call *Call) error {
	host, err := call.OS.Hostname()
	if err != nil {
		return err
	}

	fmt.Fprintln(call.Stdout(), host)
	return nil
}
