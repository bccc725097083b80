package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/josephlewis42/esh/core/parser"
)

var systeminfoCmd = &SimpleCommand{
	Use:   "systeminfo",
	Short: "Display information about the system.",
}

func init() {
	addBuiltin(parser.CmdSysteminfo, systeminfoCmd, Systeminfo)
}

// Systeminfo prints static information about the machine.
func Systeminfo(call *Call) error {
	info, err := call.OS.SysInfo()
	if err != nil {
		return err
	}

	w := call.Stdout()
	fmt.Fprintln(w, "----- System Information -----")
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for _, row := range []struct {
		name  string
		value interface{}
	}{
		{"Host Name:", info.Hostname},
		{"Operating System:", info.OS},
		{"Kernel:", info.Kernel},
		{"Architecture:", info.Arch},
		{"Processors:", info.CPUs},
		{"Page Size:", fmt.Sprintf("%d bytes", info.PageSize)},
		{"Go Runtime:", info.GoVersion},
	} {
		fmt.Fprintf(tw, "%s\t%v\n", row.name, row.value)
	}
	tw.Flush()
	fmt.Fprintln(w, "------------------------------")
	return nil
}
