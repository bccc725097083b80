package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/josephlewis42/esh/core/parser"
	"github.com/spf13/cobra"
)

// builtinsCmd lists the builtin table
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the builtin commands of the shell.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := parser.LoadBuiltins()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "GROUP\tNAME\tUSAGE")
		for _, name := range table.Names() {
			info, _ := table.Lookup(name)
			fmt.Fprintf(w, "%s\t%s\t%s\n", info.Group, name, info.Usage)
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
