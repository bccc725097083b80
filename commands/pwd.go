package commands

import (
	"fmt"

	"github.com/josephlewis42/esh/core/parser"
)

var pwdCmd = &SimpleCommand{
	Use:   "pwd",
	Short: "Print the working directory.",
}

func init() {
	addBuiltin(parser.CmdPwd, pwdCmd, Pwd)
}

// Pwd prints the working directory.
func Pwd(call *Call) error {
	pwd, err := call.OS.Getwd()
	if err != nil {
		return err
	}
	fmt.Fprintln(call.Stdout(), pwd)
	return nil
}
