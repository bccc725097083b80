package commands

import (
	"fmt"

	"github.com/josephlewis42/esh/core/parser"
)

var rmdirCmd = &SimpleCommand{
	Use:   "rmdir DIR",
	Short: "Remove an empty directory.",
}

func init() {
	addBuiltin(parser.CmdRmdir, rmdirCmd, Rmdir)
}

// Rmdir removes directories that are empty.
func Rmdir(call *Call) error {
	if len(call.Args) == 0 {
		return rmdirCmd.UsageError()
	}

	var failed error
	for _, dir := range call.Args {
		if err := removeEmptyDir(call, dir); err != nil {
			call.Ctx.Errorf("rmdir: failed to remove %q: %v", dir, err)
			failed = reported(err)
		}
	}
	return failed
}

func removeEmptyDir(call *Call, dir string) error {
	fd, err := call.OS.Open(dir)
	if err != nil {
		return unwrapPathError(err)
	}
	defer fd.Close()

	info, err := fd.Stat()
	if err != nil {
		return unwrapPathError(err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory")
	}

	names, err := fd.Readdirnames(1)
	if err == nil && len(names) > 0 {
		return fmt.Errorf("directory not empty")
	}

	return unwrapPathError(call.OS.Remove(dir))
}
