package commands

import (
	"path"

	"github.com/josephlewis42/esh/core/parser"
	"github.com/spf13/afero"
)

var mvCmd = &SimpleCommand{
	Use:   "mv SOURCE DEST",
	Short: "Move or rename a file or directory.",
}

func init() {
	addBuiltin(parser.CmdMv, mvCmd, Mv)
}

// destination returns dest, or dest/base(source) when dest is a directory.
func destination(fsys afero.Fs, source, dest string) string {
	if isDir, err := afero.IsDir(fsys, dest); err == nil && isDir {
		return path.Join(dest, path.Base(source))
	}
	return dest
}

// Mv renames SOURCE to DEST, moving it inside DEST if that's a directory.
func Mv(call *Call) error {
	if len(call.Args) != 2 {
		return mvCmd.UsageError()
	}
	source, dest := call.Args[0], call.Args[1]

	if _, err := call.OS.Stat(source); err != nil {
		return pathError(source, err)
	}
	if err := call.OS.Rename(source, destination(call.OS, source, dest)); err != nil {
		return pathError(source, err)
	}
	return nil
}
