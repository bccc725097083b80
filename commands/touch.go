package commands

import (
	"errors"
	"io/fs"

	"github.com/josephlewis42/esh/core/parser"
)

var touchCmd = &SimpleCommand{
	Use:   "touch FILE",
	Short: "Create a file or update its modification time.",
}

func init() {
	addBuiltin(parser.CmdTouch, touchCmd, Touch)
}

// Touch updates modification times, creating missing files.
func Touch(call *Call) error {
	if len(call.Args) == 0 {
		return touchCmd.UsageError()
	}

	now := call.OS.Now()

	var failed error
	for _, path := range call.Args {
		err := call.OS.Chtimes(path, now, now)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			fd, err := call.OS.Create(path)
			if err != nil {
				call.Ctx.Errorf("touch: cannot touch %q: %v", path, unwrapPathError(err))
				failed = reported(err)
				continue
			}
			fd.Close()
			if err := call.OS.Chtimes(path, now, now); err != nil {
				call.Ctx.Errorf("touch: setting times of %q: %v", path, unwrapPathError(err))
				failed = reported(err)
			}
		case err != nil:
			call.Ctx.Errorf("touch: setting times of %q: %v", path, unwrapPathError(err))
			failed = reported(err)
		}
	}

	return failed
}
