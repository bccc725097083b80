package commands

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/josephlewis42/esh/core/parser"
	"github.com/josephlewis42/esh/core/vos"
	"github.com/spf13/afero"
)

var cpCmd = &SimpleCommand{
	Use:   "cp [-r] SOURCE DEST",
	Short: "Copy a file or directory.",
}

func init() {
	cpCmd.Flags().Bool('r', "copy directories recursively")
	cpCmd.Flags().Bool('v', "explain what is being done")

	addBuiltin(parser.CmdCp, cpCmd, Cp)
}

// Cp copies SOURCE to DEST, directories need -r.
func Cp(call *Call) error {
	if len(call.Args) != 2 {
		return cpCmd.UsageError()
	}
	source, dest := call.Args[0], call.Args[1]

	info, err := call.OS.Stat(source)
	if err != nil {
		return pathError(source, err)
	}
	target := destination(call.OS, source, dest)

	if !info.IsDir() {
		return copyFile(call, source, target, info.Mode())
	}
	if !call.Has(parser.FlagRecursive) {
		return fmt.Errorf("-r not specified; omitting directory %q", source)
	}
	if within(call.OS, target, source) {
		return fmt.Errorf("cannot copy a directory, %q, into itself, %q", source, target)
	}

	return afero.Walk(call.OS, source, func(name string, info os.FileInfo, err error) error {
		if err != nil {
			return pathError(name, err)
		}
		rel, err := filepath.Rel(source, name)
		if err != nil {
			return err
		}
		out := path.Join(target, filepath.ToSlash(rel))
		if info.IsDir() {
			if err := call.OS.MkdirAll(out, info.Mode().Perm()|0700); err != nil {
				return pathError(out, err)
			}
			return nil
		}
		return copyFile(call, name, out, info.Mode())
	})
}

// within reports whether name is dir or lies below it once both are resolved
// against the working directory.
func within(virtOS vos.VOS, name, dir string) bool {
	wd, _ := virtOS.Getwd()
	return vos.Within(vos.ResolvePath(wd, name), vos.ResolvePath(wd, dir))
}

func copyFile(call *Call, source, dest string, mode os.FileMode) error {
	in, err := call.OS.Open(source)
	if err != nil {
		return pathError(source, err)
	}
	defer in.Close()

	out, err := call.OS.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return pathError(dest, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return pathError(dest, err)
	}
	if err := out.Close(); err != nil {
		return pathError(dest, err)
	}

	if call.Has(parser.FlagVerbose) {
		fmt.Fprintf(call.Stdout(), "%q -> %q\n", source, dest)
	}
	return nil
}
