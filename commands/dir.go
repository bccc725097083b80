package commands

import (
	"fmt"

	"github.com/josephlewis42/esh/core/parser"
	"github.com/josephlewis42/esh/core/vos"
)

var dirCmd = &SimpleCommand{
	Use:   "dir [DIR]",
	Short: "List directory contents with sizes and modification times.",
}

func init() {
	dirCmd.Flags().Bool('a', "don't ignore entries starting with .")

	addBuiltin(parser.CmdDir, dirCmd, Dir)
}

// Dir lists a directory with one entry per line followed by a summary.
func Dir(call *Call) error {
	directory := "."
	switch len(call.Args) {
	case 0:
	case 1:
		directory = call.Args[0]
	default:
		return dirCmd.UsageError()
	}

	paths, err := readDirFiltered(call.OS, directory, call.Has(parser.FlagAll))
	if err != nil {
		return pathError(directory, err)
	}

	wd, err := call.OS.Getwd()
	if err != nil {
		return err
	}

	w := call.Stdout()
	fmt.Fprintf(w, " Directory of %s\n\n", vos.ResolvePath(wd, directory))

	var files, dirs int
	var totalSize int64
	for _, p := range paths {
		modTime := p.ModTime().Format("2006-01-02  15:04")
		name := call.Color.Sprintf(Dircolor(p), "%s", p.Name())
		if p.IsDir() {
			dirs++
			fmt.Fprintf(w, "%s    %-14s %s\n", modTime, "<DIR>", name)
			continue
		}
		files++
		totalSize += p.Size()
		fmt.Fprintf(w, "%s    %14d %s\n", modTime, p.Size(), name)
	}

	fmt.Fprintf(w, "%16d File(s) %14d bytes\n", files, totalSize)
	fmt.Fprintf(w, "%16d Dir(s)\n", dirs)
	return nil
}
