package commands

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"text/tabwriter"

	fcolor "github.com/fatih/color"
	"github.com/josephlewis42/esh/core/parser"
	"github.com/spf13/afero"
)

const lsLineWidth = 80

var lsCmd = &SimpleCommand{
	Use:   "ls [-a] [-r] [-v] [DIR]",
	Short: "List directory contents.",
}

func init() {
	lsCmd.Flags().Bool('a', "don't ignore entries starting with .")
	lsCmd.Flags().Bool('r', "list subdirectories recursively as a tree")
	lsCmd.Flags().Bool('v', "use a long listing format")

	addBuiltin(parser.CmdLs, lsCmd, Ls)
}

// Ls lists directories in columns, as a tree or in long format.
func Ls(call *Call) error {
	directories := call.Args
	if len(directories) == 0 {
		directories = []string{"."}
	}
	sort.Strings(directories)

	showDirectoryNames := len(directories) > 1
	w := call.Stdout()

	var failed error
	for i, directory := range directories {
		paths, err := readDirFiltered(call.OS, directory, call.Has(parser.FlagAll))
		if err != nil {
			call.Ctx.Errorf("ls: %s: %v", directory, unwrapPathError(err))
			failed = reported(err)
			continue
		}

		if showDirectoryNames {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s:\n", directory)
		}

		switch {
		case call.Has(parser.FlagRecursive):
			fmt.Fprintln(w, call.Color.Sprintf(ColorBoldBlue, "%s", directory))
			lsTree(call, w, directory, paths, "")
		case call.Has(parser.FlagVerbose):
			lsLong(call, w, paths)
		default:
			lsColumns(call, w, paths)
		}
	}

	return failed
}

func readDirFiltered(fsys afero.Fs, directory string, all bool) ([]os.FileInfo, error) {
	allPaths, err := afero.ReadDir(fsys, directory)
	if err != nil {
		return nil, err
	}

	var paths []os.FileInfo
	for _, p := range allPaths {
		if !all && strings.HasPrefix(p.Name(), ".") {
			continue
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func lsLong(call *Call, w io.Writer, paths []os.FileInfo) {
	var totalSize int64
	for _, p := range paths {
		totalSize += p.Size()
	}

	currentYear := call.OS.Now().Year()
	fmt.Fprintf(w, "total %d\n", totalSize)
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for _, f := range paths {
		// Include time if current year.
		modTime := f.ModTime().Format("Jan _2  2006")
		if f.ModTime().Year() >= currentYear {
			modTime = f.ModTime().Format("Jan _2 15:04")
		}

		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
			f.Mode().String(),
			f.Size(),
			modTime,
			call.Color.Sprintf(Dircolor(f), "%s", f.Name()))
	}
	tw.Flush()
}

func lsTree(call *Call, w io.Writer, dir string, paths []os.FileInfo, prefix string) {
	for i, p := range paths {
		connector, indent := "├── ", "│   "
		if i == len(paths)-1 {
			connector, indent = "└── ", "    "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, connector, call.Color.Sprintf(Dircolor(p), "%s", p.Name()))

		if p.IsDir() {
			child := path.Join(dir, p.Name())
			children, err := readDirFiltered(call.OS, child, call.Has(parser.FlagAll))
			if err != nil {
				call.Ctx.Errorf("ls: %s: %v", child, unwrapPathError(err))
				continue
			}
			lsTree(call, w, child, children, prefix+indent)
		}
	}
}

func lsColumns(call *Call, w io.Writer, paths []os.FileInfo) {
	if len(paths) == 0 {
		return
	}

	colWidths := columnize(paths, lsLineWidth)
	cols := len(colWidths)
	rows := (len(paths) + cols - 1) / cols

	for row := 0; row < rows; row++ {
		var line strings.Builder
		for col, width := range colWidths {
			index := (col * rows) + row
			if index >= len(paths) {
				break
			}
			// Add padding if there was a column before this.
			if col > 0 {
				line.WriteString("  ")
			}
			entry := paths[index]
			line.WriteString(call.Color.Sprintf(Dircolor(entry), "%s", entry.Name()))
			if pad := width - len(entry.Name()); pad > 0 && index+rows < len(paths) {
				line.WriteString(strings.Repeat(" ", pad))
			}
		}
		fmt.Fprintln(w, line.String())
	}
}

type LsColorTest struct {
	color *fcolor.Color
	test  func(fileInfo os.FileInfo) bool
}

// Color listing comes from: https://askubuntu.com/a/884513
var dircolors = []LsColorTest{
	// Directories are bold blue.
	{color: ColorBoldBlue, test: os.FileInfo.IsDir},
	// Symlinks are bold cyan.
	{color: ColorBoldCyan, test: func(fi os.FileInfo) bool {
		return fi.Mode()&fs.ModeSymlink > 0
	}},
	// Yellow with black background pipe, block device, char device.
	{color: fcolor.New(fcolor.FgYellow, fcolor.BgBlack, fcolor.Bold), test: func(fi os.FileInfo) bool {
		return fi.Mode()&(fs.ModeDevice|fs.ModeNamedPipe|fs.ModeSocket|fs.ModeCharDevice) > 0
	}},
	// Executables are bold green.
	{color: ColorBoldGreen, test: func(fi os.FileInfo) bool {
		return fi.Mode().Perm()&0111 > 0
	}},
	// Archives are bold red.
	{color: ColorBoldRed, test: func(fi os.FileInfo) bool {
		return map[string]bool{
			".tar": true,
			".tgz": true,
			".zip": true,
			".gz":  true,
			".bz2": true,
			".deb": true,
			".rpm": true,
			".jar": true,
			".rar": true,
		}[path.Ext(fi.Name())]
	}},
}

func Dircolor(fileInfo os.FileInfo) *fcolor.Color {
	for _, dc := range dircolors {
		if dc.test(fileInfo) {
			return dc.color
		}
	}

	// Anything else defaults to white.
	return fcolor.New(fcolor.FgHiWhite)
}

// columnize finds the widest layout, filled column by column, that fits the
// screen and returns the width of each column.
func columnize(paths []fs.FileInfo, screenWidth int) []int {
	numFiles := len(paths)
	if numFiles == 0 {
		return []int{0}
	}

	const colPadding = 2

	// 3 is the minimum column width, 1 char filename + 2 padding.
	columns := screenWidth / (1 + colPadding)
	if columns > numFiles {
		columns = numFiles
	}
	for ; columns > 1; columns-- {
		rows := (numFiles + columns - 1) / columns
		maximums := make([]int, (numFiles+rows-1)/rows)
		for i, p := range paths {
			if l := len(p.Name()); l > maximums[i/rows] {
				maximums[i/rows] = l
			}
		}

		total := (len(maximums) - 1) * colPadding
		for _, m := range maximums {
			total += m
		}
		if total <= screenWidth {
			return maximums
		}
	}

	widest := 0
	for _, p := range paths {
		if l := len(p.Name()); l > widest {
			widest = l
		}
	}
	return []int{widest}
}
