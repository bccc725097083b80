package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/josephlewis42/esh/core/parser"
)

const statsBarWidth = 20

var systemstatsCmd = &SimpleCommand{
	Use:   "systemstats",
	Short: "Display memory and load statistics.",
}

func init() {
	addBuiltin(parser.CmdSystemstats, systemstatsCmd, Systemstats)
}

// usageBar renders used/total as a fixed width bar.
func usageBar(used, total uint64) (string, float64) {
	var ratio float64
	if total > 0 {
		ratio = float64(used) / float64(total)
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * statsBarWidth)
	return strings.Repeat("#", filled) + strings.Repeat("-", statsBarWidth-filled), ratio * 100
}

// Systemstats prints a snapshot of memory use and load.
func Systemstats(call *Call) error {
	stats, err := call.OS.SysStats()
	if err != nil {
		return err
	}

	w := call.Stdout()
	printUsage := func(w io.Writer, name string, used, total uint64) {
		bar, percent := usageBar(used, total)
		fmt.Fprintf(w, "%-7s [%s] %5.1f%%  %s / %s\n", name, bar, percent, BytesToHuman(int64(used)), BytesToHuman(int64(total)))
	}

	printUsage(w, "Memory", stats.MemUsed(), stats.MemTotal)
	printUsage(w, "Swap", stats.SwapUsed(), stats.SwapTotal)
	fmt.Fprintf(w, "%-7s %.2f %.2f %.2f\n", "Load", stats.Load1, stats.Load5, stats.Load15)
	if stats.Uptime > 0 {
		fmt.Fprintf(w, "%-7s %s\n", "Uptime", stats.Uptime)
	}
	return nil
}
