package commands

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/josephlewis42/esh/core/parser"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

var helpCmd = &SimpleCommand{
	Use:   "help [NAME]",
	Short: "Show the builtin commands or help for one of them.",
}

func init() {
	addBuiltin(parser.CmdHelp, helpCmd, Help)
}

var groupTitles = []struct {
	group parser.Group
	title string
}{
	{parser.GroupFileIO, "Files"},
	{parser.GroupProcess, "Processes"},
	{parser.GroupEnvironment, "Environment"},
	{parser.GroupShell, "Shell"},
	{parser.GroupSystem, "System"},
}

// Help lists the builtins by group, or prints the help of one.
func Help(call *Call) error {
	table, err := parser.LoadBuiltins()
	if err != nil {
		return err
	}

	switch len(call.Args) {
	case 0:
		printBuiltinTable(call, table)
		return nil
	case 1:
	default:
		return helpCmd.UsageError()
	}

	name := call.Args[0]
	if builtin, ok := LookupBuiltin(parser.ResolveCommand(name)); ok {
		builtin.PrintHelp(call.Stdout())
		return nil
	}

	if suggestions := Suggest(name, table.Names()); len(suggestions) > 0 {
		return fmt.Errorf("no builtin named %q, did you mean: %s?", name, strings.Join(suggestions, ", "))
	}
	return fmt.Errorf("no builtin named %q", name)
}

func printBuiltinTable(call *Call, table *parser.Builtins) {
	w := call.Stdout()
	for i, entry := range groupTitles {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s:\n", entry.title)

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, name := range table.Names() {
			info, _ := table.Lookup(name)
			if info.Group != entry.group.String() {
				continue
			}
			fmt.Fprintf(tw, "  %s\t%s\n", name, info.Summary)
		}
		tw.Flush()
	}
}

// Suggest returns the builtin names closest to name, best first.
func Suggest(name string, names []string) []string {
	ranks := fuzzy.RankFindFold(name, names)
	// Also try the other direction so typos with extra letters still match.
	for _, candidate := range names {
		if fuzzy.MatchFold(candidate, name) && !containsRank(ranks, candidate) {
			ranks = append(ranks, fuzzy.Rank{Source: name, Target: candidate, Distance: fuzzy.LevenshteinDistance(name, candidate)})
		}
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].Target < ranks[j].Target
	})

	var out []string
	for _, rank := range ranks {
		out = append(out, rank.Target)
	}
	return out
}

func containsRank(ranks fuzzy.Ranks, target string) bool {
	for _, r := range ranks {
		if r.Target == target {
			return true
		}
	}
	return false
}
