package commands

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/josephlewis42/esh/core/parser"
)

var (
	unescapeOctal   = regexp.MustCompile(`\\0[0-7][0-7]?[0-7]?`)
	unescapeHex     = regexp.MustCompile(`\\x[0-9a-fA-F][0-9a-fA-F]?`)
	unescapeReplace = strings.NewReplacer(
		`\n`, "\n", // newline
		`\r`, "\r", // carriage return
		`\t`, "\t", // horizontal tab
		`\\`, `\`, // backslash literal
		`\a`, "\a", // alert
		`\e`, "\033", // escape
	)
)

// Unescape interprets backslash escapes.
func Unescape(s string) string {
	s = unescapeOctal.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseUint(arg[2:], 8, 8)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	s = unescapeHex.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseUint(arg[2:], 16, 8)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	return unescapeReplace.Replace(s)
}

var echoCmd = &SimpleCommand{
	Use:   "echo [-n] [ARG...]",
	Short: "Display a line of text.",
}

func init() {
	echoCmd.Flags().Bool('n', "do not output the trailing newline")

	addBuiltin(parser.CmdEcho, echoCmd, Echo)
}

// Echo prints its arguments separated by spaces with backslash escapes
// interpreted.
func Echo(call *Call) error {
	w := call.Stdout()
	fmt.Fprint(w, Unescape(strings.Join(call.Args, " ")))
	if !call.Has(parser.FlagCount) {
		fmt.Fprintln(w)
	}
	return nil
}
