package parser

import "strings"

// Flags is a bitmask of recognized flags.
type Flags uint16

const (
	FlagRecursive Flags = 1 << iota // -r
	FlagVerbose                     // -v
	FlagForce                       // -f
	FlagAll                         // -a
	FlagHelp                        // --help
	FlagCount                       // -n
)

var flagTable = map[string]Flags{
	"-r":     FlagRecursive,
	"-v":     FlagVerbose,
	"-f":     FlagForce,
	"-a":     FlagAll,
	"--help": FlagHelp,
	"-n":     FlagCount,
}

// ResolveFlags ORs together the bits of every known flag lexeme, unknown
// lexemes contribute nothing.
func ResolveFlags(lexemes ...string) Flags {
	var out Flags
	for _, lexeme := range lexemes {
		out |= flagTable[lexeme]
	}
	return out
}

// Has reports whether every bit of want is set.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}

func (f Flags) String() string {
	var parts []string
	for _, lexeme := range []string{"-r", "-v", "-f", "-a", "--help", "-n"} {
		if f.Has(flagTable[lexeme]) {
			parts = append(parts, lexeme)
		}
	}
	return strings.Join(parts, " ")
}
