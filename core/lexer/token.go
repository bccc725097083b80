// Package lexer splits an input line into classified tokens.
package lexer

import "fmt"

// Kind identifies the class of a token.
type Kind int

const (
	Command Kind = iota
	Flag
	Operand
	Number
	QuotedString
	Pipe
	RedirectIn
	RedirectOutTruncate
	RedirectOutAppend
	RedirectErrTruncate
	RedirectErrAppend
	RedirectOutErrTruncate
	RedirectOutErrAppend
	EndOfInput
)

var kindNames = map[Kind]string{
	Command:                "Command",
	Flag:                   "Flag",
	Operand:                "Operand",
	Number:                 "Number",
	QuotedString:           "QuotedString",
	Pipe:                   "Pipe",
	RedirectIn:             "RedirectIn",
	RedirectOutTruncate:    "RedirectOutTruncate",
	RedirectOutAppend:      "RedirectOutAppend",
	RedirectErrTruncate:    "RedirectErrTruncate",
	RedirectErrAppend:      "RedirectErrAppend",
	RedirectOutErrTruncate: "RedirectOutErrTruncate",
	RedirectOutErrAppend:   "RedirectOutErrAppend",
	EndOfInput:             "EndOfInput",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// operators maps each operator lexeme to its kind.
var operators = map[string]Kind{
	"|":   Pipe,
	"<":   RedirectIn,
	">":   RedirectOutTruncate,
	">>":  RedirectOutAppend,
	"2>":  RedirectErrTruncate,
	"2>>": RedirectErrAppend,
	"&>":  RedirectOutErrTruncate,
	"&>>": RedirectOutErrAppend,
}

// IsRedirection reports whether the kind is one of the seven redirection
// operators.
func (k Kind) IsRedirection() bool {
	return k >= RedirectIn && k <= RedirectOutErrAppend
}

// IsOperator reports whether the kind is a pipe or redirection operator.
func (k Kind) IsOperator() bool {
	return k == Pipe || k.IsRedirection()
}

// IsAppend reports whether a redirection opens its target in append mode.
func (k Kind) IsAppend() bool {
	switch k {
	case RedirectOutAppend, RedirectErrAppend, RedirectOutErrAppend:
		return true
	default:
		return false
	}
}

// Token is a single classified lexeme.
type Token struct {
	Kind   Kind
	Lexeme string
}

func (t Token) String() string {
	if t.Kind == EndOfInput {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Lexeme)
}
