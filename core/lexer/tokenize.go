package lexer

import (
	"strings"
	"unicode"
)

// BuiltinFunc reports whether a lexeme names a builtin command.
type BuiltinFunc func(name string) bool

// Line is the tokenized form of one input line.
type Line struct {
	Tokens []Token

	// UsesPipeline is set when any token is a pipe operator.
	UsesPipeline bool
	// UsesRedirection is set when any token is a redirection operator.
	UsesRedirection bool
}

// Tokenize splits line on runs of whitespace and classifies every lexeme.
// The result always ends with exactly one EndOfInput token.
func Tokenize(line string, isBuiltin BuiltinFunc) Line {
	var out Line
	for _, lexeme := range strings.FieldsFunc(line, unicode.IsSpace) {
		kind := Classify(lexeme, isBuiltin)
		switch {
		case kind == Pipe:
			out.UsesPipeline = true
		case kind.IsRedirection():
			out.UsesRedirection = true
		}
		out.Tokens = append(out.Tokens, Token{Kind: kind, Lexeme: lexeme})
	}

	out.Tokens = append(out.Tokens, Token{Kind: EndOfInput})
	return out
}

// Classify returns the kind of a single non-empty lexeme, the first matching
// rule wins:
//
//	-123, 123        Number
//	"text"           QuotedString
//	| < > >> ...     the operator kind
//	builtin name     Command
//	-x, --long       Flag
//	anything else    Operand
func Classify(lexeme string, isBuiltin BuiltinFunc) Kind {
	if strings.HasPrefix(lexeme, "-") && allDigits(lexeme[1:]) {
		return Number
	}
	if allDigits(lexeme) {
		return Number
	}
	if len(lexeme) >= 2 && lexeme[0] == '"' && lexeme[len(lexeme)-1] == '"' {
		return QuotedString
	}
	if kind, ok := operators[lexeme]; ok {
		return kind
	}
	if isBuiltin != nil && isBuiltin(lexeme) {
		return Command
	}
	if strings.HasPrefix(lexeme, "-") {
		return Flag
	}
	return Operand
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Unquote strips the surrounding double quotes of a QuotedString lexeme.
func Unquote(lexeme string) string {
	if len(lexeme) >= 2 && lexeme[0] == '"' && lexeme[len(lexeme)-1] == '"' {
		return lexeme[1 : len(lexeme)-1]
	}
	return lexeme
}

// Join re-assembles tokens into a single space separated command line,
// skipping EndOfInput.
func Join(tokens []Token) string {
	var parts []string
	for _, tok := range tokens {
		if tok.Kind == EndOfInput {
			continue
		}
		parts = append(parts, tok.Lexeme)
	}
	return strings.Join(parts, " ")
}
