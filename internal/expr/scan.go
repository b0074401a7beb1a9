package expr

import (
	"fmt"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokStarStar
	tokSlash
	tokPercent
	tokLParen
	tokRParen
	tokComma
	tokDot
)

type token struct {
	kind tokenKind
	text string
	pos  int // byte offset in the expression
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "end of expression"
	}
	return fmt.Sprintf("%q", t.text)
}

// scan tokenizes the whole expression up front; the grammar is small enough
// that a token slice is simpler than a streaming lexer.
func scan(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c >= '0' && c <= '9' || c == '.' && i+1 < len(src) && isDigit(src[i+1]):
			start := i
			i = scanNumber(src, i)
			toks = append(toks, token{tokNumber, src[start:i], start})
		case isIdentStart(rune(c)):
			start := i
			for i < len(src) && isIdentPart(rune(src[i])) {
				i++
			}
			toks = append(toks, token{tokIdent, src[start:i], start})
		case c == '*':
			if i+1 < len(src) && src[i+1] == '*' {
				toks = append(toks, token{tokStarStar, "**", i})
				i += 2
			} else {
				toks = append(toks, token{tokStar, "*", i})
				i++
			}
		default:
			kind, ok := singleCharTokens[c]
			if !ok {
				return nil, fmt.Errorf("unexpected character %q at position %d", string(c), i)
			}
			toks = append(toks, token{kind, string(c), i})
			i++
		}
	}
	toks = append(toks, token{tokEOF, "", len(src)})
	return toks, nil
}

var singleCharTokens = map[byte]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'/': tokSlash,
	'%': tokPercent,
	'(': tokLParen,
	')': tokRParen,
	',': tokComma,
	'.': tokDot,
}

// scanNumber consumes a decimal literal with optional fraction and exponent.
func scanNumber(src string, i int) int {
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	if i < len(src) && src[i] == '.' {
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
		}
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < len(src) && isDigit(src[j]) {
			i = j
			for i < len(src) && isDigit(src[i]) {
				i++
			}
		}
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

// dottedName renders an attribute reference like math.sqrt for error
// messages.
func dottedName(ns, attr string) string {
	return ns + "." + attr
}
