// SPDX-License-Identifier: MIT

package calc

import "strconv"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	pos  int
	text string
	num  float64
}

var punct = map[byte]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'/': tokSlash,
	'^': tokCaret,
	'(': tokLParen,
	')': tokRParen,
}

// tokenize splits src into tokens terminated by tokEOF.
// Numbers are decimal literals with an optional fraction ("12", "3.5", ".5").
func tokenize(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || c == '.':
			start := i
			dots := 0
			for i < len(src) && (isDigit(src[i]) || src[i] == '.') {
				if src[i] == '.' {
					dots++
				}
				i++
			}
			lit := src[start:i]
			if dots > 1 || lit == "." {
				return nil, syntaxErrorf(start, "bad number %q", lit)
			}
			v, err := strconv.ParseFloat(lit, 64)
			if err != nil {
				return nil, syntaxErrorf(start, "bad number %q", lit)
			}
			toks = append(toks, token{kind: tokNumber, pos: start, text: lit, num: v})
		case isIdentStart(c):
			start := i
			for i < len(src) && (isIdentStart(src[i]) || isDigit(src[i])) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, pos: start, text: src[start:i]})
		default:
			kind, ok := punct[c]
			if !ok {
				return nil, syntaxErrorf(i, "unexpected character %q", rune(c))
			}
			toks = append(toks, token{kind: kind, pos: i, text: string(c)})
			i++
		}
	}

	return append(toks, token{kind: tokEOF, pos: len(src)}), nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
