// Package voliva parses the voliva Whitespace assembly dialect.
package voliva

import (
	"github.com/wspace/wsasm/pkg/wsa/integer"
	"github.com/wspace/wsasm/pkg/wsa/scan"
	"github.com/wspace/wsasm/pkg/wsa/token"
)

// lexer scans tokens in the voliva dialect.
type lexer struct {
	s           *scan.Utf8Scanner
	scratch     integer.Scratch
	emittedRest bool
}

func newLexer(src []byte) *lexer {
	return &lexer{s: scan.NewUtf8Scanner(src)}
}

func (l *lexer) NextToken() token.Token {
	s := l.s
	s.Start()

	if s.EOF() {
		if text, errorLen := s.InvalidRest(); text != nil && !l.emittedRest {
			l.emittedRest = true
			return &token.Error{
				Text:     token.Borrowed(text),
				Kind:     token.InvalidUtf8,
				ErrorLen: errorLen,
			}
		}
		return &token.Eof{}
	}

	switch r := s.BumpRune(); {
	case r == '"':
		literal, errs := token.ScanStringOneline(&s.Scanner)
		return token.UnescapeString(literal, unescapeDouble, token.Utf8, token.DoubleQuote, errs)
	case r == '\'':
		literal, errs := token.ScanCharOneline(&s.Scanner)
		return token.UnescapeChar(literal, unescapeSingle, token.Utf8, token.SingleQuote, errs)
	case r == ';':
		start := s.Offset()
		s.BumpUntilLF()
		return &token.LineComment{Prefix: ";", Text: token.Borrowed(s.TextFrom(start))}
	case r == '\n':
		return &token.LineTerm{Style: token.Lf}
	case isSpace(r):
		s.BumpRuneWhile(isSpace)
		return &token.Space{Text: token.Borrowed(s.Text())}
	default:
		s.BumpRuneWhile(func(r rune) bool {
			return !isSpace(r) && r != ';' && r != '"' && r != '\'' && r != '\n'
		})
		text := s.Text()

		parsed := integers.Parse(text, &l.scratch)
		// Explicit signs are only allowed for decimal.
		if parsed.Errors == 0 &&
			(parsed.Sign == integer.SignNone || parsed.Style == integer.StyleDecimal) {
			return &token.Integer{Literal: token.Borrowed(text), Int: parsed}
		}
		return &token.Word{Word: token.Borrowed(text)}
	}
}

// isSpace reports whitespace per JavaScript regular expression `\s`,
// excluding the line feed.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029',
		'\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return '\u2000' <= r && r <= '\u200a'
}

func unescapeDouble(b byte) (byte, bool) { return unescapeQuoted(b, '"') }
func unescapeSingle(b byte) (byte, bool) { return unescapeQuoted(b, '\'') }

// unescapeQuoted resolves a backslash-escaped byte. The quote character
// of the enclosing literal can be escaped; other escapes are fixed.
func unescapeQuoted(b, quote byte) (byte, bool) {
	switch b {
	case quote, '\\':
		return b, true
	case 'b':
		return '\x08', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case 'v':
		return '\v', true
	}
	return b, false
}
