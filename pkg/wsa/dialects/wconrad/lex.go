// Package wconrad parses the wconrad Whitespace assembly dialect.
package wconrad

import (
	"github.com/wspace/wsasm/pkg/wsa/integer"
	"github.com/wspace/wsasm/pkg/wsa/scan"
	"github.com/wspace/wsasm/pkg/wsa/token"
)

// lexer scans tokens in the wconrad dialect.
type lexer struct {
	s       *scan.Scanner
	scratch integer.Scratch
}

func newLexer(src []byte) *lexer {
	return &lexer{s: scan.NewScanner(src)}
}

func (l *lexer) NextToken() token.Token {
	s := l.s
	s.Start()

	if s.EOF() {
		return &token.Eof{}
	}

	switch b := s.Bump(); {
	case b == '#':
		start := s.Offset()
		s.BumpUntilLF()
		return &token.LineComment{Prefix: "#", Text: token.Borrowed(s.TextFrom(start))}
	case b == '\n':
		return &token.LineTerm{Style: token.Lf}
	case isSpace(b):
		s.BumpWhile(isSpace)
		return &token.Space{Text: token.Borrowed(s.Text())}
	default:
		s.BumpUntil(func(b byte) bool {
			return isSpace(b) || b == '#' || b == '\n'
		})
		text := s.Text()
		if b == '-' || b == '+' || '0' <= b && b <= '9' {
			parsed := integers.Parse(text, &l.scratch)
			if parsed.Errors == 0 {
				return &token.Integer{Literal: token.Borrowed(text), Int: parsed}
			}
		}
		return &token.Word{Word: token.Borrowed(text)}
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\v', '\f', '\r':
		return true
	}
	return false
}
