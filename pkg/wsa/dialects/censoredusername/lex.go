// Package censoredusername parses the CensoredUsername Whitespace
// assembly dialect.
package censoredusername

import (
	"github.com/wspace/wsasm/pkg/wsa/integer"
	"github.com/wspace/wsasm/pkg/wsa/scan"
	"github.com/wspace/wsasm/pkg/wsa/token"
)

// lexer scans tokens in the CensoredUsername dialect.
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
	case isLetter(b):
		s.BumpWhile(isAlnum)
		return &token.Word{Word: token.Borrowed(s.Text())}
	case b == '-' || '0' <= b && b <= '9':
		s.BumpWhile(func(b byte) bool { return '0' <= b && b <= '9' })
		text := s.Text()
		return &token.Integer{
			Literal: token.Borrowed(text),
			Int:     integers.Parse(text, &l.scratch),
		}
	case b == ':':
		return &token.LabelColon{}
	case b == ',':
		return &token.ArgSep{}
	case b == ';':
		start := s.Offset()
		s.BumpUntilLF()
		return &token.LineComment{Prefix: ";", Text: token.Borrowed(s.TextFrom(start))}
	case b == '\n':
		return &token.LineTerm{Style: token.Lf}
	case b == ' ' || b == '\t':
		s.BumpWhile(func(b byte) bool { return b == ' ' || b == '\t' })
		return &token.Space{Text: token.Borrowed(s.Text())}
	default:
		s.BumpUntil(recognized)
		return &token.Error{Text: token.Borrowed(s.Text()), Kind: token.UnrecognizedChar}
	}
}

func isLetter(b byte) bool {
	return 'A' <= b && b <= 'Z' || 'a' <= b && b <= 'z' || b == '_'
}

func isAlnum(b byte) bool {
	return isLetter(b) || '0' <= b && b <= '9'
}

func recognized(b byte) bool {
	switch b {
	case '-', ':', ',', ';', '\n', ' ', '\t':
		return true
	}
	return isAlnum(b)
}
