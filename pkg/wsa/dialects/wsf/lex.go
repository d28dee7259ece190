// Package wsf parses the wsf Whitespace assembly dialect.
package wsf

import (
	"github.com/wspace/wsasm/pkg/wsa/integer"
	"github.com/wspace/wsasm/pkg/wsa/scan"
	"github.com/wspace/wsasm/pkg/wsa/token"
)

// lexer scans tokens in the wsf dialect.
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
	case isWordStart(b):
		s.BumpWhile(isWordChar)
		return &token.Word{Word: token.Borrowed(s.Text())}
	case b == '-' || '0' <= b && b <= '9':
		// Alphanumerics are taken whole so that base prefixes like
		// `0x` parse as one literal.
		s.BumpWhile(isAlnum)
		text := s.Text()
		return &token.Integer{
			Literal: token.Borrowed(text),
			Int:     integers.Parse(text, &l.scratch),
		}
	case b == ':':
		return &token.LabelColon{}
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
		s.BumpUntil(recognized)
		return &token.Error{Text: token.Borrowed(s.Text()), Kind: token.UnrecognizedChar}
	}
}

func isWordStart(b byte) bool {
	return 'A' <= b && b <= 'Z' || 'a' <= b && b <= 'z' || b == '_' || b == '.'
}

func isWordChar(b byte) bool {
	return isAlnum(b) || b == '-' || b == '.'
}

func isAlnum(b byte) bool {
	return 'A' <= b && b <= 'Z' || 'a' <= b && b <= 'z' || '0' <= b && b <= '9' || b == '_'
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\v', '\f', '\r':
		return true
	}
	return false
}

func recognized(b byte) bool {
	switch b {
	case '-', '.', ':', '#', '\n':
		return true
	}
	return isAlnum(b) || isSpace(b)
}
