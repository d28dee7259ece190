// Package burghard parses the Burghard Whitespace assembly dialect.
package burghard

import (
	"bytes"

	"github.com/wspace/wsasm/pkg/wsa/scan"
	"github.com/wspace/wsasm/pkg/wsa/token"
)

// lexer scans tokens in the Burghard dialect.
type lexer struct {
	s           *scan.Utf8Scanner
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

	rest := s.Rest()
	switch {
	case rest[0] == ';':
		s.Bump()
		return l.lineComment(";")
	case bytes.HasPrefix(rest, []byte("--")):
		s.Bump()
		s.Bump()
		return l.lineComment("--")
	case isBlockOpen(rest):
		s.Bump()
		s.Bump()
		return l.blockComment()
	case bytes.HasPrefix(rest, []byte("-}")):
		s.Bump()
		s.Bump()
		return &token.BlockComment{
			Close:  "-}",
			Nested: true,
			Errors: token.ErrUnopened,
		}
	case rest[0] == ' ' || rest[0] == '\t':
		s.BumpWhile(func(b byte) bool { return b == ' ' || b == '\t' })
		return &token.Space{Text: token.Borrowed(s.Text())}
	case rest[0] == '\n':
		s.Bump()
		return &token.LineTerm{Style: token.Lf}
	case rest[0] == '"':
		s.Bump()
		start := s.Offset()
		s.BumpUntil(func(b byte) bool { return b == '"' || b == '\n' })
		word := &token.Word{Word: token.Borrowed(s.TextFrom(start))}
		var errs token.QuotedErrors
		if !s.BumpIfByte('"') {
			errs = token.ErrQuoteUnterminated
		}
		return &token.Quoted{Inner: word, Quotes: token.DoubleQuote, Errors: errs}
	default:
		for !s.EOF() {
			r := s.Rest()
			if r[0] == '"' || r[0] == ';' || r[0] == ' ' || r[0] == '\t' || r[0] == '\n' {
				break
			}
			if r[0] == '-' && len(r) > 1 && (r[1] == '-' || r[1] == '}') {
				break
			}
			// Line comments take precedence over block comments.
			if isBlockOpen(r) {
				break
			}
			s.BumpRune()
		}
		return &token.Word{Word: token.Borrowed(s.Text())}
	}
}

// isBlockOpen reports an opening `{-` that is not the `{--` line comment
// overlap.
func isBlockOpen(rest []byte) bool {
	return bytes.HasPrefix(rest, []byte("{-")) && !bytes.HasPrefix(rest, []byte("{--"))
}

// lineComment consumes a line comment. The cursor must be just after the
// comment prefix.
func (l *lexer) lineComment(prefix string) token.Token {
	s := l.s
	start := s.Offset()
	s.BumpUntilLF()
	return &token.LineComment{Prefix: prefix, Text: token.Borrowed(s.TextFrom(start))}
}

// blockComment consumes a nested block comment. Line comments take
// precedence over block comment markers. The cursor must be just after
// the opening `{-`.
func (l *lexer) blockComment() token.Token {
	s := l.s
	start := s.Offset()
	level := 1
	for {
		rest := s.Rest()
		switch {
		case bytes.HasPrefix(rest, []byte("-}")):
			end := s.Offset()
			s.Bump()
			s.Bump()
			level--
			if level == 0 {
				return &token.BlockComment{
					Open:   "{-",
					Text:   token.Borrowed(s.Src()[start:end]),
					Close:  "-}",
					Nested: true,
				}
			}
		case isBlockOpen(rest):
			s.Bump()
			s.Bump()
			level++
		case len(rest) > 0 && (rest[0] == ';' || bytes.HasPrefix(rest, []byte("--"))):
			s.BumpUntilLF()
		case len(rest) == 0:
			return &token.BlockComment{
				Open:   "{-",
				Text:   token.Borrowed(s.TextFrom(start)),
				Nested: true,
				Errors: token.ErrUnterminated,
			}
		default:
			s.BumpRune()
		}
	}
}
