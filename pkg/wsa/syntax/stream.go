package syntax

import "github.com/wspace/wsasm/pkg/wsa/token"

// Lexer scans tokens for some Whitespace assembly dialect.
type Lexer interface {
	// NextToken scans the next token. After the end of the source it
	// returns Eof forever.
	NextToken() token.Token
}

// Stream is a stream of tokens with one token of lookahead, for
// matching against the current token and aggregating runs of tokens.
type Stream struct {
	lex Lexer
	tok token.Token
}

// NewStream constructs a stream over the tokens from a lexer.
func NewStream(lex Lexer) *Stream {
	return &Stream{lex: lex, tok: lex.NextToken()}
}

// Curr returns the current token without consuming it.
func (s *Stream) Curr() token.Token {
	return s.tok
}

// Advance returns the current token and moves to the next.
func (s *Stream) Advance() token.Token {
	tok := s.tok
	s.tok = s.lex.NextToken()
	return tok
}

// Eof reports whether the stream is at the end of the source.
func (s *Stream) Eof() bool {
	_, ok := s.tok.(*token.Eof)
	return ok
}

// Space consumes a run of space and block comment tokens.
func (s *Stream) Space() Spaces {
	var space Spaces
	for {
		switch s.tok.(type) {
		case *token.Space, *token.BlockComment:
			space.Push(s.Advance())
		default:
			return space
		}
	}
}

// LineComment consumes a line comment token, if present.
func (s *Stream) LineComment() (token.Token, bool) {
	if _, ok := s.tok.(*token.LineComment); ok {
		return s.Advance(), true
	}
	return nil, false
}

// LineTerm consumes a line terminator, EOF, or deferred invalid UTF-8
// error token, if present.
func (s *Stream) LineTerm() (token.Token, bool) {
	switch s.tok.(type) {
	case *token.LineTerm, *token.Eof, *token.Error:
		return s.Advance(), true
	}
	return nil, false
}

// LineTermSep consumes an optional line comment followed by a line
// terminator and appends them to the given spaces. It panics when the
// stream is not at such a token.
func (s *Stream) LineTermSep(space Spaces) Spaces {
	if comment, ok := s.LineComment(); ok {
		space.Push(comment)
	}
	term, ok := s.LineTerm()
	if !ok {
		panic("syntax: expected line terminator")
	}
	space.Push(term)
	return space
}
