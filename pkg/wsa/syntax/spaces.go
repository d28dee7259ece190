// Package syntax defines the concrete syntax tree for Whitespace
// assembly. The tree keeps every token of the source, including
// whitespace and comments, so printing a tree reproduces the source
// byte for byte.
package syntax

import "github.com/wspace/wsasm/pkg/wsa/token"

// Spaces is a sequence of whitespace, separator, and comment tokens.
type Spaces struct {
	// All tokens are Space, LineTerm, Eof, InstSep, ArgSep,
	// LineComment, or BlockComment.
	Tokens []token.Token
}

// Push appends a space token to the sequence.
func (s *Spaces) Push(tok token.Token) {
	s.Tokens = append(s.Tokens, tok)
}

// PushFront prepends a space token to the sequence.
func (s *Spaces) PushFront(tok token.Token) {
	s.Tokens = append([]token.Token{tok}, s.Tokens...)
}

// Len returns the number of tokens in the sequence.
func (s *Spaces) Len() int {
	return len(s.Tokens)
}

// HasError reports whether any token in the sequence has an error.
func (s *Spaces) HasError() bool {
	for _, tok := range s.Tokens {
		if tok.HasError() {
			return true
		}
	}
	return false
}

// Pretty appends the source text of the sequence to buf.
func (s *Spaces) Pretty(buf *[]byte) {
	for _, tok := range s.Tokens {
		tok.Pretty(buf)
	}
}
