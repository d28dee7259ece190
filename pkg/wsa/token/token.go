// Package token defines the lossless token model for Whitespace assembly.
// Every token records its exact source text, and malformed input is
// represented as error flags on otherwise ordinary tokens, so that a
// parsed program can always be printed back byte for byte.
package token

import "github.com/wspace/wsasm/pkg/wsa/integer"

// Token is a lexical token in Whitespace assembly.
type Token interface {
	// HasError reports whether this token has any lexical errors.
	HasError() bool
	// Pretty appends the exact source text of this token to buf.
	Pretty(buf *[]byte)
}

// Text is the source text of a token. It either borrows a sub-slice of
// the source or owns bytes synthesized by splicing or conversion.
// Borrowed text must not be mutated.
type Text struct {
	b     []byte
	owned bool
}

// Borrowed wraps a sub-slice of the source.
func Borrowed(b []byte) Text {
	return Text{b: b}
}

// Owned wraps synthesized bytes.
func Owned(b []byte) Text {
	return Text{b: b, owned: true}
}

// Bytes returns the text bytes. The result must not be mutated.
func (t Text) Bytes() []byte {
	return t.b
}

// Len returns the length of the text in bytes.
func (t Text) Len() int {
	return len(t.b)
}

// IsOwned reports whether the text owns its bytes.
func (t Text) IsOwned() bool {
	return t.owned
}

// Append returns the text extended with more bytes. The receiver is
// copied when it borrows from the source.
func (t Text) Append(b []byte) Text {
	if !t.owned {
		buf := make([]byte, len(t.b), len(t.b)+len(b))
		copy(buf, t.b)
		t.b = buf
		t.owned = true
	}
	t.b = append(t.b, b...)
	return t
}

// Unwrap resolves non-semantic quotes and splices to the effective
// token.
func Unwrap(tok Token) Token {
	for {
		switch t := tok.(type) {
		case *Quoted:
			tok = t.Inner
		case *Spliced:
			tok = t.Effective
		default:
			return tok
		}
	}
}

// Mnemonic is an instruction mnemonic resolved to an opcode.
type Mnemonic struct {
	// The mnemonic as written in the source.
	Text Text
	// The resolved opcode, or Invalid.
	Opcode Opcode
}

func (t *Mnemonic) HasError() bool {
	return t.Opcode == Invalid
}

func (t *Mnemonic) Pretty(buf *[]byte) {
	*buf = append(*buf, t.Text.Bytes()...)
}

// Integer is an integer literal.
type Integer struct {
	// The literal as written, including any sign and base marker.
	Literal Text
	// The parse of the literal.
	Int integer.Parsed
}

func (t *Integer) HasError() bool {
	return t.Int.Errors != 0
}

func (t *Integer) Pretty(buf *[]byte) {
	*buf = append(*buf, t.Literal.Bytes()...)
}

// Word is a word of uninterpreted meaning.
type Word struct {
	Word Text
}

func (t *Word) HasError() bool {
	return false
}

func (t *Word) Pretty(buf *[]byte) {
	*buf = append(*buf, t.Word.Bytes()...)
}

// Variable is a variable identifier (e.g. Burghard `_`-prefixed).
type Variable struct {
	// The prefix sigil marking the identifier.
	Sigil string
	// The identifier with its sigil removed.
	Ident Text
}

func (t *Variable) HasError() bool {
	return false
}

func (t *Variable) Pretty(buf *[]byte) {
	*buf = append(*buf, t.Sigil...)
	*buf = append(*buf, t.Ident.Bytes()...)
}

// ErrorKind discriminates erroneous sequences.
type ErrorKind uint8

const (
	// InvalidUtf8 is a sequence starting with invalid UTF-8
	// (deferred to the end of the source by the UTF-8 scanner).
	InvalidUtf8 ErrorKind = iota
	// UnrecognizedChar is a run of characters the lexer cannot start
	// any token with.
	UnrecognizedChar
)

// Error is an erroneous source sequence.
type Error struct {
	// The erroneous text.
	Text Text
	Kind ErrorKind
	// For InvalidUtf8, the length of the first invalid sequence
	// (its maximal subpart).
	ErrorLen int
}

func (t *Error) HasError() bool {
	return true
}

func (t *Error) Pretty(buf *[]byte) {
	*buf = append(*buf, t.Text.Bytes()...)
}
