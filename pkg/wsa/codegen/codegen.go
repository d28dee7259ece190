// Package codegen emits Whitespace token sequences from parsed
// assembly programs.
package codegen

// Token is one of the three Whitespace tokens.
type Token uint8

const (
	S Token = iota
	T
	L
)

// String returns the conventional letter for the token.
func (tok Token) String() string {
	switch tok {
	case S:
		return "S"
	case T:
		return "T"
	default:
		return "L"
	}
}

// TokenWriter receives a generated token stream.
type TokenWriter interface {
	WriteToken(tok Token)
}

// SliceWriter collects tokens into a slice.
type SliceWriter struct {
	Toks []Token
}

func (w *SliceWriter) WriteToken(tok Token) {
	w.Toks = append(w.Toks, tok)
}

// ByteWriter renders tokens as the space, tab, and line feed bytes of
// the Whitespace language.
type ByteWriter struct {
	buf []byte
}

func (w *ByteWriter) WriteToken(tok Token) {
	w.buf = append(w.buf, " \t\n"[tok])
}

// Bytes returns the rendered program.
func (w *ByteWriter) Bytes() []byte { return w.buf }

// String returns the rendered program.
func (w *ByteWriter) String() string { return string(w.buf) }
