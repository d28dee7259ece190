// Package scan provides byte-level and UTF-8 cursors over assembly source.
//
// A scanner never fails: malformed input is reported through the tokens the
// dialect lexers build on top of it, so the original bytes always survive.
package scan

// Pos is a position in the source, with 1-based line and column.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

// Scanner is a byte cursor over an immutable source buffer. It tracks the
// span of the token in progress between Start() calls.
type Scanner struct {
	src   []byte
	start Pos
	end   Pos
}

// NewScanner creates a scanner at the beginning of the source.
func NewScanner(src []byte) *Scanner {
	p := Pos{Offset: 0, Line: 1, Col: 1}
	return &Scanner{src: src, start: p, end: p}
}

// Src returns the full source buffer.
func (s *Scanner) Src() []byte { return s.src }

// EOF reports whether the cursor is at the end of the source.
func (s *Scanner) EOF() bool { return s.end.Offset >= len(s.src) }

// Offset returns the current cursor offset.
func (s *Scanner) Offset() int { return s.end.Offset }

// StartOffset returns the offset of the start of the token in progress.
func (s *Scanner) StartOffset() int { return s.start.Offset }

// StartPos returns the position of the start of the token in progress.
func (s *Scanner) StartPos() Pos { return s.start }

// EndPos returns the current cursor position.
func (s *Scanner) EndPos() Pos { return s.end }

// Start begins a new token at the current cursor.
func (s *Scanner) Start() { s.start = s.end }

// Text returns the bytes of the token in progress.
func (s *Scanner) Text() []byte { return s.src[s.start.Offset:s.end.Offset] }

// TextFrom returns the bytes from the given offset to the cursor.
func (s *Scanner) TextFrom(offset int) []byte { return s.src[offset:s.end.Offset] }

// Rest returns the unscanned remainder of the source.
func (s *Scanner) Rest() []byte { return s.src[s.end.Offset:] }

// Peek returns the byte at the cursor without advancing.
func (s *Scanner) Peek() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.src[s.end.Offset], true
}

// PeekAt returns the byte n positions past the cursor without advancing.
func (s *Scanner) PeekAt(n int) (byte, bool) {
	if s.end.Offset+n >= len(s.src) {
		return 0, false
	}
	return s.src[s.end.Offset+n], true
}

// Bump advances the cursor by one byte and returns it. It must not be
// called at EOF.
func (s *Scanner) Bump() byte {
	b := s.src[s.end.Offset]
	s.end.Offset++
	if b == '\n' {
		s.end.Line++
		s.end.Col = 1
	} else {
		s.end.Col++
	}
	return b
}

// Revert moves the cursor back to a previously saved position. The
// position must not be past the cursor.
func (s *Scanner) Revert(pos Pos) { s.end = pos }

// BumpIf advances past the next byte if it satisfies the predicate.
func (s *Scanner) BumpIf(pred func(byte) bool) bool {
	if b, ok := s.Peek(); ok && pred(b) {
		s.Bump()
		return true
	}
	return false
}

// BumpIfByte advances past the next byte if it equals b.
func (s *Scanner) BumpIfByte(b byte) bool {
	if c, ok := s.Peek(); ok && c == b {
		s.Bump()
		return true
	}
	return false
}

// BumpWhile advances while the next byte satisfies the predicate.
func (s *Scanner) BumpWhile(pred func(byte) bool) {
	for {
		b, ok := s.Peek()
		if !ok || !pred(b) {
			return
		}
		s.Bump()
	}
}

// BumpUntil advances until the next byte satisfies the predicate or EOF.
func (s *Scanner) BumpUntil(pred func(byte) bool) {
	s.BumpWhile(func(b byte) bool { return !pred(b) })
}

// BumpUntilLF advances to the next line feed without consuming it.
func (s *Scanner) BumpUntilLF() {
	s.BumpUntil(func(b byte) bool { return b == '\n' })
}
