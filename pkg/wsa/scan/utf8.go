package scan

import "unicode/utf8"

// Utf8Scanner is a rune cursor over UTF-8 source. The source is validated
// once up front: scanning covers the longest valid prefix, and the first
// invalid sequence with everything after it is reported separately, so a
// lexer can emit every valid token before one trailing invalid-encoding
// token.
type Utf8Scanner struct {
	Scanner
	full     []byte
	errorLen int
}

// NewUtf8Scanner creates a UTF-8 scanner at the beginning of the source.
func NewUtf8Scanner(src []byte) *Utf8Scanner {
	valid, errorLen := validUpTo(src)
	return &Utf8Scanner{
		Scanner:  *NewScanner(src[:valid]),
		full:     src,
		errorLen: errorLen,
	}
}

// HasInvalidUtf8 reports whether the source contains an invalid sequence.
func (s *Utf8Scanner) HasInvalidUtf8() bool { return len(s.full) > len(s.src) }

// InvalidRest returns the bytes from the first invalid sequence to the end
// of the source and the length of that sequence. It returns nil and 0 when
// the source is entirely valid.
func (s *Utf8Scanner) InvalidRest() (text []byte, errorLen int) {
	if !s.HasInvalidUtf8() {
		return nil, 0
	}
	return s.full[len(s.src):], s.errorLen
}

// PeekRune decodes the rune at the cursor without advancing. It must not be
// called at EOF.
func (s *Utf8Scanner) PeekRune() rune {
	r, _ := utf8.DecodeRune(s.src[s.end.Offset:])
	return r
}

// BumpRune advances past the rune at the cursor and returns it. It must not
// be called at EOF.
func (s *Utf8Scanner) BumpRune() rune {
	r, size := utf8.DecodeRune(s.src[s.end.Offset:])
	s.end.Offset += size
	if r == '\n' {
		s.end.Line++
		s.end.Col = 1
	} else {
		s.end.Col++
	}
	return r
}

// BumpRuneIf advances past the next rune if it satisfies the predicate.
func (s *Utf8Scanner) BumpRuneIf(pred func(rune) bool) bool {
	if !s.EOF() && pred(s.PeekRune()) {
		s.BumpRune()
		return true
	}
	return false
}

// BumpRuneWhile advances while the next rune satisfies the predicate.
func (s *Utf8Scanner) BumpRuneWhile(pred func(rune) bool) {
	for s.BumpRuneIf(pred) {
	}
}

// DecodeRune decodes the first character of b. For a well-formed
// sequence it returns the rune, its size, and true. For an ill-formed
// sequence it returns U+FFFD, the length of its maximal valid subpart,
// and false. An empty b returns size 0 and false.
func DecodeRune(b []byte) (r rune, size int, ok bool) {
	if len(b) == 0 {
		return utf8.RuneError, 0, false
	}
	r, size = utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return utf8.RuneError, maximalSubpart(b), false
	}
	return r, size, true
}

// validUpTo returns the length of the longest valid UTF-8 prefix of src and
// the length of the ill-formed sequence that follows it, per Unicode
// maximal-subpart substitution. errorLen is 0 when src is entirely valid.
func validUpTo(src []byte) (valid, errorLen int) {
	i := 0
	for i < len(src) {
		if src[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size <= 1 {
			return i, maximalSubpart(src[i:])
		}
		i += size
	}
	return i, 0
}

// maximalSubpart returns the length in bytes of the maximal valid subpart
// of the ill-formed sequence at the start of b. Always at least 1.
func maximalSubpart(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	c0 := b[0]
	var lo, hi byte = 0x80, 0xbf
	var need int
	switch {
	case c0 < 0xc2 || c0 > 0xf4:
		return 1
	case c0 < 0xe0:
		need = 1
	case c0 < 0xf0:
		need = 2
		if c0 == 0xe0 {
			lo = 0xa0
		} else if c0 == 0xed {
			hi = 0x9f
		}
	default:
		need = 3
		if c0 == 0xf0 {
			lo = 0x90
		} else if c0 == 0xf4 {
			hi = 0x8f
		}
	}
	n := 1
	for i := 1; i <= need && i < len(b); i++ {
		c := b[i]
		if c < lo || c > hi {
			break
		}
		lo, hi = 0x80, 0xbf
		n++
	}
	return n
}
