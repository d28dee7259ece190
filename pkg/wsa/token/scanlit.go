package token

import "github.com/wspace/wsasm/pkg/wsa/scan"

// ScanStringOneline scans a single-line string literal, returning the
// literal between the quotes. The scanner must be just after the open
// quote. A backslash is consumed without protecting the character after
// it, matching the reference assemblers.
func ScanStringOneline(s *scan.Scanner) (Text, StringErrors) {
	start := s.Offset()
	for {
		s.BumpUntil(func(b byte) bool { return b == '"' || b == '\\' || b == '\n' })
		b, ok := s.Peek()
		if ok && b == '"' {
			literal := Borrowed(s.TextFrom(start))
			s.Bump()
			return literal, 0
		}
		if ok && b == '\\' {
			s.Bump()
			continue
		}
		return Borrowed(s.TextFrom(start)), ErrStringUnterminated
	}
}

// ScanCharOneline scans a single-line char literal, returning the
// literal between the quotes. The scanner must be just after the open
// quote. An unterminated literal recovers by re-taking at most one
// possibly escaped character.
func ScanCharOneline(s *scan.Scanner) (Text, CharErrors) {
	start := s.EndPos()
	for {
		s.BumpUntil(func(b byte) bool { return b == '\'' || b == '\\' || b == '\n' })
		b, ok := s.Peek()
		if ok && b == '\'' {
			literal := Borrowed(s.TextFrom(start.Offset))
			s.Bump()
			return literal, 0
		}
		if ok && b == '\\' {
			s.Bump()
			continue
		}
		s.Revert(start)
		s.BumpIfByte('\\')
		s.BumpIf(func(b byte) bool { return b != '\n' })
		return Borrowed(s.TextFrom(start.Offset)), ErrCharUnterminated
	}
}
