package integer

import (
	"unicode"
	"unicode/utf8"
)

// stripHaskellSign strips grouping parentheses, whitespace, and signs with
// the syntax of Haskell `read :: String -> Integer`. Signs fold: two
// negations cancel to positive. A sign outside a parenthesis group or a
// repeated or positive sign is flagged as invalid; unbalanced parentheses
// are flagged as unpaired.
//
// Whitespace is any character with the Unicode White_Space property except
// the non-ASCII line breaks U+0085, U+2028, and U+2029.
func stripHaskellSign(s []byte) (Sign, []byte, Errors) {
	var errors Errors
	sign := SignNone
	hasSign := false
	s = trimRightHaskellSpace(trimLeftHaskellSpace(s))
	for len(s) > 0 {
		first, last := s[0], s[len(s)-1]
		switch {
		case first == '-':
			if sign == SignNeg {
				sign = SignPos
			} else {
				sign = SignNeg
			}
			if hasSign {
				errors |= ErrInvalidSign
			}
			hasSign = true
			s = trimLeftHaskellSpace(s[1:])
		case first == '+':
			if sign == SignNone {
				sign = SignPos
			}
			hasSign = true
			errors |= ErrInvalidSign
			s = trimLeftHaskellSpace(s[1:])
		case first == '(' && last == ')':
			if hasSign {
				errors |= ErrInvalidSign
			}
			s = trimRightHaskellSpace(trimLeftHaskellSpace(s[1 : len(s)-1]))
		case first == '(':
			if hasSign {
				errors |= ErrInvalidSign
			}
			errors |= ErrUnpairedParen
			s = trimLeftHaskellSpace(s[1:])
		case last == ')':
			errors |= ErrUnpairedParen
			s = trimRightHaskellSpace(s[:len(s)-1])
		default:
			return sign, s, errors
		}
	}
	return sign, s, errors
}

func isHaskellSpace(r rune) bool {
	return unicode.IsSpace(r) && r != '' && r != ' ' && r != ' '
}

func trimLeftHaskellSpace(s []byte) []byte {
	for len(s) > 0 {
		r, size := utf8.DecodeRune(s)
		if !isHaskellSpace(r) {
			break
		}
		s = s[size:]
	}
	return s
}

func trimRightHaskellSpace(s []byte) []byte {
	for len(s) > 0 {
		r, size := utf8.DecodeLastRune(s)
		if !isHaskellSpace(r) {
			break
		}
		s = s[:len(s)-size]
	}
	return s
}
