package integer

import "math/big"

// Parse parses an integer literal under the described syntax. It never
// fails: problems accumulate as flags and the value is best-effort. The
// scratch buffer is reused across calls to avoid allocation.
func (syn *Syntax) Parse(literal []byte, scratch *Scratch) Parsed {
	var p Parsed
	var s []byte
	switch syn.Signs {
	case SignStyleHaskell:
		p.Sign, s, p.Errors = stripHaskellSign(literal)
	default:
		p.Sign, s = stripSign(literal)
		if p.Sign == SignPos && syn.Signs != SignStyleNegPos {
			p.Errors |= ErrInvalidSign
		}
	}

	switch syn.Bases.family() {
	case familyC:
		p.Style, s = stripBaseC(s)
	case familyRust:
		p.Style, s = stripBaseRust(s)
	case familySuffix:
		p.Style, s = stripBaseSuffix(s)
		if p.Style.Base() == Hexadecimal && len(s) > 0 && isHexLetter(s[0]) {
			p.Errors |= ErrStartsWithHex
		}
	}
	if !syn.Bases.Contains(p.Style) {
		p.Errors |= ErrInvalidBase
	}

	p.parseDigits(s, scratch)

	if p.HasDigitSeps && syn.DigitSep == SepNone {
		p.Errors |= ErrInvalidDigitSep
	}
	if syn.Min != nil && p.Value.Cmp(syn.Min) < 0 || syn.Max != nil && p.Value.Cmp(syn.Max) > 0 {
		p.Errors |= ErrRange
	}
	return p
}

// parseDigits parses s as digits in the resolved base with optional `_`
// separators, stopping at the first invalid digit.
func (p *Parsed) parseDigits(s []byte, scratch *Scratch) {
	scratch.digits = scratch.digits[:0]

	for len(s) > 0 && s[0] == '0' {
		p.LeadingZeros++
		s = s[1:]
	}

	if len(s) == 0 {
		p.Value = new(big.Int)
		if p.LeadingZeros == 0 {
			p.Errors |= ErrNoDigits
		}
		return
	}

	base := p.Base()
	for _, b := range s {
		if b == '_' {
			p.HasDigitSeps = true
			continue
		}
		if !validDigit(b, base) {
			p.Errors |= ErrInvalidDigit
			break
		}
		scratch.digits = append(scratch.digits, b)
	}

	p.Value = new(big.Int)
	if len(scratch.digits) > 0 {
		p.Value.SetString(string(scratch.digits), int(base))
	}
	if p.Sign == SignNeg {
		p.Value.Neg(p.Value)
	}
}

func validDigit(b byte, base Base) bool {
	switch base {
	case Hexadecimal:
		return '0' <= b && b <= '9' || 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F'
	default:
		return '0' <= b && b < '0'+byte(base)
	}
}

func isHexLetter(b byte) bool {
	return 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F'
}

// stripSign strips one optional leading sign.
func stripSign(s []byte) (Sign, []byte) {
	if len(s) > 0 {
		switch s[0] {
		case '-':
			return SignNeg, s[1:]
		case '+':
			return SignPos, s[1:]
		}
	}
	return SignNone, s
}

// stripBaseC strips a C-like base prefix: `0x`/`0X` for hexadecimal,
// `0b`/`0B` for binary, a bare `0` for octal, and none for decimal.
func stripBaseC(s []byte) (BaseStyle, []byte) {
	if len(s) >= 2 && s[0] == '0' {
		switch s[1] {
		case 'x':
			return StyleHexPrefix0x, s[2:]
		case 'X':
			return StyleHexPrefix0X, s[2:]
		case 'b':
			return StyleBinPrefix0b, s[2:]
		case 'B':
			return StyleBinPrefix0B, s[2:]
		}
	}
	if len(s) >= 1 && s[0] == '0' {
		return StyleOctPrefix0, s[1:]
	}
	return StyleDecimal, s
}

// stripBaseRust strips a Rust-like base prefix: `0x`/`0X` for hexadecimal,
// `0b`/`0B` for binary, `0o`/`0O` for octal, and none for decimal.
func stripBaseRust(s []byte) (BaseStyle, []byte) {
	if len(s) >= 2 && s[0] == '0' {
		switch s[1] {
		case 'x':
			return StyleHexPrefix0x, s[2:]
		case 'X':
			return StyleHexPrefix0X, s[2:]
		case 'b':
			return StyleBinPrefix0b, s[2:]
		case 'B':
			return StyleBinPrefix0B, s[2:]
		case 'o':
			return StyleOctPrefix0o, s[2:]
		case 'O':
			return StyleOctPrefix0O, s[2:]
		}
	}
	return StyleDecimal, s
}

// stripBaseSuffix strips a trailing base suffix: `h`/`H` for hexadecimal,
// `b`/`B` for binary, `o`/`O` for octal, and none for decimal.
func stripBaseSuffix(s []byte) (BaseStyle, []byte) {
	if len(s) > 0 {
		switch s[len(s)-1] {
		case 'h':
			return StyleHexSuffixh, s[:len(s)-1]
		case 'H':
			return StyleHexSuffixH, s[:len(s)-1]
		case 'b':
			return StyleBinSuffixb, s[:len(s)-1]
		case 'B':
			return StyleBinSuffixB, s[:len(s)-1]
		case 'o':
			return StyleOctSuffixo, s[:len(s)-1]
		case 'O':
			return StyleOctSuffixO, s[:len(s)-1]
		}
	}
	return StyleDecimal, s
}
