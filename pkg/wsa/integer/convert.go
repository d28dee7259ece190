package integer

import "math/big"

// Convert re-renders a parsed literal under another syntax description
// while holding its numeric value fixed. Sign and base markers are
// rewritten and the digits are kept verbatim when the radix is unchanged;
// when the radix differs, or unsupported digit separators must go, the
// digits are re-rendered from the value.
//
// Grouping parentheses and base suffixes both occupy the literal's tail,
// so converting between a Haskell-sign syntax and a suffix-base syntax in
// one step is a caller error.
func Convert(p *Parsed, literal []byte, from, to *Syntax) (Parsed, []byte) {
	if from.Signs == SignStyleHaskell && from.Bases.family() == familySuffix ||
		to.Signs == SignStyleHaskell && to.Bases.family() == familySuffix {
		panic("integer: cannot convert between Haskell signs and base suffixes")
	}

	out := make([]byte, 0, len(literal))
	var suffix []byte

	// Convert the sign.
	dropSign := p.Sign == SignPos && to.Signs != SignStyleNegPos
	newSign := p.Sign
	if dropSign {
		newSign = SignNone
	}
	var s []byte
	switch from.Signs {
	case SignStyleHaskell:
		_, stripped, _ := stripHaskellSign(literal)
		s = stripped
		if to.Signs == SignStyleHaskell {
			before, after := surround(literal, stripped)
			if !dropSign {
				out = append(out, before...)
			}
			suffix = after
		} else if !dropSign {
			out = append(out, newSign.String()...)
		}
	default:
		var sign Sign
		sign, s = stripSign(literal)
		if !dropSign && sign != SignNone {
			out = append(out, literal[0])
		}
	}

	// Pick the base to render in.
	newBase := p.Base()
	if !to.Bases.ContainsBase(newBase) && to.Bases != 0 {
		switch {
		case to.Bases.ContainsBase(Hexadecimal):
			newBase = Hexadecimal
		case to.Bases.ContainsBase(Decimal):
			newBase = Decimal
		case to.Bases.ContainsBase(Binary):
			newBase = Binary
		default:
			newBase = Octal
		}
	}

	// Strip the old base marker and write the one for the target family.
	// When the radix survives, the letter case of the old marker is kept;
	// when it changes, the marker is rewritten outright.
	fromFamily, toFamily := from.Bases.family(), to.Bases.family()
	var style BaseStyle
	switch fromFamily {
	case familyC:
		style, s = stripBaseC(s)
	case familyRust:
		style, s = stripBaseRust(s)
	case familySuffix:
		style, s = stripBaseSuffix(s)
	}
	newStyle := styleFor(newBase, toFamily, style)
	if newBase != p.Base() {
		if toFamily == familySuffix {
			suffix = []byte(newStyle.Suffix())
		} else {
			out = append(out, newStyle.Prefix()...)
		}
	} else {
		switch {
		case fromFamily != familySuffix && toFamily == familySuffix:
			suffix = prefixToSuffix(style)
		case fromFamily == familySuffix && toFamily == familySuffix:
			suffix = []byte(style.Suffix())
		case fromFamily == familySuffix:
			out = append(out, suffixToPrefix(style, toFamily)...)
		case toFamily == familyC && (style == StyleOctPrefix0o || style == StyleOctPrefix0O):
			out = append(out, '0')
		case toFamily == familyRust && style == StyleOctPrefix0:
			out = append(out, "0o"...)
		default:
			out = append(out, style.Prefix()...)
		}
	}

	// A suffix-style hex literal needs a leading zero when its first digit
	// is a letter; prefix styles never do, and a C decimal must not keep
	// any since a leading zero would mark it octal.
	newLeadingZeros := p.LeadingZeros
	if toFamily == familyC && newBase == Decimal {
		newLeadingZeros = 0
	} else if fromFamily == familySuffix && toFamily != familySuffix &&
		p.Base() == Hexadecimal && p.LeadingZeros == 1 && msHexDigit(p.Value) >= 0x0a {
		newLeadingZeros = 0
	} else if fromFamily != familySuffix && toFamily == familySuffix &&
		newBase == Hexadecimal && p.LeadingZeros == 0 && msHexDigit(p.Value) >= 0x0a {
		newLeadingZeros = 1
	}

	// Append leading zeros and digits.
	newHasDigitSeps := p.HasDigitSeps
	if p.Base() == newBase && !(p.HasDigitSeps && to.DigitSep == SepNone) {
		switch {
		case newLeadingZeros > p.LeadingZeros:
			for i := p.LeadingZeros; i < newLeadingZeros; i++ {
				out = append(out, '0')
			}
		case newLeadingZeros < p.LeadingZeros:
			s = s[p.LeadingZeros-newLeadingZeros:]
		}
		out = append(out, s...)
	} else {
		for i := 0; i < newLeadingZeros; i++ {
			out = append(out, '0')
		}
		out = append(out, new(big.Int).Abs(p.Value).Text(int(newBase))...)
		newHasDigitSeps = false
	}

	out = append(out, suffix...)

	return Parsed{
		Value:        p.Value,
		Sign:         newSign,
		Style:        newStyle,
		LeadingZeros: newLeadingZeros,
		HasDigitSeps: newHasDigitSeps,
		Errors:       p.Errors,
	}, out
}

// surround returns the bytes of outer before and after the inner slice,
// which must be a sub-slice of outer.
func surround(outer, inner []byte) (before, after []byte) {
	if len(inner) == 0 {
		return outer, nil
	}
	for i := 0; i+len(inner) <= len(outer); i++ {
		if &outer[i] == &inner[0] {
			return outer[:i], outer[i+len(inner):]
		}
	}
	panic("integer: inner is not a sub-slice of outer")
}

func prefixToSuffix(style BaseStyle) []byte {
	switch style {
	case StyleHexPrefix0x:
		return []byte("h")
	case StyleHexPrefix0X:
		return []byte("H")
	case StyleBinPrefix0b:
		return []byte("b")
	case StyleBinPrefix0B:
		return []byte("B")
	case StyleOctPrefix0o, StyleOctPrefix0:
		return []byte("o")
	case StyleOctPrefix0O:
		return []byte("O")
	default:
		return nil
	}
}

func suffixToPrefix(style BaseStyle, to family) []byte {
	switch style {
	case StyleHexSuffixh:
		return []byte("0x")
	case StyleHexSuffixH:
		return []byte("0X")
	case StyleBinSuffixb:
		return []byte("0b")
	case StyleBinSuffixB:
		return []byte("0B")
	case StyleOctSuffixo:
		if to == familyRust {
			return []byte("0o")
		}
		return []byte("0")
	case StyleOctSuffixO:
		if to == familyRust {
			return []byte("0O")
		}
		return []byte("0")
	default:
		return nil
	}
}

// styleFor maps a radix to its style in the target family, keeping the
// letter case of the source style where both exist.
func styleFor(base Base, fam family, from BaseStyle) BaseStyle {
	if base == Decimal {
		return StyleDecimal
	}
	upper := from == StyleBinPrefix0B || from == StyleBinSuffixB ||
		from == StyleOctPrefix0O || from == StyleOctSuffixO ||
		from == StyleHexPrefix0X || from == StyleHexSuffixH
	switch fam {
	case familySuffix:
		switch base {
		case Binary:
			if upper {
				return StyleBinSuffixB
			}
			return StyleBinSuffixb
		case Octal:
			if upper {
				return StyleOctSuffixO
			}
			return StyleOctSuffixo
		default:
			if upper {
				return StyleHexSuffixH
			}
			return StyleHexSuffixh
		}
	case familyC:
		switch base {
		case Binary:
			if upper {
				return StyleBinPrefix0B
			}
			return StyleBinPrefix0b
		case Octal:
			return StyleOctPrefix0
		default:
			if upper {
				return StyleHexPrefix0X
			}
			return StyleHexPrefix0x
		}
	default:
		switch base {
		case Binary:
			if upper {
				return StyleBinPrefix0B
			}
			return StyleBinPrefix0b
		case Octal:
			if upper {
				return StyleOctPrefix0O
			}
			return StyleOctPrefix0o
		default:
			if upper {
				return StyleHexPrefix0X
			}
			return StyleHexPrefix0x
		}
	}
}

// msHexDigit returns the most significant hex digit of the magnitude.
func msHexDigit(v *big.Int) byte {
	if v == nil || v.Sign() == 0 {
		return 0
	}
	b := v.Bytes()[0]
	if b > 0x0f {
		b >>= 4
	}
	return b
}
