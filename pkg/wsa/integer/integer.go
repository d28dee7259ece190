// Package integer parses, renders, and converts integer literals under
// configurable numeral grammars. Parsing never fails: every problem is
// recorded as a flag on the result and the value is best-effort.
package integer

import "math/big"

// Sign is the written sign of an integer literal.
type Sign uint8

const (
	// SignNone is an implicit positive sign.
	SignNone Sign = iota
	// SignPos is an explicit positive sign.
	SignPos
	// SignNeg is an explicit negative sign.
	SignNeg
)

// String returns the source representation of the sign.
func (s Sign) String() string {
	switch s {
	case SignPos:
		return "+"
	case SignNeg:
		return "-"
	default:
		return ""
	}
}

// SignStyle is the lexical style of integer signs in a dialect.
type SignStyle uint8

const (
	// SignStyleNeg allows an implicit positive and a '-' negative sign.
	SignStyleNeg SignStyle = iota
	// SignStyleNegPos additionally allows a '+' positive sign.
	SignStyleNegPos
	// SignStyleHaskell allows '-' with optional grouping parentheses and
	// interior whitespace, with the syntax of Haskell `read`.
	SignStyleHaskell
)

// Base is the radix of an integer literal.
type Base uint8

const (
	Binary      Base = 2
	Octal       Base = 8
	Decimal     Base = 10
	Hexadecimal Base = 16
)

// BaseStyle is one lexical style of writing an integer base. The styles
// form bit values so a set of them is a BaseStyles.
type BaseStyle uint16

const (
	// StyleDecimal is a decimal integer with no marker.
	StyleDecimal BaseStyle = 1 << iota
	// StyleBinPrefix0b is a binary integer with a `0b` prefix.
	StyleBinPrefix0b
	// StyleBinPrefix0B is a binary integer with a `0B` prefix.
	StyleBinPrefix0B
	// StyleBinSuffixb is a binary integer with a `b` suffix.
	StyleBinSuffixb
	// StyleBinSuffixB is a binary integer with a `B` suffix.
	StyleBinSuffixB
	// StyleOctPrefix0o is an octal integer with a `0o` prefix.
	StyleOctPrefix0o
	// StyleOctPrefix0O is an octal integer with a `0O` prefix.
	StyleOctPrefix0O
	// StyleOctPrefix0 is an octal integer with a bare `0` prefix.
	StyleOctPrefix0
	// StyleOctSuffixo is an octal integer with an `o` suffix.
	StyleOctSuffixo
	// StyleOctSuffixO is an octal integer with an `O` suffix.
	StyleOctSuffixO
	// StyleHexPrefix0x is a hexadecimal integer with a `0x` prefix.
	StyleHexPrefix0x
	// StyleHexPrefix0X is a hexadecimal integer with a `0X` prefix.
	StyleHexPrefix0X
	// StyleHexSuffixh is a hexadecimal integer with an `h` suffix.
	StyleHexSuffixh
	// StyleHexSuffixH is a hexadecimal integer with an `H` suffix.
	StyleHexSuffixH
)

// BaseStyles is a set of base styles.
type BaseStyles uint16

// Style sets grouped by radix and by marker position.
const (
	DecimalStyles BaseStyles = BaseStyles(StyleDecimal)
	BinaryStyles  BaseStyles = BaseStyles(StyleBinPrefix0b | StyleBinPrefix0B | StyleBinSuffixb | StyleBinSuffixB)
	OctalStyles   BaseStyles = BaseStyles(StyleOctPrefix0o | StyleOctPrefix0O | StyleOctPrefix0 | StyleOctSuffixo | StyleOctSuffixO)
	HexStyles     BaseStyles = BaseStyles(StyleHexPrefix0x | StyleHexPrefix0X | StyleHexSuffixh | StyleHexSuffixH)
	SuffixStyles  BaseStyles = BaseStyles(StyleBinSuffixb | StyleBinSuffixB | StyleOctSuffixo | StyleOctSuffixO | StyleHexSuffixh | StyleHexSuffixH)
)

// Contains reports whether the set contains the style.
func (s BaseStyles) Contains(style BaseStyle) bool { return s&BaseStyles(style) != 0 }

// ContainsBase reports whether the set contains any style of the base.
func (s BaseStyles) ContainsBase(base Base) bool { return s&base.Styles() != 0 }

// Base returns the radix this style denotes.
func (s BaseStyle) Base() Base {
	switch {
	case BinaryStyles.Contains(s):
		return Binary
	case OctalStyles.Contains(s):
		return Octal
	case HexStyles.Contains(s):
		return Hexadecimal
	default:
		return Decimal
	}
}

// Prefix returns the prefix marker of the style, or "" if it has none.
func (s BaseStyle) Prefix() string {
	switch s {
	case StyleBinPrefix0b:
		return "0b"
	case StyleBinPrefix0B:
		return "0B"
	case StyleOctPrefix0o:
		return "0o"
	case StyleOctPrefix0O:
		return "0O"
	case StyleOctPrefix0:
		return "0"
	case StyleHexPrefix0x:
		return "0x"
	case StyleHexPrefix0X:
		return "0X"
	default:
		return ""
	}
}

// Suffix returns the suffix marker of the style, or "" if it has none.
func (s BaseStyle) Suffix() string {
	switch s {
	case StyleBinSuffixb:
		return "b"
	case StyleBinSuffixB:
		return "B"
	case StyleOctSuffixo:
		return "o"
	case StyleOctSuffixO:
		return "O"
	case StyleHexSuffixh:
		return "h"
	case StyleHexSuffixH:
		return "H"
	default:
		return ""
	}
}

// Styles returns the set of styles that denote this base.
func (b Base) Styles() BaseStyles {
	switch b {
	case Binary:
		return BinaryStyles
	case Octal:
		return OctalStyles
	case Hexadecimal:
		return HexStyles
	default:
		return DecimalStyles
	}
}

// DigitSep is the style of digit separator in integer literals.
type DigitSep uint8

const (
	// SepNone permits no digit separators.
	SepNone DigitSep = iota
	// SepUnderscore permits `_` between digits.
	SepUnderscore
)

// Errors is a set of problems found while parsing an integer literal.
type Errors uint16

const (
	// ErrInvalidDigit marks a digit outside the resolved base.
	ErrInvalidDigit Errors = 1 << iota
	// ErrNoDigits marks a literal with no digits after sign and base.
	ErrNoDigits
	// ErrRange marks a value outside the configured bounds.
	ErrRange
	// ErrInvalidSign marks a sign that the style does not support.
	ErrInvalidSign
	// ErrInvalidBase marks a recognized base the style does not support.
	ErrInvalidBase
	// ErrInvalidDigitSep marks digit separators where none are supported.
	ErrInvalidDigitSep
	// ErrStartsWithHex marks a suffix-style hex literal starting with a
	// letter digit.
	ErrStartsWithHex
	// ErrUnpairedParen marks an unbalanced grouping parenthesis.
	ErrUnpairedParen
)

// Has reports whether the set contains all the given flags.
func (e Errors) Has(flags Errors) bool { return e&flags == flags }

// Syntax describes the numeral grammar of one dialect. It is constructed
// once per dialect and reused for every parse.
type Syntax struct {
	Signs    SignStyle
	Bases    BaseStyles
	DigitSep DigitSep
	Min, Max *big.Int
}

// Parsed is the result of parsing an integer literal. When Errors is
// nonempty the other fields are best-effort.
type Parsed struct {
	Value        *big.Int
	Sign         Sign
	Style        BaseStyle
	LeadingZeros int
	HasDigitSeps bool
	Errors       Errors
}

// Base returns the radix of the parsed literal.
func (p *Parsed) Base() Base { return p.Style.Base() }

// Scratch is a reusable digit buffer shared across parse calls.
type Scratch struct {
	digits []byte
}

// family is how base markers are written and stripped: prefixes in the
// C manner (bare 0 is octal), prefixes in the Rust manner, or suffixes.
type family uint8

const (
	familyRust family = iota
	familyC
	familySuffix
)

func (s BaseStyles) family() family {
	switch {
	case s&SuffixStyles != 0:
		return familySuffix
	case s.Contains(StyleOctPrefix0):
		return familyC
	default:
		return familyRust
	}
}
