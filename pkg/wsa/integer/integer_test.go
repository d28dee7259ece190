package integer

import (
	"math/big"
	"testing"
)

var haskellSyntax = &Syntax{
	Signs:    SignStyleHaskell,
	Bases:    DecimalStyles | BaseStyles(StyleOctPrefix0o|StyleOctPrefix0O|StyleHexPrefix0x|StyleHexPrefix0X),
	DigitSep: SepNone,
}

var suffixSyntax = &Syntax{
	Signs:    SignStyleNeg,
	Bases:    DecimalStyles | BaseStyles(StyleBinSuffixb|StyleBinSuffixB|StyleOctSuffixo|StyleOctSuffixO|StyleHexSuffixh|StyleHexSuffixH),
	DigitSep: SepNone,
	Min:      big.NewInt(-1 << 31),
	Max:      big.NewInt(1<<31 - 1),
}

type parseTest struct {
	input        string
	value        string
	sign         Sign
	base         Base
	leadingZeros int
	hasDigitSeps bool
	errors       Errors
}

func runParseTests(t *testing.T, syn *Syntax, tests []parseTest) {
	t.Helper()
	var scratch Scratch
	for _, tt := range tests {
		p := syn.Parse([]byte(tt.input), &scratch)
		if p.Value.String() != tt.value {
			t.Errorf("Parse(%q).Value = %s, want %s", tt.input, p.Value, tt.value)
		}
		if p.Sign != tt.sign {
			t.Errorf("Parse(%q).Sign = %d, want %d", tt.input, p.Sign, tt.sign)
		}
		if p.Base() != tt.base {
			t.Errorf("Parse(%q).Base() = %d, want %d", tt.input, p.Base(), tt.base)
		}
		if p.LeadingZeros != tt.leadingZeros {
			t.Errorf("Parse(%q).LeadingZeros = %d, want %d", tt.input, p.LeadingZeros, tt.leadingZeros)
		}
		if p.HasDigitSeps != tt.hasDigitSeps {
			t.Errorf("Parse(%q).HasDigitSeps = %v, want %v", tt.input, p.HasDigitSeps, tt.hasDigitSeps)
		}
		if p.Errors != tt.errors {
			t.Errorf("Parse(%q).Errors = %016b, want %016b", tt.input, p.Errors, tt.errors)
		}
	}
}

func TestParseHaskell(t *testing.T) {
	tests := []parseTest{
		{"42", "42", SignNone, Decimal, 0, false, 0},
		// Bases
		{"0o42", "34", SignNone, Octal, 0, false, 0},
		{"0O42", "34", SignNone, Octal, 0, false, 0},
		{"0xff", "255", SignNone, Hexadecimal, 0, false, 0},
		{"0Xff", "255", SignNone, Hexadecimal, 0, false, 0},
		{"0b101", "5", SignNone, Binary, 0, false, ErrInvalidBase},
		{"0B101", "5", SignNone, Binary, 0, false, ErrInvalidBase},
		// Leading zeros
		{"000", "0", SignNone, Decimal, 3, false, 0},
		{"042", "42", SignNone, Decimal, 1, false, 0},
		{"00042", "42", SignNone, Decimal, 3, false, 0},
		{"0o00042", "34", SignNone, Octal, 3, false, 0},
		{"0x000ff", "255", SignNone, Hexadecimal, 3, false, 0},
		// Other numeral notations are not bases here
		{"0d42", "0", SignNone, Decimal, 1, false, ErrInvalidDigit},
		{"2#101", "2", SignNone, Decimal, 0, false, ErrInvalidDigit},
		{"&b101", "0", SignNone, Decimal, 0, false, ErrInvalidDigit},
		{"&hff", "0", SignNone, Decimal, 0, false, ErrInvalidDigit},
		// Signs
		{"-42", "-42", SignNeg, Decimal, 0, false, 0},
		{"+42", "42", SignPos, Decimal, 0, false, ErrInvalidSign},
		// Parentheses
		{"(42)", "42", SignNone, Decimal, 0, false, 0},
		{"((42))", "42", SignNone, Decimal, 0, false, 0},
		{"(((42)))", "42", SignNone, Decimal, 0, false, 0},
		{" ( ( ( 42 ) ) ) ", "42", SignNone, Decimal, 0, false, 0},
		{"(-42)", "-42", SignNeg, Decimal, 0, false, 0},
		{"-(42)", "-42", SignNeg, Decimal, 0, false, ErrInvalidSign},
		{"-(-42)", "42", SignPos, Decimal, 0, false, ErrInvalidSign},
		{"(--42)", "42", SignPos, Decimal, 0, false, ErrInvalidSign},
		{"(- -42)", "42", SignPos, Decimal, 0, false, ErrInvalidSign},
		{"(-(-42))", "42", SignPos, Decimal, 0, false, ErrInvalidSign},
		{"(42", "42", SignNone, Decimal, 0, false, ErrUnpairedParen},
		{"42)", "42", SignNone, Decimal, 0, false, ErrUnpairedParen},
		{"-(42", "-42", SignNeg, Decimal, 0, false, ErrUnpairedParen | ErrInvalidSign},
		{"-42)", "-42", SignNeg, Decimal, 0, false, ErrUnpairedParen},
		{"((42)", "42", SignNone, Decimal, 0, false, ErrUnpairedParen},
		{"(42))", "42", SignNone, Decimal, 0, false, ErrUnpairedParen},
		// Exponents and points are not digits
		{"1e3", "1", SignNone, Decimal, 0, false, ErrInvalidDigit},
		{"3.14", "3", SignNone, Decimal, 0, false, ErrInvalidDigit},
		// Digit separators
		{"1_000", "1000", SignNone, Decimal, 0, true, ErrInvalidDigitSep},
		{"1 000", "1", SignNone, Decimal, 0, false, ErrInvalidDigit},
		{"1,000", "1", SignNone, Decimal, 0, false, ErrInvalidDigit},
		{"1'000", "1", SignNone, Decimal, 0, false, ErrInvalidDigit},
		{"0o_42", "34", SignNone, Octal, 0, true, ErrInvalidDigitSep},
		{"0Xf_f", "255", SignNone, Hexadecimal, 0, true, ErrInvalidDigitSep},
		{"0O42_", "34", SignNone, Octal, 0, true, ErrInvalidDigitSep},
		// Larger than 128 bits
		{
			"31415926535897932384626433832795028841971693993751",
			"31415926535897932384626433832795028841971693993751",
			SignNone, Decimal, 0, false, 0,
		},
		// Empty
		{"", "0", SignNone, Decimal, 0, false, ErrNoDigits},
		{"-", "0", SignNeg, Decimal, 0, false, ErrNoDigits},
		// Operators are not digits
		{"1+2", "1", SignNone, Decimal, 0, false, ErrInvalidDigit},
		{"1-2", "1", SignNone, Decimal, 0, false, ErrInvalidDigit},
		{"9000over", "9000", SignNone, Decimal, 0, false, ErrInvalidDigit},
		{"invalid", "0", SignNone, Decimal, 0, false, ErrInvalidDigit},
	}

	// Whitespace is allowed around digits, signs, and parentheses, except
	// the non-ASCII line breaks.
	okSpaces := []rune{
		'\t', '\n', '\v', '\f', '\r', ' ',
		' ', ' ', ' ', ' ', ' ', ' ',
		' ', ' ', ' ', ' ', ' ', ' ',
		' ', ' ', ' ', '　',
	}
	errSpaces := []rune{
		'', ' ', ' ',
		'᠎', '​', '‌', '‍', '‎', '‏',
		'⁠', '\uFEFF',
	}
	for _, sp := range okSpaces {
		tests = append(tests,
			parseTest{string(sp), "0", SignNone, Decimal, 0, false, ErrNoDigits},
			parseTest{string(sp) + "-42", "-42", SignNeg, Decimal, 0, false, 0},
			parseTest{"-" + string(sp) + "42", "-42", SignNeg, Decimal, 0, false, 0},
			parseTest{"-4" + string(sp) + "2", "-4", SignNeg, Decimal, 0, false, ErrInvalidDigit},
			parseTest{"-42" + string(sp), "-42", SignNeg, Decimal, 0, false, 0},
		)
	}
	for _, sp := range errSpaces {
		tests = append(tests,
			parseTest{string(sp), "0", SignNone, Decimal, 0, false, ErrInvalidDigit},
			parseTest{string(sp) + "-42", "0", SignNone, Decimal, 0, false, ErrInvalidDigit},
			parseTest{"-" + string(sp) + "42", "0", SignNeg, Decimal, 0, false, ErrInvalidDigit},
			parseTest{"-4" + string(sp) + "2", "-4", SignNeg, Decimal, 0, false, ErrInvalidDigit},
			parseTest{"-42" + string(sp), "-42", SignNeg, Decimal, 0, false, ErrInvalidDigit},
		)
	}

	runParseTests(t, haskellSyntax, tests)
}

func TestParseSuffix(t *testing.T) {
	runParseTests(t, suffixSyntax, []parseTest{
		{"42", "42", SignNone, Decimal, 0, false, 0},
		{"-42", "-42", SignNeg, Decimal, 0, false, 0},
		{"0ffh", "255", SignNone, Hexadecimal, 1, false, 0},
		{"0FFH", "255", SignNone, Hexadecimal, 1, false, 0},
		{"ffh", "255", SignNone, Hexadecimal, 0, false, ErrStartsWithHex},
		{"101b", "5", SignNone, Binary, 0, false, 0},
		{"42o", "34", SignNone, Octal, 0, false, 0},
		{"-2147483648", "-2147483648", SignNeg, Decimal, 0, false, 0},
		{"2147483648", "2147483648", SignNone, Decimal, 0, false, ErrRange},
		{"-2147483649", "-2147483649", SignNeg, Decimal, 0, false, ErrRange},
		{"h", "0", SignNone, Hexadecimal, 0, false, ErrNoDigits},
		{"+42", "42", SignPos, Decimal, 0, false, ErrInvalidSign},
	})
}

func TestParseRustPrefixes(t *testing.T) {
	syn := &Syntax{
		Signs:    SignStyleNegPos,
		Bases:    DecimalStyles | BinaryStyles&^BaseStyles(StyleBinSuffixb|StyleBinSuffixB) | BaseStyles(StyleOctPrefix0o|StyleOctPrefix0O|StyleHexPrefix0x|StyleHexPrefix0X),
		DigitSep: SepNone,
	}
	runParseTests(t, syn, []parseTest{
		{"+42", "42", SignPos, Decimal, 0, false, 0},
		{"0b101", "5", SignNone, Binary, 0, false, 0},
		{"0o17", "15", SignNone, Octal, 0, false, 0},
		{"0x0ff", "255", SignNone, Hexadecimal, 1, false, 0},
		{"0xg", "0", SignNone, Hexadecimal, 0, false, ErrInvalidDigit},
	})
}

func TestConvert(t *testing.T) {
	voliva := &Syntax{
		Signs:    SignStyleNegPos,
		Bases:    DecimalStyles | BaseStyles(StyleBinPrefix0b|StyleBinPrefix0B|StyleOctPrefix0o|StyleOctPrefix0O|StyleHexPrefix0x|StyleHexPrefix0X),
		DigitSep: SepNone,
	}
	decimalOnly := &Syntax{Signs: SignStyleNegPos, Bases: DecimalStyles, DigitSep: SepNone}

	tests := []struct {
		name     string
		from, to *Syntax
		literal  string
		want     string
	}{
		{"hex prefix to suffix", voliva, suffixSyntax, "0xff", "0ffh"},
		{"hex suffix to prefix", suffixSyntax, voliva, "0ffh", "0xff"},
		{"hex suffix to prefix upper", suffixSyntax, voliva, "0FFH", "0XFF"},
		{"suffix zero kept", suffixSyntax, voliva, "09h", "0x09"},
		{"decimal unchanged", suffixSyntax, voliva, "-42", "-42"},
		{"drop positive sign", voliva, suffixSyntax, "+42", "42"},
		{"radix change rerenders", voliva, decimalOnly, "0xff", "255"},
		{"radix change negative", voliva, decimalOnly, "-0x10", "-16"},
		{"haskell parens to plain", haskellSyntax, voliva, "(-42)", "-42"},
		{"haskell parens kept", haskellSyntax, haskellSyntax, "(-42)", "(-42)"},
		{"binary to hex", voliva, haskellSyntax, "0b1111", "0xf"},
	}
	var scratch Scratch
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.from.Parse([]byte(tt.literal), &scratch)
			q, out := Convert(&p, []byte(tt.literal), tt.from, tt.to)
			if string(out) != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.literal, out, tt.want)
			}
			if q.Value.Cmp(p.Value) != 0 {
				t.Errorf("Convert(%q) changed value: %s != %s", tt.literal, q.Value, p.Value)
			}
			// The converted literal reparses to the same value.
			r := tt.to.Parse(out, &scratch)
			if r.Value.Cmp(p.Value) != 0 {
				t.Errorf("reparse(%q) = %s, want %s", out, r.Value, p.Value)
			}
		})
	}
}
