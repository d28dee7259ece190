package token

import (
	"bytes"
	"testing"
)

func unescapeByte(b byte) (byte, bool) {
	switch b {
	case '\'':
		return '\'', true
	case '\\':
		return '\\', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}

func TestUnescapeChar(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		enc     Encoding
		value   rune
		errors  CharErrors
	}{
		{"empty bytes", "", Bytes, 0, ErrCharEmpty},
		{"empty utf8", "", Utf8, 0, ErrCharEmpty},
		{"byte", "a", Bytes, 'a', 0},
		{"rune", "a", Utf8, 'a', 0},
		{"two chars", "ab", Utf8, 'a', ErrCharMultipleChars},
		{"char then backslash", "a\\", Utf8, 'a', ErrCharMultipleChars},
		{"unicode bytes", "ß", Bytes, 'ß', ErrCharUnexpectedUnicode},
		{"unicode utf8", "ß", Utf8, 'ß', 0},
		{"invalid byte", "\xff", Bytes, 0xff, 0},
		{"truncated sequence bytes", "\xf0\x9f\x9a", Bytes, 0xf0, ErrCharMultipleChars},
		{"lone backslash", "\\", Utf8, 0, ErrCharInvalidEscape},
		{"escaped backslash", "\\\\", Utf8, '\\', 0},
		{"escaped lf", "\\n", Utf8, '\n', 0},
		{"invalid escape", "\\a", Utf8, 'a', ErrCharInvalidEscape},
		{"escaped unicode", "\\ß", Bytes, 'ß', ErrCharInvalidEscape | ErrCharUnexpectedUnicode},
		{"escaped invalid byte", "\\\xff", Bytes, 0xff, ErrCharInvalidEscape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := UnescapeChar(Borrowed([]byte(tt.literal)), unescapeByte, tt.enc, SingleQuote, 0)
			if tok.Value != tt.value || tok.Errors != tt.errors {
				t.Errorf("UnescapeChar(%q) = %q, %#x, want %q, %#x",
					tt.literal, tok.Value, tok.Errors, tt.value, tt.errors)
			}
		})
	}
}

func TestUnescapeString(t *testing.T) {
	tests := []struct {
		name      string
		literal   string
		unescaped string
		errors    StringErrors
	}{
		{"plain", "hello", "hello", 0},
		{"escapes", "a\\nb\\tc", "a\nb\tc", 0},
		{"escaped backslash", "a\\\\n", "a\\n", 0},
		{"invalid escape", "a\\qb", "aqb", ErrStringInvalidEscape},
		{"trailing backslash", "ab\\", "ab\\", 0},
		{"empty", "", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := UnescapeString(Borrowed([]byte(tt.literal)), unescapeByte, Utf8, DoubleQuote, 0)
			if !bytes.Equal(tok.Unescaped, []byte(tt.unescaped)) || tok.Errors != tt.errors {
				t.Errorf("UnescapeString(%q) = %q, %#x, want %q, %#x",
					tt.literal, tok.Unescaped, tok.Errors, tt.unescaped, tt.errors)
			}
		})
	}
}

func TestPretty(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want string
	}{
		{"mnemonic", &Mnemonic{Text: Borrowed([]byte("push")), Opcode: Push}, "push"},
		{"space", &Space{Text: Borrowed([]byte(" \t"))}, " \t"},
		{"line term", &LineTerm{Style: Lf}, "\n"},
		{"eof", &Eof{}, ""},
		{"arg sep", &ArgSep{}, ","},
		{"inst sep", &InstSep{}, "/"},
		{"label colon", &LabelColon{}, ":"},
		{"label", &LabelToken{Sigil: "@", Name: Borrowed([]byte("loop"))}, "@loop"},
		{"variable", &Variable{Sigil: "_", Ident: Borrowed([]byte("x"))}, "_x"},
		{"line comment", &LineComment{Prefix: "--", Text: Borrowed([]byte(" note"))}, "-- note"},
		{
			"block comment",
			&BlockComment{Open: "{-", Text: Borrowed([]byte("c")), Close: "-}", Nested: true},
			"{-c-}",
		},
		{
			"unterminated block comment",
			&BlockComment{Open: "{-", Text: Borrowed([]byte("c")), Errors: ErrUnterminated},
			"{-c",
		},
		{
			"unopened block comment",
			&BlockComment{Close: "-}", Errors: ErrUnopened},
			"-}",
		},
		{
			"string",
			&String{Literal: Borrowed([]byte("a\\nb")), Quotes: DoubleQuote},
			`"a\nb"`,
		},
		{
			"unterminated string",
			&String{Literal: Borrowed([]byte("ab")), Quotes: DoubleQuote, Errors: ErrStringUnterminated},
			`"ab`,
		},
		{
			"quoted word",
			&Quoted{Inner: &Word{Word: Borrowed([]byte("push"))}, Quotes: DoubleQuote},
			`"push"`,
		},
		{
			"unterminated quoted word",
			&Quoted{
				Inner:  &Word{Word: Borrowed([]byte("push"))},
				Quotes: DoubleQuote,
				Errors: ErrQuoteUnterminated,
			},
			`"push`,
		},
		{
			"spliced",
			&Spliced{
				Tokens: []Token{
					&Word{Word: Borrowed([]byte("hello"))},
					&BlockComment{Open: "{-", Text: Borrowed([]byte("s")), Close: "-}", Nested: true},
					&Word{Word: Borrowed([]byte("world"))},
				},
				Effective: &Word{Word: Owned([]byte("helloworld"))},
			},
			"hello{-s-}world",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf []byte
			tt.tok.Pretty(&buf)
			if string(buf) != tt.want {
				t.Errorf("Pretty() = %q, want %q", buf, tt.want)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	word := &Word{Word: Owned([]byte("helloworld"))}
	tok := Token(&Quoted{
		Inner: &Spliced{
			Tokens:    []Token{&Word{Word: Borrowed([]byte("hello"))}},
			Effective: word,
		},
		Quotes: DoubleQuote,
	})
	if got := Unwrap(tok); got != Token(word) {
		t.Errorf("Unwrap() = %v, want inner word", got)
	}
}

func TestTextAppend(t *testing.T) {
	src := []byte("helloworld")
	text := Borrowed(src[:5])
	joined := text.Append([]byte("world"))
	if !bytes.Equal(joined.Bytes(), []byte("helloworld")) || !joined.IsOwned() {
		t.Errorf("Append() = %q, owned %t", joined.Bytes(), joined.IsOwned())
	}
	if !bytes.Equal(text.Bytes(), []byte("hello")) || text.IsOwned() {
		t.Errorf("receiver modified: %q, owned %t", text.Bytes(), text.IsOwned())
	}
}
