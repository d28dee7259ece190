package token

import (
	"bytes"

	"github.com/wspace/wsasm/pkg/wsa/scan"
)

// QuoteStyle is the quoting of a string or char literal.
type QuoteStyle uint8

const (
	// Bare is a string without quotes (Burghard).
	Bare QuoteStyle = iota
	// DoubleQuote is a `"`-quoted literal.
	DoubleQuote
	// SingleQuote is a `'`-quoted literal.
	SingleQuote
)

func (q QuoteStyle) quote() byte {
	switch q {
	case DoubleQuote:
		return '"'
	case SingleQuote:
		return '\''
	default:
		return 0
	}
}

// Encoding is how a dialect interprets the data of string and char
// literals.
type Encoding uint8

const (
	// Utf8 data is a sequence of Unicode code points.
	Utf8 Encoding = iota
	// Bytes data is a sequence of raw bytes.
	Bytes
)

// StringErrors is a bit set of string literal errors.
type StringErrors uint8

const (
	// ErrStringUnterminated flags a literal not closed before a line
	// feed or the end of the source.
	ErrStringUnterminated StringErrors = 1 << iota
	// ErrStringInvalidEscape flags an escape sequence the dialect does
	// not define. The escaped character is kept verbatim.
	ErrStringInvalidEscape
)

// String is a string literal.
type String struct {
	// The literal between the quotes, with escapes unresolved.
	Literal Text
	// The data with escapes resolved.
	Unescaped []byte
	Encoding  Encoding
	Quotes    QuoteStyle
	Errors    StringErrors
}

func (t *String) HasError() bool {
	return t.Errors != 0
}

func (t *String) Pretty(buf *[]byte) {
	if q := t.Quotes.quote(); q != 0 {
		*buf = append(*buf, q)
		*buf = append(*buf, t.Literal.Bytes()...)
		if t.Errors&ErrStringUnterminated == 0 {
			*buf = append(*buf, q)
		}
		return
	}
	*buf = append(*buf, t.Literal.Bytes()...)
}

// CharErrors is a bit set of char literal errors.
type CharErrors uint8

const (
	// ErrCharUnterminated flags a literal not closed before a line
	// feed or the end of the source.
	ErrCharUnterminated CharErrors = 1 << iota
	// ErrCharInvalidEscape flags an escape sequence the dialect does
	// not define.
	ErrCharInvalidEscape
	// ErrCharEmpty flags a literal with no character.
	ErrCharEmpty
	// ErrCharMultipleChars flags a literal with more than one
	// character.
	ErrCharMultipleChars
	// ErrCharUnexpectedUnicode flags a non-ASCII character in a byte
	// encoding.
	ErrCharUnexpectedUnicode
)

// Char is a character literal.
type Char struct {
	// The literal between the quotes, with escapes unresolved.
	Literal Text
	// The character with escapes resolved. In the Bytes encoding it is
	// a byte value unless flagged ErrCharUnexpectedUnicode.
	Value    rune
	Encoding Encoding
	Quotes   QuoteStyle
	Errors   CharErrors
}

func (t *Char) HasError() bool {
	return t.Errors != 0
}

func (t *Char) Pretty(buf *[]byte) {
	q := t.Quotes.quote()
	*buf = append(*buf, q)
	*buf = append(*buf, t.Literal.Bytes()...)
	if t.Errors&ErrCharUnterminated == 0 {
		*buf = append(*buf, q)
	}
}

// QuotedErrors is a bit set of quote wrapper errors.
type QuotedErrors uint8

const (
	// ErrQuoteUnterminated flags quotes not closed before a line feed
	// or the end of the source.
	ErrQuoteUnterminated QuotedErrors = 1 << iota
)

// Quoted wraps a token enclosed in non-semantic quotes (Burghard).
type Quoted struct {
	Inner  Token
	Quotes QuoteStyle
	Errors QuotedErrors
}

func (t *Quoted) HasError() bool {
	return t.Errors != 0 || t.Inner.HasError()
}

func (t *Quoted) Pretty(buf *[]byte) {
	q := t.Quotes.quote()
	*buf = append(*buf, q)
	t.Inner.Pretty(buf)
	if t.Errors&ErrQuoteUnterminated == 0 {
		*buf = append(*buf, q)
	}
}

// Spliced wraps words joined by block comments (Burghard).
type Spliced struct {
	// The underlying tokens, alternating words and block comments.
	Tokens []Token
	// The synthesized effective token with the comments removed.
	Effective Token
}

func (t *Spliced) HasError() bool {
	for _, tok := range t.Tokens {
		if tok.HasError() {
			return true
		}
	}
	return false
}

func (t *Spliced) Pretty(buf *[]byte) {
	for _, tok := range t.Tokens {
		tok.Pretty(buf)
	}
}

// UnescapeString resolves the escapes of a scanned string literal.
// Escapes the dialect does not define keep the escaped byte verbatim
// and flag ErrStringInvalidEscape.
func UnescapeString(literal Text, unescape func(byte) (byte, bool), enc Encoding, quotes QuoteStyle, errs StringErrors) *String {
	s := literal.Bytes()
	var unescaped []byte
	if i := bytes.IndexByte(s, '\\'); i < 0 {
		unescaped = s
	} else {
		unescaped = make([]byte, 0, len(s)-1)
		for {
			unescaped = append(unescaped, s[:i]...)
			if i+1 >= len(s) {
				unescaped = append(unescaped, s[i:]...)
				break
			}
			b := s[i+1]
			if u, ok := unescape(b); ok {
				unescaped = append(unescaped, u)
			} else {
				errs |= ErrStringInvalidEscape
				unescaped = append(unescaped, b)
			}
			s = s[i+2:]
			if i = bytes.IndexByte(s, '\\'); i < 0 {
				unescaped = append(unescaped, s...)
				break
			}
		}
	}
	return &String{
		Literal:   literal,
		Unescaped: unescaped,
		Encoding:  enc,
		Quotes:    quotes,
		Errors:    errs,
	}
}

// UnescapeChar resolves the escape of a scanned char literal and
// decodes its character.
func UnescapeChar(literal Text, unescape func(byte) (byte, bool), enc Encoding, quotes QuoteStyle, errs CharErrors) *Char {
	bs := literal.Bytes()
	if len(bs) == 0 {
		errs |= ErrCharEmpty
	}
	escaped := false
	if len(bs) > 0 && bs[0] == '\\' {
		errs |= ErrCharInvalidEscape
		escaped = true
		bs = bs[1:]
	}
	r, size, ok := scan.DecodeRune(bs)
	if size != len(bs) {
		errs |= ErrCharMultipleChars
	}
	var value rune
	if ok {
		if escaped && r < 0x80 {
			if u, found := unescape(byte(r)); found {
				r = rune(u)
				errs &^= ErrCharInvalidEscape
			}
		}
		value = r
		if enc == Bytes && r >= 0x80 {
			errs |= ErrCharUnexpectedUnicode
		}
	} else {
		switch enc {
		case Bytes:
			if size > 1 {
				errs |= ErrCharMultipleChars
			}
			if len(bs) > 0 {
				value = rune(bs[0])
			}
		default:
			if len(bs) > 0 {
				value = '�'
			}
		}
	}
	return &Char{
		Literal:  literal,
		Value:    value,
		Encoding: enc,
		Quotes:   quotes,
		Errors:   errs,
	}
}
