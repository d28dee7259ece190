// Package palaiologos parses the Palaiologos Whitespace assembly
// dialect. Source is treated as raw bytes: string and char literals
// carry byte data, not Unicode.
package palaiologos

import (
	"github.com/wspace/wsasm/pkg/wsa/integer"
	"github.com/wspace/wsasm/pkg/wsa/scan"
	"github.com/wspace/wsasm/pkg/wsa/token"
)

// maxMnemonicLen is the longest mnemonic in the dialect. Candidate
// mnemonics are matched from this length down, since nothing needs to
// delimit them.
const maxMnemonicLen = 5

// lexer scans tokens in the Palaiologos dialect.
type lexer struct {
	s       *scan.Scanner
	scratch integer.Scratch
}

func newLexer(src []byte) *lexer {
	return &lexer{s: scan.NewScanner(src)}
}

func (l *lexer) NextToken() token.Token {
	s := l.s
	s.Start()

	if s.EOF() {
		return &token.Eof{}
	}

	b := s.Bump()
	switch {
	case isLetter(b) || b == '_':
		if mnemonic, opcodes := scanMnemonic(s.Src(), s.StartOffset()); mnemonic != nil {
			for i := 1; i < len(mnemonic); i++ {
				s.Bump()
			}
			return &token.Mnemonic{Text: token.Borrowed(mnemonic), Opcode: opcodes[0]}
		}
		// Try a hex literal, even though the first digit is not allowed
		// to be a letter. This does not conflict with any mnemonics.
		if b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F' {
			pos := s.EndPos()
			s.BumpWhile(func(b byte) bool { return isHexDigit(b) || b == '_' })
			if s.BumpIf(func(b byte) bool { return b == 'h' || b == 'H' }) {
				return l.integerToken()
			}
			s.Revert(pos)
		}
		// Consume as much as possible, until a valid mnemonic.
		for {
			b, ok := s.Peek()
			if !ok || !(isLetter(b) || b == '_') {
				break
			}
			if mnemonic, _ := scanMnemonic(s.Src(), s.Offset()); mnemonic != nil {
				break
			}
			s.Bump()
		}
		return &token.Mnemonic{Text: token.Borrowed(s.Text())}
	case b >= '0' && b <= '9' || b == '-' || b == '+':
		// Extend the syntax to handle '+', starting with a hex letter,
		// and '_' digit separators, so those lex as flagged integers.
		s.BumpWhile(func(b byte) bool { return isHexDigit(b) || b == '_' })
		s.BumpIf(func(b byte) bool {
			return b == 'h' || b == 'H' || b == 'o' || b == 'O'
		})
		if (b == '-' || b == '+') && len(s.Text()) == 1 {
			return &token.Error{Text: token.Borrowed(s.Text()), Kind: token.UnrecognizedChar}
		}
		return l.integerToken()
	case b == '@' || b == '%':
		s.BumpWhile(func(b byte) bool { return isAlnum(b) || b == '_' })
		text := s.Text()
		var errs token.LabelErrors
		if len(text) == 1 {
			errs |= token.ErrLabelEmpty
		} else if text[1] >= '0' && text[1] <= '9' {
			errs |= token.ErrLabelStartsWithDigit
		}
		return &token.LabelToken{Sigil: string(b), Name: token.Borrowed(text[1:]), Errors: errs}
	case b == '\'':
		return l.charLiteral()
	case b == '"':
		return l.stringLiteral()
	case b == ';':
		start := s.Offset()
		s.BumpUntilLF()
		var errs token.LineCommentErrors
		if s.EOF() {
			errs |= token.ErrMissingLf
		}
		return &token.LineComment{Prefix: ";", Text: token.Borrowed(s.TextFrom(start)), Errors: errs}
	case b == ',':
		return &token.ArgSep{}
	case b == '/':
		return &token.InstSep{}
	case b == '\n':
		return &token.LineTerm{Style: token.Lf}
	case b == ' ' || b == '\t' || b == '\r' || b == '\f':
		s.BumpWhile(func(b byte) bool {
			return b == ' ' || b == '\t' || b == '\r' || b == '\f'
		})
		return &token.Space{Text: token.Borrowed(s.Text())}
	default:
		s.BumpUntil(recognized)
		return &token.Error{Text: token.Borrowed(s.Text()), Kind: token.UnrecognizedChar}
	}
}

func (l *lexer) integerToken() token.Token {
	text := l.s.Text()
	return &token.Integer{
		Literal: token.Borrowed(text),
		Int:     integers.Parse(text, &l.scratch),
	}
}

// scanMnemonic matches the longest mnemonic at offset, trying candidate
// lengths from the maximum down.
func scanMnemonic(src []byte, offset int) ([]byte, []token.Opcode) {
	chunk := src[offset:]
	if len(chunk) > maxMnemonicLen {
		chunk = chunk[:maxMnemonicLen]
	}
	for n := len(chunk); n >= 1; n-- {
		if opcodes := mnemonicMap.Get(chunk[:n]); opcodes != nil {
			return chunk[:n], opcodes
		}
	}
	return nil, nil
}

// charLiteral scans a char literal. The cursor must be just after the
// open quote.
func (l *lexer) charLiteral() token.Token {
	literal, errs := token.ScanCharOneline(l.s)
	return token.UnescapeChar(literal, unescapeByte, token.Bytes, token.SingleQuote, errs)
}

// stringLiteral scans a string literal. The cursor must be just after
// the open quote.
func (l *lexer) stringLiteral() token.Token {
	literal, errs := token.ScanStringOneline(l.s)
	return token.UnescapeString(literal, unescapeByte, token.Bytes, token.DoubleQuote, errs)
}

// unescapeByte resolves a backslash-escaped byte to its value. Every
// byte is accepted: unknown escapes mean the byte itself.
func unescapeByte(b byte) (byte, bool) {
	switch b {
	case 'a':
		return '\x07', true
	case 'b':
		return '\x08', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case 'v':
		return '\v', true
	}
	return b, true
}

func isLetter(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z'
}

func isAlnum(b byte) bool {
	return isLetter(b) || b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

// recognized reports bytes that can start a token, ending a run of
// unrecognized bytes.
func recognized(b byte) bool {
	switch b {
	case '_', '-', '@', '%', '\'', '"', ';', ',', '/', '\n', ' ', '\t', '\r', '\f':
		return true
	}
	return isAlnum(b)
}
