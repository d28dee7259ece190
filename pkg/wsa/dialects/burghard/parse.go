package burghard

import (
	"github.com/wspace/wsasm/pkg/wsa/integer"
	"github.com/wspace/wsasm/pkg/wsa/syntax"
	"github.com/wspace/wsasm/pkg/wsa/token"
)

// parser parses lines of Burghard-dialect source text.
type parser struct {
	toks    *syntax.Stream
	scratch integer.Scratch
}

func newParser(src []byte) *parser {
	return &parser{toks: syntax.NewStream(newLexer(src))}
}

// next parses the next line, or returns nil at the end of the source.
func (p *parser) next() syntax.Node {
	if p.toks.Eof() {
		return nil
	}

	spaceBefore := p.toks.Space()
	if !isWord(p.toks.Curr()) {
		return &syntax.Empty{Space: p.toks.LineTermSep(spaceBefore)}
	}

	inst := &syntax.Inst{}
	inst.SpaceBefore = spaceBefore
	inst.PushWord(p.toks.Advance())
	for {
		space := p.toks.Space()
		if !isWord(p.toks.Curr()) {
			*inst.TrailingSpaces() = p.toks.LineTermSep(space)
			break
		}
		arg := p.toks.Advance()
		lhs := inst.Last()
		if shouldSplice(lhs, space, arg) {
			inst.SetWord(inst.Len()-1, splice(lhs, space, arg.(*token.Word)))
		} else {
			*inst.TrailingSpaces() = space
			inst.PushWord(arg)
		}
	}
	p.parseInst(inst)
	return inst
}

// isWord reports whether the token can start an instruction.
func isWord(tok token.Token) bool {
	switch tok.(type) {
	case *token.Word, *token.Quoted:
		return true
	}
	return false
}

// shouldSplice reports whether adjacent words separated by only block
// comments should be joined.
func shouldSplice(lhs token.Token, space syntax.Spaces, rhs token.Token) bool {
	for _, tok := range space.Tokens {
		if _, ok := tok.(*token.BlockComment); !ok {
			return false
		}
	}
	switch lhs.(type) {
	case *token.Word, *token.Spliced:
	default:
		return false
	}
	_, ok := rhs.(*token.Word)
	return ok
}

// splice joins words separated by block comments into a spliced token
// whose effective word is their concatenation.
func splice(lhs token.Token, space syntax.Spaces, rhs *token.Word) *token.Spliced {
	sp, ok := lhs.(*token.Spliced)
	if !ok {
		w := lhs.(*token.Word)
		sp = &token.Spliced{
			Tokens:    []token.Token{w},
			Effective: &token.Word{Word: w.Word},
		}
	}
	sp.Tokens = append(sp.Tokens, space.Tokens...)
	sp.Tokens = append(sp.Tokens, rhs)
	eff := sp.Effective.(*token.Word)
	eff.Word = eff.Word.Append(rhs.Word.Bytes())
	return sp
}

// parseInst resolves the mnemonic and arguments of an instruction.
func (p *parser) parseInst(inst *syntax.Inst) {
	word := token.Unwrap(inst.Word(0)).(*token.Word)
	opcodes := mnemonicMap.Get(word.Word.Bytes())
	nargs := inst.Len() - 1

	if len(opcodes) == 0 {
		inst.Op = token.Invalid
		inst.SetWord(0, setEffective(inst.Word(0), &token.Mnemonic{Text: word.Word}))
		for i := 1; i < inst.Len(); i++ {
			inst.SetWord(i, stringFallback(inst.Word(i)))
		}
		inst.ValidArity = true
		inst.ValidTypes = true
		return
	}

	op, validArity := syntax.Resolve(opcodes, nargs)
	inst.Op = op
	inst.SetWord(0, setEffective(inst.Word(0), &token.Mnemonic{Text: word.Word, Opcode: op}))
	inst.ValidArity = validArity
	if !validArity {
		inst.ValidTypes = false
		return
	}
	inst.ValidTypes = true
	for i, ty := range syntax.Args(op) {
		if !p.parseArg(inst, i+1, ty) {
			inst.ValidTypes = false
		}
	}
}

// parseArg types an argument and reports whether it is valid for the
// required type.
func (p *parser) parseArg(inst *syntax.Inst, i int, ty syntax.ArgType) bool {
	outer := inst.Word(i)
	_, quoted := outer.(*token.Quoted)
	inner := token.Unwrap(outer).(*token.Word)

	if ty == syntax.ArgLabel {
		inst.SetWord(i, setEffective(outer, &token.LabelToken{Name: inner.Word}))
		return true
	}

	// Option names and include paths stay uninterpreted words.
	if ty == syntax.ArgWord {
		return true
	}

	// A leading underscore always makes a variable reference.
	if b := inner.Word.Bytes(); len(b) > 0 && b[0] == '_' {
		v := &token.Variable{Sigil: "_", Ident: token.Borrowed(b[1:])}
		if inner.Word.IsOwned() {
			v.Ident = token.Owned(b[1:])
		}
		inst.SetWord(i, setEffective(outer, v))
		return true
	}

	if ty == syntax.ArgInteger || ty == syntax.ArgVariable && !quoted {
		parsed := integers.Parse(inner.Word.Bytes(), &p.scratch)
		if parsed.Errors == 0 {
			inst.SetWord(i, setEffective(outer, &token.Integer{Literal: inner.Word, Int: parsed}))
			return ty == syntax.ArgInteger
		}
	}

	inst.SetWord(i, stringFallback(outer))
	return ty == syntax.ArgString
}

// setEffective replaces the innermost word of a token, preserving any
// quote or splice wrapper.
func setEffective(outer, inner token.Token) token.Token {
	switch t := outer.(type) {
	case *token.Quoted:
		t.Inner = setEffective(t.Inner, inner)
		return t
	case *token.Spliced:
		t.Effective = setEffective(t.Effective, inner)
		return t
	default:
		return inner
	}
}

// stringFallback converts a word to a string token, replacing any quote
// wrapper with the equivalent quote style.
func stringFallback(outer token.Token) token.Token {
	switch t := outer.(type) {
	case *token.Spliced:
		t.Effective = stringFallback(t.Effective)
		return t
	case *token.Quoted:
		inner := t.Inner.(*token.Word)
		var errs token.StringErrors
		if t.Errors&token.ErrQuoteUnterminated != 0 {
			errs |= token.ErrStringUnterminated
		}
		return &token.String{
			Literal:   inner.Word,
			Unescaped: inner.Word.Bytes(),
			Encoding:  token.Utf8,
			Quotes:    token.DoubleQuote,
			Errors:    errs,
		}
	case *token.Word:
		return &token.String{
			Literal:   t.Word,
			Unescaped: t.Word.Bytes(),
			Encoding:  token.Utf8,
			Quotes:    token.Bare,
		}
	default:
		return outer
	}
}
