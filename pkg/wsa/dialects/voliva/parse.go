package voliva

import (
	"github.com/wspace/wsasm/pkg/wsa/syntax"
	"github.com/wspace/wsasm/pkg/wsa/token"
)

// parser parses lines of voliva-dialect source text.
type parser struct {
	toks *syntax.Stream
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
		*inst.TrailingSpaces() = space
		inst.PushWord(p.toks.Advance())
	}
	p.parseInst(inst)
	return inst
}

// isWord reports whether the token can start an instruction.
func isWord(tok token.Token) bool {
	switch tok.(type) {
	case *token.Word, *token.Integer, *token.String, *token.Char:
		return true
	}
	return false
}

// parseInst resolves the mnemonic and arguments of an instruction.
func (p *parser) parseInst(inst *syntax.Inst) {
	head, ok := inst.Word(0).(*token.Word)
	if !ok {
		inst.Op = token.Invalid
		inst.ValidArity = true
		inst.ValidTypes = false
		return
	}
	opcodes := mnemonicMap.Get(head.Word.Bytes())
	nargs := inst.Len() - 1

	if len(opcodes) == 0 {
		inst.Op = token.Invalid
		inst.SetWord(0, &token.Mnemonic{Text: head.Word})
		for i := 1; i < inst.Len(); i++ {
			inst.SetWord(i, stringFallback(inst.Word(i)))
		}
		inst.ValidArity = true
		inst.ValidTypes = true
		return
	}

	op, validArity := syntax.Resolve(opcodes, nargs)
	inst.Op = op
	inst.SetWord(0, &token.Mnemonic{Text: head.Word, Opcode: op})
	inst.ValidArity = validArity
	if !validArity {
		inst.ValidTypes = false
		return
	}
	inst.ValidTypes = true
	for i, ty := range syntax.Args(op) {
		if !parseArg(inst, i+1, ty) {
			inst.ValidTypes = false
		}
	}
}

// parseArg types an argument and reports whether it is valid for the
// required type.
func parseArg(inst *syntax.Inst, i int, ty syntax.ArgType) bool {
	switch arg := inst.Word(i).(type) {
	case *token.Word:
		switch ty {
		case syntax.ArgLabel:
			inst.SetWord(i, &token.LabelToken{Name: arg.Word})
			return true
		case syntax.ArgVariable:
			v := &token.Variable{Ident: arg.Word}
			if b := arg.Word.Bytes(); len(b) > 0 && b[0] == '_' {
				v.Sigil = "_"
				v.Ident = token.Borrowed(b[1:])
				if arg.Word.IsOwned() {
					v.Ident = token.Owned(b[1:])
				}
			}
			inst.SetWord(i, v)
			return true
		case syntax.ArgString:
			inst.SetWord(i, stringFallback(arg))
			return true
		case syntax.ArgWord:
			return true
		}
		return false
	case *token.Integer:
		// Numeric label names lex as integers.
		if ty == syntax.ArgLabel {
			inst.SetWord(i, &token.LabelToken{Name: arg.Literal})
			return true
		}
		return ty == syntax.ArgInteger
	case *token.Char:
		return ty == syntax.ArgInteger
	case *token.String:
		return ty == syntax.ArgString
	}
	return false
}

// stringFallback converts a bare word to a string token.
func stringFallback(tok token.Token) token.Token {
	w, ok := tok.(*token.Word)
	if !ok {
		return tok
	}
	return &token.String{
		Literal:   w.Word,
		Unescaped: w.Word.Bytes(),
		Encoding:  token.Utf8,
		Quotes:    token.Bare,
	}
}
