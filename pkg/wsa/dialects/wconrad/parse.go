package wconrad

import (
	"github.com/wspace/wsasm/pkg/wsa/syntax"
	"github.com/wspace/wsasm/pkg/wsa/token"
)

// parser parses lines of wconrad-dialect source text.
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
	parseInst(inst)
	return inst
}

// isWord reports whether the token can start an instruction.
func isWord(tok token.Token) bool {
	switch tok.(type) {
	case *token.Word, *token.Integer:
		return true
	}
	return false
}

// parseInst resolves the mnemonic and arguments of an instruction.
func parseInst(inst *syntax.Inst) {
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
		// The dialect has no word arguments, so nothing further can
		// be typed under an unrecognized mnemonic.
		inst.Op = token.Invalid
		inst.SetWord(0, &token.Mnemonic{Text: head.Word})
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
		if ty == syntax.ArgLabel {
			inst.SetWord(i, &token.LabelToken{Name: arg.Word})
			return true
		}
		return false
	case *token.Integer:
		// Labels are conventionally numeric.
		if ty == syntax.ArgLabel {
			inst.SetWord(i, &token.LabelToken{Name: arg.Literal})
			return true
		}
		return ty == syntax.ArgInteger
	}
	return false
}
