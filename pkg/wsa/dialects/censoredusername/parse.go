package censoredusername

import (
	"github.com/wspace/wsasm/pkg/wsa/syntax"
	"github.com/wspace/wsasm/pkg/wsa/token"
)

// parser parses lines of CensoredUsername-dialect source text. A line
// holds any number of `name:` label definitions followed by at most one
// instruction, so one line can yield several nodes.
type parser struct {
	toks    *syntax.Stream
	pending []syntax.Node
}

func newParser(src []byte) *parser {
	return &parser{toks: syntax.NewStream(newLexer(src))}
}

// next parses the next node, or returns nil at the end of the source.
func (p *parser) next() syntax.Node {
	if len(p.pending) > 0 {
		node := p.pending[0]
		p.pending = p.pending[1:]
		return node
	}
	if p.toks.Eof() {
		return nil
	}

	space := p.space()
	flagSeps(&space)
	if !isWord(p.toks.Curr()) {
		return &syntax.Empty{Space: p.toks.LineTermSep(space)}
	}
	line := p.parseLine(space)
	p.pending = line[1:]
	return line[0]
}

// parseLine parses the label definitions and instruction of one line.
func (p *parser) parseLine(space syntax.Spaces) []syntax.Node {
	var line []syntax.Node
	for {
		inst := &syntax.Inst{}
		inst.SpaceBefore = space
		inst.PushWord(p.toks.Advance())

		if _, ok := p.toks.Curr().(*token.LabelColon); ok {
			inst.PushWord(p.toks.Advance())
			parseLabelDef(inst)
			sp := p.space()
			if isWord(p.toks.Curr()) {
				*inst.TrailingSpaces() = sp
				line = append(line, inst)
				space = syntax.Spaces{}
				continue
			}
			flagSeps(&sp)
			*inst.TrailingSpaces() = p.toks.LineTermSep(sp)
			return append(line, inst)
		}

		for {
			sp := p.space()
			if !isWord(p.toks.Curr()) {
				flagSeps(&sp)
				*inst.TrailingSpaces() = p.toks.LineTermSep(sp)
				parseInst(inst)
				return append(line, inst)
			}
			*inst.TrailingSpaces() = sp
			inst.PushWord(p.toks.Advance())
		}
	}
}

// space consumes a run of space and argument separator tokens.
func (p *parser) space() syntax.Spaces {
	var space syntax.Spaces
	for {
		switch p.toks.Curr().(type) {
		case *token.Space, *token.ArgSep:
			space.Push(p.toks.Advance())
		default:
			return space
		}
	}
}

// flagSeps marks argument separators in a run that does not sit between
// two argument words.
func flagSeps(space *syntax.Spaces) {
	for _, tok := range space.Tokens {
		if sep, ok := tok.(*token.ArgSep); ok {
			sep.Errors |= token.ErrNotBetweenArguments
		}
	}
}

// isWord reports whether the token can start or continue an
// instruction.
func isWord(tok token.Token) bool {
	switch tok.(type) {
	case *token.Word, *token.Integer, *token.LabelColon, *token.Error:
		return true
	}
	return false
}

// parseLabelDef types a `name:` label definition.
func parseLabelDef(inst *syntax.Inst) {
	inst.Op = token.Label
	inst.ValidArity = true
	switch head := inst.Word(0).(type) {
	case *token.Word:
		inst.SetWord(0, &token.LabelToken{Name: head.Word})
		inst.ValidTypes = true
	case *token.Integer:
		inst.SetWord(0, &token.LabelToken{Name: head.Literal})
		inst.ValidTypes = true
	default:
		inst.ValidTypes = false
	}
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
		if ty == syntax.ArgLabel {
			inst.SetWord(i, &token.LabelToken{Name: arg.Literal})
			return true
		}
		return ty == syntax.ArgInteger && arg.Int.Errors == 0
	}
	return false
}
