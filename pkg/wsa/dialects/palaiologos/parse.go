package palaiologos

import (
	"github.com/wspace/wsasm/pkg/wsa/syntax"
	"github.com/wspace/wsasm/pkg/wsa/token"
)

// parser parses instructions of Palaiologos-dialect source text, split
// on line feeds and `/` separators.
type parser struct {
	toks *syntax.Stream
}

func newParser(src []byte) *parser {
	return &parser{toks: syntax.NewStream(newLexer(src))}
}

func (p *parser) parse() *syntax.Block {
	var nodes []syntax.Node
	for !p.toks.Eof() {
		var space syntax.Spaces
		p.spaceBefore(&space)
		if p.toks.Eof() {
			space.Push(p.toks.Advance())
			nodes = append(nodes, &syntax.Empty{Space: space})
			break
		}

		inst := &syntax.Inst{}
		inst.SpaceBefore = space
		for !isTerminator(p.toks.Curr()) {
			inst.PushToken(p.toks.Advance())
		}
		inst.PushSpace(p.toks.Advance())
		p.parseInst(inst)
		nodes = append(nodes, inst)
	}
	return &syntax.Block{Nodes: nodes}
}

// spaceBefore consumes spaces, separators, and comments preceding an
// instruction. An argument separator here is not between arguments and
// is flagged.
func (p *parser) spaceBefore(space *syntax.Spaces) {
	for {
		switch tok := p.toks.Curr().(type) {
		case *token.Space, *token.LineTerm, *token.InstSep:
			space.Push(p.toks.Advance())
		case *token.ArgSep:
			tok.Errors |= token.ErrNotBetweenArguments
			space.Push(p.toks.Advance())
		default:
			return
		}
	}
}

// isTerminator reports whether the token ends an instruction.
func isTerminator(tok token.Token) bool {
	switch tok.(type) {
	case *token.LineTerm, *token.Eof, *token.InstSep:
		return true
	}
	return false
}

// parseInst resolves the opcode of an instruction and checks its
// arguments. A bare label defines that label and a bare integer is an
// implied push.
func (p *parser) parseInst(inst *syntax.Inst) {
	if inst.Len() == 0 {
		inst.ValidArity = true
		inst.ValidTypes = true
		return
	}

	var args []token.Token
	for i := 1; i < inst.Len(); i++ {
		args = append(args, inst.Word(i))
	}

	switch head := inst.Word(0).(type) {
	case *token.Mnemonic:
		if head.Opcode == token.Invalid {
			inst.Op = token.Invalid
			inst.ValidArity = true
			inst.ValidTypes = true
			return
		}
		opcodes := overloads[head.Opcode]
		op, validArity := syntax.Resolve(opcodes, len(args))
		head.Opcode = op
		inst.Op = op
		inst.ValidArity = validArity
		inst.ValidTypes = validArity && checkTypes(syntax.Args(op), args)
	case *token.LabelToken:
		// A bare sigil label defines it.
		inst.Op = token.Label
		inst.ValidArity = len(args) == 0
		inst.ValidTypes = inst.ValidArity
	case *token.Integer, *token.Char:
		// A bare value is an implied push.
		inst.Op = token.Push
		inst.ValidArity = len(args) == 0
		inst.ValidTypes = inst.ValidArity
	default:
		inst.Op = token.Invalid
		inst.ValidArity = true
		inst.ValidTypes = false
	}
}

// checkTypes reports whether the arguments match the operand list.
// Checking never rewrites an argument token.
func checkTypes(params syntax.Params, args []token.Token) bool {
	for i, ty := range params {
		switch ty {
		case syntax.ArgInteger:
			switch args[i].(type) {
			case *token.Integer, *token.Char:
			default:
				return false
			}
		case syntax.ArgLabel:
			if _, ok := args[i].(*token.LabelToken); !ok {
				return false
			}
		case syntax.ArgMnemonic:
			m, ok := args[i].(*token.Mnemonic)
			if !ok || m.Opcode == token.Invalid {
				return false
			}
		case syntax.ArgString:
			if _, ok := args[i].(*token.String); !ok {
				return false
			}
		}
	}
	return true
}
