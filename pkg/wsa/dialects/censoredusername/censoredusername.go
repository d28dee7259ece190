package censoredusername

import (
	"github.com/wspace/wsasm/pkg/wsa/integer"
	"github.com/wspace/wsasm/pkg/wsa/mnemonics"
	"github.com/wspace/wsasm/pkg/wsa/syntax"
	"github.com/wspace/wsasm/pkg/wsa/token"
)

// integers is the numeral grammar of CensoredUsername integer literals.
var integers = &integer.Syntax{
	Signs: integer.SignStyleNeg,
	Bases: integer.DecimalStyles,
}

// Integers returns the numeral grammar of the dialect.
func Integers() *integer.Syntax { return integers }

var mnemonicMap = newMnemonics()

func newMnemonics() *mnemonics.Map {
	m := mnemonics.NewMap()
	ins := func(key string, opcodes ...token.Opcode) {
		m.Insert(key, mnemonics.FoldExact, opcodes...)
	}
	ins("push", token.Push)
	ins("dup", token.Dup)
	ins("copy", token.Copy)
	ins("swap", token.Swap)
	ins("pop", token.Drop)
	ins("slide", token.Slide)
	ins("add", token.Add)
	ins("sub", token.Sub)
	ins("mul", token.Mul)
	ins("div", token.Div)
	ins("mod", token.Mod)
	ins("set", token.Store)
	ins("get", token.Retrieve)
	ins("lbl", token.Label)
	ins("call", token.Call)
	ins("jmp", token.Jmp)
	ins("jz", token.Jz)
	ins("jn", token.Jn)
	ins("ret", token.Ret)
	ins("exit", token.End)
	ins("pchr", token.Printc)
	ins("pnum", token.Printi)
	ins("ichr", token.Readc)
	ins("inum", token.Readi)
	return m
}

// Parse parses a CensoredUsername-dialect program. It never fails:
// malformed source is recorded in the tree and reproduced exactly by
// Pretty.
func Parse(src []byte) *syntax.Program {
	p := newParser(src)
	body := &syntax.Block{}
	for {
		node := p.next()
		if node == nil {
			break
		}
		body.Nodes = append(body.Nodes, node)
	}
	return &syntax.Program{Dialect: syntax.CensoredUsername, Body: body}
}
