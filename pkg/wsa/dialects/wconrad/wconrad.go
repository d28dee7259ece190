package wconrad

import (
	"github.com/wspace/wsasm/pkg/wsa/integer"
	"github.com/wspace/wsasm/pkg/wsa/mnemonics"
	"github.com/wspace/wsasm/pkg/wsa/syntax"
	"github.com/wspace/wsasm/pkg/wsa/token"
)

// integers is the numeral grammar of wconrad integer literals, which
// follows Ruby Integer() with bases excluded.
var integers = &integer.Syntax{
	Signs: integer.SignStyleNegPos,
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
	ins("discard", token.Drop)
	ins("slide", token.Slide)
	ins("add", token.Add)
	ins("sub", token.Sub)
	ins("mul", token.Mul)
	ins("div", token.Div)
	ins("mod", token.Mod)
	ins("store", token.Store)
	ins("retrieve", token.Retrieve)
	ins("label", token.Label)
	ins("call", token.Call)
	ins("jump", token.Jmp)
	ins("jz", token.Jz)
	ins("jn", token.Jn)
	ins("ret", token.Ret)
	ins("exit", token.End)
	ins("outchar", token.Printc)
	ins("outnum", token.Printi)
	ins("readchar", token.Readc)
	ins("readnum", token.Readi)
	return m
}

// Parse parses a wconrad-dialect program. It never fails: malformed
// source is recorded in the tree and reproduced exactly by Pretty.
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
	return &syntax.Program{Dialect: syntax.WConrad, Body: body}
}
