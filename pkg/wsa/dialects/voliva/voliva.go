package voliva

import (
	"github.com/wspace/wsasm/pkg/wsa/integer"
	"github.com/wspace/wsasm/pkg/wsa/mnemonics"
	"github.com/wspace/wsasm/pkg/wsa/syntax"
	"github.com/wspace/wsasm/pkg/wsa/token"
)

// integers is the numeral grammar of voliva integer literals.
var integers = &integer.Syntax{
	Signs: integer.SignStyleNegPos,
	Bases: integer.DecimalStyles |
		integer.BaseStyles(integer.StyleBinPrefix0b|integer.StyleBinPrefix0B) |
		integer.BaseStyles(integer.StyleOctPrefix0o|integer.StyleOctPrefix0O) |
		integer.BaseStyles(integer.StyleHexPrefix0x|integer.StyleHexPrefix0X),
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
	ins("add", token.Add, token.AddConstRhs)
	ins("sub", token.Sub, token.SubConstRhs)
	ins("mul", token.Mul, token.MulConstRhs)
	ins("div", token.Div, token.DivConstRhs)
	ins("mod", token.Mod, token.ModConstRhs)
	ins("or", token.VolivaOr, token.VolivaOrConstRhs)
	ins("and", token.VolivaAnd, token.VolivaAndConstRhs)
	ins("not", token.VolivaNot)
	ins("store", token.Store, token.StoreConstLhs)
	ins("storestr", token.VolivaStoreString0)
	ins("retrieve", token.Retrieve, token.RetrieveConst)
	ins("label", token.Label)
	ins("call", token.Call)
	ins("jump", token.Jmp)
	ins("jumpz", token.Jz)
	ins("jumpn", token.Jn)
	ins("jumpp", token.VolivaJmpPos)
	ins("jumpnp", token.VolivaJmpNonZero)
	ins("jumppn", token.VolivaJmpNonZero)
	ins("jumpnz", token.VolivaJmpNonPos)
	ins("jumppz", token.VolivaJmpNonNeg)
	ins("ret", token.Ret)
	ins("exit", token.End)
	ins("outn", token.Printi)
	ins("outc", token.Printc)
	ins("readn", token.Readi)
	ins("readc", token.Readc)
	ins("valueinteger", token.VolivaValueInteger)
	ins("valuestring", token.VolivaValueString)
	ins("dbg", token.VolivaBreakpoint)
	ins("include", token.VolivaInclude)
	return m
}

// Parse parses a voliva-dialect program. It never fails: malformed
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
	return &syntax.Program{Dialect: syntax.Voliva, Body: body}
}
