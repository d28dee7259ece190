package burghard

import (
	"github.com/wspace/wsasm/pkg/wsa/integer"
	"github.com/wspace/wsasm/pkg/wsa/mnemonics"
	"github.com/wspace/wsasm/pkg/wsa/syntax"
	"github.com/wspace/wsasm/pkg/wsa/token"
)

// integers is the numeral grammar of Burghard integer literals, which
// follows Haskell `read`.
var integers = &integer.Syntax{
	Signs: integer.SignStyleHaskell,
	Bases: integer.DecimalStyles |
		integer.BaseStyles(integer.StyleOctPrefix0o|integer.StyleOctPrefix0O) |
		integer.BaseStyles(integer.StyleHexPrefix0x|integer.StyleHexPrefix0X),
}

// Integers returns the numeral grammar of the dialect.
func Integers() *integer.Syntax { return integers }

var mnemonicMap = newMnemonics()

func newMnemonics() *mnemonics.Map {
	m := mnemonics.NewMap()
	ins := func(key string, opcodes ...token.Opcode) {
		m.Insert(key, mnemonics.FoldAsciiIK, opcodes...)
	}
	ins("push", token.Push)
	ins("pushs", token.BurghardPushString0)
	ins("doub", token.Dup)
	ins("swap", token.Swap)
	ins("pop", token.Drop)
	ins("add", token.Add, token.AddConstRhs)
	ins("sub", token.Sub, token.SubConstRhs)
	ins("mul", token.Mul, token.MulConstRhs)
	ins("div", token.Div, token.DivConstRhs)
	ins("mod", token.Mod, token.ModConstRhs)
	ins("store", token.Store, token.StoreConstLhs)
	ins("retrive", token.Retrieve, token.RetrieveConst)
	ins("label", token.Label)
	ins("call", token.Call)
	ins("jump", token.Jmp)
	ins("jumpz", token.Jz)
	ins("jumpn", token.Jn)
	ins("jumpp", token.BurghardJmpP)
	ins("jumpnp", token.BurghardJmpNP)
	ins("jumppn", token.BurghardJmpNP)
	ins("jumpnz", token.BurghardJmpNZ)
	ins("jumppz", token.BurghardJmpPZ)
	ins("ret", token.Ret)
	ins("exit", token.End)
	ins("outC", token.Printc)
	ins("outN", token.Printi)
	ins("inC", token.Readc)
	ins("inN", token.Readi)
	ins("debug_printstack", token.BurghardPrintStack)
	ins("debug_printheap", token.BurghardPrintHeap)
	ins("test", token.BurghardTest)
	ins("valueinteger", token.BurghardValueInteger)
	ins("valuestring", token.BurghardValueString)
	ins("include", token.BurghardInclude)
	ins("option", token.BurghardOption)
	ins("ifoption", token.BurghardIfOption)
	ins("elseifoption", token.BurghardElseIfOption)
	ins("elseoption", token.BurghardElseOption)
	ins("endoption", token.BurghardEndOption)
	return m
}

// Parse parses a Burghard-dialect program. It never fails: malformed
// source is recorded in the tree and reproduced exactly by Pretty.
func Parse(src []byte) *syntax.Program {
	var nester optionNester
	body := nester.nest(newParser(src))
	return &syntax.Program{Dialect: syntax.Burghard, Body: body}
}
