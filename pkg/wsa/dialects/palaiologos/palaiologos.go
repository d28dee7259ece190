package palaiologos

import (
	"math/big"

	"github.com/wspace/wsasm/pkg/wsa/integer"
	"github.com/wspace/wsasm/pkg/wsa/mnemonics"
	"github.com/wspace/wsasm/pkg/wsa/syntax"
	"github.com/wspace/wsasm/pkg/wsa/token"
)

// integers is the numeral grammar of Palaiologos integer literals:
// suffix base markers and 32-bit range.
var integers = &integer.Syntax{
	Signs: integer.SignStyleNeg,
	Bases: integer.DecimalStyles |
		integer.BaseStyles(integer.StyleBinSuffixb|integer.StyleBinSuffixB) |
		integer.BaseStyles(integer.StyleOctSuffixo|integer.StyleOctSuffixO) |
		integer.BaseStyles(integer.StyleHexSuffixh|integer.StyleHexSuffixH),
	Min: big.NewInt(-1 << 31),
	Max: big.NewInt(1<<31 - 1),
}

// Integers returns the numeral grammar of the dialect.
func Integers() *integer.Syntax { return integers }

var mnemonicMap = newMnemonics()

func newMnemonics() *mnemonics.Map {
	m := mnemonics.NewMap()
	ins := func(key string, opcode token.Opcode) {
		m.Insert(key, mnemonics.FoldAscii, opcode)
	}
	ins("psh", token.Push)
	ins("push", token.Push)
	ins("dup", token.Dup)
	ins("copy", token.Copy)
	ins("take", token.Copy)
	ins("pull", token.Copy)
	ins("xchg", token.Swap)
	ins("swp", token.Swap)
	ins("swap", token.Swap)
	ins("drop", token.Drop)
	ins("dsc", token.Drop)
	ins("slide", token.Slide)
	ins("add", token.Add)
	ins("sub", token.Sub)
	ins("mul", token.Mul)
	ins("div", token.Div)
	ins("mod", token.Mod)
	ins("sto", token.Store)
	ins("rcl", token.Retrieve)
	ins("call", token.Call)
	ins("gosub", token.Call)
	ins("jsr", token.Call)
	ins("jmp", token.Jmp)
	ins("j", token.Jmp)
	ins("b", token.Jmp)
	ins("jz", token.Jz)
	ins("bz", token.Jz)
	ins("jltz", token.Jn)
	ins("bltz", token.Jn)
	ins("ret", token.Ret)
	ins("end", token.End)
	ins("putc", token.Printc)
	ins("putn", token.Printi)
	ins("getc", token.Readc)
	ins("getn", token.Readi)
	ins("rep", token.PalaiologosRep)
	return m
}

// overloads maps each base opcode to its immediate-operand overloads,
// selected by argument count.
var overloads = map[token.Opcode][]token.Opcode{
	token.Push:           {token.Push},
	token.Dup:            {token.Dup},
	token.Copy:           {token.Copy},
	token.Swap:           {token.Swap},
	token.Drop:           {token.Drop},
	token.Slide:          {token.Slide},
	token.Add:            {token.Add, token.AddConstRhs},
	token.Sub:            {token.Sub, token.SubConstRhs},
	token.Mul:            {token.Mul, token.MulConstRhs},
	token.Div:            {token.Div, token.DivConstRhs},
	token.Mod:            {token.Mod, token.ModConstRhs},
	token.Store:          {token.Store, token.StoreConstRhs, token.StoreConstConst},
	token.Retrieve:       {token.Retrieve, token.RetrieveConst},
	token.Call:           {token.Call},
	token.Jmp:            {token.Jmp},
	token.Jz:             {token.Jz},
	token.Jn:             {token.Jn},
	token.Ret:            {token.Ret},
	token.End:            {token.End},
	token.Printc:         {token.Printc, token.PrintcConst},
	token.Printi:         {token.Printi, token.PrintiConst},
	token.Readc:          {token.Readc, token.ReadcConst},
	token.Readi:          {token.Readi, token.ReadiConst},
	token.PalaiologosRep: {token.PalaiologosRep},
}

// Parse parses a Palaiologos-dialect program. It never fails: malformed
// source is recorded in the tree and reproduced exactly by Pretty.
func Parse(src []byte) *syntax.Program {
	body := newParser(src).parse()
	return &syntax.Program{Dialect: syntax.Palaiologos, Body: body}
}
