package codegen

import "github.com/wspace/wsasm/pkg/wsa/token"

// encodings maps directly encodable opcodes to their Whitespace
// sequences, including the Burghard debug and voliva arithmetic
// extensions.
var encodings = map[token.Opcode][]Token{
	token.Push:     {S, S},
	token.Dup:      {S, L, S},
	token.Copy:     {S, T, S},
	token.Swap:     {S, L, T},
	token.Drop:     {S, L, L},
	token.Slide:    {S, T, L},
	token.Add:      {T, S, S, S},
	token.Sub:      {T, S, S, T},
	token.Mul:      {T, S, S, L},
	token.Div:      {T, S, T, S},
	token.Mod:      {T, S, T, T},
	token.Store:    {T, T, S},
	token.Retrieve: {T, T, T},
	token.Label:    {L, S, S},
	token.Call:     {L, S, T},
	token.Jmp:      {L, S, L},
	token.Jz:       {L, T, S},
	token.Jn:       {L, T, T},
	token.Ret:      {L, T, L},
	token.End:      {L, L, L},
	token.Printc:   {T, L, S, S},
	token.Printi:   {T, L, S, T},
	token.Readc:    {T, L, T, S},
	token.Readi:    {T, L, T, T},

	token.BurghardPrintStack: {L, L, S, S, S},
	token.BurghardPrintHeap:  {L, L, S, S, T},

	token.VolivaOr:         {T, S, L, S},
	token.VolivaAnd:        {T, S, L, T},
	token.VolivaNot:        {T, S, L, L},
	token.VolivaBreakpoint: {L, L, S},
}

// argKind classifies the operand an encodable opcode takes.
type argKind uint8

const (
	argNone argKind = iota
	argInt
	argLabel
)

var argKinds = map[token.Opcode]argKind{
	token.Push:  argInt,
	token.Copy:  argInt,
	token.Slide: argInt,
	token.Label: argLabel,
	token.Call:  argLabel,
	token.Jmp:   argLabel,
	token.Jz:    argLabel,
	token.Jn:    argLabel,
}
