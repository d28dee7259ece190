package syntax

import "github.com/wspace/wsasm/pkg/wsa/token"

// ArgType is the required type of one instruction operand.
type ArgType uint8

const (
	ArgInteger ArgType = iota
	ArgString
	ArgChar
	ArgLabel
	ArgVariable
	// ArgWord is an operand kept as an uninterpreted word, such as an
	// option name or an include path.
	ArgWord
	// ArgMnemonic is an instruction mnemonic operand (Palaiologos
	// `rep`).
	ArgMnemonic
)

// Params is the operand list of one opcode.
type Params []ArgType

var params = map[token.Opcode]Params{
	token.Push:     {ArgInteger},
	token.Dup:      {},
	token.Copy:     {ArgInteger},
	token.Swap:     {},
	token.Drop:     {},
	token.Slide:    {ArgInteger},
	token.Add:      {},
	token.Sub:      {},
	token.Mul:      {},
	token.Div:      {},
	token.Mod:      {},
	token.Store:    {},
	token.Retrieve: {},
	token.Label:    {ArgLabel},
	token.Call:     {ArgLabel},
	token.Jmp:      {ArgLabel},
	token.Jz:       {ArgLabel},
	token.Jn:       {ArgLabel},
	token.Ret:      {},
	token.End:      {},
	token.Printc:   {},
	token.Printi:   {},
	token.Readc:    {},
	token.Readi:    {},

	token.AddConstRhs:     {ArgInteger},
	token.SubConstRhs:     {ArgInteger},
	token.MulConstRhs:     {ArgInteger},
	token.DivConstRhs:     {ArgInteger},
	token.ModConstRhs:     {ArgInteger},
	token.StoreConstLhs:   {ArgInteger},
	token.StoreConstRhs:   {ArgInteger},
	token.StoreConstConst: {ArgInteger, ArgInteger},
	token.RetrieveConst:   {ArgInteger},
	token.PrintcConst:     {ArgInteger},
	token.PrintiConst:     {ArgInteger},
	token.ReadcConst:      {ArgInteger},
	token.ReadiConst:      {ArgInteger},

	token.BurghardPushString0:  {ArgString},
	token.BurghardOption:       {ArgWord},
	token.BurghardIfOption:     {ArgWord},
	token.BurghardElseIfOption: {ArgWord},
	token.BurghardElseOption:   {},
	token.BurghardEndOption:    {},
	token.BurghardInclude:      {ArgWord},
	token.BurghardPrintStack:   {},
	token.BurghardPrintHeap:    {},
	token.BurghardJmpP:         {ArgLabel},
	token.BurghardJmpNP:        {ArgLabel},
	token.BurghardJmpNZ:        {ArgLabel},
	token.BurghardJmpPZ:        {ArgLabel},
	token.BurghardTest:         {ArgInteger},
	token.BurghardValueInteger: {ArgVariable, ArgInteger},
	token.BurghardValueString:  {ArgVariable, ArgString},

	token.VolivaOr:           {},
	token.VolivaOrConstRhs:   {ArgInteger},
	token.VolivaAnd:          {},
	token.VolivaAndConstRhs:  {ArgInteger},
	token.VolivaNot:          {},
	token.VolivaStoreString0: {ArgString},
	token.VolivaJmpPos:       {ArgLabel},
	token.VolivaJmpNonZero:   {ArgLabel},
	token.VolivaJmpNonPos:    {ArgLabel},
	token.VolivaJmpNonNeg:    {ArgLabel},
	token.VolivaValueInteger: {ArgVariable, ArgInteger},
	token.VolivaValueString:  {ArgVariable, ArgString},
	token.VolivaBreakpoint:   {},
	token.VolivaInclude:      {ArgWord},

	token.PalaiologosRep: {ArgMnemonic, ArgInteger},
}

// Args returns the operand list for an opcode. Invalid opcodes have no
// operand requirements.
func Args(op token.Opcode) Params {
	return params[op]
}

// Resolve selects the overload among opcodes whose arity matches the
// given argument count. It reports the matching opcode, or the first
// opcode and false when none matches. Resolve of an empty overload set
// returns Invalid.
func Resolve(opcodes []token.Opcode, arity int) (token.Opcode, bool) {
	if len(opcodes) == 0 {
		return token.Invalid, false
	}
	for _, op := range opcodes {
		if len(Args(op)) == arity {
			return op, true
		}
	}
	return opcodes[0], false
}
