package token

// Opcode identifies a resolved instruction, including dialect extensions
// and overloads of standard instructions with extra arguments.
type Opcode uint8

const (
	// Invalid marks a mnemonic that resolved to no opcode.
	Invalid Opcode = iota

	Push
	Dup
	Copy
	Swap
	Drop
	Slide
	Add
	Sub
	Mul
	Div
	Mod
	Store
	Retrieve
	Label
	Call
	Jmp
	Jz
	Jn
	Ret
	End
	Printc
	Printi
	Readc
	Readi

	// Overloads of standard instructions that take immediate operands.
	// `add n` expands to `push n / add`, and likewise for the others,
	// except for StoreConstLhs, which expands to `push n / swap / store`,
	// and StoreConstConst, which expands to `push y / push x / store`.
	AddConstRhs
	SubConstRhs
	MulConstRhs
	DivConstRhs
	ModConstRhs
	StoreConstLhs
	StoreConstRhs
	StoreConstConst
	RetrieveConst
	PrintcConst
	PrintiConst
	ReadcConst
	ReadiConst

	// Burghard extensions.
	BurghardPushString0
	BurghardOption
	BurghardIfOption
	BurghardElseIfOption
	BurghardElseOption
	BurghardEndOption
	BurghardInclude
	BurghardPrintStack
	BurghardPrintHeap
	BurghardJmpP
	BurghardJmpNP
	BurghardJmpNZ
	BurghardJmpPZ
	BurghardTest
	BurghardValueInteger
	BurghardValueString

	// voliva extensions.
	VolivaOr
	VolivaOrConstRhs
	VolivaAnd
	VolivaAndConstRhs
	VolivaNot
	VolivaStoreString0
	VolivaJmpPos
	VolivaJmpNonZero
	VolivaJmpNonPos
	VolivaJmpNonNeg
	VolivaValueInteger
	VolivaValueString
	VolivaBreakpoint
	VolivaInclude

	// Palaiologos extensions.
	PalaiologosRep
)

var opcodeNames = [...]string{
	Invalid:  "invalid",
	Push:     "push",
	Dup:      "dup",
	Copy:     "copy",
	Swap:     "swap",
	Drop:     "drop",
	Slide:    "slide",
	Add:      "add",
	Sub:      "sub",
	Mul:      "mul",
	Div:      "div",
	Mod:      "mod",
	Store:    "store",
	Retrieve: "retrieve",
	Label:    "label",
	Call:     "call",
	Jmp:      "jmp",
	Jz:       "jz",
	Jn:       "jn",
	Ret:      "ret",
	End:      "end",
	Printc:   "printc",
	Printi:   "printi",
	Readc:    "readc",
	Readi:    "readi",

	AddConstRhs:     "add",
	SubConstRhs:     "sub",
	MulConstRhs:     "mul",
	DivConstRhs:     "div",
	ModConstRhs:     "mod",
	StoreConstLhs:   "store",
	StoreConstRhs:   "store",
	StoreConstConst: "store",
	RetrieveConst:   "retrieve",
	PrintcConst:     "printc",
	PrintiConst:     "printi",
	ReadcConst:      "readc",
	ReadiConst:      "readi",

	BurghardPushString0:  "pushs",
	BurghardOption:       "option",
	BurghardIfOption:     "ifoption",
	BurghardElseIfOption: "elseifoption",
	BurghardElseOption:   "elseoption",
	BurghardEndOption:    "endoption",
	BurghardInclude:      "include",
	BurghardPrintStack:   "debug_printstack",
	BurghardPrintHeap:    "debug_printheap",
	BurghardJmpP:         "jumpp",
	BurghardJmpNP:        "jumpnp",
	BurghardJmpNZ:        "jumpnz",
	BurghardJmpPZ:        "jumppz",
	BurghardTest:         "test",
	BurghardValueInteger: "valueinteger",
	BurghardValueString:  "valuestring",

	VolivaOr:           "or",
	VolivaOrConstRhs:   "or",
	VolivaAnd:          "and",
	VolivaAndConstRhs:  "and",
	VolivaNot:          "not",
	VolivaStoreString0: "storestr",
	VolivaJmpPos:       "jumpp",
	VolivaJmpNonZero:   "jumpnp",
	VolivaJmpNonPos:    "jumpnz",
	VolivaJmpNonNeg:    "jumppz",
	VolivaValueInteger: "valueinteger",
	VolivaValueString:  "valuestring",
	VolivaBreakpoint:   "dbg",
	VolivaInclude:      "include",

	PalaiologosRep: "rep",
}

// String returns the canonical lowercase mnemonic for the opcode.
// Overloads share the mnemonic of the instruction they extend.
func (op Opcode) String() string {
	if int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}
	return "invalid"
}
