package codegen

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/wspace/wsasm/pkg/wsa/syntax"
	"github.com/wspace/wsasm/pkg/wsa/token"
)

// ErrHasErrors reports a program whose tree carries syntax errors.
var ErrHasErrors = errors.New("codegen: program has syntax errors")

// UnsupportedError reports an opcode with no Whitespace encoding, such
// as an include directive.
type UnsupportedError struct {
	Op token.Opcode
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("codegen: no encoding for %s", e.Op)
}

// OperandError reports an instruction whose operand is not a constant
// the encoder can emit, such as a variable reference.
type OperandError struct {
	Op   token.Opcode
	Want string
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("codegen: %s wants a constant %s operand", e.Op, e.Want)
}

// Generate encodes a parsed program as Whitespace tokens. Option blocks
// emit only the first branch whose condition is in the enabled options;
// elseoption is always taken when reached. The program must be free of
// syntax errors.
func Generate(prog *syntax.Program, w TokenWriter, options []string) error {
	if prog.HasError() {
		return ErrHasErrors
	}
	g := &generator{w: w, enabled: make(map[string]bool), labels: make(map[string]*Bits)}
	for _, opt := range options {
		g.enabled[opt] = true
	}
	return g.nodes(prog.Body.Nodes)
}

type generator struct {
	w       TokenWriter
	enabled map[string]bool
	// Labels are assigned dense values in order of first use, shared
	// between definitions and references by name.
	labels map[string]*Bits
	next   int64
}

func (g *generator) nodes(nodes []syntax.Node) error {
	for _, node := range nodes {
		var err error
		switch n := node.(type) {
		case *syntax.Inst:
			err = g.inst(n)
		case *syntax.Empty:
		case *syntax.Block:
			err = g.nodes(n.Nodes)
		case *syntax.OptionBlock:
			err = g.optionBlock(n)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (g *generator) optionBlock(b *syntax.OptionBlock) error {
	for i := range b.Branches {
		br := &b.Branches[i]
		switch br.Option.Opcode() {
		case token.BurghardIfOption, token.BurghardElseIfOption:
			if g.enabled[optionName(br.Option)] {
				return g.nodes(br.Nodes)
			}
		case token.BurghardElseOption:
			return g.nodes(br.Nodes)
		}
	}
	return nil
}

func (g *generator) inst(inst *syntax.Inst) error {
	op := inst.Op
	if _, ok := encodings[op]; ok {
		var arg *Bits
		var err error
		switch argKinds[op] {
		case argInt:
			arg, err = g.intArg(inst)
		case argLabel:
			arg, err = g.labelArg(inst)
		}
		if err != nil {
			return err
		}
		return g.emit(op, arg)
	}

	switch op {
	case token.AddConstRhs, token.SubConstRhs, token.MulConstRhs,
		token.DivConstRhs, token.ModConstRhs, token.StoreConstRhs,
		token.RetrieveConst, token.PrintcConst, token.PrintiConst,
		token.ReadcConst, token.ReadiConst,
		token.VolivaOrConstRhs, token.VolivaAndConstRhs:
		arg, err := g.intArg(inst)
		if err != nil {
			return err
		}
		g.emit(token.Push, arg)
		return g.emit(constBase[op], nil)

	case token.StoreConstLhs:
		arg, err := g.intArg(inst)
		if err != nil {
			return err
		}
		g.emit(token.Push, arg)
		g.emit(token.Swap, nil)
		return g.emit(token.Store, nil)

	case token.StoreConstConst:
		args, err := g.intArgs(inst, 2)
		if err != nil {
			return err
		}
		g.emit(token.Push, args[1])
		g.emit(token.Push, args[0])
		return g.emit(token.Store, nil)

	case token.BurghardTest:
		arg, err := g.intArg(inst)
		if err != nil {
			return err
		}
		g.emit(token.Dup, nil)
		g.emit(token.Push, arg)
		return g.emit(token.Sub, nil)

	case token.BurghardPushString0:
		str, err := stringArg(inst)
		if err != nil {
			return err
		}
		g.emit(token.Push, &Bits{Value: new(big.Int)})
		runes := []rune(str)
		for i := len(runes) - 1; i >= 0; i-- {
			g.emit(token.Push, &Bits{Value: big.NewInt(int64(runes[i]))})
		}
		return nil

	case token.VolivaStoreString0:
		str, err := stringArg(inst)
		if err != nil {
			return err
		}
		for _, r := range str {
			g.emit(token.Dup, nil)
			g.emit(token.Push, &Bits{Value: big.NewInt(int64(r))})
			g.emit(token.Store, nil)
			g.emit(token.Push, &Bits{Value: big.NewInt(1)})
			g.emit(token.Add, nil)
		}
		g.emit(token.Dup, nil)
		g.emit(token.Push, &Bits{Value: new(big.Int)})
		g.emit(token.Store, nil)
		return g.emit(token.Drop, nil)

	case token.BurghardJmpP, token.VolivaJmpPos:
		return g.jumpPositive(inst)
	case token.BurghardJmpNP, token.VolivaJmpNonZero:
		return g.jumpNonZero(inst)
	case token.BurghardJmpNZ, token.VolivaJmpNonPos:
		return g.jumpNonPositive(inst)
	case token.BurghardJmpPZ, token.VolivaJmpNonNeg:
		return g.jumpNonNegative(inst)

	case token.PalaiologosRep:
		return g.rep(inst)

	case token.BurghardOption:
		g.enabled[optionName(inst)] = true
		return nil

	default:
		return &UnsupportedError{Op: op}
	}
}

// constBase maps immediate-operand overloads to the instruction they
// expand into after a push.
var constBase = map[token.Opcode]token.Opcode{
	token.AddConstRhs:       token.Add,
	token.SubConstRhs:       token.Sub,
	token.MulConstRhs:       token.Mul,
	token.DivConstRhs:       token.Div,
	token.ModConstRhs:       token.Mod,
	token.StoreConstRhs:     token.Store,
	token.RetrieveConst:     token.Retrieve,
	token.PrintcConst:       token.Printc,
	token.PrintiConst:       token.Printi,
	token.ReadcConst:        token.Readc,
	token.ReadiConst:        token.Readi,
	token.VolivaOrConstRhs:  token.VolivaOr,
	token.VolivaAndConstRhs: token.VolivaAnd,
}

// jumpPositive lowers a jump taken when the top of the stack is
// positive, consuming it on both paths.
func (g *generator) jumpPositive(inst *syntax.Inst) error {
	target, err := g.labelArg(inst)
	if err != nil {
		return err
	}
	neg, end := g.fresh(), g.fresh()
	g.emit(token.Dup, nil)
	g.emit(token.Jn, neg)
	g.emit(token.Jz, end)
	g.emit(token.Jmp, target)
	g.emit(token.Label, neg)
	g.emit(token.Drop, nil)
	return g.emit(token.Label, end)
}

func (g *generator) jumpNonZero(inst *syntax.Inst) error {
	target, err := g.labelArg(inst)
	if err != nil {
		return err
	}
	end := g.fresh()
	g.emit(token.Jz, end)
	g.emit(token.Jmp, target)
	return g.emit(token.Label, end)
}

func (g *generator) jumpNonPositive(inst *syntax.Inst) error {
	target, err := g.labelArg(inst)
	if err != nil {
		return err
	}
	neg, end := g.fresh(), g.fresh()
	g.emit(token.Dup, nil)
	g.emit(token.Jn, neg)
	g.emit(token.Jz, target)
	g.emit(token.Jmp, end)
	g.emit(token.Label, neg)
	g.emit(token.Drop, nil)
	g.emit(token.Jmp, target)
	return g.emit(token.Label, end)
}

func (g *generator) jumpNonNegative(inst *syntax.Inst) error {
	target, err := g.labelArg(inst)
	if err != nil {
		return err
	}
	neg := g.fresh()
	g.emit(token.Dup, nil)
	g.emit(token.Jn, neg)
	g.emit(token.Drop, nil)
	g.emit(token.Jmp, target)
	g.emit(token.Label, neg)
	return g.emit(token.Drop, nil)
}

// rep repeats the encoding of an argument mnemonic a constant number of
// times.
func (g *generator) rep(inst *syntax.Inst) error {
	var inner token.Opcode
	found := false
	for i := 1; i < inst.Len(); i++ {
		if m, ok := token.Unwrap(inst.Word(i)).(*token.Mnemonic); ok {
			inner = m.Opcode
			found = true
			break
		}
	}
	if !found {
		return &OperandError{Op: inst.Op, Want: "mnemonic"}
	}
	if _, ok := encodings[inner]; !ok || argKinds[inner] != argNone {
		return &UnsupportedError{Op: inner}
	}
	count, err := g.intArg(inst)
	if err != nil {
		return err
	}
	if !count.Value.IsInt64() || count.Value.Sign() < 0 {
		return &OperandError{Op: inst.Op, Want: "repetition count"}
	}
	for n := count.Value.Int64(); n > 0; n-- {
		if err := g.emit(inner, nil); err != nil {
			return err
		}
	}
	return nil
}

func (g *generator) emit(op token.Opcode, arg *Bits) error {
	return (&Inst{Op: op, Arg: arg}).Encode(g.w)
}

// intArg finds the constant integer or char operand of an instruction.
func (g *generator) intArg(inst *syntax.Inst) (*Bits, error) {
	args, err := g.intArgs(inst, 1)
	if err != nil {
		return nil, err
	}
	return args[0], nil
}

// intArgs finds n constant integer or char operands.
func (g *generator) intArgs(inst *syntax.Inst, n int) ([]*Bits, error) {
	var args []*Bits
	for i := 0; i < inst.Len() && len(args) < n; i++ {
		switch t := token.Unwrap(inst.Word(i)).(type) {
		case *token.Integer:
			args = append(args, IntegerBits(t))
		case *token.Char:
			args = append(args, CharBits(t))
		}
	}
	if len(args) < n {
		return nil, &OperandError{Op: inst.Op, Want: "integer"}
	}
	return args, nil
}

// labelArg finds the label operand of an instruction. Definitions and
// references share the value assigned to the name.
func (g *generator) labelArg(inst *syntax.Inst) (*Bits, error) {
	for i := 0; i < inst.Len(); i++ {
		if t, ok := token.Unwrap(inst.Word(i)).(*token.LabelToken); ok {
			name := t.Sigil + string(t.Name.Bytes())
			if b, ok := g.labels[name]; ok {
				return b, nil
			}
			b := g.fresh()
			g.labels[name] = b
			return b, nil
		}
	}
	return nil, &OperandError{Op: inst.Op, Want: "label"}
}

// fresh allocates the next unused label value.
func (g *generator) fresh() *Bits {
	b := &Bits{Value: big.NewInt(g.next)}
	g.next++
	return b
}

// stringArg finds the string operand of an instruction.
func stringArg(inst *syntax.Inst) (string, error) {
	for i := 1; i < inst.Len(); i++ {
		if t, ok := token.Unwrap(inst.Word(i)).(*token.String); ok {
			return string(t.Unescaped), nil
		}
	}
	return "", &OperandError{Op: inst.Op, Want: "string"}
}

// optionName returns the option name operand of an option instruction.
func optionName(inst *syntax.Inst) string {
	if inst.Len() < 2 {
		return ""
	}
	switch t := token.Unwrap(inst.Word(1)).(type) {
	case *token.Word:
		return string(t.Word.Bytes())
	case *token.String:
		return string(t.Unescaped)
	}
	return ""
}
