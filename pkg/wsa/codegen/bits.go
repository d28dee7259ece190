package codegen

import (
	"math/big"

	"github.com/wspace/wsasm/pkg/wsa/integer"
	"github.com/wspace/wsasm/pkg/wsa/token"
)

// Bits is the payload of an integer or label operand: an explicit sign,
// a run of leading zero bits, and the big-endian magnitude.
type Bits struct {
	Value        *big.Int
	Sign         integer.Sign
	LeadingZeros int
}

// IntegerBits converts a parsed integer literal, preserving its sign
// and leading zeros.
func IntegerBits(t *token.Integer) *Bits {
	return &Bits{
		Value:        t.Int.Value,
		Sign:         t.Int.Sign,
		LeadingZeros: t.Int.LeadingZeros,
	}
}

// CharBits converts a char literal to its code point.
func CharBits(t *token.Char) *Bits {
	return &Bits{Value: big.NewInt(int64(t.Value))}
}

// writeSigned emits the sign followed by the magnitude bits. Zero may
// carry a bare sign and no bits.
func (b *Bits) writeSigned(w TokenWriter) {
	if b.Sign == integer.SignNeg {
		w.WriteToken(T)
	} else {
		w.WriteToken(S)
	}
	b.writeUnsigned(w)
}

// writeUnsigned emits the leading zeros and magnitude bits.
func (b *Bits) writeUnsigned(w TokenWriter) {
	if b.Value == nil {
		panic("codegen: bits without a value")
	}
	for i := 0; i < b.LeadingZeros; i++ {
		w.WriteToken(S)
	}
	mag := new(big.Int).Abs(b.Value)
	for i := mag.BitLen() - 1; i >= 0; i-- {
		if mag.Bit(i) == 0 {
			w.WriteToken(S)
		} else {
			w.WriteToken(T)
		}
	}
}

// Inst is one Whitespace instruction to encode: an opcode with a
// directly encodable sequence and its operand bits, if any.
type Inst struct {
	Op  token.Opcode
	Arg *Bits
}

// Encode writes the opcode sequence and operand. It fails on opcodes
// with no direct Whitespace encoding; Generate lowers those first.
func (inst *Inst) Encode(w TokenWriter) error {
	seq, ok := encodings[inst.Op]
	if !ok {
		return &UnsupportedError{Op: inst.Op}
	}
	for _, tok := range seq {
		w.WriteToken(tok)
	}
	switch argKinds[inst.Op] {
	case argInt:
		inst.Arg.writeSigned(w)
		w.WriteToken(L)
	case argLabel:
		inst.Arg.writeUnsigned(w)
		w.WriteToken(L)
	}
	return nil
}
