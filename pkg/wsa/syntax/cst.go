package syntax

import "github.com/wspace/wsasm/pkg/wsa/token"

// Node is a node in a concrete syntax tree.
type Node interface {
	// HasError reports whether this node or any node under it has a
	// syntax error.
	HasError() bool
	// Pretty appends the source text of this node to buf.
	Pretty(buf *[]byte)
}

// Inst is an instruction.
type Inst struct {
	// The mnemonic and arguments, separated and surrounded by optional
	// spaces. Words may be wrapped in Quoted or Spliced in the
	// Burghard dialect.
	Words
	// The resolved opcode. Instructions without a mnemonic, such as a
	// Palaiologos label definition, carry the implied opcode.
	Op token.Opcode
	// Whether the instruction has the correct number of arguments for
	// the opcode.
	ValidArity bool
	// Whether the arguments have valid types for the opcode.
	ValidTypes bool
}

// Opcode returns the resolved opcode of the instruction.
func (n *Inst) Opcode() token.Opcode {
	return n.Op
}

// MnemonicToken returns the unwrapped mnemonic token, or nil for an
// instruction without a mnemonic.
func (n *Inst) MnemonicToken() *token.Mnemonic {
	if len(n.Words.Words) == 0 {
		return nil
	}
	if m, ok := token.Unwrap(n.Words.Words[0].Word).(*token.Mnemonic); ok {
		return m
	}
	return nil
}

// Arity returns the number of argument words. The mnemonic, when
// present, is not counted.
func (n *Inst) Arity() int {
	arity := len(n.Words.Words)
	if n.MnemonicToken() != nil {
		arity--
	}
	return arity
}

// Arg returns the unwrapped argument word at the given index. Index 0
// is the first word after the mnemonic, or the first word of an
// instruction with an implied opcode.
func (n *Inst) Arg(i int) token.Token {
	if n.MnemonicToken() != nil {
		i++
	}
	return token.Unwrap(n.Words.Word(i))
}

func (n *Inst) HasError() bool {
	return n.Words.HasError() || !n.ValidArity || !n.ValidTypes
}

func (n *Inst) Pretty(buf *[]byte) {
	n.Words.Pretty(buf)
}

// Empty is a line with no instruction.
type Empty struct {
	Space Spaces
}

func (n *Empty) HasError() bool {
	return n.Space.HasError()
}

func (n *Empty) Pretty(buf *[]byte) {
	n.Space.Pretty(buf)
}

// Block is a sequence of nodes.
type Block struct {
	Nodes []Node
}

func (n *Block) HasError() bool {
	for _, node := range n.Nodes {
		if node.HasError() {
			return true
		}
	}
	return false
}

func (n *Block) Pretty(buf *[]byte) {
	for _, node := range n.Nodes {
		node.Pretty(buf)
	}
}

// OptionBranch is one branch of a conditionally compiled block.
type OptionBranch struct {
	// The instruction opening this branch (ifoption, elseifoption, or
	// elseoption).
	Option *Inst
	Nodes  []Node
}

// OptionBlock is a conditionally compiled block (Burghard ifoption).
type OptionBlock struct {
	Branches []OptionBranch
	// The endoption instruction closing this block. Nil when missing,
	// which is an error.
	End *Inst
}

func (n *OptionBlock) HasError() bool {
	if len(n.Branches) == 0 || n.Branches[0].Option.Opcode() != token.BurghardIfOption {
		return true
	}
	for i := range n.Branches {
		b := &n.Branches[i]
		if b.Option.HasError() {
			return true
		}
		for _, node := range b.Nodes {
			if node.HasError() {
				return true
			}
		}
	}
	return n.End == nil || n.End.HasError()
}

func (n *OptionBlock) Pretty(buf *[]byte) {
	for i := range n.Branches {
		n.Branches[i].Option.Pretty(buf)
		for _, node := range n.Branches[i].Nodes {
			node.Pretty(buf)
		}
	}
	if n.End != nil {
		n.End.Pretty(buf)
	}
}

// Program is the root of a parsed source, marking its dialect.
type Program struct {
	Dialect Dialect
	Body    *Block
}

func (n *Program) HasError() bool {
	return n.Body.HasError()
}

func (n *Program) Pretty(buf *[]byte) {
	n.Body.Pretty(buf)
}
