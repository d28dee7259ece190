package syntax

import (
	"testing"

	"github.com/wspace/wsasm/pkg/wsa/token"
)

func inst(op token.Opcode, mnemonic string) *Inst {
	n := &Inst{Op: op, ValidArity: true, ValidTypes: true}
	n.PushWord(&token.Mnemonic{Text: token.Borrowed([]byte(mnemonic)), Opcode: op})
	n.PushSpace(&token.LineTerm{Style: token.Lf})
	return n
}

func TestOptionBlockHasError(t *testing.T) {
	ifOpt := func() OptionBranch {
		return OptionBranch{Option: inst(token.BurghardIfOption, "ifoption")}
	}
	elseOpt := func() OptionBranch {
		return OptionBranch{Option: inst(token.BurghardElseOption, "elseoption")}
	}
	end := inst(token.BurghardEndOption, "endoption")

	tests := []struct {
		name  string
		block *OptionBlock
		want  bool
	}{
		{"complete", &OptionBlock{Branches: []OptionBranch{ifOpt()}, End: end}, false},
		{"with else", &OptionBlock{Branches: []OptionBranch{ifOpt(), elseOpt()}, End: end}, false},
		{"no branches", &OptionBlock{End: end}, true},
		{"starts with else", &OptionBlock{Branches: []OptionBranch{elseOpt()}, End: end}, true},
		{"missing end", &OptionBlock{Branches: []OptionBranch{ifOpt()}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.block.HasError(); got != tt.want {
				t.Errorf("HasError() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestPrettyRoundTrip(t *testing.T) {
	push := &Inst{Op: token.Push, ValidArity: true, ValidTypes: true}
	push.SpaceBefore.Push(&token.Space{Text: token.Borrowed([]byte("  "))})
	push.PushWord(&token.Mnemonic{Text: token.Borrowed([]byte("push")), Opcode: token.Push})
	push.PushSpace(&token.Space{Text: token.Borrowed([]byte(" "))})
	push.PushWord(&token.Integer{Literal: token.Borrowed([]byte("42"))})
	push.PushSpace(&token.LineTerm{Style: token.Lf})

	empty := &Empty{}
	empty.Space.Push(&token.LineComment{Prefix: ";", Text: token.Borrowed([]byte(" done"))})
	empty.Space.Push(&token.Eof{})

	tree := &Program{
		Dialect: Burghard,
		Body:    &Block{Nodes: []Node{push, empty}},
	}
	var buf []byte
	tree.Pretty(&buf)
	if got, want := string(buf), "  push 42\n; done"; got != want {
		t.Errorf("Pretty() = %q, want %q", got, want)
	}
	if tree.HasError() {
		t.Error("HasError() = true for valid tree")
	}
}

func TestInstArgs(t *testing.T) {
	push := inst(token.Push, "push")
	if got := push.Arity(); got != 0 {
		t.Errorf("Arity() = %d, want 0", got)
	}
	push.PushWord(&token.Integer{Literal: token.Borrowed([]byte("42"))})
	if got := push.Arity(); got != 1 {
		t.Errorf("Arity() = %d, want 1", got)
	}
	if _, ok := push.Arg(0).(*token.Integer); !ok {
		t.Errorf("Arg(0) = %T, want *token.Integer", push.Arg(0))
	}

	// A label definition with an implied opcode has no mnemonic, so
	// its only word is argument 0.
	def := &Inst{Op: token.Label, ValidArity: true, ValidTypes: true}
	def.PushWord(&token.LabelToken{Sigil: "@", Name: token.Borrowed([]byte("main"))})
	if got := def.Arity(); got != 1 {
		t.Errorf("Arity() = %d, want 1", got)
	}
	if _, ok := def.Arg(0).(*token.LabelToken); !ok {
		t.Errorf("Arg(0) = %T, want *token.LabelToken", def.Arg(0))
	}
}

func TestResolve(t *testing.T) {
	add := []token.Opcode{token.Add, token.AddConstRhs}
	if op, ok := Resolve(add, 0); op != token.Add || !ok {
		t.Errorf("Resolve(add, 0) = %v, %t", op, ok)
	}
	if op, ok := Resolve(add, 1); op != token.AddConstRhs || !ok {
		t.Errorf("Resolve(add, 1) = %v, %t", op, ok)
	}
	if op, ok := Resolve(add, 2); op != token.Add || ok {
		t.Errorf("Resolve(add, 2) = %v, %t", op, ok)
	}
	if op, ok := Resolve(nil, 0); op != token.Invalid || ok {
		t.Errorf("Resolve(nil, 0) = %v, %t", op, ok)
	}
}

type instCounter struct {
	insts, empties int
}

func (c *instCounter) VisitInst(*Inst)   { c.insts++ }
func (c *instCounter) VisitEmpty(*Empty) { c.empties++ }

func TestWalk(t *testing.T) {
	block := &OptionBlock{
		Branches: []OptionBranch{{
			Option: inst(token.BurghardIfOption, "ifoption"),
			Nodes:  []Node{inst(token.Push, "push"), &Empty{}},
		}},
		End: inst(token.BurghardEndOption, "endoption"),
	}
	tree := &Program{Dialect: Burghard, Body: &Block{Nodes: []Node{block, &Empty{}}}}

	var c instCounter
	Walk(tree, &c)
	if c.insts != 3 || c.empties != 2 {
		t.Errorf("Walk counted %d insts, %d empties, want 3, 2", c.insts, c.empties)
	}
}
