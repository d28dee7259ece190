package censoredusername

import (
	"testing"

	"github.com/wspace/wsasm/pkg/wsa/syntax"
	"github.com/wspace/wsasm/pkg/wsa/token"
)

func roundTrip(t *testing.T, src string) *syntax.Program {
	t.Helper()
	tree := Parse([]byte(src))
	var buf []byte
	tree.Pretty(&buf)
	if string(buf) != src {
		t.Errorf("Pretty() = %q, want %q", buf, src)
	}
	return tree
}

func opsOf(t *testing.T, tree *syntax.Program) []token.Opcode {
	t.Helper()
	var ops []token.Opcode
	for _, node := range tree.Body.Nodes {
		if inst, ok := node.(*syntax.Inst); ok {
			ops = append(ops, inst.Op)
		}
	}
	return ops
}

func TestParse(t *testing.T) {
	src := "loop: dup\npnum\npush 10 ; newline\npchr\njmp loop\n"
	tree := roundTrip(t, src)

	want := []token.Opcode{token.Label, token.Dup, token.Printi, token.Push, token.Printc, token.Jmp}
	got := opsOf(t, tree)
	if len(got) != len(want) {
		t.Fatalf("got ops %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got ops %v, want %v", got, want)
		}
	}

	lbl := tree.Body.Nodes[0].(*syntax.Inst)
	if !lbl.ValidArity || !lbl.ValidTypes {
		t.Errorf("label def: arity %t, types %t, want valid", lbl.ValidArity, lbl.ValidTypes)
	}
	if name, ok := lbl.Word(0).(*token.LabelToken); !ok || string(name.Name.Bytes()) != "loop" {
		t.Errorf("label word = %#v, want label \"loop\"", lbl.Word(0))
	}
	if _, ok := lbl.Word(1).(*token.LabelColon); !ok {
		t.Errorf("colon word = %#v, want colon", lbl.Word(1))
	}
}

func TestParseLabelOnlyLine(t *testing.T) {
	tree := roundTrip(t, "a: b:\nexit\n")
	want := []token.Opcode{token.Label, token.Label, token.End}
	got := opsOf(t, tree)
	if len(got) != len(want) {
		t.Fatalf("got ops %v, want %v", got, want)
	}
}

func TestParseNegativeInteger(t *testing.T) {
	tree := roundTrip(t, "push -5\nslide 2\n")
	push := tree.Body.Nodes[0].(*syntax.Inst)
	if push.Op != token.Push || !push.ValidTypes {
		t.Errorf("push -5: op %v types %t, want valid push", push.Op, push.ValidTypes)
	}
	// A lone minus lexes as an erroneous integer.
	tree = roundTrip(t, "push -\n")
	push = tree.Body.Nodes[0].(*syntax.Inst)
	if push.ValidTypes {
		t.Error("push -: want invalid types")
	}
}

func TestParseStrayComma(t *testing.T) {
	tree := roundTrip(t, ", push 1\n")
	inst := tree.Body.Nodes[0].(*syntax.Inst)
	if !inst.SpaceBefore.HasError() {
		t.Error("leading comma: want flagged separator")
	}
}

func TestLexUnrecognized(t *testing.T) {
	tree := roundTrip(t, "?! push 1\n")
	inst := tree.Body.Nodes[0].(*syntax.Inst)
	if e, ok := inst.Word(0).(*token.Error); !ok || e.Kind != token.UnrecognizedChar {
		t.Errorf("word 0 = %#v, want unrecognized error token", inst.Word(0))
	}
	if inst.Op != token.Invalid || inst.ValidTypes {
		t.Errorf("got op %v types %t, want invalid", inst.Op, inst.ValidTypes)
	}
}

func TestRoundTrip(t *testing.T) {
	sources := []string{
		"",
		"\n",
		"; comment\n",
		"start:\n\tpush 1\n\tpnum\n\tjmp start\n",
		"a:b:c: exit",
		"123: jmp 123\n",
		"push 1, 2\n",
		"get set\n",
		": exit\n",
	}
	for _, src := range sources {
		roundTrip(t, src)
	}
}
