package wsf

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

func TestParse(t *testing.T) {
	src := "main:\n\tpush 0x10 # sixteen\n\tpnum\n\tjmp main\n"
	tree := roundTrip(t, src)

	want := []token.Opcode{token.Label, token.Push, token.Printi, token.Jmp}
	if len(tree.Body.Nodes) != len(want) {
		t.Fatalf("got %d nodes, want %d", len(tree.Body.Nodes), len(want))
	}
	for i, op := range want {
		inst := tree.Body.Nodes[i].(*syntax.Inst)
		if inst.Op != op || !inst.ValidArity || !inst.ValidTypes {
			t.Errorf("node %d = %v (arity %t, types %t), want valid %v",
				i, inst.Op, inst.ValidArity, inst.ValidTypes, op)
		}
	}
}

func TestParseIntegerBases(t *testing.T) {
	tests := []struct {
		src        string
		validTypes bool
	}{
		{"push 42\n", true},
		{"push -42\n", true},
		{"push 0b101\n", true},
		{"push 0x1F\n", true},
		{"push 0o7\n", false},
		{"push +42\n", false},
		{"push 12px\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tree := roundTrip(t, tt.src)
			inst := tree.Body.Nodes[0].(*syntax.Inst)
			if inst.ValidTypes != tt.validTypes {
				t.Errorf("got types %t, want %t", inst.ValidTypes, tt.validTypes)
			}
		})
	}
}

func TestParseWordChars(t *testing.T) {
	// Words may contain dashes and dots.
	tree := roundTrip(t, ".x-y: call .x-y\n")
	lbl := tree.Body.Nodes[0].(*syntax.Inst)
	if name, ok := lbl.Word(0).(*token.LabelToken); !ok || string(name.Name.Bytes()) != ".x-y" {
		t.Errorf("label word = %#v, want label \".x-y\"", lbl.Word(0))
	}
	call := tree.Body.Nodes[1].(*syntax.Inst)
	if call.Op != token.Call || !call.ValidTypes {
		t.Errorf("call = %v types %t, want valid call", call.Op, call.ValidTypes)
	}
}

func TestRoundTrip(t *testing.T) {
	sources := []string{
		"",
		"\n",
		"# comment\n",
		"a: b: push 1",
		"push -0b1\n",
		"?? push 1\n",
		"exit # done\r\n",
		"slide\v2\n",
	}
	for _, src := range sources {
		roundTrip(t, src)
	}
}
