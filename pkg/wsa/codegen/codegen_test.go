package codegen

import (
	"math/big"
	"testing"

	"github.com/wspace/wsasm/pkg/wsa/dialects/burghard"
	"github.com/wspace/wsasm/pkg/wsa/dialects/palaiologos"
	"github.com/wspace/wsasm/pkg/wsa/dialects/voliva"
	"github.com/wspace/wsasm/pkg/wsa/dialects/wconrad"
	"github.com/wspace/wsasm/pkg/wsa/integer"
	"github.com/wspace/wsasm/pkg/wsa/syntax"
	"github.com/wspace/wsasm/pkg/wsa/token"
)

func generate(t *testing.T, tree *syntax.Program, options ...string) string {
	t.Helper()
	var w ByteWriter
	if err := Generate(tree, &w, options); err != nil {
		t.Fatalf("Generate() = %v", err)
	}
	return w.String()
}

func TestEncodeIntegers(t *testing.T) {
	tests := []struct {
		name string
		bits Bits
		want string
	}{
		{"42", Bits{Value: big.NewInt(42)}, " \t \t \t \n"},
		{"-3", Bits{Value: big.NewInt(-3), Sign: integer.SignNeg}, "\t\t\t\n"},
		{"zero", Bits{Value: new(big.Int)}, " \n"},
		{"negative zero", Bits{Value: new(big.Int), Sign: integer.SignNeg}, "\t\n"},
		{"leading zeros", Bits{Value: big.NewInt(1), LeadingZeros: 2}, "   \t\n"},
		{"2^64", Bits{Value: new(big.Int).Lsh(big.NewInt(1), 64)}, " \t" + str64zeros() + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w ByteWriter
			inst := Inst{Op: token.Push, Arg: &tt.bits}
			if err := inst.Encode(&w); err != nil {
				t.Fatalf("Encode() = %v", err)
			}
			if got := w.String(); got != "  "+tt.want {
				t.Errorf("push = %q, want %q", got, "  "+tt.want)
			}
		})
	}
}

func str64zeros() string {
	b := make([]byte, 64)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func TestGenerateWConrad(t *testing.T) {
	tree := wconrad.Parse([]byte("push 1\nlabel 0\noutnum\njump 0\n"))
	got := generate(t, tree)
	want := "   \t\n" + "\n  \n" + "\t\n \t" + "\n \n\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGenerateOptions(t *testing.T) {
	src := "ifoption a\npush 1\nelseoption\npush 2\nendoption\n"
	tree := burghard.Parse([]byte(src))
	if got, want := generate(t, tree, "a"), "   \t\n"; got != want {
		t.Errorf("with a: got %q, want %q", got, want)
	}
	if got, want := generate(t, tree), "   \t \n"; got != want {
		t.Errorf("without a: got %q, want %q", got, want)
	}
}

func TestGenerateOptionDirective(t *testing.T) {
	src := "option a\nifoption a\npush 1\nendoption\n"
	tree := burghard.Parse([]byte(src))
	if got, want := generate(t, tree), "   \t\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGenerateRep(t *testing.T) {
	tree := palaiologos.Parse([]byte("rep add 3\n"))
	if got, want := generate(t, tree), "\t   \t   \t   "; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGenerateVolivaExtensions(t *testing.T) {
	tree := voliva.Parse([]byte("or\nand\nnot\ndbg\n"))
	if got, want := generate(t, tree), "\t \n "+"\t \n\t"+"\t \n\n"+"\n\n "; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGenerateConstOverloads(t *testing.T) {
	// add 5 lowers to push 5 / add.
	tree := voliva.Parse([]byte("add 5\n"))
	if got, want := generate(t, tree), "   \t \t\n"+"\t   "; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGenerateNonZeroJump(t *testing.T) {
	// jumpnp lowers to jz around an unconditional jump.
	tree := voliva.Parse([]byte("label x\njumpnp x\n"))
	got := generate(t, tree)
	// label x = 0, synthesized skip label = 1
	want := "\n  \n" + "\n\t \t\n" + "\n \n\n" + "\n  \t\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGenerateErrors(t *testing.T) {
	if err := Generate(wconrad.Parse([]byte("frobnicate\n")), &ByteWriter{}, nil); err != ErrHasErrors {
		t.Errorf("unknown mnemonic: got %v, want ErrHasErrors", err)
	}
	err := Generate(burghard.Parse([]byte("include lib\n")), &ByteWriter{}, nil)
	if _, ok := err.(*UnsupportedError); !ok {
		t.Errorf("include: got %v, want UnsupportedError", err)
	}
	err = Generate(burghard.Parse([]byte("push _x\n")), &ByteWriter{}, nil)
	if _, ok := err.(*OperandError); !ok {
		t.Errorf("variable operand: got %v, want OperandError", err)
	}
}
