package mnemonics

import (
	"bytes"
	"testing"

	"github.com/wspace/wsasm/pkg/wsa/token"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		fold CaseFold
		s    string
		want string
	}{
		{"exact", FoldExact, "PuSh", "PuSh"},
		{"ascii", FoldAscii, "PuSh", "push"},
		{"ascii keeps kelvin", FoldAscii, "StacKK", "stackK"},
		{"kelvin", FoldAsciiK, "StacK", "stack"},
		{"kelvin keeps dotted i", FoldAsciiK, "İnc", "İnc"},
		{"dotted i and kelvin", FoldAsciiIK, "Debug_PrİntStacK", "debug_printstack"},
		{"unchanged aliases input", FoldAsciiIK, "push", "push"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fold.Fold([]byte(tt.s))
			if !bytes.Equal(got, []byte(tt.want)) {
				t.Errorf("Fold(%q) = %q, want %q", tt.s, got, tt.want)
			}
		})
	}
}

func TestFoldEqual(t *testing.T) {
	tests := []struct {
		name string
		fold CaseFold
		a, b string
		want bool
	}{
		{"exact equal", FoldExact, "push", "push", true},
		{"exact case differs", FoldExact, "push", "Push", false},
		{"ascii case", FoldAscii, "push", "PUSH", true},
		{"kelvin", FoldAsciiK, "stack", "stacK", true},
		{"dotted i", FoldAsciiIK, "include", "İnclude", true},
		{"dotted i below level", FoldAsciiK, "include", "İnclude", false},
		{"length differs", FoldAsciiIK, "push", "pushs", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fold.Equal([]byte(tt.a), []byte(tt.b)); got != tt.want {
				t.Errorf("Equal(%q, %q) = %t, want %t", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMap(t *testing.T) {
	m := NewMap()
	m.Insert("push", FoldAscii, token.Push)
	m.Insert("debug_printstack", FoldAsciiIK, token.BurghardPrintStack)
	m.Insert("jmp", FoldAscii, token.Jmp)
	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}

	tests := []struct {
		name     string
		mnemonic string
		want     []token.Opcode
	}{
		{"exact", "push", []token.Opcode{token.Push}},
		{"ascii folded", "PUSH", []token.Opcode{token.Push}},
		{"dotted i and kelvin", "Debug_PrİntStacK", []token.Opcode{token.BurghardPrintStack}},
		{"unregistered", "pop", nil},
		{"prefix does not match", "pus", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Get([]byte(tt.mnemonic))
			if len(got) != len(tt.want) {
				t.Fatalf("Get(%q) = %v, want %v", tt.mnemonic, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Get(%q) = %v, want %v", tt.mnemonic, got, tt.want)
				}
			}
		})
	}
}

func TestMapExactEntriesCoexist(t *testing.T) {
	m := NewMap()
	m.Insert("Push", FoldExact, token.Push)
	m.Insert("push", FoldExact, token.Drop)
	if got := m.Get([]byte("Push")); len(got) != 1 || got[0] != token.Push {
		t.Errorf("Get(Push) = %v, want [Push]", got)
	}
	if got := m.Get([]byte("push")); len(got) != 1 || got[0] != token.Drop {
		t.Errorf("Get(push) = %v, want [Drop]", got)
	}
	if got := m.Get([]byte("PUSH")); got != nil {
		t.Errorf("Get(PUSH) = %v, want nil", got)
	}
}

func TestMapConflict(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Insert did not panic on conflicting mnemonics")
		}
	}()
	m := NewMap()
	m.Insert("push", FoldAscii, token.Push)
	m.Insert("PUSH", FoldAscii, token.Drop)
}

func TestTrie(t *testing.T) {
	mnemonics := []string{
		"psh", "push", "dup", "copy", "take", "pull", "xchg", "swp", "swap",
		"drop", "dsc", "slide", "add", "sub", "mul", "div", "mod", "sto",
		"rcl", "call", "gosub", "jsr", "jmp", "jz", "bz", "jltz", "bltz",
		"ret", "end", "putc", "putn", "getc", "getn", "rep",
	}
	trie := NewTrie(FoldAscii)
	for i, mnemonic := range mnemonics {
		trie.Insert(mnemonic, token.Opcode(i+1))
	}
	if trie.Len() != len(mnemonics) {
		t.Fatalf("Len() = %d, want %d", trie.Len(), len(mnemonics))
	}
	for i, mnemonic := range mnemonics {
		opcodes, n, ok := trie.Get([]byte(mnemonic))
		if !ok || n != len(mnemonic) || opcodes[0] != token.Opcode(i+1) {
			t.Errorf("Get(%q) = %v, %d, %t", mnemonic, opcodes, n, ok)
		}
	}
}

func TestTriePrefixMatch(t *testing.T) {
	trie := NewTrie(FoldAscii)
	trie.Insert("push", token.Push)
	trie.Insert("dup", token.Dup)

	tests := []struct {
		name  string
		query string
		n     int
		ok    bool
	}{
		{"exact", "push", 4, true},
		{"folded", "PUSH", 4, true},
		{"mnemonic is prefix of query", "push2", 4, true},
		{"query is prefix of mnemonic", "pus", 0, false},
		{"diverges", "pop", 0, false},
		{"empty", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, n, ok := trie.Get([]byte(tt.query))
			if n != tt.n || ok != tt.ok {
				t.Errorf("Get(%q) = %d, %t, want %d, %t", tt.query, n, ok, tt.n, tt.ok)
			}
		})
	}
}

func TestTrieConflict(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Insert did not panic on conflicting keys")
		}
	}()
	trie := NewTrie(FoldAscii)
	trie.Insert("jmp", token.Jmp)
	trie.Insert("j", token.Jmp)
}
