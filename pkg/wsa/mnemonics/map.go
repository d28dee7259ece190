package mnemonics

import (
	"fmt"

	"github.com/wspace/wsasm/pkg/wsa/token"
)

// Map resolves mnemonics to opcodes. Each entry carries its own fold
// level, so a dialect can mix case-sensitive and case-insensitive
// mnemonics in one table. Entries are bucketed under the most
// permissive folding and verified with their own fold on lookup.
type Map struct {
	buckets map[string][]mapEntry
	len     int
}

type mapEntry struct {
	key     string
	fold    CaseFold
	opcodes []token.Opcode
}

// NewMap returns an empty mnemonic map.
func NewMap() *Map {
	return &Map{buckets: make(map[string][]mapEntry)}
}

// Insert registers a mnemonic that resolves to the given opcodes.
// It panics when an equivalent mnemonic was already registered.
func (m *Map) Insert(key string, fold CaseFold, opcodes ...token.Opcode) {
	bucket := string(FoldAsciiIK.Fold([]byte(key)))
	for _, e := range m.buckets[bucket] {
		f := max(fold, e.fold)
		if f.Equal([]byte(e.key), []byte(key)) {
			panic(fmt.Sprintf("mnemonics: conflicting mnemonics %q and %q", e.key, key))
		}
	}
	m.buckets[bucket] = append(m.buckets[bucket], mapEntry{key, fold, opcodes})
	m.len++
}

// Get returns the opcodes for a mnemonic, or nil when it is not
// registered.
func (m *Map) Get(mnemonic []byte) []token.Opcode {
	bucket := string(FoldAsciiIK.Fold(mnemonic))
	for _, e := range m.buckets[bucket] {
		if e.fold.Equal([]byte(e.key), mnemonic) {
			return e.opcodes
		}
	}
	return nil
}

// Len returns the number of registered mnemonics.
func (m *Map) Len() int {
	return m.len
}
