package mnemonics

import (
	"math/bits"

	"github.com/wspace/wsasm/pkg/wsa/token"
)

// Trie is a prefix tree for lexing mnemonics. Unlike Map, a lookup
// succeeds when a registered mnemonic is a prefix of the query, which
// lets a lexer match the longest mnemonic at the cursor without
// retrying shorter slices. All keys share one fold level.
type Trie struct {
	fold    CaseFold
	root    trieNode
	entries []trieEntry
}

type trieEntry struct {
	key     string
	opcodes []token.Opcode
}

// A node is a branch unless leaf is set. Branch children are stored
// densely, indexed by the rank of the edge byte in the sparse set.
type trieNode struct {
	sparse byteSet
	dense  []trieNode

	leaf  bool
	tail  []byte
	entry int
}

// NewTrie returns an empty trie that folds all keys and queries with
// the given fold.
func NewTrie(fold CaseFold) *Trie {
	return &Trie{fold: fold}
}

// Insert registers a mnemonic that resolves to the given opcodes.
// It panics when the mnemonic conflicts with an earlier key.
func (t *Trie) Insert(key string, opcodes ...token.Opcode) {
	folded := t.fold.Fold([]byte(key))
	t.root.insert(folded, len(t.entries))
	t.entries = append(t.entries, trieEntry{key, opcodes})
}

// Get matches the longest registered mnemonic at the start of the
// query. It returns the mnemonic's opcodes and the number of query
// bytes it covers, or ok=false when no mnemonic is a prefix of the
// query.
func (t *Trie) Get(query []byte) (opcodes []token.Opcode, n int, ok bool) {
	node := &t.root
	i := 0
	for !node.leaf {
		if i >= len(query) {
			return nil, 0, false
		}
		b, size := t.fold.foldAt(query, i)
		if !node.sparse.contains(b) {
			return nil, 0, false
		}
		node = &node.dense[node.sparse.denseIndex(b)]
		i += size
	}
	for _, b := range node.tail {
		if i >= len(query) {
			return nil, 0, false
		}
		qb, size := t.fold.foldAt(query, i)
		if qb != b {
			return nil, 0, false
		}
		i += size
	}
	return t.entries[node.entry].opcodes, i, true
}

// Len returns the number of registered mnemonics.
func (t *Trie) Len() int {
	return len(t.entries)
}

func (n *trieNode) insert(key []byte, entry int) {
	if n.leaf {
		// Split the leaf into a branch and reinsert both keys,
		// keeping the earlier entry first.
		key1, entry1 := n.tail, n.entry
		*n = trieNode{}
		if entry1 < entry {
			n.insert(key1, entry1)
			n.insert(key, entry)
		} else {
			n.insert(key, entry)
			n.insert(key1, entry1)
		}
		return
	}
	if len(key) == 0 {
		panic("mnemonics: conflicting keys")
	}
	b, rest := key[0], key[1:]
	i := n.sparse.denseIndex(b)
	if n.sparse.contains(b) {
		n.dense[i].insert(rest, entry)
		return
	}
	n.sparse.insert(b)
	leaf := trieNode{leaf: true, tail: rest, entry: entry}
	n.dense = append(n.dense, trieNode{})
	copy(n.dense[i+1:], n.dense[i:])
	n.dense[i] = leaf
}

// byteSet is a set of bytes with one bit per byte.
type byteSet [4]uint64

func (s *byteSet) contains(b byte) bool {
	return s[b/64]&(1<<(b%64)) != 0
}

func (s *byteSet) insert(b byte) {
	s[b/64] |= 1 << (b % 64)
}

// denseIndex returns the number of set bits below b.
func (s *byteSet) denseIndex(b byte) int {
	n := 0
	for i := 0; i < int(b/64); i++ {
		n += bits.OnesCount64(s[i])
	}
	return n + bits.OnesCount64(s[b/64]&(1<<(b%64)-1))
}
