// Package mnemonics resolves mnemonic text to opcodes with configurable
// Unicode case folding.
package mnemonics

// CaseFold selects how much case folding a mnemonic lookup applies.
// Whitespace assemblers disagree on case sensitivity, and Unicode-aware
// lowercasing additionally folds U+212A KELVIN SIGN to 'k' and U+0130
// LATIN CAPITAL LETTER I WITH DOT ABOVE to 'i'. Folds that change byte
// length get their own levels so dialects can opt in per mnemonic.
type CaseFold uint8

const (
	// FoldExact matches byte for byte.
	FoldExact CaseFold = iota
	// FoldAscii folds A-Z to a-z.
	FoldAscii
	// FoldAsciiK folds A-Z and U+212A to 'k'.
	FoldAsciiK
	// FoldAsciiIK folds A-Z, U+212A to 'k', and U+0130 to 'i'.
	FoldAsciiIK
)

// UTF-8 encodings of the two letters whose lowercase mapping is ASCII.
const (
	kelvinSign = "K" // 3 bytes
	dottedI    = "İ" // 2 bytes
)

// Fold returns the folded form of s. The result aliases s when folding
// changes nothing.
func (f CaseFold) Fold(s []byte) []byte {
	var folded []byte
	for i := 0; i < len(s); {
		b, size := f.foldAt(s, i)
		if folded == nil {
			if size == 1 && b == s[i] {
				i++
				continue
			}
			folded = append(folded, s[:i]...)
		}
		folded = append(folded, b)
		i += size
	}
	if folded == nil {
		return s
	}
	return folded
}

// foldAt folds the character starting at s[i] and reports how many
// bytes of s it consumed.
func (f CaseFold) foldAt(s []byte, i int) (b byte, size int) {
	b = s[i]
	if f >= FoldAscii && 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A'), 1
	}
	if f >= FoldAsciiK && hasPrefix(s[i:], kelvinSign) {
		return 'k', len(kelvinSign)
	}
	if f >= FoldAsciiIK && hasPrefix(s[i:], dottedI) {
		return 'i', len(dottedI)
	}
	return b, 1
}

// Equal reports whether a and b are the same mnemonic under the fold.
func (f CaseFold) Equal(a, b []byte) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ab, asize := f.foldAt(a, i)
		bb, bsize := f.foldAt(b, j)
		if ab != bb {
			return false
		}
		i += asize
		j += bsize
	}
	return i == len(a) && j == len(b)
}

func hasPrefix(s []byte, prefix string) bool {
	return len(s) >= len(prefix) && string(s[:len(prefix)]) == prefix
}
