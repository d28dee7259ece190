package syntax

import "github.com/wspace/wsasm/pkg/wsa/token"

// WordSpace is a word token followed by the spaces after it.
type WordSpace struct {
	Word       token.Token
	SpaceAfter Spaces
}

// Words is a sequence of words, separated and surrounded by optional
// spaces.
type Words struct {
	// The spaces preceding the first word.
	SpaceBefore Spaces
	Words       []WordSpace
}

// Len returns the number of words in the sequence.
func (w *Words) Len() int {
	return len(w.Words)
}

// Word returns the word at the given index.
func (w *Words) Word(i int) token.Token {
	return w.Words[i].Word
}

// SetWord replaces the word at the given index.
func (w *Words) SetWord(i int, tok token.Token) {
	w.Words[i].Word = tok
}

// First returns the first word, or nil when empty.
func (w *Words) First() token.Token {
	if len(w.Words) == 0 {
		return nil
	}
	return w.Words[0].Word
}

// Last returns the last word, or nil when empty.
func (w *Words) Last() token.Token {
	if len(w.Words) == 0 {
		return nil
	}
	return w.Words[len(w.Words)-1].Word
}

// TrailingSpaces returns the spaces after the last word, or the leading
// spaces when there are no words.
func (w *Words) TrailingSpaces() *Spaces {
	if len(w.Words) == 0 {
		return &w.SpaceBefore
	}
	return &w.Words[len(w.Words)-1].SpaceAfter
}

// PushWord appends a word with no spaces after it.
func (w *Words) PushWord(tok token.Token) {
	w.Words = append(w.Words, WordSpace{Word: tok})
}

// PushSpace appends a space token after the last word.
func (w *Words) PushSpace(tok token.Token) {
	w.TrailingSpaces().Push(tok)
}

// PushToken appends a token as a word or a space according to its kind.
func (w *Words) PushToken(tok token.Token) {
	switch tok.(type) {
	case *token.Space, *token.LineTerm, *token.Eof, *token.InstSep,
		*token.ArgSep, *token.LineComment, *token.BlockComment:
		w.PushSpace(tok)
	default:
		w.PushWord(tok)
	}
}

// HasError reports whether any word or space has an error.
func (w *Words) HasError() bool {
	if w.SpaceBefore.HasError() {
		return true
	}
	for i := range w.Words {
		if w.Words[i].Word.HasError() || w.Words[i].SpaceAfter.HasError() {
			return true
		}
	}
	return false
}

// Pretty appends the source text of the sequence to buf.
func (w *Words) Pretty(buf *[]byte) {
	w.SpaceBefore.Pretty(buf)
	for i := range w.Words {
		w.Words[i].Word.Pretty(buf)
		w.Words[i].SpaceAfter.Pretty(buf)
	}
}
