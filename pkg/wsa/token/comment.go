package token

// LineCommentErrors is a bit set of line comment errors.
type LineCommentErrors uint8

const (
	// ErrMissingLf flags a line comment terminated by the end of the
	// source instead of a line feed.
	ErrMissingLf LineCommentErrors = 1 << iota
)

// LineComment is a comment running to the end of the line. The line
// terminator is not part of the comment.
type LineComment struct {
	// The prefix marker (e.g. `;`, `--`, or `#`).
	Prefix string
	// The comment text after the prefix.
	Text   Text
	Errors LineCommentErrors
}

func (t *LineComment) HasError() bool {
	return t.Errors != 0
}

func (t *LineComment) Pretty(buf *[]byte) {
	*buf = append(*buf, t.Prefix...)
	*buf = append(*buf, t.Text.Bytes()...)
}

// BlockCommentErrors is a bit set of block comment errors.
type BlockCommentErrors uint8

const (
	// ErrUnterminated flags a block comment not closed before the end
	// of the source.
	ErrUnterminated BlockCommentErrors = 1 << iota
	// ErrUnopened flags a close marker with no matching open marker.
	ErrUnopened
)

// BlockComment is a delimited comment (e.g. Burghard `{- -}`), possibly
// nested. The text of an unterminated comment has no close marker, and
// an unopened close marker has no open marker or text.
type BlockComment struct {
	// The open marker, or empty when unopened.
	Open string
	// The text between the markers, including any nested comments.
	Text Text
	// The close marker, or empty when unterminated.
	Close string
	// Whether this comment syntax nests.
	Nested bool
	Errors BlockCommentErrors
}

func (t *BlockComment) HasError() bool {
	return t.Errors != 0
}

func (t *BlockComment) Pretty(buf *[]byte) {
	*buf = append(*buf, t.Open...)
	*buf = append(*buf, t.Text.Bytes()...)
	*buf = append(*buf, t.Close...)
}
