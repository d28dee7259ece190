package token

// LabelErrors is a bit set of label errors.
type LabelErrors uint8

const (
	// ErrLabelEmpty flags a label with no text after its sigil.
	ErrLabelEmpty LabelErrors = 1 << iota
	// ErrLabelStartsWithDigit flags a label starting with a digit
	// where the dialect forbids it.
	ErrLabelStartsWithDigit
)

// LabelToken is a label definition or reference.
type LabelToken struct {
	// The prefix sigil (e.g. Palaiologos `@` or `%`), or empty.
	Sigil string
	// The label with its sigil removed.
	Name   Text
	Errors LabelErrors
}

func (t *LabelToken) HasError() bool {
	return t.Errors != 0
}

func (t *LabelToken) Pretty(buf *[]byte) {
	*buf = append(*buf, t.Sigil...)
	*buf = append(*buf, t.Name.Bytes()...)
}

// LabelColon is a `:` marker suffixing a label definition.
type LabelColon struct{}

func (t *LabelColon) HasError() bool {
	return false
}

func (t *LabelColon) Pretty(buf *[]byte) {
	*buf = append(*buf, ':')
}
