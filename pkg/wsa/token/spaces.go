package token

// Space is a run of horizontal whitespace.
type Space struct {
	Text Text
}

func (t *Space) HasError() bool {
	return false
}

func (t *Space) Pretty(buf *[]byte) {
	*buf = append(*buf, t.Text.Bytes()...)
}

// LineTermStyle is the style of a line terminator.
type LineTermStyle uint8

const (
	Lf LineTermStyle = iota
	Crlf
	Cr
)

// String returns the terminator text.
func (s LineTermStyle) String() string {
	switch s {
	case Crlf:
		return "\r\n"
	case Cr:
		return "\r"
	default:
		return "\n"
	}
}

// LineTerm is a line terminator.
type LineTerm struct {
	Style LineTermStyle
}

func (t *LineTerm) HasError() bool {
	return false
}

func (t *LineTerm) Pretty(buf *[]byte) {
	*buf = append(*buf, t.Style.String()...)
}

// Eof marks the end of the source. It has no text.
type Eof struct{}

func (t *Eof) HasError() bool {
	return false
}

func (t *Eof) Pretty(buf *[]byte) {}

// ArgSepErrors is a bit set of argument separator errors.
type ArgSepErrors uint8

const (
	// ErrNotBetweenArguments flags a separator that does not sit
	// between two arguments.
	ErrNotBetweenArguments ArgSepErrors = 1 << iota
)

// ArgSep is an argument separator (Palaiologos `,`).
type ArgSep struct {
	Errors ArgSepErrors
}

func (t *ArgSep) HasError() bool {
	return t.Errors != 0
}

func (t *ArgSep) Pretty(buf *[]byte) {
	*buf = append(*buf, ',')
}

// InstSep is an instruction separator (Palaiologos `/`).
type InstSep struct{}

func (t *InstSep) HasError() bool {
	return false
}

func (t *InstSep) Pretty(buf *[]byte) {
	*buf = append(*buf, '/')
}
