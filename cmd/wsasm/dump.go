package main

import (
	"fmt"
	"io"

	"github.com/wspace/wsasm/pkg/wsa/syntax"
	"github.com/wspace/wsasm/pkg/wsa/token"
)

// dumpProgram writes an indented rendering of the tree, one line per
// node or token, marking erroneous entries.
func dumpProgram(w io.Writer, prog *syntax.Program) {
	d := &dumper{w: w}
	d.printf(0, "program dialect=%s%s", prog.Dialect, errMark(prog.HasError()))
	d.block(1, prog.Body)
}

type dumper struct {
	w io.Writer
}

func (d *dumper) printf(indent int, format string, args ...any) {
	for i := 0; i < indent; i++ {
		io.WriteString(d.w, "  ")
	}
	fmt.Fprintf(d.w, format+"\n", args...)
}

func errMark(hasError bool) string {
	if hasError {
		return " ERROR"
	}
	return ""
}

func (d *dumper) block(indent int, b *syntax.Block) {
	for _, n := range b.Nodes {
		d.node(indent, n)
	}
}

func (d *dumper) node(indent int, n syntax.Node) {
	switch n := n.(type) {
	case *syntax.Inst:
		arity, types := "", ""
		if !n.ValidArity {
			arity = " bad-arity"
		}
		if !n.ValidTypes {
			types = " bad-types"
		}
		d.printf(indent, "inst %s%s%s", n.Opcode(), arity, types)
		d.words(indent+1, &n.Words)
	case *syntax.Empty:
		d.printf(indent, "empty")
		d.spaces(indent+1, &n.Space)
	case *syntax.Block:
		d.printf(indent, "block")
		d.block(indent+1, n)
	case *syntax.OptionBlock:
		d.printf(indent, "options%s", errMark(n.HasError()))
		for i := range n.Branches {
			b := &n.Branches[i]
			d.printf(indent+1, "branch")
			d.node(indent+2, b.Option)
			for _, inner := range b.Nodes {
				d.node(indent+2, inner)
			}
		}
		if n.End != nil {
			d.node(indent+1, n.End)
		}
	default:
		d.printf(indent, "node %T%s", n, errMark(n.HasError()))
	}
}

func (d *dumper) words(indent int, w *syntax.Words) {
	d.spaces(indent, &w.SpaceBefore)
	for i := range w.Words {
		d.token(indent, w.Words[i].Word)
		d.spaces(indent, &w.Words[i].SpaceAfter)
	}
}

func (d *dumper) spaces(indent int, s *syntax.Spaces) {
	for _, tok := range s.Tokens {
		d.token(indent, tok)
	}
}

func (d *dumper) token(indent int, tok token.Token) {
	switch t := tok.(type) {
	case *token.Quoted:
		d.printf(indent, "quoted%s", errMark(t.Errors != 0))
		d.token(indent+1, t.Inner)
	case *token.Spliced:
		d.printf(indent, "spliced%s", errMark(tok.HasError()))
		for _, inner := range t.Tokens {
			d.token(indent+1, inner)
		}
	default:
		var text []byte
		tok.Pretty(&text)
		d.printf(indent, "%s %q%s", tokenKind(tok), text, errMark(tok.HasError()))
	}
}

func tokenKind(tok token.Token) string {
	switch tok.(type) {
	case *token.Mnemonic:
		return "mnemonic"
	case *token.Integer:
		return "integer"
	case *token.String:
		return "string"
	case *token.Char:
		return "char"
	case *token.Word:
		return "word"
	case *token.Variable:
		return "variable"
	case *token.LabelToken:
		return "label"
	case *token.LabelColon:
		return "colon"
	case *token.Space:
		return "space"
	case *token.LineTerm:
		return "lineterm"
	case *token.Eof:
		return "eof"
	case *token.ArgSep:
		return "argsep"
	case *token.InstSep:
		return "instsep"
	case *token.LineComment:
		return "linecomment"
	case *token.BlockComment:
		return "blockcomment"
	case *token.Error:
		return "error"
	default:
		return fmt.Sprintf("%T", tok)
	}
}
