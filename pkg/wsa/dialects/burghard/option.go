package burghard

import (
	"github.com/wspace/wsasm/pkg/wsa/syntax"
	"github.com/wspace/wsasm/pkg/wsa/token"
)

// optionNester structures option instructions into blocks.
type optionNester struct {
	root  []syntax.Node
	stack []*syntax.OptionBlock
}

// nest drains the parser, grouping conditional option instructions into
// option blocks. Unpaired option instructions produce blocks that report
// errors instead of failing the parse.
func (n *optionNester) nest(p *parser) *syntax.Block {
	for node := p.next(); node != nil; node = p.next() {
		inst, ok := node.(*syntax.Inst)
		if !ok {
			n.push(node)
			continue
		}
		switch inst.Op {
		case token.BurghardIfOption:
			n.stack = append(n.stack, &syntax.OptionBlock{
				Branches: []syntax.OptionBranch{{Option: inst}},
			})
		case token.BurghardElseIfOption, token.BurghardElseOption:
			if len(n.stack) != 0 {
				top := n.stack[len(n.stack)-1]
				top.Branches = append(top.Branches, syntax.OptionBranch{Option: inst})
			} else {
				n.stack = append(n.stack, &syntax.OptionBlock{
					Branches: []syntax.OptionBranch{{Option: inst}},
				})
			}
		case token.BurghardEndOption:
			if len(n.stack) != 0 {
				block := n.stack[len(n.stack)-1]
				n.stack = n.stack[:len(n.stack)-1]
				block.End = inst
				n.push(block)
			} else {
				n.root = append(n.root, &syntax.OptionBlock{End: inst})
			}
		default:
			n.push(node)
		}
	}

	// Unclosed blocks nest into the last branch of the enclosing block.
	parent := &n.root
	for _, block := range n.stack {
		*parent = append(*parent, block)
		last := &block.Branches[len(block.Branches)-1]
		parent = &last.Nodes
	}
	n.stack = n.stack[:0]
	return &syntax.Block{Nodes: n.root}
}

// push appends a node to the innermost open branch, or to the root.
func (n *optionNester) push(node syntax.Node) {
	if len(n.stack) != 0 {
		top := n.stack[len(n.stack)-1]
		last := &top.Branches[len(top.Branches)-1]
		last.Nodes = append(last.Nodes, node)
	} else {
		n.root = append(n.root, node)
	}
}
