package syntax

// Visitor is called for the nodes of a tree during Walk.
type Visitor interface {
	// VisitInst is called for every instruction, including the option
	// and end instructions of option blocks.
	VisitInst(inst *Inst)
	// VisitEmpty is called for every line without an instruction.
	VisitEmpty(empty *Empty)
}

// Walk traverses the tree depth-first in source order and calls the
// visitor for every instruction and empty line.
func Walk(node Node, v Visitor) {
	switch n := node.(type) {
	case *Inst:
		v.VisitInst(n)
	case *Empty:
		v.VisitEmpty(n)
	case *Block:
		for _, node := range n.Nodes {
			Walk(node, v)
		}
	case *OptionBlock:
		for i := range n.Branches {
			v.VisitInst(n.Branches[i].Option)
			for _, node := range n.Branches[i].Nodes {
				Walk(node, v)
			}
		}
		if n.End != nil {
			v.VisitInst(n.End)
		}
	case *Program:
		Walk(n.Body, v)
	}
}
