package grammar

// --- Folding ---------------------------------------------------------------

/*
Fold rewrites the children of n in place until they reach a fixpoint.

A round consists of four passes, each of them repeated until it no longer
changes anything:

    (1) ⟨value⟩ * ⟨value⟩  and  ⟨value⟩ / ⟨value⟩
    (2) ⟨value⟩ + ⟨value⟩  and  ⟨value⟩ - ⟨value⟩
    (3) ⟨value⟩ ^ ⟨value⟩
    (4) ( ⟨value⟩ )

where ⟨value⟩ is a Number, Float, Identifier or Expression node. Every match
is replaced by an Expression node owning the three matched nodes, and the
scan restarts at the beginning of the (shorter) list. Rounds are repeated
as long as one of the passes of the previous round folded something.

Fold reports whether the children of n have been changed. As every fold
removes two nodes from the list, Fold terminates.
*/
func (n *Node) Fold() bool {
	changed := false
	for {
		round := false
		for _, pass := range passes {
			for pass(n) {
				round = true
			}
		}
		if !round {
			break
		}
		changed = true
	}
	return changed
}

var passes = [...]func(*Node) bool{
	func(n *Node) bool { return n.foldOperator("*", "/") },
	func(n *Node) bool { return n.foldOperator("+", "-") },
	func(n *Node) bool { return n.foldOperator("^") },
	func(n *Node) bool { return n.foldParens() },
}

// foldOperator folds the leftmost window ⟨value⟩ op ⟨value⟩ for any of ops.
func (n *Node) foldOperator(ops ...string) bool {
	for i := 1; i+1 < len(n.Children); i++ {
		op := n.Children[i]
		if op.Kind != KindSymbol || !contains(ops, op.Value) {
			continue
		}
		if n.Children[i-1].IsValue() && n.Children[i+1].IsValue() {
			n.splice(i - 1)
			return true
		}
	}
	return false
}

// foldParens folds the leftmost window ( ⟨value⟩ ).
func (n *Node) foldParens() bool {
	for i := 1; i+1 < len(n.Children); i++ {
		if n.Children[i-1].IsSymbol("(") && n.Children[i].IsValue() && n.Children[i+1].IsSymbol(")") {
			n.splice(i - 1)
			return true
		}
	}
	return false
}

// splice replaces children[at:at+3] with a new Expression node.
func (n *Node) splice(at int) {
	ch := n.Children
	x := NewExpression(ch[at], ch[at+1], ch[at+2])
	tracer().Debugf("fold %s %s %s", ch[at].Value, ch[at+1].Value, ch[at+2].Value)
	ch[at] = x
	copy(ch[at+1:], ch[at+3:])
	for i := len(ch) - 2; i < len(ch); i++ {
		ch[i] = nil
	}
	n.Children = ch[:len(ch)-2]
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
