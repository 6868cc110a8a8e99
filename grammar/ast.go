package grammar

import (
	"fmt"
	"strings"
)

// Kind is the type tag of a parse tree node.
type Kind int8

//go:generate stringer -type Kind -trimprefix Kind
const (
	KindProgram Kind = iota
	KindLine
	KindLineNumber
	KindStatementName
	KindString
	KindNumber
	KindFloat
	KindIdentifier
	KindSymbol
	KindExpression
)

// Node is an element of a parse tree. A node owns its children; nodes are
// never shared between trees.
//
// Program, Line and Expression nodes are structural and have an empty value.
// All other kinds are leaves carrying the token text as their value.
type Node struct {
	Kind     Kind
	Value    string
	Children []*Node
}

// NewLeaf creates a childless node.
func NewLeaf(kind Kind, value string) *Node {
	return &Node{Kind: kind, Value: value}
}

// NewExpression creates an Expression node taking ownership of three nodes.
func NewExpression(left, op, right *Node) *Node {
	return &Node{
		Kind:     KindExpression,
		Children: []*Node{left, op, right},
	}
}

// IsLeaf is true for all kinds which never carry children.
func (n *Node) IsLeaf() bool {
	switch n.Kind {
	case KindProgram, KindLine, KindExpression:
		return false
	case KindLineNumber, KindStatementName, KindString, KindNumber, KindFloat,
		KindIdentifier, KindSymbol:
		return true
	default:
		panic(fmt.Sprintf("unknown node kind %d", n.Kind))
	}
}

// IsValue is true for nodes which may act as an operand of an operator.
func (n *Node) IsValue() bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case KindNumber, KindFloat, KindIdentifier, KindExpression:
		return true
	case KindProgram, KindLine, KindLineNumber, KindStatementName, KindString,
		KindSymbol:
		return false
	default:
		panic(fmt.Sprintf("unknown node kind %d", n.Kind))
	}
}

// IsSymbol checks if n is a Symbol node with the given text.
func (n *Node) IsSymbol(text string) bool {
	return n != nil && n.Kind == KindSymbol && n.Value == text
}

// IsParenthesized is true for Expression nodes of the form ( X ).
func (n *Node) IsParenthesized() bool {
	return n != nil && n.Kind == KindExpression && len(n.Children) == 3 &&
		n.Children[0].IsSymbol("(") && n.Children[2].IsSymbol(")")
}

// Equal compares two trees structurally.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind || n.Value != other.Value || len(n.Children) != len(other.Children) {
		return false
	}
	for i, ch := range n.Children {
		if !ch.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// String returns the debug dump of a tree: one line per node in pre-order,
// indented by two spaces per level of depth.
//
//    Line ''
//      LineNumber '10'
//      StatementName 'LET'
//      …
//
func (n *Node) String() string {
	var b strings.Builder
	n.dump(&b, 0)
	return b.String()
}

func (n *Node) dump(b *strings.Builder, depth int) {
	if n == nil {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(b, "%s '%s'\n", n.Kind, n.Value)
	for _, ch := range n.Children {
		ch.dump(b, depth+1)
	}
}

// Text reassembles the source text of a tree from its leaves, separating
// tokens by a single space. Program and Line nodes are separated by newlines.
func (n *Node) Text() string {
	var b strings.Builder
	n.text(&b)
	return strings.TrimRight(b.String(), " \n")
}

func (n *Node) text(b *strings.Builder) {
	switch n.Kind {
	case KindProgram:
		for _, line := range n.Children {
			b.WriteString(line.Text())
			b.WriteByte('\n')
		}
	case KindLine, KindExpression:
		for _, ch := range n.Children {
			ch.text(b)
		}
	case KindLineNumber, KindStatementName, KindString, KindNumber, KindFloat,
		KindIdentifier, KindSymbol:
		b.WriteString(n.Value)
		b.WriteByte(' ')
	default:
		panic(fmt.Sprintf("unknown node kind %d", n.Kind))
	}
}
