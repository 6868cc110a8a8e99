package grammar

import (
	"strings"
	"unicode"
)

// Statement keywords. Matching is case-sensitive.
var keywords = map[string]bool{
	"PRINT": true,
	"LET":   true,
}

// Parse classifies tokens, groups them into lines and folds every line.
// It returns a Program node whose children are Line nodes in source order.
// Parse does not fail; malformed lines remain (partially) unfolded.
func Parse(tokens []string) *Node {
	program := &Node{Kind: KindProgram}
	line := &Node{Kind: KindLine}
	for _, tok := range tokens {
		if tok == Newline {
			program.Children = append(program.Children, finishLine(line))
			line = &Node{Kind: KindLine}
			continue
		}
		line.Children = append(line.Children, classify(tok, len(line.Children) == 0))
	}
	if len(line.Children) > 0 {
		program.Children = append(program.Children, finishLine(line))
	}
	tracer().Debugf("parsed program of %d lines", len(program.Children))
	return program
}

// ParseString is a shortcut for Parse(Lex(input)).
func ParseString(input string) *Node {
	return Parse(Lex(input))
}

// ParseExpression parses a stand-alone expression, i.e. input without line
// number or statement. Newlines are not allowed. If the folded tokens do not
// reduce to a single node, ParseExpression returns the partially folded
// Line node and false.
func ParseExpression(input string) (*Node, bool) {
	line := &Node{Kind: KindLine}
	for _, tok := range Lex(input) {
		if tok == Newline {
			return line, false
		}
		line.Children = append(line.Children, classify(tok, false))
	}
	line.Fold()
	if len(line.Children) != 1 {
		return line, false
	}
	return line.Children[0], true
}

func classify(tok string, first bool) *Node {
	switch {
	case strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`):
		return NewLeaf(KindString, tok)
	case first && allDigits(tok):
		return NewLeaf(KindLineNumber, tok)
	case strings.IndexFunc(tok, unicode.IsDigit) >= 0:
		if strings.ContainsRune(tok, '.') {
			return NewLeaf(KindFloat, tok)
		}
		return NewLeaf(KindNumber, tok)
	case strings.IndexFunc(tok, unicode.IsLetter) >= 0:
		if keywords[tok] {
			return NewLeaf(KindStatementName, tok)
		}
		return NewLeaf(KindIdentifier, tok)
	}
	return NewLeaf(KindSymbol, tok)
}

// finishLine folds a line and inserts an implicit LET for lines of the form
// `10 A = …`.
func finishLine(line *Node) *Node {
	line.Fold()
	ch := line.Children
	if len(ch) >= 2 && ch[0].Kind == KindLineNumber && ch[1].Kind == KindIdentifier {
		tracer().Debugf("inserting implicit LET in line %s", ch[0].Value)
		let := NewLeaf(KindStatementName, "LET")
		line.Children = append(ch[:1], append([]*Node{let}, ch[1:]...)...)
	}
	return line
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
