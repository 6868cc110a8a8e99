package grammar

import (
	"flag"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var update = flag.Bool("update", false, "update golden files")

func leaf(kind Kind, value string) *Node {
	return NewLeaf(kind, value)
}

func line(children ...*Node) *Node {
	return &Node{Kind: KindLine, Children: children}
}

func x(left, op, right *Node) *Node {
	return NewExpression(left, op, right)
}

func num(s string) *Node { return leaf(KindNumber, s) }
func sym(s string) *Node { return leaf(KindSymbol, s) }

func TestClassify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lpi.grammar")
	defer teardown()
	//
	for i, c := range []struct {
		token string
		first bool
		kind  Kind
	}{
		{`"HELLO"`, false, KindString},
		{`"10"`, true, KindString},
		{"10", true, KindLineNumber},
		{"10", false, KindNumber},
		{"3.14", true, KindFloat},
		{"1.5E-10", false, KindFloat},
		{"2E3", false, KindNumber},
		{"PRINT", false, KindStatementName},
		{"LET", true, KindStatementName},
		{"print", false, KindIdentifier},
		{"A$", false, KindIdentifier},
		{"X1", false, KindNumber},
		{"=", false, KindSymbol},
		{`"`, false, KindString},
	} {
		if n := classify(c.token, c.first); n.Kind != c.kind || n.Value != c.token {
			t.Errorf("test %d: expected %q to be classified as %s, is %s", i, c.token, c.kind, n.Kind)
		}
	}
}

func TestParseLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lpi.grammar")
	defer teardown()
	//
	tokens := []string{"10", "PRINT", "3", "+", "4", "\n", "20", "PRINT", "5", "*", "6"}
	expected := &Node{Kind: KindProgram, Children: []*Node{
		line(leaf(KindLineNumber, "10"), leaf(KindStatementName, "PRINT"), x(num("3"), sym("+"), num("4"))),
		line(leaf(KindLineNumber, "20"), leaf(KindStatementName, "PRINT"), x(num("5"), sym("*"), num("6"))),
	}}
	if program := Parse(tokens); !program.Equal(expected) {
		t.Errorf("expected\n%sgot\n%s", expected, program)
	}
}

func TestParseEmptyLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lpi.grammar")
	defer teardown()
	//
	program := Parse([]string{"\n", "10", "PRINT", "\n"})
	if len(program.Children) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(program.Children))
	}
	if len(program.Children[0].Children) != 0 {
		t.Errorf("expected first line to be empty")
	}
	if program.Children[1].Children[0].Kind != KindLineNumber {
		t.Errorf("expected line number, got %s", program.Children[1].Children[0].Kind)
	}
	if len(Parse(nil).Children) != 0 {
		t.Errorf("expected empty program for empty input")
	}
}

func TestImplicitLet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lpi.grammar")
	defer teardown()
	//
	const (
		LN = KindLineNumber
		SN = KindStatementName
		ID = KindIdentifier
		SY = KindSymbol
		NU = KindNumber
		EX = KindExpression
	)
	for i, c := range []struct {
		input string
		kinds []Kind
	}{
		{"10 A = 1", []Kind{LN, SN, ID, SY, NU}},
		{"10 AL(3) = 1", []Kind{LN, SN, ID, EX, SY, NU}},
		{"10 LET A = 1", []Kind{LN, SN, ID, SY, NU}},
		{"A = 1", []Kind{ID, SY, NU}},
		{"10 PRINT A", []Kind{LN, SN, ID}},
		{"10", []Kind{LN}},
	} {
		l := ParseString(c.input).Children[0]
		if len(l.Children) != len(c.kinds) {
			t.Errorf("test %d: expected %d nodes for %q, got\n%s", i, len(c.kinds), c.input, l)
			continue
		}
		for j, ch := range l.Children {
			if ch.Kind != c.kinds[j] {
				t.Errorf("test %d: expected node #%d of %q to be %s, is %s", i, j, c.input, c.kinds[j], ch.Kind)
			}
		}
		if c.kinds[0] == LN && len(c.kinds) > 1 && c.kinds[1] == SN && l.Children[1].Value != "LET" &&
			l.Children[1].Value != "PRINT" {
			t.Errorf("test %d: unexpected statement %q", i, l.Children[1].Value)
		}
	}
}

func TestParseExpression(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lpi.grammar")
	defer teardown()
	//
	n, ok := ParseExpression("1+2")
	if !ok {
		t.Fatalf("expected 1+2 to fold into a single node, got\n%s", n)
	}
	if !n.Equal(x(num("1"), sym("+"), num("2"))) {
		t.Errorf("unexpected tree\n%s", n)
	}
	if _, ok = ParseExpression("1 + * 2"); ok {
		t.Errorf("expected malformed expression not to fold")
	}
	if _, ok = ParseExpression("1\n+2"); ok {
		t.Errorf("expected newline to be rejected")
	}
}

func TestGolden(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lpi.grammar")
	defer teardown()
	//
	for _, c := range []struct {
		name  string
		input string
	}{
		{"print", "10 PRINT \"HELLO, WORLD!\"\n20 PRINT 3.14"},
		{"parens", "10 PRINT (3+4)*5"},
		{"let", "10 A = 3 + 4\n20 AL(0) = 10\n"},
	} {
		dump := ParseString(c.input).String()
		golden := filepath.Join("testdata", c.name+".golden")
		if *update {
			if err := ioutil.WriteFile(golden, []byte(dump), 0644); err != nil {
				t.Fatal(err)
			}
		}
		expected, err := ioutil.ReadFile(golden)
		if err != nil {
			t.Fatal(err)
		}
		if dump != string(expected) {
			t.Errorf("%s: tree differs from golden file\n%s", c.name, dump)
		}
	}
}
