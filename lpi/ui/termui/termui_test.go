package termui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDefaultFormatter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lpi.cli")
	defer teardown()
	//
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"variable", "value"})
	tw.AppendRow(table.Row{"A", 3})
	for i, c := range []struct {
		item     interface{}
		contains string
	}{
		{"hello", "▶ hello\n"},
		{errors.New("no program"), "✗ no program\n"},
		{map[string]interface{}{"A": 1}, "A: 1"},
		{tw, "VARIABLE"},
		{nil, "(nothing)"},
		{42, "object of type int"},
	} {
		var b bytes.Buffer
		ok, err := DefaultFormatter{}.Format(c.item, &b)
		if !ok || err != nil {
			t.Errorf("test %d: format failed: %v", i, err)
		}
		if !strings.Contains(b.String(), c.contains) {
			t.Errorf("test %d: expected output to contain %q, is %q", i, c.contains, b.String())
		}
	}
}

func TestCompleterHasInterpreterCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lpi.cli")
	defer teardown()
	//
	pc := replCompleter([]string{"run", "list"})
	var names []string
	for _, child := range pc.GetChildren() {
		names = append(names, strings.TrimSpace(string(child.GetName())))
	}
	expected := "help bye mode setprompt run list"
	if strings.Join(names, " ") != expected {
		t.Errorf("expected completions %q, have %q", expected, names)
	}
}

func TestStandardPrompt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lpi.cli")
	defer teardown()
	//
	p := stdprompt("lpi")
	if !strings.Contains(p, "lpi> ") || strings.Contains(p, "%") {
		t.Errorf("unexpected prompt %q", p)
	}
}
