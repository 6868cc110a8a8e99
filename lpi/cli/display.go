package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/lpi/evaluator"
	"github.com/npillmayer/lpi/lpi/ui/termui"
	"github.com/npillmayer/lpi/variables"
	"gopkg.in/yaml.v3"
)

// Formatter knows how to display lpi specific items on the terminal.
type Formatter struct {
	termui.DefaultFormatter
}

// Format writes item to w.
func (f Formatter) Format(item interface{}, w io.Writer) (bool, error) {
	tracer().Debugf("cli.Format called for item %T", item)
	switch t := item.(type) {
	case *evaluator.RuntimeError:
		_, err := fmt.Fprintf(w, "✗ error in line %d: %s\n", t.Line, t.Err.Error())
		return err == nil, err
	case *variables.Store:
		item = variablesAsTable(t)
	}
	return f.DefaultFormatter.Format(item, w)
}

// showVariables writes the contents of a variable store in a given format.
func showVariables(vars *variables.Store, format string, w io.Writer) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(vars.Snapshot()); err != nil {
			return err
		}
		return enc.Close()
	case "table", "":
		_, err := Formatter{}.Format(vars, w)
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}

// --- Property tables for various types -------------------------------------

func variablesAsTable(vars *variables.Store) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("Variables")
	tw.AppendHeader(table.Row{"name", "value"})
	for _, name := range vars.ScalarNames() {
		tw.AppendRow(table.Row{name, formatNumber(vars.Scalar(name))})
	}
	for _, name := range vars.ArrayNames() {
		a, _ := vars.Array(name)
		for i, v := range a {
			tw.AppendRow(table.Row{fmt.Sprintf("%s(%d)", name, i), formatNumber(v)})
		}
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
