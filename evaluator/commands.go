package evaluator

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/lpi/grammar"
)

// --- LET -------------------------------------------------------------------

/*
Let executes an assignment. stmt is the content of a line without its line
number:

   LET ⟨identifier⟩ = ⟨value⟩
   LET ⟨identifier⟩ ( ⟨index⟩ ) = ⟨value⟩

The parser inserts the LET keyword for numbered lines which start with an
identifier. The array form relies on the folded parenthesized index being a
single Expression node following the identifier. Arrays are created on first
assignment.
*/
func Let(ev *Evaluator, stmt []*grammar.Node) error {
	if len(stmt) == 0 || stmt[0].Kind != grammar.KindStatementName || stmt[0].Value != "LET" {
		return ErrMissingLetKeyword
	}
	if len(stmt) < 2 || stmt[1].Kind != grammar.KindIdentifier {
		return ErrMissingVariable
	}
	name := stmt[1].Value
	if len(stmt) < 3 {
		return fmt.Errorf("%w after %s", ErrMissingEquals, name)
	}
	switch next := stmt[2]; {
	case next.Kind == grammar.KindExpression: // array element
		index, err := ev.Evaluate(next)
		if err != nil {
			return err
		}
		if len(stmt) < 4 || !stmt[3].IsSymbol("=") {
			return fmt.Errorf("%w after %s(…)", ErrMissingEquals, name)
		}
		if len(stmt) < 5 {
			return fmt.Errorf("%w for %s(…)", ErrMissingValue, name)
		}
		value, err := ev.Evaluate(stmt[4])
		if err != nil {
			return err
		}
		return ev.vars.SetElementOrCreate(name, index, value)
	case next.IsSymbol("="): // scalar
		if len(stmt) < 4 {
			return fmt.Errorf("%w for %s", ErrMissingValue, name)
		}
		value, err := ev.Evaluate(stmt[3])
		if err != nil {
			return err
		}
		ev.vars.SetScalar(name, value)
		return nil
	}
	return fmt.Errorf("%w after %s", ErrMissingEquals, name)
}

// --- PRINT -----------------------------------------------------------------

// Print executes a PRINT statement, writing its arguments to w, separated by
// spaces and followed by a newline. String literals are printed without
// their quotes; everything else is evaluated. Separators `;` and `,` are
// accepted between arguments.
func Print(ev *Evaluator, stmt []*grammar.Node, w io.Writer) error {
	if len(stmt) == 0 || stmt[0].Kind != grammar.KindStatementName || stmt[0].Value != "PRINT" {
		return fmt.Errorf("%w: PRINT expected", ErrUnknownStatement)
	}
	var out []string
	for _, arg := range stmt[1:] {
		switch {
		case arg.Kind == grammar.KindString:
			out = append(out, unquote(arg.Value))
		case arg.IsSymbol(";") || arg.IsSymbol(","):
			continue
		default:
			v, err := ev.Evaluate(arg)
			if err != nil {
				return err
			}
			out = append(out, strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	_, err := fmt.Fprintln(w, strings.Join(out, " "))
	return err
}

func unquote(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}
