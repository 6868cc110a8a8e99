package evaluator

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/lpi/grammar"
	"github.com/npillmayer/lpi/variables"
)

// Interpreter holds a BASIC program and executes it.
//
// The program is kept ordered by line number. Entering a line with a number
// which already exists replaces the old line.
type Interpreter struct {
	evaluator *Evaluator   // expression evaluator, owns the variables
	program   *treemap.Map // line number → *grammar.Node
	out       io.Writer    // destination of PRINT
}

// NewInterpreter creates an interpreter with an empty program. PRINT output
// goes to out. Options configure the variable store.
func NewInterpreter(out io.Writer, opts ...variables.Option) *Interpreter {
	if out == nil {
		out = io.Discard
	}
	return &Interpreter{
		evaluator: NewEvaluator(variables.NewStore(opts...)),
		program:   treemap.NewWithIntComparator(),
		out:       out,
	}
}

// Variables returns the variable store of the interpreter.
func (intp *Interpreter) Variables() *variables.Store {
	return intp.evaluator.Variables()
}

// Evaluator returns the expression evaluator of the interpreter.
func (intp *Interpreter) Evaluator() *Evaluator {
	return intp.evaluator
}

// Len returns the number of program lines.
func (intp *Interpreter) Len() int {
	return intp.program.Size()
}

// Enter parses a line of input. Numbered lines are stored in the program,
// other lines are executed immediately. An empty line is ignored.
func (intp *Interpreter) Enter(input string) error {
	program := grammar.ParseString(input)
	for _, line := range program.Children {
		if err := intp.enterLine(line); err != nil {
			return err
		}
	}
	return nil
}

func (intp *Interpreter) enterLine(line *grammar.Node) error {
	number, stmt, numbered, err := splitLine(line)
	if err != nil {
		return err
	}
	if !numbered {
		if len(stmt) == 0 {
			return nil
		}
		return intp.execute(stmt, true)
	}
	if len(stmt) == 0 { // a bare line number deletes the line
		tracer().Debugf("removing line %d", number)
		intp.program.Remove(int(number))
		return nil
	}
	tracer().Debugf("storing line %d", number)
	intp.program.Put(int(number), line)
	return nil
}

// Load parses a complete program text and stores its numbered lines.
// Unnumbered lines are executed immediately, as if typed in one by one.
//
// Lines with an invalid line number are skipped. Load reports them, as well
// as errors from immediate execution, as warnings and carries on with the
// next line.
func (intp *Interpreter) Load(source string) []error {
	var warnings []error
	for i, line := range grammar.ParseString(source).Children {
		if err := intp.enterLine(line); err != nil {
			tracer().Infof("line #%d skipped: %v", i+1, err)
			warnings = append(warnings, fmt.Errorf("source line %d: %w", i+1, err))
		}
	}
	return warnings
}

// Run executes the program lines in ascending order. Execution stops at the
// first error, which is returned as a *RuntimeError.
func (intp *Interpreter) Run() error {
	if intp.program.Empty() {
		return ErrNoProgramToExecute
	}
	it := intp.program.Iterator()
	for it.Next() {
		number := uint16(it.Key().(int))
		line := it.Value().(*grammar.Node)
		if err := intp.execute(line.Children[1:], false); err != nil {
			tracer().Errorf("line %d: %v", number, err)
			return &RuntimeError{Line: number, Err: err}
		}
	}
	return nil
}

// Execute executes a single line, ignoring its line number, if any. The
// program is not modified.
func (intp *Interpreter) Execute(line *grammar.Node) error {
	_, stmt, numbered, err := splitLine(line)
	if err != nil {
		return err
	}
	return intp.execute(stmt, !numbered)
}

// execute dispatches a statement by its keyword. In immediate mode an
// assignment may omit LET even without a line number.
func (intp *Interpreter) execute(stmt []*grammar.Node, immediate bool) error {
	if len(stmt) == 0 {
		return fmt.Errorf("%w: empty statement", ErrUnknownStatement)
	}
	first := stmt[0]
	switch first.Kind {
	case grammar.KindStatementName:
		switch first.Value {
		case "LET":
			return Let(intp.evaluator, stmt)
		case "PRINT":
			return Print(intp.evaluator, stmt, intp.out)
		}
	case grammar.KindIdentifier:
		if immediate {
			let := grammar.NewLeaf(grammar.KindStatementName, "LET")
			return Let(intp.evaluator, append([]*grammar.Node{let}, stmt...))
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownStatement, first.Value)
}

// List writes the program in line number order.
func (intp *Interpreter) List(w io.Writer) error {
	it := intp.program.Iterator()
	for it.Next() {
		line := it.Value().(*grammar.Node)
		if _, err := fmt.Fprintln(w, line.Text()); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes the program and all variables.
func (intp *Interpreter) Clear() {
	intp.program.Clear()
	intp.evaluator = NewEvaluator(variables.NewStore(variables.WithArraySize(intp.Variables().ArraySize())))
}

// Source returns the program text.
func (intp *Interpreter) Source() string {
	var b strings.Builder
	_ = intp.List(&b)
	return b.String()
}
