package evaluator

import (
	"fmt"
	"math"

	"github.com/npillmayer/lpi/grammar"
	"github.com/npillmayer/lpi/variables"
)

// Evaluator computes the values of expressions.
type Evaluator struct {
	vars *variables.Store
}

// NewEvaluator creates an evaluator operating on a variable store.
// If vars is nil, a fresh store is created.
func NewEvaluator(vars *variables.Store) *Evaluator {
	if vars == nil {
		vars = variables.NewStore()
	}
	return &Evaluator{vars: vars}
}

// Variables returns the variable store of the evaluator.
func (ev *Evaluator) Variables() *variables.Store {
	return ev.vars
}

// Evaluate computes the value of an expression tree.
//
// Number, Float and Identifier leaves evaluate to their value (unset
// variables are 0). Expression nodes either enclose a sub-expression in
// parentheses or apply one of + - * / ^ to their two operands. Division by
// zero follows IEEE 754 and is not an error, as are literals too large for
// a float64.
func (ev *Evaluator) Evaluate(node *grammar.Node) (float64, error) {
	if node == nil {
		return 0, fmt.Errorf("%w: nothing to evaluate", ErrUnexpectedNodeKind)
	}
	switch node.Kind {
	case grammar.KindNumber, grammar.KindFloat:
		return parseNumber(node.Value)
	case grammar.KindIdentifier:
		return ev.vars.Scalar(node.Value), nil
	case grammar.KindExpression:
		return ev.evalExpression(node)
	case grammar.KindProgram, grammar.KindLine, grammar.KindLineNumber,
		grammar.KindStatementName, grammar.KindString, grammar.KindSymbol:
		return 0, fmt.Errorf("%w: %s '%s'", ErrUnexpectedNodeKind, node.Kind, node.Value)
	}
	return 0, fmt.Errorf("%w: %s", ErrUnexpectedNodeKind, node.Kind)
}

func (ev *Evaluator) evalExpression(node *grammar.Node) (float64, error) {
	if len(node.Children) != 3 {
		return 0, fmt.Errorf("%w: expression with %d operands", ErrUnexpectedNodeKind, len(node.Children))
	}
	op := node.Children[1]
	if node.Children[0].IsSymbol("(") {
		return ev.Evaluate(op)
	}
	if op.Kind != grammar.KindSymbol {
		return 0, fmt.Errorf("%w: %s '%s'", ErrUnknownOperator, op.Kind, op.Value)
	}
	left, err := ev.Evaluate(node.Children[0])
	if err != nil {
		return 0, err
	}
	right, err := ev.Evaluate(node.Children[2])
	if err != nil {
		return 0, err
	}
	var result float64
	switch op.Value {
	case "+":
		result = left + right
	case "-":
		result = left - right
	case "*":
		result = left * right
	case "/":
		result = left / right
	case "^":
		result = math.Pow(left, right)
	default:
		return 0, fmt.Errorf("%w: '%s'", ErrUnknownOperator, op.Value)
	}
	tracer().Debugf("%g %s %g = %g", left, op.Value, right, result)
	return result, nil
}
