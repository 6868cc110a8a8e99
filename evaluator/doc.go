/*
Package evaluator executes parsed lpi programs.

An Evaluator computes the value of expression trees produced by package
grammar, reading variables from a variables.Store. Statements (LET and
PRINT) are implemented on top of the evaluator, and an Interpreter holds a
program as a sequence of lines ordered by line number.

Programs are entered line by line:

   intp := evaluator.NewInterpreter(os.Stdout)
   intp.Enter(`10 A = 1 + 2`)
   intp.Enter(`20 PRINT "A IS" ; A`)
   err := intp.Run()

Lines without a line number are executed immediately.

All errors are returned to the caller; the interpreter decides whether to
stop (Run halts at the first failing line) or to report and carry on (Load
skips lines with an invalid line number).

*/
package evaluator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lpi.evaluator'.
func tracer() tracing.Trace {
	return tracing.Select("lpi.evaluator")
}
