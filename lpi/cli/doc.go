/*
Package cli implements the lpi command line interface.

Without a sub-command lpi starts an interactive session:

   lpi> 10 A = 1 + 2
   lpi> 20 PRINT "A IS" ; A
   lpi> run
   A IS 3

Sub-commands lex, parse and run process program files in batch mode.

Configuration is read with application key 'LPI' and may be overridden by
command line flags. Recognized keys are

   logfile        destination of trace output
   trace.<key>    trace level for a trace key, e.g. trace.lpi.evaluator=Debug
   arrays.size    number of elements of arrays created on first reference
   format         output format of variable dumps, 'table' or 'yaml'

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'lpi.cli'
func tracer() tracing.Trace {
	return tracing.Select("lpi.cli")
}
