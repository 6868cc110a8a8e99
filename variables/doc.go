/*
Package variables implements the variable storage of an lpi program run.

BASIC knows two kinds of numeric variables:

   A = 1          scalar variable
   AL(3) = 1      array variable

Scalars spring into existence on first use; an unset scalar reads as 0.
Arrays are created on first reference, too, with a fixed number of
elements (10 by default), all initialized to 0. An array never changes its
size after creation. Scalar and array variables live in separate namespaces,
i.e. A and A(0) denote different cells.

Array access which may create an array is spelled out as such: methods
ElementOrCreate and SetElementOrCreate. Code which just wants to inspect
the store uses Array, which never creates anything.

A Store is not safe for concurrent use. Every interpreter owns its store.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package variables

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lpi.variables'.
func tracer() tracing.Trace {
	return tracing.Select("lpi.variables")
}
