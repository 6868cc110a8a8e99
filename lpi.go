/*
Package lpi is an interpreter for a small line-numbered BASIC dialect.

Programs are split into tokens and folded into parse trees by package
grammar, and executed by package evaluator, which keeps variables in a
variables.Store. The command lpi (see directory lpi/) offers a REPL and
batch commands to inspect and run programs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lpi

import (
	"context"
	"os"

	"github.com/knadh/koanf"
)

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// SignalContext is a global context for terminating the application by an interrupt
// signal.
var SignalContext context.Context = context.Background()

// ArraySize returns the configured size of arrays created on first reference,
// or 0 if not configured.
func ArraySize() int {
	if Configuration == nil {
		return 0
	}
	return Configuration.Int("arrays.size")
}

// Interrupted is true if the application received an interrupt signal.
func Interrupted() bool {
	return SignalContext != nil && SignalContext.Err() != nil
}

// Exit exits the application with an error code.
func Exit(errcode int) {
	os.Exit(errcode)
}
