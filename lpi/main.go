// Command lpi runs programs written in a small line-numbered BASIC dialect.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/npillmayer/lpi"
	"github.com/npillmayer/lpi/lpi/cli"
)

func main() {
	var stop context.CancelFunc
	lpi.SignalContext, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	code := cli.Execute()
	stop()
	lpi.Exit(code)
}
