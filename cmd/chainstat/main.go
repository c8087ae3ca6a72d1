// SPDX-License-Identifier: MIT

// Command chainstat samples single-chain polymer models and writes their
// nondimensional radial distributions.
//
//	chainstat sample --model frc --links 256 --persistence 0.4545 --out frc.tsv
//	chainstat batch jobs.yaml
//	chainstat moments --model frc --links 64 --angle 0.3
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
