// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package main provides a CLI for running Lua scenarios over MathOp and Game.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"code.hybscloud.com/monad/internal/config"

	monadscmd "code.hybscloud.com/monad/internal/cmd/monads"
)

func main() {
	cfg, err := monadscmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := monadscmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}
