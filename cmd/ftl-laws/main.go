// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command ftl-laws checks the algebraic laws of the ftl instances with
// randomized property tests.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"code.hybscloud.com/ftl/cmd/ftl-laws/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err := app.Run(ctx, os.Args)
	if err != nil {
		slog.Error("Application failed", "err", err)
		log.Fatal("abort")
	}
}
