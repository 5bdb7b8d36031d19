// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"code.hybscloud.com/ftl/laws"
	"github.com/urfave/cli/v2"
)

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func runCmd() *cli.Command {
	var (
		seed          int64
		minSuccessful = 100
		verbose       bool
	)
	return &cli.Command{
		Name:  "run",
		Usage: "Run law suites and report violations",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "suite",
				Aliases: []string{"s"},
				Usage:   "Suite or suite group to run, may be repeated (default: all)",
			},
			&cli.Int64Flag{
				Name:        "seed",
				Usage:       "Random seed, 0 picks one from the clock",
				EnvVars:     []string{"FTL_LAWS_SEED"},
				Destination: &seed,
			},
			&cli.IntFlag{
				Name:        "min-successful",
				Usage:       "Minimum successful tests per property",
				EnvVars:     []string{"FTL_LAWS_MIN_SUCCESSFUL"},
				Destination: &minSuccessful,
				Value:       minSuccessful,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "Report passing properties too",
				Destination: &verbose,
			},
		},
		Action: func(ctx *cli.Context) error {
			params := laws.Parameters(seed, minSuccessful)
			selected, err := laws.Select(laws.Suites(params), ctx.StringSlice("suite"))
			if err != nil {
				return err
			}
			slog.Info("Running law suites", "count", len(selected), "seed", params.Seed(), "minSuccessful", params.MinSuccessfulTests)
			results, err := laws.Run(ctx.Context, selected, ctx.App.Writer, verbose, slog.Default())
			passed := 0
			for _, r := range results {
				if r.Passed {
					passed++
				}
			}
			fmt.Fprintf(ctx.App.Writer, "%d/%d suites passed\n", passed, len(selected))
			return err
		},
	}
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the available law suites",
		Action: func(ctx *cli.Context) error {
			for _, name := range laws.Names(laws.Suites(nil)) {
				fmt.Fprintln(ctx.App.Writer, name)
			}
			return nil
		},
	}
}

func Instance() *cli.App {
	loglevel := "info"
	return &cli.App{
		Name:  "ftl-laws",
		Usage: "Check the algebraic laws of the ftl instances",
		Commands: []*cli.Command{
			runCmd(),
			listCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Verbosity of log, valid values are: debug, info, warn, error",
				EnvVars:     []string{"FTL_LAWS_LOG_LEVEL"},
				Destination: &loglevel,
				Value:       loglevel,
			},
		},
		Before: func(ctx *cli.Context) error {
			logger := slog.New(slog.NewTextHandler(ctx.App.ErrWriter, &slog.HandlerOptions{
				Level: parseLevel(loglevel),
			}))
			slog.SetDefault(logger)
			return nil
		},
	}
}

func Run(ctx context.Context, args []string) error {
	app := Instance()
	return app.RunContext(ctx, args)
}
