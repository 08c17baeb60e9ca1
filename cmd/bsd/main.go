package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := &cli.App{
		Name:  "bsd",
		Usage: "rank deletions from a dense key set with an order-statistics splay tree",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "read whitespace separated integers from this file instead of stdin",
				EnvVars: []string{"BSD_INPUT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (error, warn, info, debug)",
				Value:   "warn",
				EnvVars: []string{"BSD_LOG_LEVEL", "LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    "verify",
				Usage:   "check every tree invariant after each deletion (slow)",
				EnvVars: []string{"BSD_VERIFY"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "rank",
				Usage:     "read n m and m keys, print the rank of each key as it is deleted",
				ArgsUsage: " ",
				Action:    runRank,
			},
			{
				Name:      "decode",
				Usage:     "read n and up to n ranks, print the keys they were reported for",
				ArgsUsage: " ",
				Action:    runDecode,
			},
		},
	}
	return app
}
