package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/connctd/spacedeck"
	"github.com/connctd/spacedeck/terminal"
	"github.com/urfave/cli"
)

var presentCommand = cli.Command{
	Name:    "present",
	Aliases: []string{"t"},
	Usage:   "Present the deck in the terminal",
	Flags: []cli.Flag{
		cli.BoolTFlag{
			Name:  "fullscreen",
			Usage: "Start on the alternate screen",
		},
	},
	Action: func(ctx *cli.Context) error {
		deck, err := spacedeck.OpenDeck(cfg.Paths.DeckFile)
		if err != nil {
			return err
		}
		closeLog, err := redirectLog(log, cfg.Logging)
		if err != nil {
			return err
		}
		defer closeLog()

		cctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
		defer stop()

		return terminal.Run(cctx, deck, terminal.Options{
			Source:    assetSource(),
			ProbePath: cfg.Assets.ProbePath,
			Clipboard: terminal.SystemClipboard{},
			Log:       log,
			AltScreen: ctx.BoolT("fullscreen") && isTerminal(os.Stdout),
		})
	},
}
