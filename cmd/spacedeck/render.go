package main

import (
	"context"

	"github.com/connctd/spacedeck"
	"github.com/urfave/cli"
)

var defaultDistDir = "./dist"

var renderCommand = cli.Command{
	Name:    "render",
	Aliases: []string{"build", "r", "b"},
	Usage:   "Render the presentation into the dist dir",
	Action: func(ctx *cli.Context) error {
		distDir := ctx.Args().First()
		if distDir == "" {
			distDir = defaultDistDir
		}
		deck, err := spacedeck.OpenDeck(cfg.Paths.DeckFile)
		if err != nil {
			return err
		}
		renderer := spacedeck.NewRenderer(assetSource())
		if err := renderer.RenderStatic(context.Background(), deck, distDir); err != nil {
			return err
		}
		log.WithField("path", distDir).WithField("slides", deck.Len()).Info("presentation rendered")
		return nil
	},
}
