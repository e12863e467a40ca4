package main

import (
	"context"
	"os"

	"github.com/connctd/spacedeck/assets"
	"github.com/urfave/cli"
)

var prepareCommand = cli.Command{
	Name:    "prepare",
	Aliases: []string{"p"},
	Usage:   "Copy prints, media, prompts and documents into the public dir",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "repo",
			Usage: "Repository root to copy from (defaults to paths.repo_root)",
		},
	},
	Action: func(ctx *cli.Context) error {
		root := cfg.Paths.RepoRoot
		if v := ctx.String("repo"); v != "" {
			root = v
		}
		p := &assets.Preparer{
			RepoRoot:  root,
			PublicDir: cfg.Paths.PublicDir,
			Log:       log,
		}
		report, err := p.Prepare(context.Background(), assets.DefaultManifest())
		if err != nil {
			return err
		}
		report.WriteTable(os.Stdout)
		return nil
	},
}
