package main

import (
	"fmt"
	"os"

	"github.com/connctd/spacedeck"
	"github.com/connctd/spacedeck/config"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var (
	cfg *config.Config
	log = logrus.New()
)

func main() {
	app := cli.NewApp()
	app.Name = "spacedeck"
	app.Usage = "Present the workshop deck in the browser or the terminal"
	app.Version = spacedeck.Version
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "config, c",
			Usage:  "Path to the TOML config file",
			EnvVar: "SPACEDECK_CONFIG",
		},
		cli.StringFlag{
			Name:  "addr",
			Usage: "Address to listen on",
		},
		cli.StringFlag{
			Name:  "public",
			Usage: "Public asset directory",
		},
		cli.StringFlag{
			Name:  "deck",
			Usage: "YAML deck file, the bundled workshop deck when empty",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level (debug, info, warn, error)",
		},
	}
	app.Before = loadConfig
	app.Commands = []cli.Command{
		serveCommand,
		renderCommand,
		prepareCommand,
		presentCommand,
		checkCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(ctx *cli.Context) error {
	var err error
	cfg, err = config.Load(ctx.String("config"))
	if err != nil {
		return err
	}
	if v := ctx.String("addr"); v != "" {
		cfg.Server.Addr = v
	}
	if v := ctx.String("public"); v != "" {
		cfg.Paths.PublicDir = v
	}
	if v := ctx.String("deck"); v != "" {
		cfg.Paths.DeckFile = v
	}
	if v := ctx.String("log-level"); v != "" {
		cfg.Logging.Level = v
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return configureLogger(log, cfg.Logging, os.Stderr)
}

func assetSource() spacedeck.Source {
	if cfg.Assets.BaseURL != "" {
		return spacedeck.NewHTTPSource(cfg.Assets.BaseURL)
	}
	return spacedeck.NewDirSource(cfg.Paths.PublicDir)
}

var checkCommand = cli.Command{
	Name:  "check",
	Usage: "Validate the deck and list its slides",
	Action: func(ctx *cli.Context) error {
		deck, err := spacedeck.OpenDeck(cfg.Paths.DeckFile)
		if err != nil {
			return err
		}
		for i := 0; i < deck.Len(); i++ {
			s := deck.Slide(i)
			fmt.Printf("%2d  %-20s %-12s %s\n", i+1, s.ID, spacedeck.Classify(s), s.Title)
		}
		fmt.Printf("%s: %d slides ok\n", deck.Title, deck.Len())
		return nil
	},
}
