package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/connctd/spacedeck"
	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli"
)

var serveCommand = cli.Command{
	Name:        "serve",
	Aliases:     []string{"s"},
	Description: "Serve the presentation on a webserver",
	Usage:       "serve [--addr :8080]",
	Action: func(ctx *cli.Context) (err error) {
		cctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

		deck, err := spacedeck.OpenDeck(cfg.Paths.DeckFile)
		if err != nil {
			return err
		}

		server, err := spacedeck.NewPresentationServer(cctx, deck, spacedeck.ServerOptions{
			Addr:      cfg.Server.Addr,
			PublicDir: cfg.Paths.PublicDir,
			Source:    assetSource(),
			ProbePath: cfg.Assets.ProbePath,
			Log:       log,
		})
		if err != nil {
			return err
		}
		log.WithField("addr", cfg.Server.Addr).Info("serving presentation")
		server.Run()

		if cfg.Paths.DeckFile != "" {
			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()
			// Editors replace files on save, so watch the directory.
			if err := watcher.Add(filepath.Dir(cfg.Paths.DeckFile)); err != nil {
				return err
			}
			go watchDeck(cctx, watcher, cfg.Paths.DeckFile, server)
		}

		<-c
		cancel()
		return server.Close()
	},
}

func watchDeck(ctx context.Context, watcher *fsnotify.Watcher, deckFile string, server *spacedeck.PresentationServer) {
	target := filepath.Clean(deckFile)
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.WithError(err).Warn("deck watcher")
		case evt, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(evt.Name) != target {
				continue
			}
			if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) && !evt.Has(fsnotify.Rename) {
				continue
			}
			entry := log.WithField("path", evt.Name)
			deck, err := spacedeck.LoadDeck(deckFile)
			if err != nil {
				entry.WithError(err).Error("deck invalid, keeping the previous one")
				continue
			}
			entry.Info("deck changed, reloading")
			server.Reload(deck)
		}
	}
}
