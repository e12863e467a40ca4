package main

import (
	"io"
	"os"

	"github.com/connctd/spacedeck/config"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// configureLogger applies level and format. Text output is colored only on
// a terminal; auto picks JSON when the output is not one.
func configureLogger(l *logrus.Logger, c config.Logging, out *os.File) error {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return err
	}
	l.SetLevel(level)
	l.Out = out

	tty := isTerminal(out)
	switch c.Format {
	case config.FormatJSON:
		l.Formatter = &logrus.JSONFormatter{}
	case config.FormatText:
		l.Formatter = &logrus.TextFormatter{ForceColors: tty, DisableColors: !tty, FullTimestamp: true}
	default:
		if tty {
			l.Formatter = &logrus.TextFormatter{ForceColors: true, FullTimestamp: true}
		} else {
			l.Formatter = &logrus.JSONFormatter{}
		}
	}
	return nil
}

// redirectLog sends log output to the configured file, or drops it. Used
// while the terminal presenter owns the screen.
func redirectLog(l *logrus.Logger, c config.Logging) (func(), error) {
	if c.File == "" {
		l.Out = io.Discard
		return func() {}, nil
	}
	f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	l.Out = f
	l.Formatter = &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
	return func() { f.Close() }, nil
}
