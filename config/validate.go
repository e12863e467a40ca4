package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.New("server.addr must be set")
	}
	if strings.TrimSpace(c.Paths.PublicDir) == "" {
		return errors.New("paths.public_dir must be set")
	}
	if c.Assets.ProbePath != "" && !strings.HasPrefix(c.Assets.ProbePath, "/") {
		return fmt.Errorf("assets.probe_path %q must start with /", c.Assets.ProbePath)
	}
	if c.Assets.BaseURL != "" {
		u, err := url.Parse(c.Assets.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("assets.base_url %q must be an http(s) URL", c.Assets.BaseURL)
		}
	}
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Format {
	case FormatAuto, FormatText, FormatJSON:
	default:
		return fmt.Errorf("logging.format %q must be one of auto, text, json", c.Logging.Format)
	}
	return nil
}
