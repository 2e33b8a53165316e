package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"outfitter/pkg/recommender"
)

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be \"text\" or \"json\", got %q", c.Log.Format)
	}

	if _, err := recommender.ParseCategory(c.Recommender.DefaultEvent); err != nil {
		return fmt.Errorf("recommender.default_event: %w", err)
	}
	if c.Recommender.MaxCount <= 0 {
		return errors.New("recommender.max_count must be a positive integer")
	}

	return nil
}
