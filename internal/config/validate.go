package config

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/htmlindex"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateIngest(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
}

func (c *Config) validateIngest() error {
	if c.Ingest.Encoding == defaultEncoding {
		return nil
	}
	if _, err := htmlindex.Get(c.Ingest.Encoding); err != nil {
		return fmt.Errorf("ingest.encoding %q is not a known encoding label", c.Ingest.Encoding)
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "table", "json":
	default:
		return errors.New("output.format must be table or json")
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return errors.New("output.color must be auto, always, or never")
	}
	if c.Output.ExportDir == "" {
		return errors.New("output.export_dir must be set")
	}
	return nil
}
