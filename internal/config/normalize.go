package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeIngest()
	c.normalizeOutput()
	c.normalizeGPA()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Output.ExportDir) == "" {
		c.Output.ExportDir = defaultExportDir
	}
	if c.Output.ExportDir, err = expandPath(strings.TrimSpace(c.Output.ExportDir)); err != nil {
		return fmt.Errorf("output.export_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeIngest() {
	if value, ok := os.LookupEnv("GRADECHECK_ENCODING"); ok && strings.TrimSpace(value) != "" {
		c.Ingest.Encoding = value
	}
	c.Ingest.Encoding = strings.ToLower(strings.TrimSpace(c.Ingest.Encoding))
	if c.Ingest.Encoding == "" {
		c.Ingest.Encoding = defaultEncoding
	}
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = defaultColorMode
	}
}

func (c *Config) normalizeGPA() {
	cleaned := make([]string, 0, len(c.GPA.ExtraExcludedSubcategories))
	seen := make(map[string]struct{}, len(c.GPA.ExtraExcludedSubcategories))
	for _, value := range c.GPA.ExtraExcludedSubcategories {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		cleaned = append(cleaned, value)
	}
	c.GPA.ExtraExcludedSubcategories = cleaned
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	if value, ok := os.LookupEnv("GRADECHECK_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
