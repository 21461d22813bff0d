package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"gradecheck/internal/config"
	"gradecheck/internal/ingest"
	"gradecheck/internal/logging"
	"gradecheck/internal/session"
	"gradecheck/internal/stats"
)

// stdioPath names standard input for transcripts and standard output for workbooks.
const stdioPath = "-"

type globalFlags struct {
	config   string
	logLevel string
	encoding string
	color    string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if v := strings.TrimSpace(c.flags.logLevel); v != "" {
			cfg.Logging.Level = strings.ToLower(v)
		}
		if v := strings.TrimSpace(c.flags.encoding); v != "" {
			cfg.Ingest.Encoding = strings.ToLower(v)
		}
		if v := strings.TrimSpace(c.flags.color); v != "" {
			cfg.Output.Color = strings.ToLower(v)
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
			logger = logging.NewNop()
		}
		c.logger = logger
	})
	return c.logger
}

// loadSession reads the transcript named by source into a fresh session.
func (c *commandContext) loadSession(cmd *cobra.Command, source string) (*session.Session, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	sess := session.New(c.ensureLogger(), session.Options{
		Encoding: cfg.Ingest.Encoding,
		Policy:   stats.GPAPolicy{ExtraExcludedSubcategories: cfg.GPA.ExtraExcludedSubcategories},
	})

	if source == stdioPath {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read transcript from stdin: %w", err)
		}
		_, err = sess.Load(cmd.Context(), "stdin", data)
		return sess, describeLoadError(err)
	}
	_, err = sess.LoadFile(cmd.Context(), source)
	return sess, describeLoadError(err)
}

func describeLoadError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ingest.ErrHeaderNotFound) {
		return fmt.Errorf("%w (is this a 単位修得状況 CSV export?)", err)
	}
	return err
}

func (c *commandContext) jsonOutput(flag bool) bool {
	if flag {
		return true
	}
	cfg, err := c.ensureConfig()
	return err == nil && cfg.Output.Format == "json"
}

func (c *commandContext) colorize(w io.Writer) bool {
	cfg, err := c.ensureConfig()
	if err != nil {
		return false
	}
	return c.colorizeWith(cfg, w)
}

// colorizeWith applies the --color flag on top of cfg, for commands that load
// the configuration themselves.
func (c *commandContext) colorizeWith(cfg *config.Config, w io.Writer) bool {
	mode := cfg.Output.Color
	if v := strings.ToLower(strings.TrimSpace(c.flags.color)); v != "" {
		mode = v
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isColorTerminal(w)
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
