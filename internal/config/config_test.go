package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"gradecheck/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("GRADECHECK_ENCODING", "")
	t.Setenv("GRADECHECK_LOG_LEVEL", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "gradecheck", "config.toml") {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantLogDir := filepath.Join(tempHome, ".local", "share", "gradecheck", "logs")
	if cfg.Paths.LogDir != wantLogDir {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogDir)
	}
	if cfg.LogFile() != filepath.Join(wantLogDir, "gradecheck.log") {
		t.Fatalf("unexpected log file %q", cfg.LogFile())
	}
	if cfg.Ingest.Encoding != "auto" {
		t.Fatalf("expected auto encoding, got %q", cfg.Ingest.Encoding)
	}
	if cfg.Output.Format != "table" || cfg.Output.Color != "auto" {
		t.Fatalf("unexpected output defaults: %+v", cfg.Output)
	}
	if !filepath.IsAbs(cfg.Output.ExportDir) {
		t.Fatalf("expected absolute export dir, got %q", cfg.Output.ExportDir)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	info, err := os.Stat(cfg.Paths.LogDir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected log dir to exist: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv("GRADECHECK_ENCODING", "")
	t.Setenv("GRADECHECK_LOG_LEVEL", "")
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "gradecheck.toml")

	type payload struct {
		Paths struct {
			LogDir string `toml:"log_dir"`
		} `toml:"paths"`
		Ingest struct {
			Encoding string `toml:"encoding"`
		} `toml:"ingest"`
		Output struct {
			Format    string `toml:"format"`
			ExportDir string `toml:"export_dir"`
		} `toml:"output"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
		GPA struct {
			Extra []string `toml:"extra_excluded_subcategories"`
		} `toml:"gpa"`
	}
	var p payload
	p.Paths.LogDir = filepath.Join(tempDir, "logs")
	p.Ingest.Encoding = " Shift_JIS "
	p.Output.Format = "JSON"
	p.Output.ExportDir = filepath.Join(tempDir, "exports")
	p.Logging.Format = "yaml"
	p.Logging.Level = "DEBUG"
	p.GPA.Extra = []string{" 自由科目 ", "", "自由科目"}

	data, err := toml.Marshal(p)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected %q to be loaded, got %q (exists=%v)", configPath, resolved, exists)
	}
	if cfg.Ingest.Encoding != "shift_jis" {
		t.Fatalf("unexpected encoding %q", cfg.Ingest.Encoding)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("unexpected output format %q", cfg.Output.Format)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("expected unknown log format to fall back to console, got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected log level %q", cfg.Logging.Level)
	}
	if len(cfg.GPA.ExtraExcludedSubcategories) != 1 || cfg.GPA.ExtraExcludedSubcategories[0] != "自由科目" {
		t.Fatalf("unexpected extra exclusions %v", cfg.GPA.ExtraExcludedSubcategories)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "gradecheck.toml")
	if err := os.WriteFile(configPath, []byte("[output]\nfromat = \"json\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "gradecheck.toml")
	contents := "[ingest]\nencoding = \"utf-8\"\n[logging]\nlevel = \"info\"\n"
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GRADECHECK_ENCODING", "euc-jp")
	t.Setenv("GRADECHECK_LOG_LEVEL", "error")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Ingest.Encoding != "euc-jp" {
		t.Errorf("expected encoding from env, got %q", cfg.Ingest.Encoding)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("expected level from env, got %q", cfg.Logging.Level)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "extra_excluded_subcategories") {
		t.Fatalf("sample config missing gpa section: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if !strings.Contains(cfg.Paths.LogDir, "gradecheck") {
		t.Fatalf("expected log dir to contain gradecheck, got %q", cfg.Paths.LogDir)
	}

	t.Setenv("GRADECHECK_ENCODING", "")
	t.Setenv("GRADECHECK_LOG_LEVEL", "")
	t.Setenv("HOME", t.TempDir())
	if _, _, exists, err := config.Load(path); err != nil || !exists {
		t.Fatalf("sample config should load cleanly: exists=%v err=%v", exists, err)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"unknown encoding", func(c *config.Config) { c.Ingest.Encoding = "klingon" }},
		{"unknown output format", func(c *config.Config) { c.Output.Format = "yaml" }},
		{"unknown color mode", func(c *config.Config) { c.Output.Color = "sometimes" }},
		{"unknown log level", func(c *config.Config) { c.Logging.Level = "loud" }},
		{"empty export dir", func(c *config.Config) { c.Output.ExportDir = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	cfg := config.Default()
	cfg.Ingest.Encoding = "euc-jp"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected euc-jp to validate, got %v", err)
	}
}
