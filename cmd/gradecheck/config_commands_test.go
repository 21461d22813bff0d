package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "[OK] configuration valid")
	requireContains(t, out, "Config path:")
	requireContains(t, out, env.configPath)
	if strings.Contains(out, "using defaults") {
		t.Fatalf("existing config reported as missing:\n%s", out)
	}

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, target)
	if err != nil {
		t.Fatalf("validate sample: %v", err)
	}
	requireContains(t, out, "Encoding:")
	requireContains(t, out, "auto")

	missing := filepath.Join(t.TempDir(), "absent.toml")
	out, _, err = runCLI(t, []string{"config", "validate"}, missing)
	if err != nil {
		t.Fatalf("validate missing config: %v", err)
	}
	requireContains(t, out, "not found, using defaults")
}

func TestInvalidConfigFailsReportCommands(t *testing.T) {
	env := setupCLITestEnv(t)
	bad := filepath.Join(env.baseDir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[output]\nformat = \"yaml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, err := runCLI(t, []string{"gpa", env.transcript}, bad); err == nil {
		t.Fatal("expected invalid config to fail")
	}
}

func TestConfigOutputFormatJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	cfgPath := filepath.Join(env.baseDir, "json.toml")
	if err := os.WriteFile(cfgPath, []byte("[output]\nformat = \"json\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	out, _, err := runCLI(t, []string{"gpa", env.transcript}, cfgPath)
	if err != nil {
		t.Fatalf("gpa: %v", err)
	}
	requireContains(t, out, `"gpa": 2.33`)
}
