package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// unsetEnv clears a variable for the test and restores it afterwards
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func newFlags() *flag.FlagSet {
	return flag.NewFlagSet("test", flag.ContinueOnError)
}

// TestDefaultIsValid verifies the built-in config passes validation
func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}
	if cfg.FrameInterval() != time.Second/60 {
		t.Errorf("Expected 60 fps interval, got %v", cfg.FrameInterval())
	}
	kb := cfg.KeyBindings()
	if kb.PlayerUp != "y" || kb.PlayerDown != "n" || kb.AIUp != "w" || kb.AIDown != "x" {
		t.Errorf("Unexpected default bindings: %+v", kb)
	}
}

// TestLoadFileOverrides verifies file values replace defaults and unset keys keep them
func TestLoadFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "pong.toml", `
debug = true

[window]
width = 1024

[keys]
player_up = "k"
`)

	cfg := Default()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !cfg.Debug || cfg.Window.Width != 1024 || cfg.Window.Height != 480 {
		t.Errorf("Unexpected window/debug: %+v debug=%v", cfg.Window, cfg.Debug)
	}
	if cfg.Keys.PlayerUp != "k" || cfg.Keys.PlayerDown != "n" {
		t.Errorf("Unexpected keys: %+v", cfg.Keys)
	}
	if cfg.Path != path {
		t.Errorf("Expected Path %s, got %s", path, cfg.Path)
	}
}

// TestLoadFileMissingIsNotError verifies an absent file leaves defaults untouched
func TestLoadFileMissingIsNotError(t *testing.T) {
	cfg := Default()
	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "absent.toml")); err != nil {
		t.Fatalf("Expected nil error, got %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Expected empty Path, got %s", cfg.Path)
	}
}

// TestLoadFileRejectsUnknownKey verifies typos are reported rather than ignored
func TestLoadFileRejectsUnknownKey(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.toml", "[loop]\nfsp = 30\n")

	err := Default().LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "loop.fsp") {
		t.Fatalf("Expected unknown key error, got %v", err)
	}
}

// TestLoadFileSyntaxError verifies parse errors carry the path
func TestLoadFileSyntaxError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.toml", "[window\n")

	err := Default().LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Fatalf("Expected wrapped decode error, got %v", err)
	}
}

// TestApplyEnv verifies overrides and parse failures
func TestApplyEnv(t *testing.T) {
	env := map[string]string{EnvDebug: "true", EnvFPS: "30", EnvSeed: "42"}
	cfg := Default()
	if err := cfg.ApplyEnv(func(k string) string { return env[k] }); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if !cfg.Debug || cfg.Loop.FPS != 30 || cfg.Serve.Seed != 42 {
		t.Errorf("Unexpected config after env: debug=%v fps=%d seed=%d", cfg.Debug, cfg.Loop.FPS, cfg.Serve.Seed)
	}

	env[EnvFPS] = "fast"
	err := cfg.ApplyEnv(func(k string) string { return env[k] })
	if err == nil || !strings.Contains(err.Error(), EnvFPS) {
		t.Errorf("Expected %s parse error, got %v", EnvFPS, err)
	}
}

// TestValidateRejects covers each validation failure
func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative cell", func(c *Config) { c.Terminal.CellHeight = -1 }},
		{"zero fps", func(c *Config) { c.Loop.FPS = 0 }},
		{"empty key", func(c *Config) { c.Keys.AIDown = "" }},
		{"duplicate key", func(c *Config) { c.Keys.AIUp = c.Keys.PlayerUp }},
		{"command key", func(c *Config) { c.Keys.PlayerDown = "q" }},
	}

	for _, tc := range cases {
		cfg := Default()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

// TestLoadPrecedence verifies file < env < flags
func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "pong.toml", "[loop]\nfps = 20\n\n[serve]\nseed = 5\n")

	unsetEnv(t, EnvConfig)
	unsetEnv(t, EnvDebug)
	unsetEnv(t, EnvSeed)
	t.Setenv(EnvFPS, "40")

	cfg, err := Load(newFlags(), []string{"-config", path, "-seed", "9"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Loop.FPS != 40 {
		t.Errorf("Expected env fps 40 over file, got %d", cfg.Loop.FPS)
	}
	if cfg.Serve.Seed != 9 {
		t.Errorf("Expected flag seed 9 over file, got %d", cfg.Serve.Seed)
	}

	// A flag beats the environment
	cfg, err = Load(newFlags(), []string{"-config", path, "-fps", "90"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Loop.FPS != 90 || cfg.Serve.Seed != 5 {
		t.Errorf("Expected fps 90 seed 5, got fps %d seed %d", cfg.Loop.FPS, cfg.Serve.Seed)
	}
}

// TestLoadConfigPathFromEnv verifies VIPONG_CONFIG selects the file
func TestLoadConfigPathFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "other.toml", "[window]\ntitle = \"from env\"\n")

	unsetEnv(t, EnvDebug)
	unsetEnv(t, EnvFPS)
	unsetEnv(t, EnvSeed)
	t.Setenv(EnvConfig, path)

	cfg, err := Load(newFlags(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Title != "from env" {
		t.Errorf("Expected title from env-selected file, got %q", cfg.Window.Title)
	}
}

// TestLoadDotEnv verifies .env values reach the environment without overriding set ones
func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, DotEnvPath, EnvSeed+"=77\n"+EnvFPS+"=15\n")

	unsetEnv(t, EnvConfig)
	unsetEnv(t, EnvDebug)
	unsetEnv(t, EnvSeed)
	t.Setenv(EnvFPS, "50")

	cfg, err := Load(newFlags(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Serve.Seed != 77 {
		t.Errorf("Expected seed 77 from .env, got %d", cfg.Serve.Seed)
	}
	if cfg.Loop.FPS != 50 {
		t.Errorf("Expected existing env fps 50 to win over .env, got %d", cfg.Loop.FPS)
	}
}

// TestLoadInvalidFails verifies Load runs validation
func TestLoadInvalidFails(t *testing.T) {
	t.Chdir(t.TempDir())
	unsetEnv(t, EnvConfig)
	unsetEnv(t, EnvFPS)

	if _, err := Load(newFlags(), []string{"-fps", "0"}); err == nil {
		t.Fatal("Expected validation error for fps 0")
	}
}

// TestSaveThenLoad verifies a saved config reads back identically
func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pong.toml")

	want := Default()
	want.Debug = true
	want.Serve.Seed = 1234
	want.Keys.AIUp = "i"
	if err := want.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := Default()
	if err := got.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	got.Path = ""
	if *got != *want {
		t.Errorf("Round trip mismatch:\n got  %+v\n want %+v", *got, *want)
	}
}
