// Package config resolves runtime settings for the vi-pong binaries.
//
// Precedence, lowest first: built-in defaults, the TOML file, a .env file in the
// working directory, VIPONG_* environment variables, command-line flags.
// Gameplay constants (speeds, sizes) are not configurable.
package config

import (
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-pong/host"
	"github.com/lixenwraith/vi-pong/systems"
	"github.com/lixenwraith/vi-pong/terminal"
)

// DefaultPath is the config file read when neither -config nor VIPONG_CONFIG is set
const DefaultPath = "vi-pong.toml"

// DotEnvPath is the optional .env file loaded into the process environment
const DotEnvPath = ".env"

// Environment variable names
const (
	EnvConfig = "VIPONG_CONFIG"
	EnvDebug  = "VIPONG_DEBUG"
	EnvFPS    = "VIPONG_FPS"
	EnvSeed   = "VIPONG_SEED"
)

type WindowConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Title  string  `toml:"title"`
}

// TerminalConfig scales terminal cells to arena units
type TerminalConfig struct {
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
}

type LoopConfig struct {
	FPS int `toml:"fps"`
}

// KeyConfig holds lower-case key names
type KeyConfig struct {
	PlayerUp   string `toml:"player_up"`
	PlayerDown string `toml:"player_down"`
	AIUp       string `toml:"ai_up"`
	AIDown     string `toml:"ai_down"`
}

type ServeConfig struct {
	// Seed for the serve generator; 0 seeds from the clock
	Seed uint64 `toml:"seed"`
}

// Config is the effective configuration of one run
type Config struct {
	Debug    bool           `toml:"debug"`
	Window   WindowConfig   `toml:"window"`
	Terminal TerminalConfig `toml:"terminal"`
	Loop     LoopConfig     `toml:"loop"`
	Keys     KeyConfig      `toml:"keys"`
	Serve    ServeConfig    `toml:"serve"`

	// Path is the file the config was read from, empty when none existed
	Path string `toml:"-"`
}

// Default returns the built-in configuration
func Default() *Config {
	keys := systems.DefaultKeyBindings()
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 480,
			Title:  "vi-pong",
		},
		Terminal: TerminalConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Loop: LoopConfig{FPS: 60},
		Keys: KeyConfig{
			PlayerUp:   string(keys.PlayerUp),
			PlayerDown: string(keys.PlayerDown),
			AIUp:       string(keys.AIUp),
			AIDown:     string(keys.AIDown),
		},
	}
}

// Load defines the config flags on flags, parses args and merges every source
// Callers may define extra flags on the set before calling Load
func Load(flags *flag.FlagSet, args []string) (*Config, error) {
	var (
		path   = flags.String("config", "", "config file (default $"+EnvConfig+" or "+DefaultPath+")")
		debug  = flags.Bool("debug", false, "write logs to logs/vi-pong.log and show the status line")
		fps    = flags.Int("fps", 0, "simulation frames per second")
		seed   = flags.Uint64("seed", 0, "serve seed, 0 seeds from the clock")
		width  = flags.Float64("width", 0, "window width")
		height = flags.Float64("height", 0, "window height")
	)
	if err := flags.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parse flags")
	}

	if err := LoadDotEnv(DotEnvPath); err != nil {
		return nil, err
	}

	cfg := Default()

	file := *path
	if file == "" {
		file = os.Getenv(EnvConfig)
	}
	if file == "" {
		file = DefaultPath
	}
	if err := cfg.LoadFile(file); err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debug
		case "fps":
			cfg.Loop.FPS = *fps
		case "seed":
			cfg.Serve.Seed = *seed
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes a TOML file over the current values
// A missing file is not an error; unknown keys are
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Wrapf(err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	c.Path = path
	return nil
}

// LoadDotEnv loads KEY=value pairs into the process environment
// Variables already set are kept; a missing file is ignored
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Wrapf(err, "load %s", path)
	}
	return nil
}

// ApplyEnv overrides fields from VIPONG_* variables; empty values are skipped
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvDebug)
		}
		c.Debug = b
	}
	if v := getenv(EnvFPS); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvFPS)
		}
		c.Loop.FPS = n
	}
	if v := getenv(EnvSeed); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvSeed)
		}
		c.Serve.Seed = n
	}
	return nil
}

// Validate rejects sizes and rates that cannot run and ambiguous key bindings
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return errors.Errorf("terminal cell size must be positive, got %vx%v", c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	if c.Loop.FPS <= 0 {
		return errors.Errorf("fps must be positive, got %d", c.Loop.FPS)
	}

	seen := make(map[string]string, 4)
	for _, b := range []struct{ name, key string }{
		{"player_up", c.Keys.PlayerUp},
		{"player_down", c.Keys.PlayerDown},
		{"ai_up", c.Keys.AIUp},
		{"ai_down", c.Keys.AIDown},
	} {
		if b.key == "" {
			return errors.Errorf("key %s is empty", b.name)
		}
		for _, r := range terminal.ReservedKeys {
			if host.Key(b.key) == r {
				return errors.Errorf("key %s: %q is a command key", b.name, b.key)
			}
		}
		if other, dup := seen[b.key]; dup {
			return errors.Errorf("key %q bound to both %s and %s", b.key, other, b.name)
		}
		seen[b.key] = b.name
	}
	return nil
}

// Save writes the configuration as TOML, creating parent directories
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}

// KeyBindings converts the key names for the spawner
func (c *Config) KeyBindings() systems.KeyBindings {
	return systems.KeyBindings{
		PlayerUp:   host.Key(c.Keys.PlayerUp),
		PlayerDown: host.Key(c.Keys.PlayerDown),
		AIUp:       host.Key(c.Keys.AIUp),
		AIDown:     host.Key(c.Keys.AIDown),
	}
}

// FrameInterval is the simulation step period
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Loop.FPS)
}
