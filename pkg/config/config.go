// Package config loads chromatic's TOML configuration.
//
// The file lives at $XDG_CONFIG_HOME/chromatic/config.toml, falling back to
// ~/.config/chromatic/config.toml. A missing default file is not an error;
// every key has a default. Command-line flags override file values.
//
//	algorithm = "exact"
//	sample    = "petersen"
//
//	[exact]
//	max_vertices    = 64
//	timeout_seconds = 10
//	fallback        = "sf"
//
//	[render]
//	engine  = "neato"
//	format  = "svg"
//	width   = 800
//	height  = 800
//	palette = ["#FF0000", "#0000FF", "#00CC00"]
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/pipeline"
	"github.com/matzehuels/chromatic/pkg/render"
	"github.com/matzehuels/chromatic/pkg/render/nodelink"
	"github.com/matzehuels/chromatic/pkg/samples"
)

const (
	appName  = "chromatic"
	fileName = "config.toml"
)

// DefaultTimeoutSeconds mirrors pipeline.DefaultExactTimeout.
const DefaultTimeoutSeconds = int(pipeline.DefaultExactTimeout / time.Second)

// Config is the decoded configuration file.
type Config struct {
	Algorithm string       `toml:"algorithm"`
	Sample    string       `toml:"sample"`
	Exact     ExactConfig  `toml:"exact"`
	Render    RenderConfig `toml:"render"`
}

// ExactConfig guards the exponential search.
type ExactConfig struct {
	// MaxVertices refuses exact runs on larger graphs. Zero disables the limit.
	MaxVertices int `toml:"max_vertices"`

	// TimeoutSeconds abandons a running exact search. Zero disables it.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// Fallback is the heuristic used when the exact search is refused or
	// abandoned: "greedy" or "sf". Empty disables fallback.
	Fallback string `toml:"fallback"`
}

// RenderConfig configures artifact output.
type RenderConfig struct {
	Engine  string   `toml:"engine"`
	Format  string   `toml:"format"`
	Width   int      `toml:"width"`
	Height  int      `toml:"height"`
	Palette []string `toml:"palette"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Algorithm: pipeline.DefaultAlgorithm,
		Sample:    pipeline.DefaultSample,
		Exact: ExactConfig{
			MaxVertices:    pipeline.DefaultMaxExactVertices,
			TimeoutSeconds: DefaultTimeoutSeconds,
			Fallback:       pipeline.DefaultFallback,
		},
		Render: RenderConfig{
			Engine: nodelink.DefaultEngine,
			Format: nodelink.FormatSVG,
			Width:  nodelink.DefaultWidth,
			Height: nodelink.DefaultHeight,
		},
	}
}

// DefaultPath returns the XDG config file location.
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the file at path over the defaults and validates the result.
// An empty path means [DefaultPath], which may be absent; an explicit path
// must exist. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	} else if err := errors.ValidatePath(path); err != nil {
		return Config{}, err
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return Config{}, errors.New(errors.ErrCodeNotFound, "config file not found: %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "stat %s", path)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := graph.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if _, err := samples.Lookup(c.Sample); err != nil {
		return err
	}
	if c.Exact.MaxVertices < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "exact.max_vertices must be >= 0, got %d", c.Exact.MaxVertices)
	}
	if c.Exact.TimeoutSeconds < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "exact.timeout_seconds must be >= 0, got %d", c.Exact.TimeoutSeconds)
	}
	if c.Exact.Fallback != "" {
		if _, err := pipeline.ParseFallback(c.Exact.Fallback); err != nil {
			return err
		}
	}
	if err := nodelink.ValidateEngine(c.Render.Engine); err != nil {
		return err
	}
	if err := nodelink.ValidateFormat(c.Render.Format); err != nil {
		return err
	}
	if c.Render.Width < 0 || c.Render.Height < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "render size must be >= 0, got %dx%d", c.Render.Width, c.Render.Height)
	}
	_, err := c.Palette()
	return err
}

// Timeout returns the exact search timeout, zero when disabled.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.Exact.TimeoutSeconds) * time.Second
}

// Palette returns the configured render palette.
func (c Config) Palette() (render.Palette, error) {
	return render.ParsePalette(c.Render.Palette)
}

// PipelineOptions converts the configuration to run options.
func (c Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Sample:           c.Sample,
		Algorithm:        c.Algorithm,
		MaxExactVertices: c.Exact.MaxVertices,
		ExactTimeout:     c.Timeout(),
		Fallback:         c.Exact.Fallback,
	}
}

// RenderOptions converts the configuration to render options.
func (c Config) RenderOptions() (pipeline.RenderOptions, error) {
	p, err := c.Palette()
	if err != nil {
		return pipeline.RenderOptions{}, err
	}
	return pipeline.RenderOptions{
		Format:  c.Render.Format,
		Engine:  c.Render.Engine,
		Width:   c.Render.Width,
		Height:  c.Render.Height,
		Palette: p,
	}, nil
}
