package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/chromatic/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
algorithm = "exact"
sample    = "grid"

[exact]
max_vertices    = 20
timeout_seconds = 3
fallback        = "greedy"

[render]
engine  = "fdp"
format  = "png"
width   = 400
palette = ["#112233", "#abc"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Algorithm != "exact" || cfg.Sample != "grid" {
		t.Errorf("top level = %q, %q", cfg.Algorithm, cfg.Sample)
	}
	if cfg.Exact.MaxVertices != 20 || cfg.Timeout() != 3*time.Second || cfg.Exact.Fallback != "greedy" {
		t.Errorf("exact = %+v", cfg.Exact)
	}
	if cfg.Render.Engine != "fdp" || cfg.Render.Format != "png" || cfg.Render.Width != 400 {
		t.Errorf("render = %+v", cfg.Render)
	}
	if cfg.Render.Height != Default().Render.Height {
		t.Errorf("unset height should keep default, got %d", cfg.Render.Height)
	}

	p, err := cfg.Palette()
	if err != nil {
		t.Fatal(err)
	}
	if p.String() != "#112233,#AABBCC" {
		t.Errorf("palette = %s", p)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"syntax", `algorithm = `, errors.ErrCodeInvalidConfig},
		{"unknown key", `colour = "red"`, errors.ErrCodeInvalidConfig},
		{"unknown nested key", "[exact]\nmax = 3", errors.ErrCodeInvalidConfig},
		{"algorithm", `algorithm = "dsatur"`, errors.ErrCodeInvalidAlgorithm},
		{"sample", `sample = "hypercube"`, errors.ErrCodeInvalidSample},
		{"exact fallback", "[exact]\nfallback = \"exact\"", errors.ErrCodeInvalidAlgorithm},
		{"negative limit", "[exact]\nmax_vertices = -1", errors.ErrCodeInvalidConfig},
		{"negative timeout", "[exact]\ntimeout_seconds = -5", errors.ErrCodeInvalidConfig},
		{"engine", "[render]\nengine = \"twopi\"", errors.ErrCodeInvalidConfig},
		{"format", "[render]\nformat = \"pdf\"", errors.ErrCodeInvalidFormat},
		{"size", "[render]\nwidth = -1", errors.ErrCodeInvalidConfig},
		{"palette", "[render]\npalette = [\"red\"]", errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoadExplicitMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Load(missing) = %v, want NOT_FOUND", err)
	}
}

func TestLoadDefaultPathMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}
	if cfg.Algorithm != Default().Algorithm || cfg.Exact != Default().Exact {
		t.Errorf("missing default file should give defaults, got %+v", cfg)
	}
}

func TestLoadDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte(`algorithm = "sf"`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Algorithm != "sf" {
		t.Errorf("Algorithm = %q, want sf", cfg.Algorithm)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")
	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := "/tmp/custom-config/chromatic/config.toml"; path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	path, err = DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".config", appName, fileName); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}

func TestPipelineOptions(t *testing.T) {
	cfg := Default()
	cfg.Algorithm = "exact"
	cfg.Exact.TimeoutSeconds = 2

	opts := cfg.PipelineOptions()
	if opts.Algorithm != "exact" || opts.ExactTimeout != 2*time.Second || opts.Fallback != "sf" {
		t.Errorf("PipelineOptions() = %+v", opts)
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("converted options should validate: %v", err)
	}

	ropts, err := cfg.RenderOptions()
	if err != nil {
		t.Fatal(err)
	}
	if ropts.Format != "svg" || ropts.Engine != "neato" || len(ropts.Palette) != 10 {
		t.Errorf("RenderOptions() = %+v", ropts)
	}
}
