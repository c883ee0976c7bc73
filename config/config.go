// Package config holds the settings shared by every tutorial: window and
// context parameters, the texture path and the scene constants that the
// lighting tutorials expose.
//
// Values come from three layers, later ones winning: the defaults a
// tutorial starts from, an optional TOML file and command line flags.
package config

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

type Window struct {
	Title   string `toml:"title"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	GLMajor int    `toml:"gl_major"`
	GLMinor int    `toml:"gl_minor"`
	Core    bool   `toml:"core"`
	Debug   bool   `toml:"debug"`
	VSync   bool   `toml:"vsync"`
}

type Scene struct {
	AmbientIntensity  float32 `toml:"ambient_intensity"`
	AmbientStep       float32 `toml:"ambient_step"`
	DiffuseIntensity  float32 `toml:"diffuse_intensity"`
	SpecularIntensity float32 `toml:"specular_intensity"`
	SpecularPower     float32 `toml:"specular_power"`
	CameraStep        float32 `toml:"camera_step"`
	MouseSensitivity  float32 `toml:"mouse_sensitivity"`
}

type Config struct {
	Window  Window `toml:"window"`
	Texture string `toml:"texture"`
	Scene   Scene  `toml:"scene"`
}

// Default returns the settings of the GL 4.5 tutorials: a 640x480 window
// with vsync and the bundled test texture.
func Default(title string) Config {
	return Config{
		Window: Window{
			Title:   title,
			Width:   640,
			Height:  480,
			GLMajor: 4,
			GLMinor: 5,
			VSync:   true,
		},
		Texture: "data/test.png",
		Scene: Scene{
			AmbientIntensity:  0.1,
			AmbientStep:       0.05,
			DiffuseIntensity:  0.25,
			SpecularIntensity: 1,
			SpecularPower:     32,
			CameraStep:        0.1,
			MouseSensitivity:  0.1,
		},
	}
}

// Legacy returns Default with a GL 2.0 context.
func Legacy(title string) Config {
	cfg := Default(title)
	cfg.Window.GLMajor = 2
	cfg.Window.GLMinor = 0
	return cfg
}

// Load overlays the TOML file at path onto cfg. Keys missing from the file
// keep their current value; unknown keys are an error.
func Load(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return errors.Errorf("config %s: %s", path, strict.String())
		}
		return errors.Wrapf(err, "config %s", path)
	}
	return validate(cfg)
}

func validate(cfg *Config) error {
	w := cfg.Window
	if w.Width <= 0 || w.Height <= 0 {
		return errors.Errorf("invalid window size %dx%d", w.Width, w.Height)
	}
	if w.GLMajor < 2 {
		return errors.Errorf("unsupported GL version %d.%d", w.GLMajor, w.GLMinor)
	}
	if cfg.Scene.SpecularPower < 0 {
		return errors.Errorf("negative specular power %v", cfg.Scene.SpecularPower)
	}
	return nil
}

// Parse reads the shared tutorial flags from args into cfg. A -config file
// is applied first so that explicit flags override it.
func Parse(name string, args []string, cfg *Config) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	path := fs.String("config", "", "TOML file overriding the defaults")
	vsync := fs.Bool("vsync", cfg.Window.VSync, "synchronise buffer swaps with the display")
	debug := fs.Bool("debug", cfg.Window.Debug, "request a debug context and log verbosely")
	texture := fs.String("texture", cfg.Texture, "texture image `path`")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *path != "" {
		if err := Load(*path, cfg); err != nil {
			return loadError{err}
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "vsync":
			cfg.Window.VSync = *vsync
		case "debug":
			cfg.Window.Debug = *debug
		case "texture":
			cfg.Texture = *texture
		}
	})
	return nil
}

// ParseArgs is Parse over the process arguments. Like flag.ExitOnError it
// exits on a bad command line, after the flag package has printed why.
func ParseArgs(cfg *Config) {
	err := Parse(os.Args[0], os.Args[1:], cfg)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(0)
	case errors.As(err, new(loadError)):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	default:
		os.Exit(2)
	}
}

// loadError marks failures the flag package has not already reported.
type loadError struct{ error }

func (e loadError) Unwrap() error { return e.error }
