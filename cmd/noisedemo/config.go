package main

import (
	"flag"
	"runtime"

	"github.com/gogpu/noise"
)

// Config represents the command-line parameters for noisedemo.
type Config struct {
	Width   int
	Height  int
	Fractal string
	Noise   string

	Frequency  float64
	Lacunarity float64
	Gain       float64
	Offset     float64
	Octaves    int

	Workers int
	Lanes   int

	Plane bool
	Step  float64
	Z     float64

	PreviewWidth  int
	PreviewHeight int
	Output        string
	Verbose       bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	p := noise.DefaultParams()
	return &Config{
		Width:      1024,
		Height:     512,
		Fractal:    noise.FBM.String(),
		Noise:      noise.Perlin.String(),
		Frequency:  float64(p.Frequency),
		Lacunarity: float64(p.Lacunarity),
		Gain:       float64(p.Gain),
		Offset:     float64(p.Offset),
		Octaves:    p.Octaves,
		Workers:    runtime.NumCPU(),
		Step:       1.0 / 64,
		Output:     "noise.png",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "buffer width")
	fs.IntVar(&c.Height, "height", c.Height, "buffer height")
	fs.StringVar(&c.Fractal, "fractal", c.Fractal, "fractal type: plain, fbm, turbulence or ridge")
	fs.StringVar(&c.Noise, "noise", c.Noise, "noise type: perlin or simplex")
	fs.Float64Var(&c.Frequency, "frequency", c.Frequency, "base frequency")
	fs.Float64Var(&c.Lacunarity, "lacunarity", c.Lacunarity, "frequency multiplier per octave")
	fs.Float64Var(&c.Gain, "gain", c.Gain, "amplitude multiplier per octave")
	fs.Float64Var(&c.Offset, "offset", c.Offset, "ridge offset")
	fs.IntVar(&c.Octaves, "octaves", c.Octaves, "number of octaves")
	fs.IntVar(&c.Workers, "workers", c.Workers, "number of worker goroutines")
	fs.IntVar(&c.Lanes, "lanes", c.Lanes, "lane width 1, 4 or 8 (0 = detect)")
	fs.BoolVar(&c.Plane, "plane", c.Plane, "sample a plane instead of the sphere")
	fs.Float64Var(&c.Step, "step", c.Step, "plane cell size")
	fs.Float64Var(&c.Z, "z", c.Z, "plane z coordinate")
	fs.IntVar(&c.PreviewWidth, "preview-width", c.PreviewWidth, "resample the image to this width (0 = buffer width)")
	fs.IntVar(&c.PreviewHeight, "preview-height", c.PreviewHeight, "resample the image to this height (0 = buffer height)")
	fs.StringVar(&c.Output, "output", c.Output, "output file (.png, .tif or .tiff)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "debug logging")
}

// Params returns the fractal parameters.
func (c *Config) Params() noise.Params {
	return noise.Params{
		Frequency:  float32(c.Frequency),
		Lacunarity: float32(c.Lacunarity),
		Gain:       float32(c.Gain),
		Offset:     float32(c.Offset),
		Octaves:    c.Octaves,
	}
}

// Options returns the sampling options.
func (c *Config) Options() []noise.SampleOption {
	opts := []noise.SampleOption{noise.WithWorkers(c.Workers)}
	if c.Lanes != 0 {
		opts = append(opts, noise.WithLaneWidth(c.Lanes))
	}
	if c.Plane {
		opts = append(opts, noise.WithPlane(noise.Plane{Step: float32(c.Step), Z: float32(c.Z)}))
	}
	return opts
}
