package main

import (
	"bytes"
	"flag"
	"image"
	"image/png"
	"testing"

	"golang.org/x/image/tiff"

	"github.com/gogpu/noise"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("noisedemo", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-width", "64", "-fractal", "ridge", "-octaves", "5", "-plane", "-lanes", "4"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Width != 64 || cfg.Fractal != "ridge" || cfg.Octaves != 5 || !cfg.Plane || cfg.Lanes != 4 {
		t.Errorf("config = %+v", cfg)
	}
	if got := cfg.Params().Octaves; got != 5 {
		t.Errorf("Params().Octaves = %d, want 5", got)
	}
	if got := len(cfg.Options()); got != 3 {
		t.Errorf("Options() returned %d options, want 3", got)
	}
}

func TestPreviewSize(t *testing.T) {
	tests := []struct {
		bw, bh, w, h int
		wantW, wantH int
	}{
		{1024, 512, 256, 0, 256, 128},
		{1024, 512, 0, 64, 128, 64},
		{1024, 512, 100, 100, 100, 100},
		{4, 1000, 1, 0, 1, 250},
	}

	for _, tt := range tests {
		w, h := previewSize(tt.bw, tt.bh, tt.w, tt.h)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("previewSize(%d, %d, %d, %d) = %d, %d, want %d, %d",
				tt.bw, tt.bh, tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestEncode(t *testing.T) {
	buf, err := noise.Sample(32, 16, noise.DefaultParams(), noise.FBM, noise.Perlin)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	img := buf.Image()

	tests := []struct {
		ext    string
		decode func(*bytes.Buffer) (image.Image, error)
	}{
		{".png", func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) }},
		{".TIFF", func(b *bytes.Buffer) (image.Image, error) { return tiff.Decode(b) }},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			var out bytes.Buffer
			if err := encode(&out, tt.ext, img); err != nil {
				t.Fatalf("encode() error = %v", err)
			}
			got, err := tt.decode(&out)
			if err != nil {
				t.Fatalf("decode error = %v", err)
			}
			if got.Bounds() != img.Bounds() {
				t.Errorf("bounds = %v, want %v", got.Bounds(), img.Bounds())
			}
		})
	}

	if err := encode(&bytes.Buffer{}, ".jpg", img); err == nil {
		t.Error("encode(.jpg) succeeded, want error")
	}
}
