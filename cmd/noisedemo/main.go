// Command noisedemo samples one noise field and writes it as a grayscale image.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"

	"github.com/gogpu/noise"
)

func main() {
	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	noise.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	fractal, err := noise.ParseFractalType(cfg.Fractal)
	if err != nil {
		log.Fatalf("Invalid -fractal: %v", err)
	}
	kind, err := noise.ParseNoiseType(cfg.Noise)
	if err != nil {
		log.Fatalf("Invalid -noise: %v", err)
	}

	buf, err := noise.Sample(cfg.Width, cfg.Height, cfg.Params(), fractal, kind, cfg.Options()...)
	if err != nil {
		log.Fatalf("Failed to sample: %v", err)
	}

	var img image.Image = buf.Image()
	if cfg.PreviewWidth > 0 || cfg.PreviewHeight > 0 {
		w, h := previewSize(buf.Width(), buf.Height(), cfg.PreviewWidth, cfg.PreviewHeight)
		img = buf.Preview(w, h)
	}

	if err := save(cfg.Output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("%s %s saved to %s (%dx%d, range [%.4f, %.4f])\n",
		fractal, kind, cfg.Output, buf.Width(), buf.Height(), buf.Min(), buf.Max())
}

// previewSize fills in a missing preview dimension from the buffer's aspect
// ratio.
func previewSize(bw, bh, w, h int) (int, int) {
	switch {
	case w <= 0:
		w = max(1, h*bw/bh)
	case h <= 0:
		h = max(1, w*bh/bw)
	}
	return w, h
}

func save(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return encode(f, filepath.Ext(path), img)
}

// encode writes img in the format named by ext.
func encode(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}
