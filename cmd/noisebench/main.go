// Command noisebench times scalar and lane sampling for every fractal and
// noise combination and prints a comparison table.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/noise"
)

type variant struct {
	fractal noise.FractalType
	noise   noise.NoiseType
}

func (v variant) String() string {
	return fmt.Sprintf("%s/%s", v.fractal, v.noise)
}

type result struct {
	variant variant
	scalar  time.Duration
	lanes   time.Duration
	min     float32
	max     float32
}

// Speedup returns how many times faster the lane path ran.
func (r result) Speedup() float64 {
	if r.lanes <= 0 {
		return 0
	}
	return float64(r.scalar) / float64(r.lanes)
}

func main() {
	width := flag.Int("width", 2048, "buffer width")
	height := flag.Int("height", 1024, "buffer height")
	octaves := flag.Int("octaves", 5, "number of octaves")
	runs := flag.Int("runs", 3, "timed runs per variant; the fastest is reported")
	workers := flag.Int("workers", runtime.NumCPU(), "worker goroutines per sample call")
	concurrency := flag.Int("concurrency", 1, "variants timed at the same time")
	flag.Parse()

	params := noise.DefaultParams()
	params.Octaves = *octaves

	variants := allVariants()
	results := make([]result, len(variants))

	p := message.NewPrinter(language.English)
	p.Printf("Timing %d variants at %dx%d (%d octaves, %d workers, lane width %d)\n",
		len(variants), *width, *height, *octaves, *workers, noise.LaneWidth())

	var g errgroup.Group
	g.SetLimit(max(1, *concurrency))
	for i, v := range variants {
		g.Go(func() error {
			res, err := measure(v, *width, *height, params, *runs, noise.WithWorkers(*workers))
			if err != nil {
				return fmt.Errorf("%s: %w", v, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("Benchmark failed: %v", err)
	}

	report(p, results)
}

func allVariants() []variant {
	fractals := []noise.FractalType{noise.Plain, noise.FBM, noise.Turbulence, noise.Ridge}
	kinds := []noise.NoiseType{noise.Perlin, noise.Simplex}

	out := make([]variant, 0, len(fractals)*len(kinds))
	for _, f := range fractals {
		for _, k := range kinds {
			out = append(out, variant{fractal: f, noise: k})
		}
	}
	return out
}

// measure samples v runs times on each path and keeps the fastest timings.
func measure(v variant, width, height int, p noise.Params, runs int, opts ...noise.SampleOption) (result, error) {
	res := result{variant: v}
	runs = max(1, runs)

	for range runs {
		start := time.Now()
		if _, err := noise.SampleScalar(width, height, p, v.fractal, v.noise, opts...); err != nil {
			return res, err
		}
		res.scalar = fastest(res.scalar, time.Since(start))

		start = time.Now()
		buf, err := noise.Sample(width, height, p, v.fractal, v.noise, opts...)
		if err != nil {
			return res, err
		}
		res.lanes = fastest(res.lanes, time.Since(start))
		res.min, res.max = buf.Min(), buf.Max()
	}
	return res, nil
}

func fastest(best, d time.Duration) time.Duration {
	if best == 0 || d < best {
		return d
	}
	return best
}

func report(p *message.Printer, results []result) {
	p.Printf("\n%-20s %14s %14s %8s %10s %10s\n", "variant", "scalar µs", "lanes µs", "speedup", "min", "max")
	for _, r := range results {
		p.Printf("%-20s %14d %14d %7.2fx %10.4f %10.4f\n",
			r.variant, r.scalar.Microseconds(), r.lanes.Microseconds(), r.Speedup(), r.min, r.max)
	}
}
