package noise

import "github.com/gogpu/noise/internal/fractal"

// Params are the fractal parameters of one sampling call.
type Params struct {
	// Frequency scales the sample point for the first octave.
	Frequency float32

	// Lacunarity multiplies the frequency after each octave.
	Lacunarity float32

	// Gain multiplies the amplitude after each octave.
	Gain float32

	// Offset is the level each absolute ridge octave is subtracted from
	// before squaring. Only Ridge uses it.
	Offset float32

	// Octaves is the number of kernel evaluations per cell. Must be at least 1.
	Octaves int
}

// DefaultParams returns three octaves at base frequency 1, doubling the
// frequency and halving the amplitude per octave, with ridge offset 1.
func DefaultParams() Params {
	return Params{
		Frequency:  1,
		Lacunarity: 2,
		Gain:       0.5,
		Offset:     1,
		Octaves:    3,
	}
}

func (p Params) settings() fractal.Settings {
	return fractal.Settings{
		Frequency:  p.Frequency,
		Lacunarity: p.Lacunarity,
		Gain:       p.Gain,
		Offset:     p.Offset,
		Octaves:    p.Octaves,
	}
}
