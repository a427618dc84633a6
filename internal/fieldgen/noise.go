package fieldgen

import "math"

// Deterministic 2D value noise with multiple octaves. Lattice values come
// from an integer hash, so equal inputs give equal outputs on every run.

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func hash2(x, y int64, seed int64) uint64 {
	// SplitMix64 style integer hash
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0x517CC1B727220A95 + uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	v = v ^ (v >> 31)
	return v
}

func latticeValue(x, y int64, seed int64) float64 {
	// Map to [0,1]
	h := hash2(x, y, seed)
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func valueNoise2D(x, y float64, seed int64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)

	fx := fade(x - x0)
	fy := fade(y - y0)

	ix, iy := int64(x0), int64(y0)
	v00 := latticeValue(ix, iy, seed)
	v10 := latticeValue(ix+1, iy, seed)
	v01 := latticeValue(ix, iy+1, seed)
	v11 := latticeValue(ix+1, iy+1, seed)

	return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fy) // [0,1]
}

// Noise is a seeded fractal value noise.
type Noise struct {
	Seed        int64
	Octaves     int
	Frequency   float64 // lattice cells per sample on the first octave
	Persistence float64 // amplitude factor per octave
	Lacunarity  float64 // frequency factor per octave
}

// DefaultNoise returns four octaves of blob-sized noise.
func DefaultNoise(seed int64) Noise {
	return Noise{
		Seed:        seed,
		Octaves:     4,
		Frequency:   0.08,
		Persistence: 0.5,
		Lacunarity:  2.0,
	}
}

// At samples the noise in [0,1].
func (n Noise) At(x, y float64) float64 {
	amplitude := 1.0
	frequency := n.Frequency
	sum := 0.0
	norm := 0.0
	for i := range n.Octaves {
		v := valueNoise2D(x*frequency, y*frequency, n.Seed+int64(i*131))
		sum += v * amplitude
		norm += amplitude
		amplitude *= n.Persistence
		frequency *= n.Lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
