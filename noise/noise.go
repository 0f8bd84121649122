// Package noise provides deterministic coherent noise fields used to seed
// spatial heterogeneity in fuel load, moisture, and turbulent wind
// perturbation. All generators are seeded so that repeated runs with the
// same seed reproduce identical fields byte-for-byte, which replication
// (package replication) depends on.
package noise

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Field wraps a seeded 2D/3D gradient noise generator with fractal
// Brownian motion (fBm) support. It is safe for concurrent read-only use
// once constructed: Eval2/Eval3/FBM2/FBM3 take no locks.
type Field struct {
	perm [512]int
	simp opensimplex.Noise
}

// New builds a noise field from the given seed. Distinct fields (fuel
// heterogeneity, wind turbulence, ...) must use distinct seeds -- callers
// should derive seeds from a base seed using distinct large primes so the
// resulting fields are statistically independent.
func New(seed int64) *Field {
	f := &Field{simp: opensimplex.New(seed)}

	rng := rand.New(rand.NewSource(seed))
	var p [256]int
	for i := range p {
		p[i] = i
	}
	for i := len(p) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	for i := 0; i < 256; i++ {
		f.perm[i] = p[i]
		f.perm[i+256] = p[i]
	}
	return f
}

// Seed primes used to derive independent noise fields from one base seed.
// Each must be prime and distinct so that additive or multiplicative
// combination of base seeds never aliases two fields onto the same
// permutation table.
const (
	SeedPrimeFuelHeterogeneity int64 = 104729
	SeedPrimeWindTurbulence    int64 = 224737
	SeedPrimeMoistureVariation int64 = 350377
	SeedPrimeEmberScatter      int64 = 472882027
)

// DeriveSeed combines a base seed with a field-specific prime offset.
func DeriveSeed(base int64, prime int64) int64 {
	return base*1000003 + prime
}

// Eval2 returns a Perlin-style gradient noise value in [-1, 1] for 2D
// coordinates, using Hermite (fade) interpolation between lattice
// gradients.
func (f *Field) Eval2(x, y float64) float64 {
	return f.Eval3(x, y, 0)
}

// Eval3 returns a Perlin-style gradient noise value in [-1, 1] for 3D
// coordinates.
func (f *Field) Eval3(x, y, z float64) float64 {
	X := int(math.Floor(x)) & 255
	Y := int(math.Floor(y)) & 255
	Z := int(math.Floor(z)) & 255

	x -= math.Floor(x)
	y -= math.Floor(y)
	z -= math.Floor(z)

	u := fade(x)
	v := fade(y)
	w := fade(z)

	A := f.perm[X] + Y
	AA := f.perm[A] + Z
	AB := f.perm[A+1] + Z
	B := f.perm[X+1] + Y
	BA := f.perm[B] + Z
	BB := f.perm[B+1] + Z

	return lerp(w, lerp(v, lerp(u, grad(f.perm[AA], x, y, z),
		grad(f.perm[BA], x-1, y, z)),
		lerp(u, grad(f.perm[AB], x, y-1, z),
			grad(f.perm[BB], x-1, y-1, z))),
		lerp(v, lerp(u, grad(f.perm[AA+1], x, y, z-1),
			grad(f.perm[BA+1], x-1, y, z-1)),
			lerp(u, grad(f.perm[AB+1], x, y-1, z-1),
				grad(f.perm[BB+1], x-1, y-1, z-1))))
}

// FBM2 accumulates octaves of Eval2 noise into fractal Brownian motion,
// returning a value roughly in [-1, 1] (exact range narrows as gain < 1).
func (f *Field) FBM2(x, y float64, octaves int, lacunarity, gain float64) float64 {
	sum, amp, freq := 0.0, 1.0, 1.0
	for o := 0; o < octaves; o++ {
		sum += amp * f.Eval2(x*freq, y*freq)
		freq *= lacunarity
		amp *= gain
	}
	return sum
}

// FBM3 is the 3D analogue of FBM2, used to evolve a 2D field over time by
// sampling the third coordinate as a time offset.
func (f *Field) FBM3(x, y, z float64, octaves int, lacunarity, gain float64) float64 {
	sum, amp, freq := 0.0, 1.0, 1.0
	for o := 0; o < octaves; o++ {
		sum += amp * f.Eval3(x*freq, y*freq, z*freq)
		freq *= lacunarity
		amp *= gain
	}
	return sum
}

// TiledFBM4 samples 4D OpenSimplex noise around a 2-torus so the result
// tiles seamlessly across a periodic domain, with a time offset that
// rotates the sampling plane rather than translating it -- this morphs
// the pattern over time instead of scrolling it, matching how wind
// turbulence fields should evolve without a visible drift direction.
func (f *Field) TiledFBM4(u, v, t float64, octaves int, lacunarity, gain float64) float64 {
	twoPi := 2.0 * math.Pi
	angleU := u * twoPi
	angleV := v * twoPi

	baseX := math.Cos(angleU)
	baseY := math.Sin(angleU)
	baseZ := math.Cos(angleV)
	baseW := math.Sin(angleV)

	rotXW := t * 0.7
	rotYZ := t * 0.53
	cosXW, sinXW := math.Cos(rotXW), math.Sin(rotXW)
	cosYZ, sinYZ := math.Cos(rotYZ), math.Sin(rotYZ)

	nx := baseX*cosXW - baseW*sinXW
	nw := baseX*sinXW + baseW*cosXW
	ny := baseY*cosYZ - baseZ*sinYZ
	nz := baseY*sinYZ + baseZ*cosYZ

	sum, amp, freq := 0.0, 0.5, 1.0
	for o := 0; o < octaves; o++ {
		n := f.simp.Eval4(nx*freq, ny*freq, nz*freq, nw*freq)
		sum += amp * n
		freq *= lacunarity
		amp *= gain
	}
	return sum
}

// Normalize01 maps a noise value from [-1, 1] to [0, 1], clamping any
// overshoot from high-octave fBm accumulation.
func Normalize01(v float64) float64 {
	n := (v + 1) * 0.5
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := y
	if h >= 4 {
		if h == 12 || h == 14 {
			v = x
		} else {
			v = z
		}
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
