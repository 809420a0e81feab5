package particles

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/particles-background/internal/config"
)

// Field owns every particle on a canvas of Width x Height.
type Field struct {
	Width     float64
	Height    float64
	Particles []Particle

	max int
}

// Count returns the number of particles for a w x h canvas: one per
// AreaPerParticle square units, capped at max and never above
// config.MaxParticles.
func Count(w, h float64, max int) int {
	if w <= 0 || h <= 0 || max <= 0 {
		return 0
	}
	n := int(math.Floor(w * h / config.AreaPerParticle))
	return min(n, max, config.MaxParticles)
}

// NewField builds a field for a w x h canvas holding at most max particles.
func NewField(w, h float64, max int, rng *rand.Rand) *Field {
	f := &Field{max: max}
	f.Rebuild(w, h, rng)
	return f
}

// Rebuild discards every particle and fills the field again for a w x h canvas.
func (f *Field) Rebuild(w, h float64, rng *rand.Rand) {
	f.Width, f.Height = w, h
	n := Count(w, h, f.max)
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = newParticle(w, h, rng)
	}
	f.Particles = ps
}

func newParticle(w, h float64, rng *rand.Rand) Particle {
	kind := KindNormal
	if rng.Float64() < config.GlowChance {
		kind = KindGlow
	}
	return Particle{
		Pos:     mgl64.Vec2{rng.Float64() * w, rng.Float64() * h},
		Vel:     mgl64.Vec2{speed(rng), speed(rng)},
		Radius:  between(rng, config.MinRadius, config.MaxRadius),
		Color:   Palette[rng.IntN(len(Palette))],
		Kind:    kind,
		Opacity: between(rng, config.MinOpacity, config.MaxOpacity),
		Trail:   make([]mgl64.Vec2, 0, config.TrailLength+1),
	}
}

func speed(rng *rand.Rand) float64 {
	return between(rng, -config.MaxSpeed, config.MaxSpeed)
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// NewRand returns a PCG-backed source. A zero seed is replaced by the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}
