package render

import (
	"errors"
	"math"

	"github.com/iburimskiy/particles-background/internal/config"
	"github.com/iburimskiy/particles-background/internal/particles"
)

// ErrNoSurface is returned by Draw when there is nothing to draw on.
var ErrNoSurface = errors.New("render: no surface")

// Stats describes what the last Draw put on the surface.
type Stats struct {
	Particles   int
	Trails      int
	Glowing     int
	Connections int
}

// Renderer draws a Field. It keeps scratch space between frames and is not
// safe for concurrent use.
type Renderer struct {
	near []float64 // per-particle distance to the pointer
}

func New() *Renderer {
	return &Renderer{}
}

// Draw clears dst and paints trails and bodies, then connections on top.
// The field is only read.
func (r *Renderer) Draw(dst Surface, f *particles.Field, ptr particles.PointerState) (Stats, error) {
	if dst == nil {
		return Stats{}, ErrNoSurface
	}
	dst.Clear()

	st := Stats{Particles: len(f.Particles)}
	r.near = r.near[:0]

	for i := range f.Particles {
		p := &f.Particles[i]
		if drawTrail(dst, p) {
			st.Trails++
		}

		d := p.Pos.Sub(ptr.Pos).Len()
		r.near = append(r.near, d)

		b := bodyOf(p, d, ptr.Radius)
		if b.blur > 0 {
			st.Glowing++
		}
		dst.FillCircle(p.Pos, b.radius, NRGBA(p.Color, config.BaseColorAlpha*b.alpha), b.blur)
	}

	st.Connections = r.drawConnections(dst, f.Particles, ptr.Radius)
	return st, nil
}

func drawTrail(dst Surface, p *particles.Particle) bool {
	if len(p.Trail) < 2 {
		return false
	}
	clr := NRGBA(p.Color, config.TrailAlpha)
	for i := 1; i < len(p.Trail); i++ {
		dst.StrokeLine(p.Trail[i-1], p.Trail[i], config.TrailWidth, clr)
	}
	return true
}

type body struct {
	radius float64
	alpha  float64
	blur   float64
}

// bodyOf styles a particle at distance d from the pointer.
func bodyOf(p *particles.Particle, d, radius float64) body {
	switch {
	case d < radius:
		i := 1 - d/radius
		return body{
			radius: p.Radius * (1 + i*config.NearRadiusGain),
			alpha:  clamp01(p.Opacity + i*config.NearAlphaGain),
			blur:   config.NearBlur + i*config.NearBlurGain,
		}
	case p.Kind == particles.KindGlow:
		return body{radius: p.Radius, alpha: p.Opacity, blur: config.GlowBlur}
	default:
		return body{radius: p.Radius, alpha: p.Opacity * config.NormalAlpha}
	}
}

type link struct {
	alpha float64
	width float64
}

// linkOf styles the connection between two particles d apart whose pointer
// distances are d1 and d2. ok is false when they are too far apart.
func linkOf(d, d1, d2, radius float64) (l link, ok bool) {
	if d >= config.ConnectionDistance {
		return link{}, false
	}
	l = link{
		alpha: (1 - d/config.ConnectionDistance) * config.ConnectionFade,
		width: config.ConnectionWidth,
	}
	if d1 < radius || d2 < radius {
		g := math.Max(1-d1/radius, 1-d2/radius)
		l.alpha += g * config.ConnectionGlowAlpha
		l.width += g * config.ConnectionGlowWidth
	}
	return l, true
}

// drawConnections checks every unordered pair. Quadratic, which the
// MaxParticles cap keeps affordable.
func (r *Renderer) drawConnections(dst Surface, ps []particles.Particle, radius float64) int {
	n := 0
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			d := ps[i].Pos.Sub(ps[j].Pos).Len()
			l, ok := linkOf(d, r.near[i], r.near[j], radius)
			if !ok {
				continue
			}
			dst.StrokeLine(ps[i].Pos, ps[j].Pos, l.width, NRGBA(connectionColor, l.alpha))
			n++
		}
	}
	return n
}
