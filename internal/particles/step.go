package particles

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/particles-background/internal/config"
)

// Step advances every particle by one frame. Attraction or return easing is
// applied first, then drift, then the wall bounce; all three add up in the
// same frame.
func Step(f *Field, ptr PointerState) {
	for i := range f.Particles {
		f.Particles[i].step(ptr, f.Width, f.Height)
	}
}

func (p *Particle) step(ptr PointerState, w, h float64) {
	if !p.HasOrigin {
		p.Origin = p.Pos
		p.HasOrigin = true
	}

	delta := p.Pos.Sub(ptr.Pos)
	d := delta.Len()
	reach := 2 * ptr.Radius

	if d < reach {
		force := (reach - d) / reach
		angle := math.Atan2(delta.Y(), delta.X())
		pull := mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(force * config.AttractionSpeed)
		p.Pos = p.Pos.Sub(pull)
		if d < ptr.Radius {
			p.pushTrail(p.Pos)
		}
	} else {
		p.Pos = p.Pos.Add(p.Origin.Sub(p.Pos).Mul(config.ReturnSpeed))
		p.dropOldest()
	}

	p.Pos = p.Pos.Add(p.Vel)

	p.Pos[0], p.Vel[0] = bounce(p.Pos[0], p.Vel[0], w)
	p.Pos[1], p.Vel[1] = bounce(p.Pos[1], p.Vel[1], h)
}

// bounce clamps pos into [0, max] and reverses vel if it was outside.
func bounce(pos, vel, max float64) (float64, float64) {
	switch {
	case pos < 0:
		return 0, -vel
	case pos > max:
		return max, -vel
	}
	return pos, vel
}
