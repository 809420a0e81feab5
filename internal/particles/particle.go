package particles

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/particles-background/internal/config"
)

// Kind selects how a particle is drawn away from the pointer.
type Kind uint8

const (
	KindNormal Kind = iota
	KindGlow
)

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindGlow:
		return "glow"
	}
	return "unknown"
}

// Particle is one member of a Field. Only Pos, Vel, Origin and Trail change
// after creation.
type Particle struct {
	Pos       mgl64.Vec2
	Vel       mgl64.Vec2
	Origin    mgl64.Vec2
	HasOrigin bool

	Radius  float64
	Color   colorful.Color
	Kind    Kind
	Opacity float64

	// Trail holds recent positions near the pointer, oldest first.
	Trail []mgl64.Vec2
}

// Palette is the parsed form of config.Palette.
var Palette = mustPalette(config.Palette)

func mustPalette(hexes []string) []colorful.Color {
	out := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic("particles: bad palette color " + h)
		}
		out[i] = c
	}
	return out
}

func (p *Particle) pushTrail(pos mgl64.Vec2) {
	p.Trail = append(p.Trail, pos)
	if len(p.Trail) > config.TrailLength {
		p.dropOldest()
	}
}

// dropOldest shifts in place so the backing array never grows.
func (p *Particle) dropOldest() {
	if len(p.Trail) == 0 {
		return
	}
	copy(p.Trail, p.Trail[1:])
	p.Trail = p.Trail[:len(p.Trail)-1]
}
