package game

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particles-background/internal/render"
)

// Halo rings approximate a canvas shadow blur.
const (
	haloRings = 3
	haloAlpha = 0.12
)

// screenSurface draws on the ebiten screen image handed to Draw.
type screenSurface struct {
	dst        *ebiten.Image
	background color.NRGBA
}

func newScreenSurface() *screenSurface {
	return &screenSurface{background: render.NRGBA(render.Background, 1)}
}

func (s *screenSurface) Clear() {
	s.dst.Fill(s.background)
}

func (s *screenSurface) StrokeLine(from, to mgl64.Vec2, width float64, clr color.NRGBA) {
	vector.StrokeLine(s.dst, float32(from.X()), float32(from.Y()), float32(to.X()), float32(to.Y()), float32(width), clr, true)
}

func (s *screenSurface) FillCircle(center mgl64.Vec2, radius float64, clr color.NRGBA, blur float64) {
	cx, cy := float32(center.X()), float32(center.Y())
	// Widest ring first so the brighter inner rings land on top.
	for i := haloRings; i >= 1 && blur > 0; i-- {
		ring := clr
		ring.A = uint8(float64(clr.A) * haloAlpha / float64(i))
		spread := blur / 2 * float64(i) / haloRings
		vector.DrawFilledCircle(s.dst, cx, cy, float32(radius+spread), ring, true)
	}
	vector.DrawFilledCircle(s.dst, cx, cy, float32(radius), clr, true)
}
