package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/particles-background/internal/config"
	"github.com/iburimskiy/particles-background/internal/render"
)

const (
	glowRune  = '●'
	bodyRune  = '•'
	smallRune = '∙'
	lineRune  = '·'

	smallRadius = 2.0
	// minLineAlpha drops segments that would blend into the background anyway.
	minLineAlpha = 0.01
)

// Surface paints onto a tcell screen, one cell per CellWidth x CellHeight
// block of virtual pixels. Alpha is resolved by blending toward the
// background, since terminal cells have no transparency.
type Surface struct {
	screen tcell.Screen
	bg     tcell.Style

	cols, rows int
	bodies     []bool    // cells holding a particle this frame
	lines      []float64 // strongest line alpha per cell this frame
}

func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{
		screen: screen,
		bg:     tcell.StyleDefault.Background(cellColor(render.Background)),
	}
}

func cellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (s *Surface) Clear() {
	s.cols, s.rows = s.screen.Size()
	n := s.cols * s.rows
	if cap(s.bodies) < n {
		s.bodies = make([]bool, n)
		s.lines = make([]float64, n)
	}
	s.bodies = s.bodies[:n]
	s.lines = s.lines[:n]
	clear(s.bodies)
	clear(s.lines)
	s.screen.Fill(' ', s.bg)
}

// cell maps a virtual pixel to a cell index. Points on the far edge of the
// canvas belong to the last row or column.
func (s *Surface) cell(p mgl64.Vec2) (x, y int, ok bool) {
	if math.IsNaN(p.X()) || math.IsNaN(p.Y()) {
		return 0, 0, false
	}
	x = int(math.Floor(p.X() / config.CellWidth))
	y = int(math.Floor(p.Y() / config.CellHeight))
	if x == s.cols {
		x--
	}
	if y == s.rows {
		y--
	}
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return 0, 0, false
	}
	return x, y, true
}

// blend mixes clr over the background by its alpha.
func blend(clr color.NRGBA) (tcell.Color, float64) {
	a := float64(clr.A) / 255
	fg := colorful.Color{R: float64(clr.R) / 255, G: float64(clr.G) / 255, B: float64(clr.B) / 255}
	return cellColor(render.Background.BlendRgb(fg, a)), a
}

func (s *Surface) FillCircle(center mgl64.Vec2, radius float64, clr color.NRGBA, blur float64) {
	x, y, ok := s.cell(center)
	if !ok {
		return
	}
	r := smallRune
	switch {
	case blur > 0:
		r = glowRune
	case radius >= smallRadius:
		r = bodyRune
	}
	fg, _ := blend(clr)
	s.screen.SetContent(x, y, r, nil, s.bg.Foreground(fg))
	s.bodies[y*s.cols+x] = true
}

// StrokeLine samples the segment once per cell it crosses. Width is ignored;
// a cell is the thinnest mark a terminal can make.
func (s *Surface) StrokeLine(from, to mgl64.Vec2, width float64, clr color.NRGBA) {
	fg, a := blend(clr)
	if a < minLineAlpha {
		return
	}
	style := s.bg.Foreground(fg)

	d := to.Sub(from)
	steps := int(math.Ceil(math.Max(math.Abs(d.X())/config.CellWidth, math.Abs(d.Y())/config.CellHeight)))
	steps = max(steps, 1)
	for i := 0; i <= steps; i++ {
		p := from.Add(d.Mul(float64(i) / float64(steps)))
		x, y, ok := s.cell(p)
		if !ok {
			continue
		}
		idx := y*s.cols + x
		if s.bodies[idx] || s.lines[idx] >= a {
			continue
		}
		s.lines[idx] = a
		s.screen.SetContent(x, y, lineRune, nil, style)
	}
}
