package particles

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/particles-background/internal/config"
)

// PointerState is the pointer as seen by one tick.
type PointerState struct {
	Pos    mgl64.Vec2
	Radius float64
}

// Pointer is written by input handlers and read once per tick. Positions are
// swapped whole, so readers on another goroutine never see a torn x/y pair.
// The position is kept when the pointer leaves the viewport.
type Pointer struct {
	pos    atomic.Pointer[mgl64.Vec2]
	radius float64
}

// NewPointer returns a pointer at (0,0) with the fixed proximity radius.
func NewPointer() *Pointer {
	p := &Pointer{radius: config.PointerRadius}
	p.pos.Store(&mgl64.Vec2{})
	return p
}

func (p *Pointer) Move(x, y float64) {
	v := mgl64.Vec2{x, y}
	p.pos.Store(&v)
}

func (p *Pointer) Snapshot() PointerState {
	return PointerState{Pos: *p.pos.Load(), Radius: p.radius}
}
