package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Surface is a raster target for one frame. Every call carries its complete
// style; no shadow or alpha setting survives from one call to the next.
type Surface interface {
	Clear()
	StrokeLine(from, to mgl64.Vec2, width float64, clr color.NRGBA)
	// FillCircle fills a disk. A positive blur asks for a soft halo of that
	// size in the same color around it.
	FillCircle(center mgl64.Vec2, radius float64, clr color.NRGBA, blur float64)
}
