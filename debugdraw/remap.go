package debugdraw

import (
	"github.com/jakecoffman/cp"
)

// Remap is the static linear map from physics space to screen space:
// per-axis scale, per-axis shear and a translation.
//
//	x' = ScaleX*x + ShearX*y + OffsetX
//	y' = ShearY*x + ScaleY*y + OffsetY
type Remap struct {
	ScaleX  float64
	ScaleY  float64
	ShearX  float64
	ShearY  float64
	OffsetX float64
	OffsetY float64
}

// Identity maps physics coordinates straight onto screen pixels.
func Identity() Remap {
	return Remap{ScaleX: 1, ScaleY: 1}
}

// FlipY mirrors a Y-up physics space onto a Y-down screen of the given
// height.
func FlipY(screenHeight float64) Remap {
	return Remap{ScaleX: 1, ScaleY: -1, OffsetY: screenHeight}
}

// Apply remaps one physics-space point to screen coordinates.
func (r Remap) Apply(v cp.Vector) (float64, float64) {
	x := r.ScaleX*v.X + r.ShearX*v.Y + r.OffsetX
	y := r.ShearY*v.X + r.ScaleY*v.Y + r.OffsetY
	return x, y
}
