package debugdraw

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestRemapApply(t *testing.T) {
	cases := []struct {
		name   string
		remap  Remap
		in     cp.Vector
		wantX  float64
		wantY  float64
	}{
		{"identity", Identity(), cp.Vector{X: 3, Y: 4}, 3, 4},
		{"scale", Remap{ScaleX: 2, ScaleY: 0.5}, cp.Vector{X: 10, Y: 10}, 20, 5},
		{"offset", Remap{ScaleX: 1, ScaleY: 1, OffsetX: 100, OffsetY: -50}, cp.Vector{X: 1, Y: 2}, 101, -48},
		{"shear_x", Remap{ScaleX: 1, ScaleY: 1, ShearX: 0.5}, cp.Vector{X: 0, Y: 10}, 5, 10},
		{"shear_y", Remap{ScaleX: 1, ScaleY: 1, ShearY: -1}, cp.Vector{X: 4, Y: 0}, 4, -4},
		{"flip_y", FlipY(720), cp.Vector{X: 100, Y: 20}, 100, 700},
		{"combined", Remap{ScaleX: 2, ScaleY: -2, ShearX: 1, ShearY: 0.5, OffsetX: 10, OffsetY: 720}, cp.Vector{X: 5, Y: 3}, 23, 716.5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y := c.remap.Apply(c.in)
			if x != c.wantX || y != c.wantY {
				t.Fatalf("Apply(%+v) = (%g, %g), want (%g, %g)", c.in, x, y, c.wantX, c.wantY)
			}
		})
	}
}
