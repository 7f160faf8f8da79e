package render

import (
	"math"
	"testing"

	"mudmap/pkg/mapdata"
)

func TestProjection_RoundTrip(t *testing.T) {
	bounds := mapdata.Box{MinX: -3, MinY: -8, MaxX: 12, MaxY: 5}
	proj := NewProjection(bounds, 55, 7)

	points := []mapdata.Point{
		{X: 0, Y: 0},
		{X: -3, Y: 5},
		{X: 12, Y: -8},
		{X: 1.5, Y: -2.25},
	}
	for _, p := range points {
		back := proj.ToWorld(proj.ToView(p))
		if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
			t.Errorf("round trip of %v = %v", p, back)
		}
	}
}

func TestProjection_FlipsY(t *testing.T) {
	proj := NewProjection(mapdata.Box{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}, 1, 0)

	low := proj.ToView(mapdata.Point{X: 0, Y: 0})
	high := proj.ToView(mapdata.Point{X: 0, Y: 10})
	if high.Y >= low.Y {
		t.Errorf("world Y up must map to view Y down: y=10 -> %v, y=0 -> %v", high.Y, low.Y)
	}
}

func TestProjection_PaddedOrigin(t *testing.T) {
	proj := NewProjection(mapdata.Box{MinX: 2, MinY: 2, MaxX: 8, MaxY: 8}, 10, 7)

	// The padded top-left corner of the bounds lands at the view origin.
	v := proj.ToView(mapdata.Point{X: 2 - 7, Y: 8 + 7})
	if v.X != 0 || v.Y != 0 {
		t.Errorf("padded corner = (%v, %v), want origin", v.X, v.Y)
	}
}
