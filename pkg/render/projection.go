// Package render turns a resolved area into a layered scene of styled
// primitives and projects world coordinates into view space. Scenes are
// derived state: rebuilt on every navigation and discarded on the next.
package render

import "mudmap/pkg/mapdata"

// Projection is the affine world-to-view transform for one rendered area:
// flip the vertical axis (world Y grows up, view Y grows down), scale by
// pixels-per-unit, and shift so the padded bounding box starts at the view
// origin. A Projection is built per Area instance and never mutated, so a
// stale matrix can't survive a navigation.
type Projection struct {
	scale   float64
	padding float64
	minX    float64
	maxY    float64
}

// NewProjection builds the transform for an area bounding box.
func NewProjection(bounds mapdata.Box, scale, padding float64) Projection {
	return Projection{
		scale:   scale,
		padding: padding,
		minX:    bounds.MinX,
		maxY:    bounds.MaxY,
	}
}

// Scale returns the pixels-per-world-unit factor.
func (p Projection) Scale() float64 { return p.scale }

// ToView maps a world point to view (pixel) coordinates.
func (p Projection) ToView(w mapdata.Point) mapdata.Point {
	return mapdata.Point{
		X: (w.X - p.minX + p.padding) * p.scale,
		Y: (p.maxY + p.padding - w.Y) * p.scale,
	}
}

// ToWorld is the exact inverse of ToView.
func (p Projection) ToWorld(v mapdata.Point) mapdata.Point {
	return mapdata.Point{
		X: v.X/p.scale + p.minX - p.padding,
		Y: p.maxY + p.padding - v.Y/p.scale,
	}
}
