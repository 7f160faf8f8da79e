package mapdata

import "math"

// Box is an axis-aligned world-space bounding box.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the box.
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// Contains reports whether the point falls strictly inside the box.
func (b Box) Contains(x, y float64) bool {
	return x > b.MinX && x < b.MaxX && y > b.MinY && y < b.MaxY
}

// Area is a resolved view of one area at one level: a filtered projection of
// the canonical dataset, not the canonical store itself. Areas are recreated
// on every navigation and discarded on the next render.
type Area struct {
	ID    int
	Name  string
	Level int

	// rooms holds the level's rooms in dataset order; byID indexes them.
	rooms []*Room
	byID  map[int]*Room

	// Labels at this level.
	Labels []Label

	// levels lists every level present in the full area, sorted ascending.
	levels []int

	// Bounds are lazy and cached per Area instance; an Area is immutable
	// once constructed. Cached separately for the all-levels variant.
	bounds    map[bool]Box
	allRooms  []*Room // every room of the area regardless of level, for all-level bounds
	allLabels []Label
}

// Rooms returns the area's rooms at the resolved level, in dataset order.
func (a *Area) Rooms() []*Room { return a.rooms }

// RoomByID returns a room of this resolved view by id.
func (a *Area) RoomByID(id int) (*Room, bool) {
	r, ok := a.byID[id]
	return r, ok
}

// Levels returns every level present in the area, sorted ascending.
func (a *Area) Levels() []int { return a.levels }

// Bounds returns the min/max box over room positions and label rectangles.
// With allLevels set, rooms and labels from every level contribute, which
// keeps the rendered size uniform when switching levels.
func (a *Area) Bounds(allLevels bool) Box {
	if a.bounds == nil {
		a.bounds = make(map[bool]Box, 2)
	}
	if b, ok := a.bounds[allLevels]; ok {
		return b
	}

	rooms, labels := a.rooms, a.Labels
	if allLevels {
		rooms, labels = a.allRooms, a.allLabels
	}

	b := Box{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, r := range rooms {
		b.MinX = math.Min(b.MinX, r.X)
		b.MinY = math.Min(b.MinY, r.Y)
		b.MaxX = math.Max(b.MaxX, r.X)
		b.MaxY = math.Max(b.MaxY, r.Y)
	}
	for _, l := range labels {
		b.MinX = math.Min(b.MinX, l.X)
		b.MinY = math.Min(b.MinY, l.Y)
		b.MaxX = math.Max(b.MaxX, l.X+l.Width)
		b.MaxY = math.Max(b.MaxY, l.Y+l.Height)
	}
	if b.MinX > b.MaxX {
		b = Box{}
	}

	a.bounds[allLevels] = b
	return b
}
