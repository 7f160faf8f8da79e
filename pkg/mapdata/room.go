package mapdata

// RGB is an 8-bit color triple as stored in the dataset.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Luminance returns the perceived lightness in [0,1] (Rec. 601 weights).
func (c RGB) Luminance() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// Door states as stored on a room's door map.
const (
	DoorOpen   = 1
	DoorClosed = 2
	DoorLocked = 3
)

// Point is a world-space (grid) coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LineStyle names for custom lines. Anything else falls back to solid.
const (
	LineSolid  = "solid line"
	LineDashed = "dash line"
	LineDotted = "dot line"
)

// CustomLine is an author-specified polyline overriding the default straight
// link rendering for one direction.
type CustomLine struct {
	Points     []Point        `json:"points"`
	Attributes LineAttributes `json:"attributes"`
}

// LineAttributes carries the style of a custom line.
type LineAttributes struct {
	Style string `json:"style"`
	Color *RGB   `json:"color,omitempty"`
	Arrow bool   `json:"arrow"`
}

// Room is one node in the world graph. Rooms are immutable input data; render
// state lives in SceneBuilder-owned side tables, never on the Room itself.
type Room struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Env  int    `json:"env"`

	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z int     `json:"z"`

	// AreaID is stamped during indexing from the owning area record.
	AreaID int `json:"areaId"`

	// Char is an optional single-character occupant glyph.
	Char string `json:"roomChar"`

	// Exits maps direction name -> target room id. Targets may reference
	// rooms outside this area or absent from the dataset entirely.
	Exits map[string]int `json:"exits"`

	// SpecialExits maps a non-geometric exit name (teleport, command) to a
	// target room id.
	SpecialExits map[string]int `json:"specialExits"`

	// Doors maps short direction name -> door state.
	Doors map[string]int `json:"doors"`

	// CustomLines maps short direction name -> polyline override.
	CustomLines map[string]CustomLine `json:"customLines"`

	// Stubs lists numbered dangling exit directions.
	Stubs []int `json:"stubs"`

	// UserData carries free-form annotations from the authoring tool.
	UserData map[string]string `json:"userData"`
}

// ExitTo returns the direction of the exit leading to target, if any.
// Used to detect one-way links: a link is one-way when the target room has
// no exit back to the origin.
func (r *Room) ExitTo(target int) (Direction, bool) {
	for name, id := range r.Exits {
		if id == target {
			return ParseDirection(name), true
		}
	}
	return "", false
}

// Door returns the door state for a direction, if a door is present.
func (r *Room) Door(d Direction) (int, bool) {
	state, ok := r.Doors[d.Short()]
	return state, ok
}

// HasCustomLine reports whether a custom line overrides the given direction.
func (r *Room) HasCustomLine(d Direction) bool {
	_, ok := r.CustomLines[d.Short()]
	return ok
}

// GlyphColor returns the per-room occupant glyph color override, if set.
func (r *Room) GlyphColor() (string, bool) {
	if r.UserData == nil {
		return "", false
	}
	v, ok := r.UserData["system.fallback_symbol_color"]
	return v, ok
}

// Label is a piece of text (or embedded raster) pinned to the map.
type Label struct {
	X       float64 `json:"X"`
	Y       float64 `json:"Y"`
	Z       int     `json:"Z"`
	Width   float64 `json:"Width"`
	Height  float64 `json:"Height"`
	Text    string  `json:"Text"`
	FgColor RGB     `json:"FgColor"`
	BgColor RGB     `json:"BgColor"`

	// PixMap is an optional base64 PNG payload for image labels.
	PixMap string `json:"pixMap,omitempty"`
}
