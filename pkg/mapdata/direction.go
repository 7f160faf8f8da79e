// Package mapdata provides the world-map data model: rooms with directional
// exits, areas spanning vertical levels, text labels, and the canonical
// AreaIndex the rest of the system reads from.
package mapdata

// Direction is a compass or vertical exit direction. The dataset uses long
// names ("north") as exit keys and short names ("n") for doors, custom lines
// and stubs; Direction canonicalizes to the long form.
type Direction string

// Canonical directions
const (
	North     Direction = "north"
	NorthEast Direction = "northeast"
	East      Direction = "east"
	SouthEast Direction = "southeast"
	South     Direction = "south"
	SouthWest Direction = "southwest"
	West      Direction = "west"
	NorthWest Direction = "northwest"
	Up        Direction = "up"
	Down      Direction = "down"
	In        Direction = "in"
	Out       Direction = "out"
)

var shortNames = map[Direction]string{
	North:     "n",
	South:     "s",
	East:      "e",
	West:      "w",
	NorthEast: "ne",
	NorthWest: "nw",
	SouthEast: "se",
	SouthWest: "sw",
	Up:        "u",
	Down:      "d",
	In:        "i",
	Out:       "o",
}

var longNames = func() map[string]Direction {
	m := make(map[string]Direction, len(shortNames))
	for long, short := range shortNames {
		m[short] = long
	}
	return m
}()

// Stub exits are stored as direction numbers in the dataset.
var stubDirections = map[int]Direction{
	1:  North,
	2:  NorthEast,
	3:  NorthWest,
	4:  East,
	5:  West,
	6:  South,
	7:  SouthEast,
	8:  SouthWest,
	9:  Up,
	10: Down,
	11: In,
	12: Out,
}

// ParseDirection canonicalizes a long or short direction name. Unknown names
// pass through unchanged so special-exit keys (spells, commands) keep working.
func ParseDirection(name string) Direction {
	if long, ok := longNames[name]; ok {
		return long
	}
	return Direction(name)
}

// DirectionFromStub maps a numbered stub entry to its direction.
func DirectionFromStub(n int) (Direction, bool) {
	d, ok := stubDirections[n]
	return d, ok
}

// Short returns the short name ("n" for north). Non-compass directions are
// returned unchanged.
func (d Direction) Short() string {
	if s, ok := shortNames[d]; ok {
		return s
	}
	return string(d)
}

// Opposite returns the reverse direction, or "" for non-compass directions.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case NorthEast:
		return SouthWest
	case SouthWest:
		return NorthEast
	case NorthWest:
		return SouthEast
	case SouthEast:
		return NorthWest
	case Up:
		return Down
	case Down:
		return Up
	case In:
		return Out
	case Out:
		return In
	default:
		return ""
	}
}

// IsInner reports whether the direction renders as an in-room glyph
// (up/down/in/out) instead of a link to another visible room.
func (d Direction) IsInner() bool {
	switch d {
	case Up, Down, In, Out:
		return true
	}
	return false
}

// IsValid reports whether the direction is one of the twelve canonical ones.
func (d Direction) IsValid() bool {
	_, ok := shortNames[d]
	return ok
}
