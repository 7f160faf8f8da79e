package render

import (
	"image/color"

	"github.com/zyedidia/generic/mapset"

	"mudmap/pkg/mapdata"
)

// Layer identifies one of the fixed draw layers, back to front. The order is
// a hard contract: links sit under room bodies, overlays sit above everything.
type Layer int

// Draw layers, back to front.
const (
	LayerBackground Layer = iota
	LayerBackgroundLabels
	LayerLinks
	LayerRooms
	LayerMarks   // vertical/through exit glyphs
	LayerDoors   // door markers and special-link overlay
	LayerGlyphs  // occupant characters
	LayerOverlay // selection and position markers
	layerCount
)

// Kind discriminates primitive geometry.
type Kind int

// Primitive kinds.
const (
	KindRect Kind = iota
	KindCircle
	KindLine
	KindPolyline
	KindPolygon
	KindText
)

// HitKind marks a primitive as a pointer target.
type HitKind int

// Pointer target kinds.
const (
	HitNone HitKind = iota
	HitRoom
	HitAreaLink
)

// VisualState selects which style variant a primitive currently renders with.
// Styles are a fixed table per primitive, so deselecting restores the exact
// pre-selection appearance.
type VisualState int

// Visual states.
const (
	StateNormal VisualState = iota
	StateSelected
	stateCount
)

// Style is the full paint description for one primitive in one visual state.
type Style struct {
	Fill        color.RGBA
	HasFill     bool
	Stroke      color.RGBA
	HasStroke   bool
	StrokeWidth float64
	Dash        []float64 // world units; empty means solid
}

// SelectionColor outlines the selected room and its exits.
var SelectionColor = color.RGBA{R: 0, G: 230, B: 179, A: 255}

// selected derives the highlighted variant of a base style.
func selected(base Style) Style {
	s := base
	s.Stroke = SelectionColor
	s.HasStroke = true
	if s.StrokeWidth == 0 {
		s.StrokeWidth = 0.02
	}
	return s
}

// Primitive is one styled shape in the scene. All coordinates are world
// (grid) units; the Projection maps them to pixels at draw time.
type Primitive struct {
	Kind   Kind
	Points []mapdata.Point // Rect: [min,max]; Circle/Text: [center]; others: vertices
	Radius float64         // KindCircle
	Text   string          // KindText
	Size   float64         // KindText font size, world units

	// RoomID is the owning room (-1 when none). Target carries the
	// navigation target for cross-area arrows (-1 when none).
	RoomID int
	Target int
	Hit    HitKind

	styles [stateCount]Style
	state  VisualState
}

// Style returns the paint for the primitive's current visual state.
func (p *Primitive) Style() Style { return p.styles[p.state] }

// State returns the current visual state.
func (p *Primitive) State() VisualState { return p.state }

// SetState switches the style variant.
func (p *Primitive) SetState(s VisualState) { p.state = s }

// RoomHandles is the transient render-handle set for one room: its body and
// every exit primitive drawn for it. Owned by the scene, keyed by room id,
// and discarded wholesale with the scene on rebuild; the Room type itself
// stays free of rendering concerns.
type RoomHandles struct {
	Body  *Primitive
	Exits []*Primitive
}

// Scene is one fully built rendering of a resolved area.
type Scene struct {
	Area *mapdata.Area
	Proj Projection

	// Background covers the padded area bounds, in world units.
	Background mapdata.Box

	layers  [layerCount][]*Primitive
	handles map[int]*RoomHandles

	// rendered holds order-independent link dedup keys for this build.
	rendered mapset.Set[string]

	// roomFactor is the room footprint in world units, kept for the
	// overlay markers which are sized relative to it.
	roomFactor float64
	exitFactor float64

	position  *Primitive
	selection *Primitive
}

// Layer returns the primitives of one layer in draw order.
func (s *Scene) Layer(l Layer) []*Primitive { return s.layers[l] }

// EachPrimitive visits every primitive back to front.
func (s *Scene) EachPrimitive(fn func(Layer, *Primitive)) {
	for l := Layer(0); l < layerCount; l++ {
		for _, p := range s.layers[l] {
			fn(l, p)
		}
	}
}

// RoomCenter returns the world-space center of a room's footprint.
func (s *Scene) RoomCenter(room *mapdata.Room) mapdata.Point {
	return mapdata.Point{X: room.X + s.roomFactor/2, Y: room.Y + s.roomFactor/2}
}

// Handles returns the render-handle side table entry for a room.
func (s *Scene) Handles(roomID int) (*RoomHandles, bool) {
	h, ok := s.handles[roomID]
	return h, ok
}

func (s *Scene) add(l Layer, p *Primitive) *Primitive {
	s.layers[l] = append(s.layers[l], p)
	return p
}

func (s *Scene) handlesFor(roomID int) *RoomHandles {
	h, ok := s.handles[roomID]
	if !ok {
		h = &RoomHandles{}
		s.handles[roomID] = h
	}
	return h
}

// HitAt returns the topmost pointer target whose geometry contains the world
// point, or nil.
func (s *Scene) HitAt(w mapdata.Point) *Primitive {
	for l := layerCount - 1; l >= 0; l-- {
		prims := s.layers[l]
		for i := len(prims) - 1; i >= 0; i-- {
			p := prims[i]
			if p.Hit == HitNone {
				continue
			}
			if p.contains(w) {
				return p
			}
		}
	}
	return nil
}

func (p *Primitive) contains(w mapdata.Point) bool {
	switch p.Kind {
	case KindRect:
		min, max := p.Points[0], p.Points[1]
		return w.X >= min.X && w.X <= max.X && w.Y >= min.Y && w.Y <= max.Y
	case KindCircle:
		dx, dy := w.X-p.Points[0].X, w.Y-p.Points[0].Y
		return dx*dx+dy*dy <= p.Radius*p.Radius
	default:
		// Lines and polygons hit-test against their bounding box; arrow
		// targets are small enough that the box is the affordance.
		if len(p.Points) == 0 {
			return false
		}
		min, max := p.Points[0], p.Points[0]
		for _, pt := range p.Points[1:] {
			if pt.X < min.X {
				min.X = pt.X
			}
			if pt.Y < min.Y {
				min.Y = pt.Y
			}
			if pt.X > max.X {
				max.X = pt.X
			}
			if pt.Y > max.Y {
				max.Y = pt.Y
			}
		}
		return w.X >= min.X && w.X <= max.X && w.Y >= min.Y && w.Y <= max.Y
	}
}

// SelectRoom applies the selection style to a room's body and every one of
// its exit primitives and draws the position marker. Returns false when the
// room has no handles in this scene.
func (s *Scene) SelectRoom(roomID int) bool {
	h, ok := s.handles[roomID]
	if !ok {
		return false
	}
	if h.Body != nil {
		h.Body.SetState(StateSelected)
	}
	for _, exit := range h.Exits {
		exit.SetState(StateSelected)
	}
	s.markPosition(roomID)
	return true
}

// DeselectRoom reverts a room and its exits to their pre-selection styles and
// clears the position marker.
func (s *Scene) DeselectRoom(roomID int) {
	if h, ok := s.handles[roomID]; ok {
		if h.Body != nil {
			h.Body.SetState(StateNormal)
		}
		for _, exit := range h.Exits {
			exit.SetState(StateNormal)
		}
	}
	s.clearPosition()
}

// markPosition draws the position circle and selection outline on a room.
func (s *Scene) markPosition(roomID int) {
	s.clearPosition()
	room, ok := s.Area.RoomByID(roomID)
	if !ok {
		return
	}
	f := s.roomFactor
	center := mapdata.Point{X: room.X + f/2, Y: room.Y + f/2}

	circle := &Primitive{
		Kind:   KindCircle,
		Points: []mapdata.Point{center},
		Radius: f * 1.41421 * 0.6,
		RoomID: room.ID,
		Target: -1,
	}
	style := Style{
		Fill:        color.RGBA{R: 127, G: 25, B: 25, A: 51},
		HasFill:     true,
		Stroke:      SelectionColor,
		HasStroke:   true,
		StrokeWidth: s.exitFactor * 5,
		Dash:        []float64{0.05, 0.05},
	}
	circle.styles = [stateCount]Style{style, style}
	s.position = s.add(LayerOverlay, circle)

	outline := &Primitive{
		Kind: KindRect,
		Points: []mapdata.Point{
			{X: room.X - 0.05, Y: room.Y - 0.05},
			{X: room.X + f + 0.05, Y: room.Y + f + 0.05},
		},
		RoomID: room.ID,
		Target: -1,
	}
	outlineStyle := Style{
		Stroke:      SelectionColor,
		HasStroke:   true,
		StrokeWidth: s.exitFactor,
	}
	outline.styles = [stateCount]Style{outlineStyle, outlineStyle}
	s.selection = s.add(LayerOverlay, outline)
}

func (s *Scene) clearPosition() {
	if s.position == nil && s.selection == nil {
		return
	}
	kept := s.layers[LayerOverlay][:0]
	for _, p := range s.layers[LayerOverlay] {
		if p != s.position && p != s.selection {
			kept = append(kept, p)
		}
	}
	s.layers[LayerOverlay] = kept
	s.position = nil
	s.selection = nil
}

// MarkPosition draws the position marker without selection bookkeeping; used
// by fragment export to highlight the focus room.
func (s *Scene) MarkPosition(roomID int) { s.markPosition(roomID) }
