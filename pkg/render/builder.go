package render

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"strconv"

	"github.com/zyedidia/generic/mapset"

	"mudmap/pkg/config"
	"mudmap/pkg/mapdata"
)

// Padding is the world-unit margin added around an area's bounds, both for
// the background rect and the projection origin shift.
const Padding = 7

// gridSize is the logical cell size room coordinates are expressed against.
const gridSize = 20

// Fixed dash patterns, in world units.
var (
	dashPatternDotted = []float64{0.05, 0.05}
	dashPatternDashed = []float64{0.4, 0.2}
	dashPatternOneWay = []float64{0.1, 0.1}
)

// Door marker palette. Unknown door codes render as locked.
var (
	doorOpenColor   = color.RGBA{R: 10, G: 155, B: 10, A: 255}
	doorClosedColor = color.RGBA{R: 226, G: 205, B: 59, A: 255}
	doorLockedColor = color.RGBA{R: 155, G: 10, B: 10, A: 255}
)

var defaultLinkColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// glyphLuminanceThreshold splits room fills into "light" and "dark" for
// occupant glyph contrast.
const glyphLuminanceThreshold = 0.41

// SceneBuilder turns resolved areas into layered scenes. One builder serves
// the whole program lifetime; scenes are born and die per navigation.
type SceneBuilder struct {
	idx      *mapdata.AreaIndex
	settings config.Settings

	roomFactor float64
	exitFactor float64
	background color.RGBA
}

// NewBuilder constructs a SceneBuilder over the canonical index.
func NewBuilder(idx *mapdata.AreaIndex, settings config.Settings) *SceneBuilder {
	bg, ok := parseHexColor(settings.MapBackground)
	if !ok {
		bg = color.RGBA{A: 255}
	}
	return &SceneBuilder{
		idx:        idx,
		settings:   settings,
		roomFactor: settings.RoomSize / gridSize,
		exitFactor: settings.ExitsSize * 0.01,
		background: bg,
	}
}

// Build walks the area once and emits every primitive for it. Deterministic:
// the same area yields the same scene, primitive for primitive.
func (b *SceneBuilder) Build(area *mapdata.Area) *Scene {
	bounds := area.Bounds(b.settings.UniformLevelSize)
	scene := &Scene{
		Area: area,
		Proj: NewProjection(bounds, b.settings.Scale, Padding),
		Background: mapdata.Box{
			MinX: bounds.MinX - Padding, MinY: bounds.MinY - Padding,
			MaxX: bounds.MaxX + Padding, MaxY: bounds.MaxY + Padding,
		},
		handles:    make(map[int]*RoomHandles),
		rendered:   mapset.New[string](),
		roomFactor: b.roomFactor,
		exitFactor: b.exitFactor,
	}

	b.buildBackground(scene)
	if b.settings.ShowLabels {
		for _, label := range area.Labels {
			b.buildLabel(scene, label)
		}
	}
	for _, room := range area.Rooms() {
		b.buildRoom(scene, room)
	}
	if b.settings.AreaName && area.Name != "" {
		b.buildHeader(scene, area, bounds)
	}
	return scene
}

func (b *SceneBuilder) buildBackground(scene *Scene) {
	p := &Primitive{
		Kind: KindRect,
		Points: []mapdata.Point{
			{X: scene.Background.MinX, Y: scene.Background.MinY},
			{X: scene.Background.MaxX, Y: scene.Background.MaxY},
		},
		RoomID: -1,
		Target: -1,
	}
	style := Style{Fill: b.background, HasFill: true}
	p.styles = [stateCount]Style{style, style}
	scene.add(LayerBackground, p)
}

func (b *SceneBuilder) buildHeader(scene *Scene, area *mapdata.Area, bounds mapdata.Box) {
	p := &Primitive{
		Kind:   KindText,
		Points: []mapdata.Point{{X: bounds.MinX - Padding/2, Y: bounds.MaxY + Padding/2}},
		Text:   area.Name,
		Size:   2.5,
		RoomID: -1,
		Target: -1,
	}
	style := Style{Fill: defaultLinkColor, HasFill: true}
	p.styles = [stateCount]Style{style, style}
	scene.add(LayerBackground, p)
}

func (b *SceneBuilder) buildLabel(scene *Scene, label mapdata.Label) {
	if !b.settings.TransparentLabels {
		rect := &Primitive{
			Kind: KindRect,
			Points: []mapdata.Point{
				{X: label.X, Y: label.Y},
				{X: label.X + label.Width, Y: label.Y + label.Height},
			},
			RoomID: -1,
			Target: -1,
		}
		style := Style{Fill: rgba(label.BgColor), HasFill: true}
		rect.styles = [stateCount]Style{style, style}
		scene.add(LayerBackgroundLabels, rect)
	}
	if label.Text == "" {
		return
	}
	text := &Primitive{
		Kind:   KindText,
		Points: []mapdata.Point{{X: label.X + label.Width/2, Y: label.Y + label.Height/2}},
		Text:   label.Text,
		Size:   0.75,
		RoomID: -1,
		Target: -1,
	}
	style := Style{Fill: rgba(label.FgColor), HasFill: true}
	text.styles = [stateCount]Style{style, style}
	scene.add(LayerBackgroundLabels, text)
}

func (b *SceneBuilder) buildRoom(scene *Scene, room *mapdata.Room) {
	b.buildBody(scene, room)

	for name, target := range room.Exits {
		dir := mapdata.ParseDirection(name)
		if dir.IsInner() {
			b.buildInnerExit(scene, room, dir, true)
			continue
		}
		if room.HasCustomLine(dir) {
			b.buildCustomLine(scene, room, dir, target)
			continue
		}
		b.buildExit(scene, room, dir, target)
	}
	for name, target := range room.SpecialExits {
		dir := mapdata.ParseDirection(name)
		if room.HasCustomLine(dir) {
			b.buildCustomLine(scene, room, dir, target)
			continue
		}
		b.buildSpecialExit(scene, room, target)
	}
	// Custom lines can be authored without a surviving exit; draw those too.
	for key := range room.CustomLines {
		if customLineHandled(room, key) {
			continue
		}
		b.buildCustomLine(scene, room, mapdata.ParseDirection(key), -1)
	}
	for _, n := range room.Stubs {
		if dir, ok := mapdata.DirectionFromStub(n); ok {
			b.buildStub(scene, room, dir)
		}
	}
	if room.Char != "" {
		b.buildGlyph(scene, room)
	}
}

func (b *SceneBuilder) buildBody(scene *Scene, room *mapdata.Room) {
	f := b.roomFactor
	roomColor := rgba(b.idx.ColorFor(room.Env))

	var normal Style
	switch {
	case b.settings.FrameMode:
		normal = Style{
			Fill: color.RGBA{A: 255}, HasFill: true,
			Stroke: roomColor, HasStroke: true, StrokeWidth: b.exitFactor * 2,
		}
	case b.settings.Borders:
		normal = Style{
			Fill: roomColor, HasFill: true,
			Stroke: defaultLinkColor, HasStroke: true, StrokeWidth: b.exitFactor,
		}
	default:
		normal = Style{Fill: roomColor, HasFill: true}
	}

	body := &Primitive{
		RoomID: room.ID,
		Target: -1,
		Hit:    HitRoom,
	}
	if b.settings.RoundRooms {
		body.Kind = KindCircle
		body.Points = []mapdata.Point{{X: room.X + f/2, Y: room.Y + f/2}}
		body.Radius = f / 2
	} else {
		body.Kind = KindRect
		body.Points = []mapdata.Point{
			{X: room.X, Y: room.Y},
			{X: room.X + f, Y: room.Y + f},
		}
	}
	body.styles = [stateCount]Style{normal, selected(normal)}
	scene.add(LayerRooms, body)
	scene.handlesFor(room.ID).Body = body
}

// linkKey is the order-independent dedup key for a room pair.
func linkKey(a, c int) string {
	if a > c {
		a, c = c, a
	}
	return strconv.Itoa(a) + "#" + strconv.Itoa(c)
}

// buildExit renders one compass or diagonal exit. A link between two visible
// rooms is drawn once per pair no matter which endpoint is walked first;
// doors are the exception and are drawn for both endpoints.
func (b *SceneBuilder) buildExit(scene *Scene, room *mapdata.Room, dir mapdata.Direction, target int) {
	targetRoom, visible := scene.Area.RoomByID(target)
	if !visible {
		b.buildAreaArrow(scene, room, dir, target)
		return
	}

	key := linkKey(room.ID, target)
	doorState, hasDoor := room.Door(dir)
	if scene.rendered.Has(key) {
		if hasDoor {
			start := b.exitAnchor(room, dir)
			end := b.exitAnchor(targetRoom, dir.Opposite())
			b.buildDoor(scene, room, midpoint(start, end), doorState)
		}
		return
	}
	scene.rendered.Put(key)

	start := b.exitAnchor(room, dir)
	end := b.exitAnchor(targetRoom, dir.Opposite())
	_, twoWay := targetRoom.ExitTo(room.ID)
	b.buildLink(scene, LayerLinks, room.ID, target, start, end, defaultLinkColor, !twoWay)

	if hasDoor {
		b.buildDoor(scene, room, midpoint(start, end), doorState)
	}
}

// buildLink draws a straight link segment, as a plain line for two-way links
// and as a dashed tail with a midpoint arrowhead for one-way ones. The
// primitive is attached to both endpoint rooms' handles.
func (b *SceneBuilder) buildLink(scene *Scene, layer Layer, roomID, target int, start, end mapdata.Point, linkColor color.RGBA, oneWay bool) {
	line := &Primitive{
		Kind:   KindLine,
		Points: []mapdata.Point{start, end},
		RoomID: roomID,
		Target: -1,
	}
	normal := Style{Stroke: linkColor, HasStroke: true, StrokeWidth: b.exitFactor}
	if oneWay {
		normal.Dash = dashPatternOneWay
	}
	line.styles = [stateCount]Style{normal, selected(normal)}
	scene.add(layer, line)
	b.attachExit(scene, line, roomID, target)

	if oneWay {
		head := &Primitive{
			Kind:   KindPolygon,
			Points: b.arrowhead(midpoint(start, end), direction(start, end), 1.5),
			RoomID: roomID,
			Target: -1,
		}
		headStyle := Style{Fill: doorLockedColor, HasFill: true}
		head.styles = [stateCount]Style{headStyle, selected(headStyle)}
		scene.add(layer, head)
		b.attachExit(scene, head, roomID, target)
	}
}

// buildAreaArrow renders an exit whose target is not part of this view as a
// doubled-size arrow at the exit anchor pointing away from the room, colored
// by the target's environment when the room is known anywhere in the dataset.
// The arrow is a pointer target carrying the destination room id.
func (b *SceneBuilder) buildAreaArrow(scene *Scene, room *mapdata.Room, dir mapdata.Direction, target int) {
	fill := rgba(mapdata.DefaultRoomColor)
	if targetRoom, ok := b.idx.RoomByID(target); ok {
		fill = rgba(b.idx.ColorFor(targetRoom.Env))
	}

	anchor := b.exitAnchor(room, dir)
	center := b.roomCenter(room)
	outward := direction(center, anchor)

	arrow := &Primitive{
		Kind:   KindPolygon,
		Points: b.arrowhead(anchor, outward, 2),
		RoomID: room.ID,
		Target: target,
		Hit:    HitAreaLink,
	}
	normal := Style{Fill: fill, HasFill: true}
	arrow.styles = [stateCount]Style{normal, selected(normal)}
	scene.add(LayerLinks, arrow)
	scene.handlesFor(room.ID).Exits = append(scene.handlesFor(room.ID).Exits, arrow)
}

// buildSpecialExit renders a teleport-style exit. Same pairing and one-way
// rules as compass exits, but anchored at room centers and layered above the
// bodies so it stays readable crossing other links.
func (b *SceneBuilder) buildSpecialExit(scene *Scene, room *mapdata.Room, target int) {
	targetRoom, visible := scene.Area.RoomByID(target)
	if !visible {
		b.buildAreaArrow(scene, room, mapdata.Direction(""), target)
		return
	}

	key := linkKey(room.ID, target)
	if scene.rendered.Has(key) {
		return
	}
	scene.rendered.Put(key)

	oneWay := !linksBack(targetRoom, room.ID)
	b.buildLink(scene, LayerDoors, room.ID, target,
		b.roomCenter(room), b.roomCenter(targetRoom), defaultLinkColor, oneWay)
}

// customLineHandled reports whether the exit walks already routed this custom
// line key to buildCustomLine. Inner exits never do, so their keys stay
// eligible for the leftover pass.
func customLineHandled(room *mapdata.Room, key string) bool {
	for name := range room.Exits {
		dir := mapdata.ParseDirection(name)
		if !dir.IsInner() && dir.Short() == key {
			return true
		}
	}
	for name := range room.SpecialExits {
		if mapdata.ParseDirection(name).Short() == key {
			return true
		}
	}
	return false
}

// linksBack reports whether a room has any exit, compass or special, leading
// to the given id.
func linksBack(room *mapdata.Room, id int) bool {
	for _, t := range room.Exits {
		if t == id {
			return true
		}
	}
	for _, t := range room.SpecialExits {
		if t == id {
			return true
		}
	}
	return false
}

// buildCustomLine renders an author-drawn polyline, which replaces the
// straight link for its direction entirely, including the reverse exit's.
func (b *SceneBuilder) buildCustomLine(scene *Scene, room *mapdata.Room, dir mapdata.Direction, target int) {
	line := room.CustomLines[dir.Short()]
	if len(line.Points) == 0 {
		return
	}
	scene.rendered.Put(linkKey(room.ID, target))

	f := b.roomFactor
	points := make([]mapdata.Point, 0, len(line.Points)+1)
	points = append(points, b.roomCenter(room))
	for _, wp := range line.Points {
		points = append(points, mapdata.Point{X: wp.X + f/2, Y: wp.Y + f/2})
	}

	normal := Style{Stroke: defaultLinkColor, HasStroke: true, StrokeWidth: b.exitFactor}
	if line.Attributes.Color != nil {
		normal.Stroke = rgba(*line.Attributes.Color)
	}
	switch line.Attributes.Style {
	case mapdata.LineSolid, "":
	case mapdata.LineDashed:
		normal.Dash = dashPatternDashed
	case mapdata.LineDotted:
		normal.Dash = dashPatternDotted
	default:
		log.Printf("unknown custom line style %q on room %d, drawing solid", line.Attributes.Style, room.ID)
	}

	poly := &Primitive{
		Kind:   KindPolyline,
		Points: points,
		RoomID: room.ID,
		Target: -1,
	}
	poly.styles = [stateCount]Style{normal, selected(normal)}
	scene.add(LayerLinks, poly)
	scene.handlesFor(room.ID).Exits = append(scene.handlesFor(room.ID).Exits, poly)

	if line.Attributes.Arrow && len(points) >= 2 {
		last, prev := points[len(points)-1], points[len(points)-2]
		head := &Primitive{
			Kind:   KindPolygon,
			Points: b.arrowhead(last, direction(prev, last), 1.5),
			RoomID: room.ID,
			Target: -1,
		}
		headStyle := Style{Fill: normal.Stroke, HasFill: true}
		head.styles = [stateCount]Style{headStyle, selected(headStyle)}
		scene.add(LayerLinks, head)
		scene.handlesFor(room.ID).Exits = append(scene.handlesFor(room.ID).Exits, head)
	}
}

// buildStub renders a dangling exit: a short line from the room center toward
// the direction, twice the anchor offset, with no endpoint glyph. Inner stub
// directions render as outline-only triangles instead.
func (b *SceneBuilder) buildStub(scene *Scene, room *mapdata.Room, dir mapdata.Direction) {
	if dir.IsInner() {
		b.buildInnerExit(scene, room, dir, false)
		return
	}

	center := b.roomCenter(room)
	anchor := b.exitAnchorEdge(room, dir)
	end := mapdata.Point{
		X: center.X + 2*(anchor.X-center.X),
		Y: center.Y + 2*(anchor.Y-center.Y),
	}

	line := &Primitive{
		Kind:   KindLine,
		Points: []mapdata.Point{center, end},
		RoomID: room.ID,
		Target: -1,
	}
	normal := Style{Stroke: defaultLinkColor, HasStroke: true, StrokeWidth: b.exitFactor}
	line.styles = [stateCount]Style{normal, selected(normal)}
	scene.add(LayerLinks, line)
	scene.handlesFor(room.ID).Exits = append(scene.handlesFor(room.ID).Exits, line)
}

// buildInnerExit renders an up/down/in/out exit as triangular glyphs above
// the room body. Up and down are single triangles offset from the center;
// in and out are mirrored pairs at reduced size. Door state colors the
// outline.
func (b *SceneBuilder) buildInnerExit(scene *Scene, room *mapdata.Room, dir mapdata.Direction, filled bool) {
	f := b.roomFactor
	c := b.roomCenter(room)

	var tris [][]mapdata.Point
	switch dir {
	case mapdata.Up:
		tris = [][]mapdata.Point{triangle(mapdata.Point{X: c.X, Y: c.Y + 0.2*f}, 0.2*f, 1)}
	case mapdata.Down:
		tris = [][]mapdata.Point{triangle(mapdata.Point{X: c.X, Y: c.Y - 0.2*f}, 0.2*f, -1)}
	case mapdata.In:
		tris = [][]mapdata.Point{
			sideTriangle(mapdata.Point{X: c.X - 0.2*f, Y: c.Y}, 0.1*f, 1),
			sideTriangle(mapdata.Point{X: c.X + 0.2*f, Y: c.Y}, 0.1*f, -1),
		}
	case mapdata.Out:
		tris = [][]mapdata.Point{
			sideTriangle(mapdata.Point{X: c.X - 0.2*f, Y: c.Y}, 0.1*f, -1),
			sideTriangle(mapdata.Point{X: c.X + 0.2*f, Y: c.Y}, 0.1*f, 1),
		}
	default:
		return
	}

	var normal Style
	if filled {
		fill := contrastGray(b.idx.ColorFor(room.Env))
		fill.A = 191
		normal = Style{Fill: fill, HasFill: true}
	} else {
		normal = Style{Stroke: defaultLinkColor, HasStroke: true, StrokeWidth: b.exitFactor}
	}
	if state, ok := room.Door(dir); ok {
		normal.Stroke = doorColor(state)
		normal.HasStroke = true
		normal.StrokeWidth = b.exitFactor * 2
	}

	for _, pts := range tris {
		tri := &Primitive{
			Kind:   KindPolygon,
			Points: pts,
			RoomID: room.ID,
			Target: -1,
		}
		tri.styles = [stateCount]Style{normal, selected(normal)}
		scene.add(LayerMarks, tri)
		scene.handlesFor(room.ID).Exits = append(scene.handlesFor(room.ID).Exits, tri)
	}
}

// buildDoor draws the door marker square centered on a link midpoint.
func (b *SceneBuilder) buildDoor(scene *Scene, room *mapdata.Room, at mapdata.Point, state int) {
	half := b.roomFactor * 0.25
	door := &Primitive{
		Kind: KindRect,
		Points: []mapdata.Point{
			{X: at.X - half, Y: at.Y - half},
			{X: at.X + half, Y: at.Y + half},
		},
		RoomID: room.ID,
		Target: -1,
	}
	normal := Style{Stroke: doorColor(state), HasStroke: true, StrokeWidth: b.exitFactor * 2}
	door.styles = [stateCount]Style{normal, selected(normal)}
	scene.add(LayerDoors, door)
	scene.handlesFor(room.ID).Exits = append(scene.handlesFor(room.ID).Exits, door)
}

// buildGlyph draws the occupant character centered in the room, colored for
// contrast against the fill unless the room overrides the color.
func (b *SceneBuilder) buildGlyph(scene *Scene, room *mapdata.Room) {
	f := b.roomFactor
	fill := contrastGray(b.idx.ColorFor(room.Env))
	if hex, ok := room.GlyphColor(); ok {
		if c, valid := parseHexColor(hex); valid {
			fill = c
		}
	}

	glyph := &Primitive{
		Kind:   KindText,
		Points: []mapdata.Point{b.roomCenter(room)},
		Text:   room.Char,
		Size:   0.85 * f / float64(len([]rune(room.Char))),
		RoomID: room.ID,
		Target: -1,
	}
	style := Style{Fill: fill, HasFill: true}
	glyph.styles = [stateCount]Style{style, style}
	scene.add(LayerGlyphs, glyph)
}

// attachExit records an exit primitive on the handles of both endpoints so
// selecting either room restyles the shared link.
func (b *SceneBuilder) attachExit(scene *Scene, p *Primitive, roomID, target int) {
	h := scene.handlesFor(roomID)
	h.Exits = append(h.Exits, p)
	if _, ok := scene.Area.RoomByID(target); ok {
		t := scene.handlesFor(target)
		t.Exits = append(t.Exits, p)
	}
}

func (b *SceneBuilder) roomCenter(room *mapdata.Room) mapdata.Point {
	f := b.roomFactor
	return mapdata.Point{X: room.X + f/2, Y: room.Y + f/2}
}

// exitAnchor is where a link meets the room: the edge biased toward the
// direction for square rooms, always the center for round ones.
func (b *SceneBuilder) exitAnchor(room *mapdata.Room, dir mapdata.Direction) mapdata.Point {
	if b.settings.RoundRooms {
		return b.roomCenter(room)
	}
	return b.exitAnchorEdge(room, dir)
}

// exitAnchorEdge is the directional edge anchor regardless of room shape;
// stubs use it so round rooms still get an oriented stub.
func (b *SceneBuilder) exitAnchorEdge(room *mapdata.Room, dir mapdata.Direction) mapdata.Point {
	f := b.roomFactor
	p := b.roomCenter(room)

	switch dir {
	case mapdata.West, mapdata.NorthWest, mapdata.SouthWest:
		p.X = room.X
	case mapdata.East, mapdata.NorthEast, mapdata.SouthEast:
		p.X = room.X + f
	}
	switch dir {
	case mapdata.North, mapdata.NorthEast, mapdata.NorthWest:
		p.Y = room.Y + f
	case mapdata.South, mapdata.SouthEast, mapdata.SouthWest:
		p.Y = room.Y
	}
	return p
}

// arrowhead builds an arrow triangle with its tip at the given point,
// oriented along dir (need not be unit length) and sized relative to the
// room footprint by scale.
func (b *SceneBuilder) arrowhead(tip, dir mapdata.Point, scale float64) []mapdata.Point {
	length := math.Hypot(dir.X, dir.Y)
	if length == 0 {
		dir, length = mapdata.Point{X: 0, Y: 1}, 1
	}
	ux, uy := dir.X/length, dir.Y/length
	px, py := -uy, ux
	s := b.roomFactor * 0.25 * scale

	return []mapdata.Point{
		tip,
		{X: tip.X - ux*s + px*s*0.6, Y: tip.Y - uy*s + py*s*0.6},
		{X: tip.X - ux*s - px*s*0.6, Y: tip.Y - uy*s - py*s*0.6},
	}
}

// triangle returns a vertical triangle: apex up for sign 1, down for -1.
func triangle(center mapdata.Point, size, sign float64) []mapdata.Point {
	return []mapdata.Point{
		{X: center.X, Y: center.Y + sign*size},
		{X: center.X - size, Y: center.Y - sign*size},
		{X: center.X + size, Y: center.Y - sign*size},
	}
}

// sideTriangle returns a horizontal triangle: apex right for sign 1, left
// for -1.
func sideTriangle(center mapdata.Point, size, sign float64) []mapdata.Point {
	return []mapdata.Point{
		{X: center.X + sign*size, Y: center.Y},
		{X: center.X - sign*size, Y: center.Y - size},
		{X: center.X - sign*size, Y: center.Y + size},
	}
}

func midpoint(a, c mapdata.Point) mapdata.Point {
	return mapdata.Point{X: (a.X + c.X) / 2, Y: (a.Y + c.Y) / 2}
}

func direction(from, to mapdata.Point) mapdata.Point {
	return mapdata.Point{X: to.X - from.X, Y: to.Y - from.Y}
}

func doorColor(state int) color.RGBA {
	switch state {
	case mapdata.DoorOpen:
		return doorOpenColor
	case mapdata.DoorClosed:
		return doorClosedColor
	default:
		return doorLockedColor
	}
}

func rgba(c mapdata.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// contrastGray picks a near-black or near-white gray legible against the
// given fill.
func contrastGray(fill mapdata.RGB) color.RGBA {
	v := 0.9
	if fill.Luminance() > glyphLuminanceThreshold {
		v = 0.1
	}
	g := uint8(v * 255)
	return color.RGBA{R: g, G: g, B: g, A: 255}
}

// parseHexColor parses "#rrggbb".
func parseHexColor(s string) (color.RGBA, bool) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, false
	}
	var r, g, bl uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &bl); err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: r, G: g, B: bl, A: 255}, true
}
