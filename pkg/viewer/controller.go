package viewer

import (
	"mudmap/pkg/mapdata"
	"mudmap/pkg/render"
)

// MaxZoom is the fixed upper camera zoom bound.
const MaxZoom = 50

// panStep is the view-space distance of one discrete keyboard pan, divided
// by the current zoom so the on-screen step stays constant.
const panStep = 40

// Controller is the viewport state machine: zoom, pan, drag and selection
// over one scene. It is plain state with no rendering dependencies, which
// keeps every transition unit-testable.
//
// All positions it works with are view coordinates (projected world, before
// the camera transform); the windowing layer converts from screen space.
type Controller struct {
	scene *render.Scene

	zoom    float64
	minZoom float64
	center  mapdata.Point

	selected int
	dragging bool

	events chan<- Event
}

// NewController creates a controller reporting to the given channel. Events
// are sent non-blocking; a slow host loses notifications, it never stalls
// the frame loop.
func NewController(events chan<- Event) *Controller {
	return &Controller{zoom: 1, minZoom: 0.01, selected: -1, events: events}
}

// SetScene points the controller at a freshly built scene, fits the camera
// to its content and resets selection. The previous scene's highlight state
// dies with the scene.
func (c *Controller) SetScene(scene *render.Scene, viewWidth, viewHeight float64) {
	c.scene = scene
	c.selected = -1
	c.dragging = false

	min := scene.Proj.ToView(mapdata.Point{X: scene.Background.MinX, Y: scene.Background.MaxY})
	max := scene.Proj.ToView(mapdata.Point{X: scene.Background.MaxX, Y: scene.Background.MinY})
	c.center = mapdata.Point{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2}

	c.minZoom = fitZoom(max.X-min.X, max.Y-min.Y, viewWidth, viewHeight)
	c.zoom = c.clampZoom(c.minZoom)
	c.emitZoom()
}

// fitZoom is the zoom at which the whole content box fits the window.
func fitZoom(contentW, contentH, viewW, viewH float64) float64 {
	if contentW <= 0 || contentH <= 0 {
		return 0.01
	}
	z := viewW / contentW
	if h := viewH / contentH; h < z {
		z = h
	}
	if z > MaxZoom {
		z = MaxZoom
	}
	return z
}

// Scene returns the scene currently under control.
func (c *Controller) Scene() *render.Scene { return c.scene }

// Zoom returns the current zoom factor.
func (c *Controller) Zoom() float64 { return c.zoom }

// MinZoom returns the fit-to-content lower zoom bound.
func (c *Controller) MinZoom() float64 { return c.minZoom }

// Center returns the camera center in view coordinates.
func (c *Controller) Center() mapdata.Point { return c.center }

// Dragging reports whether a drag gesture is in progress.
func (c *Controller) Dragging() bool { return c.dragging }

// Selected returns the selected room id, or -1.
func (c *Controller) Selected() int { return c.selected }

func (c *Controller) clampZoom(z float64) float64 {
	if z < c.minZoom {
		return c.minZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

// ZoomAt applies a zoom factor anchored at a view-space point: after the
// zoom the same view point stays under the cursor. The camera translates by
// the cursor offset scaled by the zoom ratio.
func (c *Controller) ZoomAt(factor float64, at mapdata.Point) {
	old := c.zoom
	c.zoom = c.clampZoom(old * factor)
	if c.zoom == old {
		return
	}

	ratio := old / c.zoom
	c.center = mapdata.Point{
		X: at.X - (at.X-c.center.X)*ratio,
		Y: at.Y - (at.Y-c.center.Y)*ratio,
	}
	c.emitZoom()
}

// DeltaZoom multiplies the zoom by a factor, anchored at the camera center.
func (c *Controller) DeltaZoom(factor float64) {
	old := c.zoom
	c.ZoomAt(factor, c.center)
	if c.zoom == old {
		// A clamped no-op zoom skips the signal inside ZoomAt; reissue it
		// so UI feedback still fires.
		c.emitZoom()
	}
}

// StartDrag begins a potential drag gesture. The flag stays clear until the
// pointer actually moves, so a plain click is never mistaken for a drag.
func (c *Controller) StartDrag() {
	c.dragging = false
}

// DragBy pans the camera by a view-space delta and marks the gesture as a
// real drag.
func (c *Controller) DragBy(dx, dy float64) {
	c.dragging = true
	c.center.X += dx
	c.center.Y += dy
	c.emit(Event{Kind: EventDrag, Center: c.center})
}

// EndDrag finishes the gesture. Returns true when it was a real drag, which
// tells the caller to swallow the release instead of treating it as a click.
func (c *Controller) EndDrag() bool {
	was := c.dragging
	c.dragging = false
	return was
}

// SelectRoom moves the selection to a room. Suppressed mid-drag so a drag
// release over a room is not misread as a click.
func (c *Controller) SelectRoom(roomID int) {
	if c.dragging || c.scene == nil {
		return
	}
	if c.selected == roomID {
		return
	}
	if c.selected >= 0 {
		c.scene.DeselectRoom(c.selected)
	}
	if !c.scene.SelectRoom(roomID) {
		c.selected = -1
		return
	}
	c.selected = roomID
	if room, ok := c.scene.Area.RoomByID(roomID); ok {
		c.emit(Event{Kind: EventRoomSelected, Room: room})
	}
}

// Deselect clears the selection, restoring the room's pre-selection styles.
func (c *Controller) Deselect() {
	if c.dragging || c.scene == nil || c.selected < 0 {
		return
	}
	c.scene.DeselectRoom(c.selected)
	c.selected = -1
	c.emit(Event{Kind: EventRoomDeselected})
}

// CenterRoom centers the camera on a room of the current scene and selects
// it. Returns false when the room is not part of the scene.
func (c *Controller) CenterRoom(roomID int) bool {
	if c.scene == nil {
		return false
	}
	room, ok := c.scene.Area.RoomByID(roomID)
	if !ok {
		return false
	}
	c.center = c.scene.Proj.ToView(c.scene.RoomCenter(room))
	c.SelectRoom(roomID)
	return true
}

// Move pans by a fixed step multiple, for keyboard panning. The step is
// constant in screen space regardless of zoom.
func (c *Controller) Move(dx, dy float64) {
	c.center.X += dx * panStep / c.zoom
	c.center.Y += dy * panStep / c.zoom
}

func (c *Controller) emitZoom() {
	c.emit(Event{Kind: EventZoomChanged, Zoom: c.zoom, MinZoom: c.minZoom})
}

func (c *Controller) emit(ev Event) {
	if c.events == nil {
		return
	}
	select {
	case c.events <- ev:
	default:
		// Host not keeping up, drop the notification.
	}
}
