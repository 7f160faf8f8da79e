// Package viewer owns the interactive map window: camera state, pointer and
// keyboard handling, and the Ebiten draw loop over a built scene.
package viewer

import "mudmap/pkg/mapdata"

// EventKind discriminates viewer events.
type EventKind int

// Viewer events, delivered to the host over a channel.
const (
	EventRoomSelected EventKind = iota
	EventRoomDeselected
	EventZoomChanged
	EventAreaNavigation
	EventDrag
)

// Event is one notification from the viewer to its host. The viewer only
// reports; it never interprets these itself beyond its own display updates.
type Event struct {
	Kind EventKind

	// Room is set for EventRoomSelected.
	Room *mapdata.Room

	// Zoom state, set for EventZoomChanged.
	Zoom    float64
	MinZoom float64

	// Navigation target, set for EventAreaNavigation.
	RoomID int
	AreaID int
	Level  int

	// Center is the camera center in view coordinates, set for EventDrag.
	Center mapdata.Point
}
