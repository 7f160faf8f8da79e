package viewer

import (
	"math"
	"testing"

	"mudmap/pkg/config"
	"mudmap/pkg/mapdata"
	"mudmap/pkg/render"
)

func testScene(t *testing.T) *render.Scene {
	t.Helper()
	records := []mapdata.AreaRecord{
		{
			AreaID:   1,
			AreaName: "Town",
			Rooms: []*mapdata.Room{
				{ID: 1, X: 0, Y: 0, Exits: map[string]int{"east": 2}},
				{ID: 2, X: 5, Y: 3, Exits: map[string]int{"west": 1}},
			},
		},
	}
	idx := mapdata.NewAreaIndex(records, nil)
	area, err := idx.Resolve(1, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	settings := config.Default()
	settings.FontPath = ""
	return render.NewBuilder(idx, settings).Build(area)
}

func newTestController(t *testing.T) (*Controller, chan Event) {
	t.Helper()
	events := make(chan Event, 64)
	c := NewController(events)
	c.SetScene(testScene(t), 800, 600)
	return c, events
}

// drain empties the event channel and returns everything that was queued.
func drain(events chan Event) []Event {
	var out []Event
	for {
		select {
		case ev := <-events:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func TestSetScene_FitsAndClampsZoom(t *testing.T) {
	c, events := newTestController(t)

	if c.Zoom() != c.MinZoom() {
		t.Errorf("initial zoom = %v, want fit zoom %v", c.Zoom(), c.MinZoom())
	}
	if c.Selected() != -1 {
		t.Errorf("initial selection = %d, want -1", c.Selected())
	}

	evs := drain(events)
	if len(evs) == 0 || evs[len(evs)-1].Kind != EventZoomChanged {
		t.Error("SetScene did not announce the zoom")
	}
}

func TestZoom_StaysClamped(t *testing.T) {
	c, _ := newTestController(t)

	for i := 0; i < 200; i++ {
		c.DeltaZoom(2)
	}
	if c.Zoom() != MaxZoom {
		t.Errorf("zoom after repeated zoom-in = %v, want %v", c.Zoom(), MaxZoom)
	}

	for i := 0; i < 200; i++ {
		c.DeltaZoom(0.5)
	}
	if c.Zoom() != c.MinZoom() {
		t.Errorf("zoom after repeated zoom-out = %v, want min %v", c.Zoom(), c.MinZoom())
	}
}

func TestDeltaZoom_SignalsOnce(t *testing.T) {
	c, events := newTestController(t)
	drain(events)

	c.DeltaZoom(1.5)
	if evs := drain(events); len(evs) != 1 || evs[0].Kind != EventZoomChanged {
		t.Errorf("zoom change emitted %+v, want one EventZoomChanged", evs)
	}

	// A clamped no-op zoom still signals, exactly once, for UI feedback.
	for i := 0; i < 40; i++ {
		c.DeltaZoom(2)
	}
	drain(events)
	c.DeltaZoom(2)
	if evs := drain(events); len(evs) != 1 || evs[0].Kind != EventZoomChanged {
		t.Errorf("clamped zoom emitted %+v, want one EventZoomChanged", evs)
	}
}

func TestZoomAt_KeepsAnchorFixed(t *testing.T) {
	c, _ := newTestController(t)

	anchor := mapdata.Point{X: 120, Y: 80}
	// Screen offset of the anchor from center, which must survive the zoom.
	beforeX := (anchor.X - c.Center().X) * c.Zoom()
	beforeY := (anchor.Y - c.Center().Y) * c.Zoom()

	c.ZoomAt(1.5, anchor)

	afterX := (anchor.X - c.Center().X) * c.Zoom()
	afterY := (anchor.Y - c.Center().Y) * c.Zoom()
	if math.Abs(afterX-beforeX) > 1e-9 || math.Abs(afterY-beforeY) > 1e-9 {
		t.Errorf("anchor moved on screen: (%v, %v) -> (%v, %v)", beforeX, beforeY, afterX, afterY)
	}
}

func TestZoomAt_ClampedZoomDoesNotPan(t *testing.T) {
	c, _ := newTestController(t)
	before := c.Center()

	// Already at min zoom; zooming out further must not move the camera.
	c.ZoomAt(0.5, mapdata.Point{X: 500, Y: 500})
	if c.Center() != before {
		t.Errorf("clamped zoom moved the center from %v to %v", before, c.Center())
	}
}

func TestDrag_Lifecycle(t *testing.T) {
	c, events := newTestController(t)
	drain(events)

	c.StartDrag()
	if c.Dragging() {
		t.Error("drag flagged before any movement")
	}
	if c.EndDrag() {
		t.Error("press-release without movement reported as a drag")
	}

	c.StartDrag()
	before := c.Center()
	c.DragBy(10, -4)
	if !c.Dragging() {
		t.Error("movement did not flag the drag")
	}
	if got := c.Center(); got.X != before.X+10 || got.Y != before.Y-4 {
		t.Errorf("center after drag = %v", got)
	}
	if !c.EndDrag() {
		t.Error("real drag not reported by EndDrag")
	}
	if c.Dragging() {
		t.Error("drag flag survived EndDrag")
	}

	evs := drain(events)
	if len(evs) != 1 || evs[0].Kind != EventDrag {
		t.Errorf("drag events = %+v, want one EventDrag", evs)
	}
}

func TestSelectRoom_EmitsAndToggles(t *testing.T) {
	c, events := newTestController(t)
	drain(events)

	c.SelectRoom(1)
	if c.Selected() != 1 {
		t.Fatalf("selected = %d, want 1", c.Selected())
	}
	evs := drain(events)
	if len(evs) != 1 || evs[0].Kind != EventRoomSelected || evs[0].Room.ID != 1 {
		t.Fatalf("select events = %+v", evs)
	}

	// Re-selecting the same room is a no-op.
	c.SelectRoom(1)
	if evs := drain(events); len(evs) != 0 {
		t.Errorf("re-select emitted %+v", evs)
	}

	// Moving the selection deselects the old room first.
	c.SelectRoom(2)
	if c.Selected() != 2 {
		t.Errorf("selected = %d, want 2", c.Selected())
	}
	h, _ := c.Scene().Handles(1)
	if h.Body.State() != render.StateNormal {
		t.Error("room 1 still styled selected after moving to room 2")
	}

	drain(events)
	c.Deselect()
	if c.Selected() != -1 {
		t.Errorf("selected after Deselect = %d, want -1", c.Selected())
	}
	evs = drain(events)
	if len(evs) != 1 || evs[0].Kind != EventRoomDeselected {
		t.Errorf("deselect events = %+v", evs)
	}
}

func TestSelectRoom_SuppressedMidDrag(t *testing.T) {
	c, events := newTestController(t)
	drain(events)

	c.StartDrag()
	c.DragBy(1, 1)
	c.SelectRoom(1)
	if c.Selected() != -1 {
		t.Errorf("selection changed mid-drag to %d", c.Selected())
	}
	c.EndDrag()
}

func TestSelectRoom_UnknownRoomClearsSelection(t *testing.T) {
	c, _ := newTestController(t)

	c.SelectRoom(1)
	c.SelectRoom(999)
	if c.Selected() != -1 {
		t.Errorf("selected = %d after selecting unknown room, want -1", c.Selected())
	}
}

func TestCenterRoom_CentersAndSelects(t *testing.T) {
	c, _ := newTestController(t)

	if !c.CenterRoom(2) {
		t.Fatal("CenterRoom(2) failed")
	}
	if c.Selected() != 2 {
		t.Errorf("selected = %d, want 2", c.Selected())
	}

	scene := c.Scene()
	room, _ := scene.Area.RoomByID(2)
	want := scene.Proj.ToView(scene.RoomCenter(room))
	if got := c.Center(); math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("center = %v, want %v", got, want)
	}

	if c.CenterRoom(999) {
		t.Error("CenterRoom on unknown room succeeded")
	}
}

func TestMove_StepScalesWithZoom(t *testing.T) {
	c, _ := newTestController(t)

	before := c.Center()
	zoom := c.Zoom()
	c.Move(1, 0)
	if got := c.Center().X - before.X; math.Abs(got-panStep/zoom) > 1e-9 {
		t.Errorf("pan step = %v, want %v", got, panStep/zoom)
	}
}
