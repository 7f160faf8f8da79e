package viewer

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"mudmap/pkg/config"
	"mudmap/pkg/mapdata"
)

func testApp(t *testing.T) *App {
	t.Helper()
	records := []mapdata.AreaRecord{
		{
			AreaID:   1,
			AreaName: "Town",
			Rooms: []*mapdata.Room{
				{ID: 1, X: 0, Y: 0, Exits: map[string]int{"east": 2}},
				{ID: 2, X: 1, Y: 0, Exits: map[string]int{"west": 1}},
			},
		},
	}
	settings := config.Default()
	settings.FontPath = ""

	app, err := New(mapdata.NewAreaIndex(records, nil), settings)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := app.ShowArea(1, 0); err != nil {
		t.Fatalf("ShowArea failed: %v", err)
	}
	return app
}

func TestZoomDropsDragSnapshot(t *testing.T) {
	a := testApp(t)

	// The snapshot is rasterized at one zoom; any zoom change invalidates it.
	a.dragBuffer = ebiten.NewImage(8, 8)
	a.zoomAt(zoomInFactor, a.ctrl.Center())
	if a.dragBuffer != nil {
		t.Error("drag snapshot survived a wheel zoom")
	}

	a.dragBuffer = ebiten.NewImage(8, 8)
	a.deltaZoom(zoomOutFactor)
	if a.dragBuffer != nil {
		t.Error("drag snapshot survived a keyboard zoom")
	}
}

func TestShowRoom_JumpsAndSelects(t *testing.T) {
	a := testApp(t)

	if err := a.ShowRoom(2); err != nil {
		t.Fatalf("ShowRoom(2) failed: %v", err)
	}
	if a.ctrl.Selected() != 2 {
		t.Errorf("selected = %d, want 2", a.ctrl.Selected())
	}
	if err := a.ShowRoom(999); err == nil {
		t.Error("ShowRoom(999) succeeded, want error")
	}
}
