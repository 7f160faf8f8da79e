// Package mapdata tests cover area resolution, level fallback, windowing,
// bounds and color lookups.
package mapdata

import (
	"testing"
)

// twoRoomRecords is the minimal connected pair: room 1 at the origin with an
// east exit to room 2, and the reverse exit back.
func twoRoomRecords() []AreaRecord {
	return []AreaRecord{
		{
			AreaID:   1,
			AreaName: "Harbor",
			Rooms: []*Room{
				{ID: 1, Name: "Pier", Env: 3, X: 0, Y: 0, Z: 0, Exits: map[string]int{"east": 2}},
				{ID: 2, Name: "Dock", Env: 3, X: 1, Y: 0, Z: 0, Exits: map[string]int{"west": 1}},
			},
		},
	}
}

func TestResolve_ReturnsRoomsAtLevel(t *testing.T) {
	idx := NewAreaIndex(twoRoomRecords(), nil)

	area, err := idx.Resolve(1, 0, nil)
	if err != nil {
		t.Fatalf("Resolve(1, 0) failed: %v", err)
	}
	if got := len(area.Rooms()); got != 2 {
		t.Fatalf("Resolve(1, 0) returned %d rooms, want 2", got)
	}
	if area.Name != "Harbor" {
		t.Errorf("area name = %q, want Harbor", area.Name)
	}
}

func TestResolve_FiltersOtherLevels(t *testing.T) {
	records := twoRoomRecords()
	records[0].Rooms = append(records[0].Rooms,
		&Room{ID: 3, Name: "Cellar", X: 0, Y: 0, Z: -1})
	idx := NewAreaIndex(records, nil)

	area, err := idx.Resolve(1, -1, nil)
	if err != nil {
		t.Fatalf("Resolve(1, -1) failed: %v", err)
	}
	if got := len(area.Rooms()); got != 1 {
		t.Fatalf("level -1 has %d rooms, want 1", got)
	}
	if area.Rooms()[0].ID != 3 {
		t.Errorf("level -1 room id = %d, want 3", area.Rooms()[0].ID)
	}
	if levels := area.Levels(); len(levels) != 2 || levels[0] != -1 || levels[1] != 0 {
		t.Errorf("Levels() = %v, want [-1 0]", levels)
	}
}

func TestResolve_EmptyLevelFallsBack(t *testing.T) {
	idx := NewAreaIndex(twoRoomRecords(), nil)

	area, err := idx.Resolve(1, 99, nil)
	if err != nil {
		t.Fatalf("Resolve(1, 99) failed: %v", err)
	}
	// Falls back to the level of the first room in dataset order.
	if area.Level != 0 {
		t.Errorf("fallback level = %d, want 0", area.Level)
	}
	if len(area.Rooms()) != 2 {
		t.Errorf("fallback returned %d rooms, want 2", len(area.Rooms()))
	}
}

func TestResolve_UnknownAreaIsError(t *testing.T) {
	idx := NewAreaIndex(twoRoomRecords(), nil)

	if _, err := idx.Resolve(42, 0, nil); err == nil {
		t.Fatal("Resolve(42, 0) succeeded, want error")
	}
}

func TestResolve_BoundsRestrict(t *testing.T) {
	idx := NewAreaIndex(twoRoomRecords(), nil)

	bounds := &Box{MinX: -0.5, MinY: -0.5, MaxX: 0.5, MaxY: 0.5}
	area, err := idx.Resolve(1, 0, bounds)
	if err != nil {
		t.Fatalf("Resolve with bounds failed: %v", err)
	}
	if got := len(area.Rooms()); got != 1 {
		t.Fatalf("bounded resolve returned %d rooms, want 1", got)
	}
	if area.Rooms()[0].ID != 1 {
		t.Errorf("bounded resolve kept room %d, want 1", area.Rooms()[0].ID)
	}
}

func TestRoomByID_CrossArea(t *testing.T) {
	records := twoRoomRecords()
	records = append(records, AreaRecord{
		AreaID:   2,
		AreaName: "Castle",
		Rooms:    []*Room{{ID: 10, Name: "Gate", X: 5, Y: 5, Z: 0}},
	})
	idx := NewAreaIndex(records, nil)

	room, ok := idx.RoomByID(10)
	if !ok {
		t.Fatal("RoomByID(10) not found")
	}
	if room.AreaID != 2 {
		t.Errorf("room 10 area id = %d, want 2", room.AreaID)
	}
	if _, ok := idx.RoomByID(999); ok {
		t.Error("RoomByID(999) found, want not-found")
	}
}

func TestAreas_SortedByName(t *testing.T) {
	records := []AreaRecord{
		{AreaID: 7, AreaName: "Zoo"},
		{AreaID: 3, AreaName: "Abbey"},
		{AreaID: 5, AreaName: "Market"},
	}
	idx := NewAreaIndex(records, nil)

	areas := idx.Areas()
	want := []string{"Abbey", "Market", "Zoo"}
	for i, area := range areas {
		if area.Name != want[i] {
			t.Errorf("Areas()[%d] = %q, want %q", i, area.Name, want[i])
		}
	}
}

func TestAreaContaining(t *testing.T) {
	idx := NewAreaIndex(twoRoomRecords(), nil)

	area, ok := idx.AreaContaining(2)
	if !ok {
		t.Fatal("AreaContaining(2) not found")
	}
	if area.ID != 1 || area.Level != 0 {
		t.Errorf("AreaContaining(2) = area %d level %d, want area 1 level 0", area.ID, area.Level)
	}
	if _, ok := idx.AreaContaining(999); ok {
		t.Error("AreaContaining(999) found, want not-found")
	}
}

func TestColorFor_FallsBack(t *testing.T) {
	colors := []EnvColor{{EnvID: 3, Colors: [3]uint8{10, 20, 30}}}
	idx := NewAreaIndex(nil, colors)

	if got := idx.ColorFor(3); got != (RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("ColorFor(3) = %v", got)
	}
	if got := idx.ColorFor(999); got != DefaultRoomColor {
		t.Errorf("ColorFor(999) = %v, want default %v", got, DefaultRoomColor)
	}
}

func TestBounds_IncludesLabels(t *testing.T) {
	records := twoRoomRecords()
	records[0].Labels = []Label{{X: 4, Y: 2, Z: 0, Width: 3, Height: 1, Text: "docks"}}
	idx := NewAreaIndex(records, nil)

	area, err := idx.Resolve(1, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	b := area.Bounds(false)
	if b.MaxX != 7 || b.MaxY != 3 {
		t.Errorf("bounds max = (%v, %v), want (7, 3)", b.MaxX, b.MaxY)
	}
	if b.MinX != 0 || b.MinY != 0 {
		t.Errorf("bounds min = (%v, %v), want (0, 0)", b.MinX, b.MinY)
	}
}

func TestBounds_AllLevels(t *testing.T) {
	records := twoRoomRecords()
	records[0].Rooms = append(records[0].Rooms,
		&Room{ID: 3, Name: "Tower", X: 9, Y: 9, Z: 1})
	idx := NewAreaIndex(records, nil)

	area, err := idx.Resolve(1, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	level := area.Bounds(false)
	all := area.Bounds(true)
	if level.MaxX != 1 {
		t.Errorf("level bounds max x = %v, want 1", level.MaxX)
	}
	if all.MaxX != 9 || all.MaxY != 9 {
		t.Errorf("all-level bounds max = (%v, %v), want (9, 9)", all.MaxX, all.MaxY)
	}
}

func TestWindowed_KeepsExitTargetsOutsideBox(t *testing.T) {
	records := []AreaRecord{
		{
			AreaID:   1,
			AreaName: "Plain",
			Rooms: []*Room{
				{ID: 1, Name: "Camp", X: 0, Y: 0, Z: 0, Exits: map[string]int{"east": 2}},
				{ID: 2, Name: "Far Hill", X: 10, Y: 0, Z: 0},
				{ID: 3, Name: "Unrelated", X: 20, Y: 20, Z: 0},
			},
		},
	}
	idx := NewAreaIndex(records, nil)
	area, err := idx.Resolve(1, 0, nil)
	if err != nil {
		t.Fatal(err)
	}

	windowed, ok := idx.Windowed(area, 1, 5)
	if !ok {
		t.Fatal("Windowed failed")
	}
	if _, ok := windowed.RoomByID(2); !ok {
		t.Error("room 2 dropped; exit targets of kept rooms must stay visible")
	}
	if _, ok := windowed.RoomByID(3); ok {
		t.Error("room 3 kept despite being outside the window and not a target")
	}
}

func TestWindowed_UnknownCenter(t *testing.T) {
	idx := NewAreaIndex(twoRoomRecords(), nil)
	area, err := idx.Resolve(1, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := idx.Windowed(area, 999, 5); ok {
		t.Error("Windowed around unknown room succeeded, want not-found")
	}
}
