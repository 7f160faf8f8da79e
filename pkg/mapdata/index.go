package mapdata

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// DefaultRoomColor fills rooms whose environment tag has no registered color.
var DefaultRoomColor = RGB{R: 114, G: 1, B: 0}

// AreaRecord is one raw area entry of the input dataset.
type AreaRecord struct {
	AreaID   int     `json:"areaId"`
	AreaName string  `json:"areaName"`
	Rooms    []*Room `json:"rooms"`
	Labels   []Label `json:"labels"`
}

// EnvColor maps an environment tag to its RGB triple in the color dataset.
type EnvColor struct {
	EnvID  EnvID    `json:"envId"`
	Colors [3]uint8 `json:"colors"`
}

// AreaIndex is the canonical, read-only store: every area keyed by id, every
// room keyed by id across all areas, and the environment color table. Built
// once from static input at startup.
type AreaIndex struct {
	areas  map[int]*AreaRecord
	order  []int // area ids sorted by area name, for stable listings
	rooms  map[int]*Room
	colors map[int]RGB
}

// NewAreaIndex builds the canonical store. Rooms are stamped with their owning
// area id; room ids are unique across the whole dataset, which is what makes
// cross-area exit lookups work.
func NewAreaIndex(records []AreaRecord, colors []EnvColor) *AreaIndex {
	idx := &AreaIndex{
		areas:  make(map[int]*AreaRecord, len(records)),
		rooms:  make(map[int]*Room),
		colors: make(map[int]RGB, len(colors)),
	}

	sorted := make([]AreaRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AreaName < sorted[j].AreaName
	})

	for i := range sorted {
		rec := sorted[i]
		idx.areas[rec.AreaID] = &sorted[i]
		idx.order = append(idx.order, rec.AreaID)
		for _, room := range rec.Rooms {
			room.AreaID = rec.AreaID
			idx.rooms[room.ID] = room
		}
	}

	for _, ec := range colors {
		idx.colors[int(ec.EnvID)] = RGB{R: ec.Colors[0], G: ec.Colors[1], B: ec.Colors[2]}
	}

	return idx
}

// AreaSummary is a listing entry for hosts populating an area selector.
type AreaSummary struct {
	ID        int    `json:"areaId"`
	Name      string `json:"areaName"`
	RoomCount int    `json:"roomCount"`
}

// Areas lists all areas sorted by display name.
func (idx *AreaIndex) Areas() []AreaSummary {
	out := make([]AreaSummary, 0, len(idx.order))
	for _, id := range idx.order {
		rec := idx.areas[id]
		out = append(out, AreaSummary{ID: rec.AreaID, Name: rec.AreaName, RoomCount: len(rec.Rooms)})
	}
	return out
}

// EachRoom visits every room of every area in stable area-name order.
func (idx *AreaIndex) EachRoom(fn func(*Room)) {
	for _, id := range idx.order {
		for _, room := range idx.areas[id].Rooms {
			fn(room)
		}
	}
}

// RoomByID looks a room up in the flattened global index.
func (idx *AreaIndex) RoomByID(id int) (*Room, bool) {
	r, ok := idx.rooms[id]
	return r, ok
}

// ColorFor resolves an environment tag to its fill color, falling back to
// DefaultRoomColor for unregistered tags. Never fails.
func (idx *AreaIndex) ColorFor(env int) RGB {
	if c, ok := idx.colors[env]; ok {
		return c
	}
	return DefaultRoomColor
}

// Resolve materializes one (area, level) view, optionally restricted to rooms
// and labels strictly inside bounds. If the requested level has no rooms the
// view falls back to the level of the first room encountered in dataset order;
// an empty floor is recoverable, an unknown area id is a caller contract
// violation and returns an error.
func (idx *AreaIndex) Resolve(areaID, level int, bounds *Box) (*Area, error) {
	rec, ok := idx.areas[areaID]
	if !ok {
		return nil, fmt.Errorf("mapdata: unknown area id %d", areaID)
	}

	levels := mapset.New[int]()
	var kept []*Room
	for _, room := range rec.Rooms {
		levels.Put(room.Z)
		if room.Z != level {
			continue
		}
		if bounds != nil && !bounds.Contains(room.X, room.Y) {
			continue
		}
		kept = append(kept, room)
	}

	if !levels.Has(level) && len(rec.Rooms) > 0 {
		return idx.Resolve(areaID, rec.Rooms[0].Z, bounds)
	}

	area := &Area{
		ID:       rec.AreaID,
		Name:     rec.AreaName,
		Level:    level,
		rooms:    kept,
		byID:     make(map[int]*Room, len(kept)),
		allRooms: rec.Rooms,
	}
	for _, room := range kept {
		area.byID[room.ID] = room
	}

	for _, label := range rec.Labels {
		area.allLabels = append(area.allLabels, label)
		if label.Z != level {
			continue
		}
		if bounds != nil && !bounds.Contains(label.X, label.Y) {
			continue
		}
		area.Labels = append(area.Labels, label)
	}

	levels.Each(func(z int) { area.levels = append(area.levels, z) })
	sort.Ints(area.levels)

	return area, nil
}

// AreaContaining resolves the area holding a room, at that room's own level.
func (idx *AreaIndex) AreaContaining(roomID int) (*Area, bool) {
	room, ok := idx.rooms[roomID]
	if !ok {
		return nil, false
	}
	area, err := idx.Resolve(room.AreaID, room.Z, nil)
	if err != nil {
		return nil, false
	}
	return area, true
}

// Windowed crops a resolved area to the neighborhood of one room: rooms within
// padding of its position are kept, and so is any exit target of a kept room,
// so a visible room's link always has a visible endpoint. Labels are kept when
// they fall inside the same box.
func (idx *AreaIndex) Windowed(area *Area, roomID int, padding float64) (*Area, bool) {
	center, ok := area.RoomByID(roomID)
	if !ok {
		return nil, false
	}

	box := Box{
		MinX: center.X - padding, MinY: center.Y - padding,
		MaxX: center.X + padding, MaxY: center.Y + padding,
	}

	keep := mapset.New[int]()
	for _, room := range area.Rooms() {
		if !box.Contains(room.X, room.Y) && room.ID != roomID {
			continue
		}
		keep.Put(room.ID)
		for _, target := range room.Exits {
			keep.Put(target)
		}
		for _, target := range room.SpecialExits {
			keep.Put(target)
		}
	}

	cropped := &Area{
		ID:       area.ID,
		Name:     area.Name,
		Level:    area.Level,
		byID:     make(map[int]*Room),
		levels:   area.levels,
		allRooms: area.allRooms,
	}
	for _, room := range area.Rooms() {
		if !keep.Has(room.ID) {
			continue
		}
		cropped.rooms = append(cropped.rooms, room)
		cropped.byID[room.ID] = room
	}
	for _, label := range area.Labels {
		if box.Contains(label.X, label.Y) {
			cropped.Labels = append(cropped.Labels, label)
		}
	}

	return cropped, true
}
