package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mudmap/pkg/config"
	"mudmap/pkg/mapdata"
	"mudmap/pkg/route"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	records := []mapdata.AreaRecord{
		{
			AreaID:   1,
			AreaName: "Harbor",
			Rooms: []*mapdata.Room{
				{ID: 1, Name: "Pier", X: 0, Y: 0, Exits: map[string]int{"east": 2}},
				{ID: 2, Name: "Dock", X: 1, Y: 0, Exits: map[string]int{"west": 1}},
				{ID: 9, Name: "Skiff", X: 9, Y: 9},
			},
		},
		{
			AreaID:   2,
			AreaName: "Castle",
			Rooms:    []*mapdata.Room{{ID: 10, Name: "Gate", X: 0, Y: 0}},
		},
	}
	idx := mapdata.NewAreaIndex(records, nil)
	settings := config.Default()
	settings.FontPath = ""
	return New(idx, route.Build(idx), settings)
}

func get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	testServer(t).Routes().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q, want application/json", ct)
	}
	if err := json.NewDecoder(rec.Body).Decode(into); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
}

func TestListAreas(t *testing.T) {
	rec := get(t, "/api/areas")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var areas []struct {
		Name string `json:"areaName"`
	}
	decode(t, rec, &areas)
	if len(areas) != 2 {
		t.Fatalf("%d areas, want 2", len(areas))
	}
	// Sorted by display name.
	if areas[0].Name != "Castle" || areas[1].Name != "Harbor" {
		t.Errorf("areas = %+v, want Castle then Harbor", areas)
	}
}

func TestGetAreaLevel(t *testing.T) {
	rec := get(t, "/api/areas/1/levels/0")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		AreaID   int               `json:"areaId"`
		AreaName string            `json:"areaName"`
		Level    int               `json:"level"`
		Rooms    []json.RawMessage `json:"rooms"`
	}
	decode(t, rec, &body)
	if body.AreaID != 1 || body.AreaName != "Harbor" || body.Level != 0 {
		t.Errorf("body = %+v", body)
	}
	if len(body.Rooms) != 3 {
		t.Errorf("%d rooms, want 3", len(body.Rooms))
	}

	if rec := get(t, "/api/areas/42/levels/0"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown area status = %d, want 404", rec.Code)
	}
	if rec := get(t, "/api/areas/x/levels/0"); rec.Code != http.StatusBadRequest {
		t.Errorf("bad area id status = %d, want 400", rec.Code)
	}
}

func TestGetRoom(t *testing.T) {
	rec := get(t, "/api/rooms/10")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var room struct {
		ID     int    `json:"id"`
		Name   string `json:"name"`
		AreaID int    `json:"areaId"`
	}
	decode(t, rec, &room)
	if room.ID != 10 || room.Name != "Gate" || room.AreaID != 2 {
		t.Errorf("room = %+v", room)
	}

	if rec := get(t, "/api/rooms/999"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown room status = %d, want 404", rec.Code)
	}
}

func TestGetFragment(t *testing.T) {
	rec := get(t, "/api/rooms/1/fragment.svg")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q", ct)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "<svg ") {
		t.Errorf("body does not start an svg document: %.60q", body)
	}
	// The focus room is marked.
	if !strings.Contains(body, "<circle ") {
		t.Error("no position marker in the fragment")
	}

	if rec := get(t, "/api/rooms/1/fragment.svg?padding=-1"); rec.Code != http.StatusBadRequest {
		t.Errorf("negative padding status = %d, want 400", rec.Code)
	}
	if rec := get(t, "/api/rooms/999/fragment.svg"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown room status = %d, want 404", rec.Code)
	}
}

func TestGetRoute(t *testing.T) {
	rec := get(t, "/api/route/1/2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Found bool  `json:"found"`
		Hops  int   `json:"hops"`
		Path  []int `json:"path"`
	}
	decode(t, rec, &body)
	if !body.Found || body.Hops != 1 || len(body.Path) != 2 {
		t.Errorf("route body = %+v", body)
	}

	// Disconnected rooms answer found=false with a 200, not an error.
	rec = get(t, "/api/route/1/9")
	if rec.Code != http.StatusOK {
		t.Fatalf("no-route status = %d, want 200", rec.Code)
	}
	var miss struct {
		Found bool `json:"found"`
	}
	decode(t, rec, &miss)
	if miss.Found {
		t.Error("disconnected rooms reported as routable")
	}

	if rec := get(t, "/api/route/x/2"); rec.Code != http.StatusBadRequest {
		t.Errorf("bad from id status = %d, want 400", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	rec := get(t, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	decode(t, rec, &body)
	if body["status"] != "ok" {
		t.Errorf("health body = %v", body)
	}
}
