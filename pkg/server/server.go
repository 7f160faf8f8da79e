// Package server exposes the map dataset over a small JSON API, plus a
// headless SVG fragment renderer for embedding map excerpts elsewhere.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mudmap/pkg/config"
	"mudmap/pkg/mapdata"
	"mudmap/pkg/render"
	"mudmap/pkg/route"
)

// defaultFragmentPadding is the world-unit neighborhood kept around the
// focus room when no padding query parameter is given.
const defaultFragmentPadding = 10.0

// Server wires the index, the route graph and the scene builder behind
// HTTP handlers.
type Server struct {
	idx     *mapdata.AreaIndex
	graph   *route.Graph
	builder *render.SceneBuilder
}

// New creates a Server over an already loaded dataset.
func New(idx *mapdata.AreaIndex, graph *route.Graph, settings config.Settings) *Server {
	return &Server{
		idx:     idx,
		graph:   graph,
		builder: render.NewBuilder(idx, settings),
	}
}

// Routes configures the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Get("/areas", s.listAreas)
		r.Get("/areas/{id}/levels/{z}", s.getAreaLevel)
		r.Get("/rooms/{id}", s.getRoom)
		r.Get("/rooms/{id}/fragment.svg", s.getFragment)
		r.Get("/route/{from}/{to}", s.getRoute)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	return r
}

// ListenAndServe runs the server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("map API listening on %s", addr)
	return http.ListenAndServe(addr, s.Routes())
}

// listAreas handles GET /api/areas.
func (s *Server) listAreas(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.idx.Areas())
}

// roomView is the wire form of a room.
type roomView struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	AreaID int     `json:"areaId"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      int     `json:"z"`
	Env    int     `json:"env"`

	Exits        map[string]int `json:"exits,omitempty"`
	SpecialExits map[string]int `json:"specialExits,omitempty"`
}

func viewOf(room *mapdata.Room) roomView {
	return roomView{
		ID:     room.ID,
		Name:   room.Name,
		AreaID: room.AreaID,
		X:      room.X, Y: room.Y, Z: room.Z,
		Env:          room.Env,
		Exits:        room.Exits,
		SpecialExits: room.SpecialExits,
	}
}

// getAreaLevel handles GET /api/areas/{id}/levels/{z}.
func (s *Server) getAreaLevel(w http.ResponseWriter, r *http.Request) {
	areaID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad area id")
		return
	}
	level, err := strconv.Atoi(chi.URLParam(r, "z"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad level")
		return
	}

	area, err := s.idx.Resolve(areaID, level, nil)
	if err != nil {
		respondError(w, http.StatusNotFound, "area not found")
		return
	}

	rooms := make([]roomView, 0, len(area.Rooms()))
	for _, room := range area.Rooms() {
		rooms = append(rooms, viewOf(room))
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"areaId":   area.ID,
		"areaName": area.Name,
		"level":    area.Level,
		"levels":   area.Levels(),
		"rooms":    rooms,
		"labels":   area.Labels,
	})
}

// getRoom handles GET /api/rooms/{id}.
func (s *Server) getRoom(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad room id")
		return
	}
	room, ok := s.idx.RoomByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, "room not found")
		return
	}
	respondJSON(w, http.StatusOK, viewOf(room))
}

// getFragment handles GET /api/rooms/{id}/fragment.svg?padding=N: a vector
// excerpt of the room's neighborhood with the room marked.
func (s *Server) getFragment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad room id")
		return
	}

	padding := defaultFragmentPadding
	if raw := r.URL.Query().Get("padding"); raw != "" {
		padding, err = strconv.ParseFloat(raw, 64)
		if err != nil || padding <= 0 {
			respondError(w, http.StatusBadRequest, "bad padding")
			return
		}
	}

	svg, err := Fragment(s.idx, s.builder, id, padding)
	if err != nil {
		respondError(w, http.StatusNotFound, "room not found")
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if _, err := w.Write([]byte(svg)); err != nil {
		log.Printf("Error writing fragment: %v", err)
	}
}

// Fragment renders the SVG neighborhood of one room, shared by the HTTP
// handler and the command line export.
func Fragment(idx *mapdata.AreaIndex, builder *render.SceneBuilder, roomID int, padding float64) (string, error) {
	area, ok := idx.AreaContaining(roomID)
	if !ok {
		return "", &NotFoundError{Kind: "room", ID: roomID}
	}
	windowed, ok := idx.Windowed(area, roomID, padding)
	if !ok {
		return "", &NotFoundError{Kind: "room", ID: roomID}
	}

	scene := builder.Build(windowed)
	scene.MarkPosition(roomID)
	return render.SVG(scene), nil
}

// NotFoundError reports a missing dataset entity.
type NotFoundError struct {
	Kind string
	ID   int
}

func (e *NotFoundError) Error() string {
	return "unknown " + e.Kind + " " + strconv.Itoa(e.ID)
}

// getRoute handles GET /api/route/{from}/{to}.
func (s *Server) getRoute(w http.ResponseWriter, r *http.Request) {
	from, err := strconv.Atoi(chi.URLParam(r, "from"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad from id")
		return
	}
	to, err := strconv.Atoi(chi.URLParam(r, "to"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad to id")
		return
	}

	path, ok := s.graph.ShortestPath(from, to)
	if !ok {
		// Disconnected rooms are a normal answer, not a server error.
		respondJSON(w, http.StatusOK, map[string]any{"found": false})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"found": true,
		"hops":  len(path) - 1,
		"path":  path,
	})
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
