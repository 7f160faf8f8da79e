package viewer

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"

	"mudmap/pkg/config"
	"mudmap/pkg/mapdata"
	"mudmap/pkg/render"
)

// eventBuffer bounds the host notification channel.
const eventBuffer = 64

// App is the Ebiten application: it glues the scene builder, the viewport
// controller and the window together and owns area/level navigation.
type App struct {
	idx      *mapdata.AreaIndex
	settings config.Settings
	builder  *render.SceneBuilder
	ctrl     *Controller

	areaID int
	level  int

	// Events mirrors controller notifications plus navigation events for
	// any host that wants them; the app itself acts on navigation directly.
	events chan Event

	// Font source for map and HUD text; nil when no font was configured,
	// in which case text is skipped.
	fontSource  *text.GoTextFaceSource
	cachedFaces map[float64]*text.GoTextFace

	windowWidth  int
	windowHeight int

	// Raster stand-in blitted during drags instead of the vector scene.
	dragBuffer *ebiten.Image
	dragCenter mapdata.Point

	mouseDown   bool
	lastCursorX int
	lastCursorY int

	// zoomShownAt drives the zoom bar fade-out.
	zoomShownAt int64

	savePending bool

	windowOpenedLogged bool
}

// New builds the application for one dataset.
func New(idx *mapdata.AreaIndex, settings config.Settings) (*App, error) {
	app := &App{
		idx:          idx,
		settings:     settings,
		builder:      render.NewBuilder(idx, settings),
		events:       make(chan Event, eventBuffer),
		cachedFaces:  make(map[float64]*text.GoTextFace),
		windowWidth:  settings.WindowWidth,
		windowHeight: settings.WindowHeight,
	}
	app.ctrl = NewController(app.events)

	if settings.FontPath != "" {
		raw, err := os.ReadFile(settings.FontPath)
		if err != nil {
			return nil, fmt.Errorf("viewer: reading font: %w", err)
		}
		src, err := text.NewGoTextFaceSource(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("viewer: parsing font: %w", err)
		}
		app.fontSource = src
	}

	return app, nil
}

// Events returns the host notification channel.
func (a *App) Events() <-chan Event { return a.events }

// Controller exposes the viewport state machine, mainly for the host to
// drive search and navigation commands.
func (a *App) Controller() *Controller { return a.ctrl }

// ShowArea resolves and displays one (area, level) view. The previous scene
// is discarded wholesale; scenes never coexist.
func (a *App) ShowArea(areaID, level int) error {
	area, err := a.idx.Resolve(areaID, level, nil)
	if err != nil {
		return err
	}
	a.areaID = area.ID
	a.level = area.Level

	scene := a.builder.Build(area)
	a.ctrl.SetScene(scene, float64(a.windowWidth), float64(a.windowHeight))
	a.dragBuffer = nil
	return nil
}

// ShowRoom jumps to the area and level containing a room, centers it and
// selects it.
func (a *App) ShowRoom(roomID int) error {
	room, ok := a.idx.RoomByID(roomID)
	if !ok {
		return fmt.Errorf("viewer: %s %d", gotext.Get("unknown room id"), roomID)
	}
	if err := a.ShowArea(room.AreaID, room.Z); err != nil {
		return err
	}
	a.ctrl.CenterRoom(roomID)
	return nil
}

// navigateArea follows a cross-area arrow click: resolve the target's owning
// area and switch to it with the target centered.
func (a *App) navigateArea(targetRoom int) {
	room, ok := a.idx.RoomByID(targetRoom)
	if !ok {
		// Dangling reference, a common and legitimate dataset state.
		return
	}
	a.emit(Event{Kind: EventAreaNavigation, RoomID: room.ID, AreaID: room.AreaID, Level: room.Z})
	if err := a.ShowRoom(room.ID); err != nil {
		log.Printf("area navigation to room %d failed: %v", room.ID, err)
	}
}

// switchLevel moves to the next or previous level of the current area.
func (a *App) switchLevel(delta int) {
	scene := a.ctrl.Scene()
	if scene == nil {
		return
	}
	levels := scene.Area.Levels()
	current := -1
	for i, z := range levels {
		if z == a.level {
			current = i
			break
		}
	}
	if current < 0 {
		return
	}
	next := current + delta
	if next < 0 || next >= len(levels) {
		return
	}
	if err := a.ShowArea(a.areaID, levels[next]); err != nil {
		log.Printf("level switch failed: %v", err)
	}
}

func (a *App) emit(ev Event) {
	select {
	case a.events <- ev:
	default:
	}
}

// face returns a cached font face for a pixel size, or nil without a font.
func (a *App) face(size float64) *text.GoTextFace {
	if a.fontSource == nil {
		return nil
	}
	if f, ok := a.cachedFaces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: a.fontSource, Size: size}
	a.cachedFaces[size] = f
	return f
}

// Layout implements ebiten.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.windowWidth || outsideHeight != a.windowHeight {
		a.windowWidth = outsideWidth
		a.windowHeight = outsideHeight
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it closes.
func (a *App) Run(title string) error {
	ebiten.SetWindowSize(a.settings.WindowWidth, a.settings.WindowHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(a)
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
