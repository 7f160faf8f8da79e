package viewer

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mudmap/pkg/mapdata"
	"mudmap/pkg/render"
)

// Wheel and keyboard zoom step factors.
const (
	zoomInFactor  = 1.1
	zoomOutFactor = 0.9
)

// screenToView maps a window pixel position to view coordinates under the
// current camera.
func (a *App) screenToView(x, y float64) mapdata.Point {
	c := a.ctrl.Center()
	z := a.ctrl.Zoom()
	return mapdata.Point{
		X: c.X + (x-float64(a.windowWidth)/2)/z,
		Y: c.Y + (y-float64(a.windowHeight)/2)/z,
	}
}

// viewToScreen is the inverse of screenToView.
func (a *App) viewToScreen(v mapdata.Point) (float64, float64) {
	c := a.ctrl.Center()
	z := a.ctrl.Zoom()
	return (v.X-c.X)*z + float64(a.windowWidth)/2,
		(v.Y-c.Y)*z + float64(a.windowHeight)/2
}

// Update implements ebiten.Game: input handling only, drawing stays in Draw.
func (a *App) Update() error {
	if !a.windowOpenedLogged {
		a.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Map window opened (%dx%d)", w, h)
	}

	a.handleZoom()
	a.handleMouse()
	a.handleKeyboard()
	return nil
}

func (a *App) handleZoom() {
	if _, wy := ebiten.Wheel(); wy != 0 {
		factor := zoomOutFactor
		if wy > 0 {
			factor = zoomInFactor
		}
		mx, my := ebiten.CursorPosition()
		a.zoomAt(factor, a.screenToView(float64(mx), float64(my)))
	}

	// = and - mirror the wheel, anchored at the window center.
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		a.deltaZoom(zoomInFactor)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		a.deltaZoom(zoomOutFactor)
	}
}

// zoomAt applies a zoom anchored at a view point. The drag snapshot, if one
// is live, was rasterized at the old zoom and cannot be reused.
func (a *App) zoomAt(factor float64, at mapdata.Point) {
	a.ctrl.ZoomAt(factor, at)
	a.dragBuffer = nil
	a.zoomShownAt = nowMillis()
}

func (a *App) deltaZoom(factor float64) {
	a.ctrl.DeltaZoom(factor)
	a.dragBuffer = nil
	a.zoomShownAt = nowMillis()
}

func (a *App) handleMouse() {
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.mouseDown = true
		a.lastCursorX, a.lastCursorY = x, y
		a.ctrl.StartDrag()
	}

	if a.mouseDown && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		dx, dy := x-a.lastCursorX, y-a.lastCursorY
		if dx != 0 || dy != 0 {
			if a.settings.OptimizeDrag && a.dragBuffer == nil {
				a.captureDragBuffer()
			}
			z := a.ctrl.Zoom()
			a.ctrl.DragBy(-float64(dx)/z, -float64(dy)/z)
			a.lastCursorX, a.lastCursorY = x, y
		}
	}

	if a.mouseDown && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.mouseDown = false
		wasDrag := a.ctrl.EndDrag()
		a.dragBuffer = nil
		if !wasDrag {
			a.handleClick(x, y)
		}
	}
}

// handleClick resolves a click to the topmost pointer target.
func (a *App) handleClick(x, y int) {
	scene := a.ctrl.Scene()
	if scene == nil {
		return
	}
	world := scene.Proj.ToWorld(a.screenToView(float64(x), float64(y)))

	hit := scene.HitAt(world)
	if hit == nil {
		a.ctrl.Deselect()
		return
	}
	switch hit.Hit {
	case render.HitRoom:
		if hit.RoomID == a.ctrl.Selected() {
			a.ctrl.Deselect()
		} else {
			a.ctrl.SelectRoom(hit.RoomID)
		}
	case render.HitAreaLink:
		a.navigateArea(hit.Target)
	}
}

func (a *App) handleKeyboard() {
	// Continuous keyboard panning.
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		a.ctrl.Move(-1, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		a.ctrl.Move(1, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		a.ctrl.Move(0, -1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		a.ctrl.Move(0, 1)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		a.switchLevel(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		a.switchLevel(-1)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.ctrl.Deselect()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		a.savePending = true
	}

	a.handleExitNavigation()
}

// numpadDirections maps the numpad layout to compass directions for walking
// the selection along exits.
var numpadDirections = map[ebiten.Key]mapdata.Direction{
	ebiten.KeyNumpad8: mapdata.North,
	ebiten.KeyNumpad9: mapdata.NorthEast,
	ebiten.KeyNumpad7: mapdata.NorthWest,
	ebiten.KeyNumpad6: mapdata.East,
	ebiten.KeyNumpad4: mapdata.West,
	ebiten.KeyNumpad2: mapdata.South,
	ebiten.KeyNumpad3: mapdata.SouthEast,
	ebiten.KeyNumpad1: mapdata.SouthWest,
}

// handleExitNavigation moves the selection along the selected room's exits.
func (a *App) handleExitNavigation() {
	selected := a.ctrl.Selected()
	if selected < 0 {
		return
	}
	scene := a.ctrl.Scene()
	if scene == nil {
		return
	}
	room, ok := scene.Area.RoomByID(selected)
	if !ok {
		return
	}

	for key, dir := range numpadDirections {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		target, ok := exitTarget(room, dir)
		if !ok {
			continue
		}
		if _, visible := scene.Area.RoomByID(target); visible {
			a.ctrl.CenterRoom(target)
		} else {
			a.navigateArea(target)
		}
		return
	}
}

// exitTarget looks an exit up under both the long and the short direction
// key, since datasets mix the two.
func exitTarget(room *mapdata.Room, dir mapdata.Direction) (int, bool) {
	if t, ok := room.Exits[string(dir)]; ok {
		return t, true
	}
	t, ok := room.Exits[dir.Short()]
	return t, ok
}
