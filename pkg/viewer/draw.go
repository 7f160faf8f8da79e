package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"mudmap/pkg/mapdata"
	"mudmap/pkg/render"
)

// zoomBarFadeMillis is how long the zoom bar stays visible after a change.
const zoomBarFadeMillis = 3000

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage *ebiten.Image

	colorHUDText = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	colorHUDDim  = color.RGBA{R: 140, G: 140, B: 140, A: 255}
)

func init() {
	whiteImage.Fill(color.White)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	scene := a.ctrl.Scene()
	if scene == nil {
		a.drawText(screen, gotext.Get("No area loaded"), 20, 20, 16, colorHUDText)
		return
	}

	if a.ctrl.Dragging() && a.dragBuffer != nil {
		// Cheap raster stand-in while the pointer is moving; the vector
		// scene comes back on release.
		c := a.ctrl.Center()
		z := a.ctrl.Zoom()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate((a.dragCenter.X-c.X)*z, (a.dragCenter.Y-c.Y)*z)
		screen.DrawImage(a.dragBuffer, op)
	} else {
		a.renderScene(screen, scene)
	}

	a.drawHUD(screen, scene)

	if a.savePending {
		a.savePending = false
		a.saveScreenshot(screen)
	}
}

// captureDragBuffer renders the current scene once into an offscreen image.
func (a *App) captureDragBuffer() {
	scene := a.ctrl.Scene()
	if scene == nil {
		return
	}
	a.dragBuffer = ebiten.NewImage(a.windowWidth, a.windowHeight)
	a.dragBuffer.Fill(color.Black)
	a.renderScene(a.dragBuffer, scene)
	a.dragCenter = a.ctrl.Center()
}

// renderScene rasterizes every scene primitive back to front under the
// current camera.
func (a *App) renderScene(dst *ebiten.Image, scene *render.Scene) {
	scene.EachPrimitive(func(_ render.Layer, p *render.Primitive) {
		a.drawPrimitive(dst, scene, p)
	})
}

func (a *App) drawPrimitive(dst *ebiten.Image, scene *render.Scene, p *render.Primitive) {
	style := p.Style()
	px := scene.Proj.Scale() * a.ctrl.Zoom()

	switch p.Kind {
	case render.KindRect:
		x0, y0 := a.screenPoint(scene, p.Points[0])
		x1, y1 := a.screenPoint(scene, p.Points[1])
		x, y := math.Min(x0, x1), math.Min(y0, y1)
		w, h := math.Abs(x1-x0), math.Abs(y1-y0)
		if style.HasFill {
			vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), style.Fill, true)
		}
		if style.HasStroke {
			vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h),
				float32(style.StrokeWidth*px), style.Stroke, true)
		}
	case render.KindCircle:
		cx, cy := a.screenPoint(scene, p.Points[0])
		r := p.Radius * px
		if style.HasFill {
			vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), style.Fill, true)
		}
		if style.HasStroke {
			vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r),
				float32(style.StrokeWidth*px), style.Stroke, true)
		}
	case render.KindLine:
		a.strokePath(dst, scene, p.Points, style, px)
	case render.KindPolyline:
		a.strokePath(dst, scene, p.Points, style, px)
	case render.KindPolygon:
		a.drawPolygon(dst, scene, p.Points, style, px)
	case render.KindText:
		cx, cy := a.screenPoint(scene, p.Points[0])
		size := p.Size * px
		if size >= 1 && style.HasFill {
			a.drawCenteredText(dst, p.Text, cx, cy, size, style.Fill)
		}
	}
}

func (a *App) screenPoint(scene *render.Scene, w mapdata.Point) (float64, float64) {
	return a.viewToScreen(scene.Proj.ToView(w))
}

// strokePath draws the segments of a line or polyline, honoring the dash
// pattern by splitting each segment manually since the vector package only
// strokes solid lines.
func (a *App) strokePath(dst *ebiten.Image, scene *render.Scene, pts []mapdata.Point, style render.Style, px float64) {
	if !style.HasStroke || len(pts) < 2 {
		return
	}
	width := float32(style.StrokeWidth * px)

	for i := 1; i < len(pts); i++ {
		x0, y0 := a.screenPoint(scene, pts[i-1])
		x1, y1 := a.screenPoint(scene, pts[i])
		if len(style.Dash) == 0 {
			vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), width, style.Stroke, true)
			continue
		}
		drawDashedLine(dst, x0, y0, x1, y1, width, style.Stroke, style.Dash, px)
	}
}

// drawDashedLine walks a segment alternating pen-down and pen-up spans.
func drawDashedLine(dst *ebiten.Image, x0, y0, x1, y1 float64, width float32, clr color.RGBA, dash []float64, px float64) {
	length := math.Hypot(x1-x0, y1-y0)
	if length == 0 {
		return
	}
	ux, uy := (x1-x0)/length, (y1-y0)/length

	pos := 0.0
	down := true
	i := 0
	for pos < length {
		span := dash[i%len(dash)] * px
		if span <= 0 {
			span = 1
		}
		end := math.Min(pos+span, length)
		if down {
			vector.StrokeLine(dst,
				float32(x0+ux*pos), float32(y0+uy*pos),
				float32(x0+ux*end), float32(y0+uy*end),
				width, clr, true)
		}
		pos = end
		down = !down
		i++
	}
}

// drawPolygon fills a triangle fan over the polygon vertices and optionally
// strokes the outline. Scene polygons are convex (arrowheads, exit marks).
func (a *App) drawPolygon(dst *ebiten.Image, scene *render.Scene, pts []mapdata.Point, style render.Style, px float64) {
	if len(pts) < 3 {
		return
	}

	if style.HasFill {
		vs := make([]ebiten.Vertex, len(pts))
		for i, pt := range pts {
			x, y := a.screenPoint(scene, pt)
			vs[i] = ebiten.Vertex{
				DstX:   float32(x),
				DstY:   float32(y),
				SrcX:   1,
				SrcY:   1,
				ColorR: float32(style.Fill.R) / 255,
				ColorG: float32(style.Fill.G) / 255,
				ColorB: float32(style.Fill.B) / 255,
				ColorA: float32(style.Fill.A) / 255,
			}
		}
		is := make([]uint16, 0, (len(pts)-2)*3)
		for i := 2; i < len(pts); i++ {
			is = append(is, 0, uint16(i-1), uint16(i))
		}
		dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}

	if style.HasStroke {
		width := float32(style.StrokeWidth * px)
		for i := 0; i < len(pts); i++ {
			x0, y0 := a.screenPoint(scene, pts[i])
			x1, y1 := a.screenPoint(scene, pts[(i+1)%len(pts)])
			vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), width, style.Stroke, true)
		}
	}
}

// drawCenteredText draws text with its center at the given screen position.
func (a *App) drawCenteredText(dst *ebiten.Image, str string, cx, cy, size float64, clr color.RGBA) {
	face := a.face(size)
	if face == nil {
		return
	}
	w, h := text.Measure(str, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(cx-w/2, cy-h/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, face, op)
}

// drawText draws top-left anchored HUD text.
func (a *App) drawText(dst *ebiten.Image, str string, x, y int, size float64, clr color.RGBA) {
	face := a.face(size)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, face, op)
}

// drawHUD overlays the area header, the selection line and the zoom bar.
func (a *App) drawHUD(screen *ebiten.Image, scene *render.Scene) {
	header := fmt.Sprintf("%s  (%s %d)", scene.Area.Name, gotext.Get("level"), scene.Area.Level)
	a.drawText(screen, header, 10, 8, 16, colorHUDText)

	if selected := a.ctrl.Selected(); selected >= 0 {
		if room, ok := scene.Area.RoomByID(selected); ok {
			line := fmt.Sprintf("#%d  %s", room.ID, room.Name)
			a.drawText(screen, line, 10, a.windowHeight-28, 14, colorHUDText)
		}
	}

	a.drawZoomBar(screen)
}

// drawZoomBar shows the zoom position between the fit and max bounds for a
// few seconds after a zoom change, then fades out.
func (a *App) drawZoomBar(screen *ebiten.Image) {
	if a.zoomShownAt == 0 {
		return
	}
	elapsed := nowMillis() - a.zoomShownAt
	if elapsed >= zoomBarFadeMillis {
		return
	}
	alpha := 1 - float64(elapsed)/zoomBarFadeMillis

	const barWidth, barHeight = 6, 160
	x := float64(a.windowWidth - 24)
	y := float64(a.windowHeight-barHeight) / 2

	track := colorHUDDim
	track.A = uint8(80 * alpha)
	vector.DrawFilledRect(screen, float32(x), float32(y), barWidth, barHeight, track, true)

	span := MaxZoom - a.ctrl.MinZoom()
	frac := 0.0
	if span > 0 {
		frac = (a.ctrl.Zoom() - a.ctrl.MinZoom()) / span
	}
	fill := colorHUDText
	fill.A = uint8(200 * alpha)
	filled := barHeight * frac
	vector.DrawFilledRect(screen, float32(x), float32(y+barHeight-filled), barWidth, float32(filled), fill, true)
}

// saveScreenshot writes the current frame as a timestamped PNG next to the
// working directory.
func (a *App) saveScreenshot(screen *ebiten.Image) {
	bounds := screen.Bounds()
	img := image.NewRGBA(bounds)
	screen.ReadPixels(img.Pix)

	name := fmt.Sprintf("map-%s.png", time.Now().Format("20060102-150405"))
	f, err := os.Create(name)
	if err != nil {
		log.Printf("screenshot failed: %v", err)
		return
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		log.Printf("screenshot encode failed: %v", err)
		return
	}
	log.Printf("saved screenshot %s", name)
}
