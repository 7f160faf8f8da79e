package render

import (
	"fmt"
	"strings"

	"mudmap/pkg/mapdata"
)

// SVG serializes the scene as a standalone SVG document. The same primitives
// drive both the interactive surface and this static export, so the two
// always agree pixel for pixel.
func SVG(scene *Scene) string {
	var sb strings.Builder

	min := scene.Proj.ToView(mapdata.Point{X: scene.Background.MinX, Y: scene.Background.MaxY})
	max := scene.Proj.ToView(mapdata.Point{X: scene.Background.MaxX, Y: scene.Background.MinY})
	width, height := max.X-min.X, max.Y-min.Y

	fmt.Fprintf(&sb,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.2f %.2f %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		min.X, min.Y, width, height, width, height)

	scene.EachPrimitive(func(_ Layer, p *Primitive) {
		writePrimitive(&sb, scene, p)
	})

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writePrimitive(sb *strings.Builder, scene *Scene, p *Primitive) {
	scale := scene.Proj.Scale()
	style := styleAttrs(p.Style(), scale)

	switch p.Kind {
	case KindRect:
		a := scene.Proj.ToView(p.Points[0])
		b := scene.Proj.ToView(p.Points[1])
		// The Y flip swaps which corner is on top.
		x, y := minf(a.X, b.X), minf(a.Y, b.Y)
		w, h := absf(b.X-a.X), absf(b.Y-a.Y)
		fmt.Fprintf(sb, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"%s/>`+"\n", x, y, w, h, style)
	case KindCircle:
		c := scene.Proj.ToView(p.Points[0])
		fmt.Fprintf(sb, `<circle cx="%.2f" cy="%.2f" r="%.2f"%s/>`+"\n", c.X, c.Y, p.Radius*scale, style)
	case KindLine:
		a := scene.Proj.ToView(p.Points[0])
		b := scene.Proj.ToView(p.Points[1])
		fmt.Fprintf(sb, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"%s/>`+"\n", a.X, a.Y, b.X, b.Y, style)
	case KindPolyline:
		fmt.Fprintf(sb, `<polyline points="%s" fill="none"%s/>`+"\n", pointList(scene, p.Points), style)
	case KindPolygon:
		fmt.Fprintf(sb, `<polygon points="%s"%s/>`+"\n", pointList(scene, p.Points), style)
	case KindText:
		c := scene.Proj.ToView(p.Points[0])
		fill := "#ffffff"
		if p.Style().HasFill {
			fill = hexColor(p.Style().Fill.R, p.Style().Fill.G, p.Style().Fill.B)
		}
		fmt.Fprintf(sb,
			`<text x="%.2f" y="%.2f" font-size="%.2f" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
			c.X, c.Y, p.Size*scale, fill, escapeText(p.Text))
	}
}

func pointList(scene *Scene, pts []mapdata.Point) string {
	parts := make([]string, 0, len(pts))
	for _, pt := range pts {
		v := scene.Proj.ToView(pt)
		parts = append(parts, fmt.Sprintf("%.2f,%.2f", v.X, v.Y))
	}
	return strings.Join(parts, " ")
}

func styleAttrs(s Style, scale float64) string {
	var sb strings.Builder

	if s.HasFill {
		fmt.Fprintf(&sb, ` fill="%s"`, hexColor(s.Fill.R, s.Fill.G, s.Fill.B))
		if s.Fill.A < 255 {
			fmt.Fprintf(&sb, ` fill-opacity="%.2f"`, float64(s.Fill.A)/255)
		}
	} else {
		sb.WriteString(` fill="none"`)
	}
	if s.HasStroke {
		fmt.Fprintf(&sb, ` stroke="%s" stroke-width="%.2f"`,
			hexColor(s.Stroke.R, s.Stroke.G, s.Stroke.B), s.StrokeWidth*scale)
		if len(s.Dash) > 0 {
			dashes := make([]string, 0, len(s.Dash))
			for _, d := range s.Dash {
				dashes = append(dashes, fmt.Sprintf("%.2f", d*scale))
			}
			fmt.Fprintf(&sb, ` stroke-dasharray="%s"`, strings.Join(dashes, " "))
		}
	}
	return sb.String()
}

func hexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func escapeText(s string) string {
	replacer := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return replacer.Replace(s)
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
