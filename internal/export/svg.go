package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/forcelab/internal/config"
	"github.com/san-kum/forcelab/internal/scenario"
	"github.com/san-kum/forcelab/internal/viz"
)

// ReportToSVG draws the free-body diagram of a report as an SVG document.
func ReportToSVG(rep *scenario.Report, plot config.PlotConfig, width, height int) string {
	if rep == nil {
		return ""
	}

	min, max := viz.Bounds(rep)
	rangeX := max[0] - min[0]
	rangeY := max[1] - min[1]
	// keep one world unit the same length on both axes
	unit := float64(width) / rangeX
	if u := float64(height) / rangeY; u < unit {
		unit = u
	}
	offX := (float64(width) - rangeX*unit) / 2
	offY := (float64(height) - rangeY*unit) / 2
	toSVG := func(p mgl64.Vec2) (float64, float64) {
		return offX + (p[0]-min[0])*unit, float64(height) - offY - (p[1]-min[1])*unit
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<title>%s</title>
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height, html.EscapeString(rep.Title)))

	if rep.Problem == "forces" {
		x0, y0 := toSVG(mgl64.Vec2{min[0], 0})
		x1, y1 := toSVG(mgl64.Vec2{max[0], 0})
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#000000" stroke-width="0.5"/>
`, x0, y0, x1, y1))
		x0, y0 = toSVG(mgl64.Vec2{0, min[1]})
		x1, y1 = toSVG(mgl64.Vec2{0, max[1]})
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#000000" stroke-width="0.5"/>
`, x0, y0, x1, y1))
	}

	if rep.Surface != nil {
		x0, y0 := toSVG(rep.Surface.From)
		x1, y1 := toSVG(rep.Surface.To)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#000000" stroke-width="3"/>
`, x0, y0, x1, y1))
	}

	bx, by := toSVG(rep.Body)
	sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="12" height="12" fill="#a52a2a"/>
`, bx-6, by-6))

	for _, a := range rep.Arrows {
		if a.Vector.Len() == 0 {
			continue
		}
		color := string(viz.ArrowColor(a.Role, plot))
		x0, y0 := toSVG(a.Origin)
		x1, y1 := toSVG(a.Tip())
		strokeWidth := 2
		if a.Role == scenario.RoleResultant {
			strokeWidth = 3
		}
		sb.WriteString(fmt.Sprintf(`<g stroke="%s" fill="%s">
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke-width="%d"/>
<polygon points="%s"/>
</g>
`, color, color, x0, y0, x1, y1, strokeWidth, arrowHead(x0, y0, x1, y1)))

		lx, ly := toSVG(a.Origin.Add(a.Vector.Mul(0.6)))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="11" font-family="sans-serif" text-anchor="middle">%s</text>
`, lx, ly, html.EscapeString(a.Label)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// arrowHead returns the triangle at the end of a screen-space segment.
func arrowHead(x0, y0, x1, y1 float64) string {
	d := mgl64.Vec2{x1 - x0, y1 - y0}
	if d.Len() == 0 {
		return ""
	}
	size := 8.0
	if l := d.Len() / 3; l < size {
		size = l
	}
	back := d.Normalize().Mul(-size)
	side := mgl64.Vec2{-back[1], back[0]}.Mul(0.5)
	tip := mgl64.Vec2{x1, y1}
	a := tip.Add(back).Add(side)
	b := tip.Add(back).Sub(side)
	return fmt.Sprintf("%.1f,%.1f %.1f,%.1f %.1f,%.1f", tip[0], tip[1], a[0], a[1], b[0], b[1])
}
