package viz

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/forcelab/internal/config"
	"github.com/san-kum/forcelab/internal/scenario"
)

const (
	axisColor    = lipgloss.Color("#444466")
	surfaceColor = lipgloss.Color("#aaaaaa")
	bodyColor    = lipgloss.Color("#a0522d")
)

var roleColors = map[scenario.Role]lipgloss.Color{
	scenario.RoleWeight:    lipgloss.Color("#3b6fff"),
	scenario.RoleNormal:    lipgloss.Color("#ff9f1a"),
	scenario.RoleComponent: lipgloss.Color("#2ca02c"),
}

// ArrowColor picks the diagram color for a role. Applied forces use the force
// color; resultants and friction use the resultant color.
func ArrowColor(role scenario.Role, plot config.PlotConfig) lipgloss.Color {
	switch role {
	case scenario.RoleForce:
		return lipgloss.Color(plot.ForceColor)
	case scenario.RoleResultant, scenario.RoleFriction:
		return lipgloss.Color(plot.ResultantColor)
	}
	return roleColors[role]
}

// Bounds returns the world-space box enclosing every element of the report,
// padded by 10% and never smaller than one unit per side.
func Bounds(rep *scenario.Report) (min, max mgl64.Vec2) {
	min = rep.Body
	max = rep.Body
	grow := func(p mgl64.Vec2) {
		min = mgl64.Vec2{math.Min(min[0], p[0]), math.Min(min[1], p[1])}
		max = mgl64.Vec2{math.Max(max[0], p[0]), math.Max(max[1], p[1])}
	}
	for _, a := range rep.Arrows {
		grow(a.Origin)
		grow(a.Tip())
	}
	if rep.Surface != nil {
		grow(rep.Surface.From)
		grow(rep.Surface.To)
	}

	pad := max.Sub(min).Mul(0.1)
	pad = mgl64.Vec2{math.Max(pad[0], 0.5), math.Max(pad[1], 0.5)}
	return min.Sub(pad), max.Add(pad)
}

// Diagram draws the free-body diagram of a report onto a w x h cell canvas.
func Diagram(rep *scenario.Report, plot config.PlotConfig, w, h int) *Canvas {
	c := NewCanvas(w, h)
	min, max := equalAspect(Bounds(rep))(w*2, h*4)
	vp := NewViewport(c, min, max)

	if rep.Problem == "forces" {
		vp.Line(mgl64.Vec2{min[0], 0}, mgl64.Vec2{max[0], 0}, axisColor)
		vp.Line(mgl64.Vec2{0, min[1]}, mgl64.Vec2{0, max[1]}, axisColor)
	}
	if rep.Surface != nil {
		vp.Line(rep.Surface.From, rep.Surface.To, surfaceColor)
	}

	for _, a := range rep.Arrows {
		vp.Arrow(a.Origin, a.Vector, ArrowColor(a.Role, plot))
	}

	// body marker
	bx, by := vp.Dot(rep.Body)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			c.Set(bx+dx, by+dy, bodyColor)
		}
	}
	return c
}

// equalAspect widens the shorter side of a box so one world unit covers the
// same number of dots on both axes.
func equalAspect(min, max mgl64.Vec2) func(dotsW, dotsH int) (mgl64.Vec2, mgl64.Vec2) {
	return func(dotsW, dotsH int) (mgl64.Vec2, mgl64.Vec2) {
		span := max.Sub(min)
		perDotX := span[0] / float64(dotsW)
		perDotY := span[1] / float64(dotsH)
		center := min.Add(max).Mul(0.5)
		if perDotX > perDotY {
			half := perDotX * float64(dotsH) / 2
			return mgl64.Vec2{min[0], center[1] - half}, mgl64.Vec2{max[0], center[1] + half}
		}
		half := perDotY * float64(dotsW) / 2
		return mgl64.Vec2{center[0] - half, min[1]}, mgl64.Vec2{center[0] + half, max[1]}
	}
}
