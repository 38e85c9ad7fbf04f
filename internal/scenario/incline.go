package scenario

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/forcelab/internal/config"
	"github.com/san-kum/forcelab/internal/mechanics"
)

const (
	rampLength   = 8.0
	inclineScale = 0.01
)

// InclineSolver resolves a block resting on an inclined plane.
type InclineSolver struct{}

func (s *InclineSolver) Name() string        { return "incline" }
func (s *InclineSolver) Description() string { return "block on an inclined plane" }

func (s *InclineSolver) Solve(cfg *config.Config) (*Report, error) {
	inc := cfg.Incline
	res := mechanics.ResolveIncline(cfg.Mass, inc.Angle, inc.MuStatic, inc.MuKinetic)

	r := &Report{
		Problem: s.Name(),
		Title:   fmt.Sprintf("Inclined plane at %.1f°", inc.Angle),
		Mass:    cfg.Mass,
		State:   res.State,
		Result:  res,
	}
	r.add("weight", "Total weight", res.Weight, "N")
	r.add("parallel", "Parallel component", res.Driving, "N")
	r.add("perpendicular", "Perpendicular component", res.Perpendicular, "N")
	r.add("normal", "Normal force", res.Normal, "N")
	r.add("max_static", "Max static friction", res.MaxStatic, "N")
	r.add("kinetic", "Kinetic friction", res.Kinetic, "N")
	r.add("friction", "Actual friction", res.Friction, "N")
	r.add("acceleration", "Acceleration", res.Acceleration, "m/s²")

	if res.State == mechanics.Static {
		r.Verdict = "the block stays at rest: static friction balances the parallel weight component"
	} else {
		r.Verdict = "the block slides: the parallel weight component exceeds maximum static friction"
	}

	rad := mechanics.Radians(inc.Angle)
	sin, cos := math.Sin(rad), math.Cos(rad)
	// the ramp has a fixed slope length at every angle
	upSlope := mgl64.Vec2{cos, sin}
	r.Surface = &Segment{To: upSlope.Mul(rampLength)}
	r.Body = upSlope.Mul(rampLength / 2)

	k := cfg.Plot.Scale * inclineScale
	downSlope := mgl64.Vec2{-cos, -sin}
	intoPlane := mgl64.Vec2{sin, -cos}
	r.Arrows = []Arrow{
		{Label: fmt.Sprintf("Weight %.1fN", res.Weight), Role: RoleWeight, Origin: r.Body, Vector: mgl64.Vec2{0, -res.Weight * k}, Magnitude: res.Weight},
		{Label: "Parallel", Role: RoleComponent, Origin: r.Body, Vector: downSlope.Mul(res.Driving * k), Magnitude: res.Driving},
		{Label: "Perpendicular", Role: RoleComponent, Origin: r.Body, Vector: intoPlane.Mul(res.Perpendicular * k), Magnitude: res.Perpendicular},
		{Label: "Normal", Role: RoleNormal, Origin: r.Body, Vector: intoPlane.Mul(-res.Normal * k), Magnitude: res.Normal},
		{Label: fmt.Sprintf("Friction %.1fN", res.Friction), Role: RoleFriction, Origin: r.Body, Vector: downSlope.Mul(-res.Friction * k), Magnitude: res.Friction},
	}
	return r, nil
}
