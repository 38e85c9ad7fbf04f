package scenario

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/forcelab/internal/config"
	"github.com/san-kum/forcelab/internal/mechanics"
)

const frictionScale = 0.1

// FrictionSolver resolves a block pushed across level ground.
type FrictionSolver struct{}

func (s *FrictionSolver) Name() string        { return "friction" }
func (s *FrictionSolver) Description() string { return "applied force against friction" }

func (s *FrictionSolver) Solve(cfg *config.Config) (*Report, error) {
	app := cfg.Applied
	res := mechanics.ResolveAppliedForce(cfg.Mass, app.Magnitude, app.Angle, app.MuStatic, app.MuKinetic)

	r := &Report{
		Problem: s.Name(),
		Title:   "Friction with an applied force",
		Mass:    cfg.Mass,
		State:   res.State,
		Result:  res,
	}
	r.add("weight", "Weight", res.Weight, "N")
	r.add("normal", "Normal force", res.Normal, "N")
	r.add("horizontal", "Horizontal force", res.Driving, "N")
	r.add("vertical", "Vertical force", res.Lift, "N")
	r.add("max_static", "Max friction", res.MaxStatic, "N")
	r.add("friction", "Actual friction", res.Friction, "N")
	r.add("acceleration", "Acceleration", res.Acceleration, "m/s²")

	switch {
	case res.Liftoff:
		r.Verdict = fmt.Sprintf("the vertical pull exceeds the weight (normal %.2f N): the block leaves the surface", res.Normal)
	case res.State == mechanics.Static:
		r.Verdict = fmt.Sprintf("the block stays at rest, acceleration %.2f m/s²", res.Acceleration)
	default:
		r.Verdict = fmt.Sprintf("the block moves, acceleration %.2f m/s²", res.Acceleration)
	}

	r.Surface = &Segment{From: mgl64.Vec2{-8, 0}, To: mgl64.Vec2{8, 0}}

	k := cfg.Plot.Scale * frictionScale
	applied := mechanics.Force{Magnitude: app.Magnitude, Angle: app.Angle}
	r.Arrows = []Arrow{
		{Label: fmt.Sprintf("Applied %.1fN", app.Magnitude), Role: RoleForce, Vector: applied.Vector().Mul(k), Magnitude: app.Magnitude},
		{Label: fmt.Sprintf("Friction %.1fN", res.Friction), Role: RoleFriction, Vector: mgl64.Vec2{-res.Friction * k, 0}, Magnitude: res.Friction},
		{Label: "Weight", Role: RoleWeight, Vector: mgl64.Vec2{0, -res.Weight * k}, Magnitude: res.Weight},
		{Label: "Normal", Role: RoleNormal, Vector: mgl64.Vec2{0, res.Normal * k}, Magnitude: res.Normal},
	}
	return r, nil
}
