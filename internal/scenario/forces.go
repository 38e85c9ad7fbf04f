package scenario

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/forcelab/internal/config"
	"github.com/san-kum/forcelab/internal/mechanics"
)

// Residuals below this many newtons are rounding noise from the trig in
// Force.Components, not a real net force.
const equilibriumTolerance = 1e-9

// ForcesSolver composes several forces acting on a free body.
type ForcesSolver struct{}

func (s *ForcesSolver) Name() string        { return "forces" }
func (s *ForcesSolver) Description() string { return "multiple forces on a free body" }

func (s *ForcesSolver) Solve(cfg *config.Config) (*Report, error) {
	forces := cfg.ForceSystem()
	d, err := mechanics.Analyze(cfg.Mass, forces)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Problem: s.Name(),
		Title:   "Multiple force system",
		Mass:    cfg.Mass,
		Result:  d,
	}
	r.add("fx", "Net force X", d.Fx, "N")
	r.add("fy", "Net force Y", d.Fy, "N")
	r.add("magnitude", "Resultant magnitude", d.Magnitude, "N")
	r.add("direction", "Direction", d.Direction, "°")
	r.add("ax", "Acceleration X", d.Ax, "m/s²")
	r.add("ay", "Acceleration Y", d.Ay, "m/s²")
	r.add("acceleration", "Net acceleration", d.Acceleration, "m/s²")
	r.add("mass", "Mass", cfg.Mass, "kg")

	if d.Magnitude < equilibriumTolerance {
		r.Verdict = "forces are in equilibrium"
	} else {
		r.Verdict = fmt.Sprintf("body accelerates at %.2f m/s² toward %.1f°", d.Acceleration, d.Direction)
	}
	r.Summary = fmt.Sprintf("F = ma → %.2f N = %.1f kg × %.2f m/s²", d.Magnitude, cfg.Mass, d.Acceleration)

	scale := cfg.Plot.Scale
	for i, f := range forces {
		r.Arrows = append(r.Arrows, Arrow{
			Label:     fmt.Sprintf("F%d %.1fN", i+1, f.Magnitude),
			Role:      RoleForce,
			Vector:    f.Vector().Mul(scale),
			Magnitude: f.Magnitude,
		})
	}
	if d.Magnitude >= equilibriumTolerance {
		r.Arrows = append(r.Arrows, Arrow{
			Label:     fmt.Sprintf("Resultant %.1fN", d.Magnitude),
			Role:      RoleResultant,
			Vector:    mgl64.Vec2{d.Fx, d.Fy}.Mul(scale),
			Magnitude: d.Magnitude,
		})
	}
	return r, nil
}
