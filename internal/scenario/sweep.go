package scenario

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/forcelab/internal/config"
	"github.com/san-kum/forcelab/internal/mechanics"
)

var ErrBadSweep = errors.New("scenario: invalid sweep range")

// SweepPoint is one snapshot of a parameter sweep.
type SweepPoint struct {
	X            float64               `json:"x"`
	Acceleration float64               `json:"acceleration"`
	Friction     float64               `json:"friction"`
	State        mechanics.MotionState `json:"state,omitempty"`
}

type setter func(*config.Config, float64)

var sweepParams = map[string]map[string]setter{
	"forces": {
		"mass": func(c *config.Config, v float64) { c.Mass = v },
	},
	"incline": {
		"angle":      func(c *config.Config, v float64) { c.Incline.Angle = v },
		"mass":       func(c *config.Config, v float64) { c.Mass = v },
		"mu_static":  func(c *config.Config, v float64) { c.Incline.MuStatic = v },
		"mu_kinetic": func(c *config.Config, v float64) { c.Incline.MuKinetic = v },
	},
	"friction": {
		"force":      func(c *config.Config, v float64) { c.Applied.Magnitude = v },
		"angle":      func(c *config.Config, v float64) { c.Applied.Angle = v },
		"mass":       func(c *config.Config, v float64) { c.Mass = v },
		"mu_static":  func(c *config.Config, v float64) { c.Applied.MuStatic = v },
		"mu_kinetic": func(c *config.Config, v float64) { c.Applied.MuKinetic = v },
	},
}

// SweepParams lists the parameters that can be swept for a problem.
func SweepParams(problem string) []string {
	params := sweepParams[problem]
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sweep solves cfg at steps evenly spaced values of param between from and to.
// Every point is an independent snapshot; cfg is not modified.
func (r *Registry) Sweep(cfg *config.Config, param string, from, to float64, steps int) ([]SweepPoint, error) {
	set, ok := sweepParams[cfg.Problem][param]
	if !ok {
		return nil, fmt.Errorf("%w: cannot sweep %q for %s (available: %v)", ErrBadSweep, param, cfg.Problem, SweepParams(cfg.Problem))
	}
	if steps < 2 {
		return nil, fmt.Errorf("%w: need at least 2 steps, got %d", ErrBadSweep, steps)
	}

	points := make([]SweepPoint, 0, steps)
	for i := 0; i < steps; i++ {
		x := from + (to-from)*float64(i)/float64(steps-1)
		c := cfg.Clone()
		set(c, x)

		rep, err := r.Solve(c)
		if err != nil {
			return nil, fmt.Errorf("%s=%g: %w", param, x, err)
		}

		p := SweepPoint{X: x, State: rep.State}
		p.Acceleration, _ = rep.Metric("acceleration")
		p.Friction, _ = rep.Metric("friction")
		points = append(points, p)
	}
	return points, nil
}
