package scenario

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/forcelab/internal/config"
	"github.com/san-kum/forcelab/internal/mechanics"
)

func TestRegistry_List(t *testing.T) {
	names := NewRegistry().List()
	want := []string{"forces", "incline", "friction"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], names[i])
		}
	}
}

func TestRegistry_Unknown(t *testing.T) {
	_, err := NewRegistry().Get("pulley")
	if !errors.Is(err, mechanics.ErrUnknownProblem) {
		t.Errorf("expected ErrUnknownProblem, got %v", err)
	}
}

func TestSolve_Forces(t *testing.T) {
	cfg := config.GetPreset("forces", "right-angle")
	rep, err := NewRegistry().Solve(cfg)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	if mag, _ := rep.Metric("magnitude"); math.Abs(mag-5) > 1e-9 {
		t.Errorf("expected magnitude 5, got %f", mag)
	}
	if a, _ := rep.Metric("acceleration"); math.Abs(a-2.5) > 1e-9 {
		t.Errorf("expected acceleration 2.5, got %f", a)
	}
	// two forces plus the resultant
	if len(rep.Arrows) != 3 {
		t.Errorf("expected 3 arrows, got %d", len(rep.Arrows))
	}
	if rep.Arrows[2].Role != RoleResultant {
		t.Errorf("expected resultant last, got %s", rep.Arrows[2].Role)
	}
	if rep.Summary == "" {
		t.Error("expected Newton summary line")
	}
}

func TestSolve_ForcesBalanced(t *testing.T) {
	rep, err := NewRegistry().Solve(config.GetPreset("forces", "balanced"))
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if mag, _ := rep.Metric("magnitude"); mag > 1e-9 {
		t.Errorf("expected negligible resultant, got %g", mag)
	}
	if a, _ := rep.Metric("acceleration"); a > 1e-9 {
		t.Errorf("expected negligible acceleration, got %g", a)
	}
	if rep.Verdict != "forces are in equilibrium" {
		t.Errorf("expected equilibrium verdict, got %q", rep.Verdict)
	}
	if len(rep.Arrows) != 3 {
		t.Errorf("expected only the three force arrows, got %d", len(rep.Arrows))
	}
	for _, a := range rep.Arrows {
		if a.Role == RoleResultant {
			t.Errorf("unexpected resultant arrow %q for a balanced system", a.Label)
		}
	}
}

func TestSolve_InclineRampGeometry(t *testing.T) {
	for _, angle := range []float64{0, 30, 60, 89, 90} {
		cfg := config.GetPreset("incline", "default")
		cfg.Incline.Angle = angle
		rep, err := NewRegistry().Solve(cfg)
		if err != nil {
			t.Fatalf("angle %g: solve failed: %v", angle, err)
		}
		if l := rep.Surface.To.Sub(rep.Surface.From).Len(); math.Abs(l-rampLength) > 1e-9 {
			t.Errorf("angle %g: ramp length = %g, want %g", angle, l, rampLength)
		}
		mid := rep.Surface.From.Add(rep.Surface.To).Mul(0.5)
		if rep.Body.Sub(mid).Len() > 1e-9 {
			t.Errorf("angle %g: body %v should sit at the ramp midpoint %v", angle, rep.Body, mid)
		}
		if p, _ := rep.Metric("perpendicular"); math.Abs(p-rep.Result.(mechanics.FrictionResolution).Perpendicular) > 1e-12 {
			t.Errorf("angle %g: perpendicular metric %g does not match resolution", angle, p)
		}
	}
}

func TestSolve_Incline(t *testing.T) {
	rep, err := NewRegistry().Solve(config.GetPreset("incline", "default"))
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if rep.State != mechanics.Sliding {
		t.Errorf("expected sliding, got %s", rep.State)
	}
	if a, _ := rep.Metric("acceleration"); math.Abs(a-3.21) > 0.005 {
		t.Errorf("expected acceleration ~3.21, got %f", a)
	}
	if rep.Surface == nil {
		t.Fatal("expected ramp surface")
	}
	if len(rep.Arrows) != 5 {
		t.Errorf("expected 5 arrows, got %d", len(rep.Arrows))
	}
	for _, a := range rep.Arrows {
		if a.Origin != rep.Body {
			t.Errorf("arrow %s should start at the body", a.Label)
		}
	}
}

func TestSolve_InclineFrictionOpposesSliding(t *testing.T) {
	rep, err := NewRegistry().Solve(config.GetPreset("incline", "icy"))
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	var parallel, friction Arrow
	for _, a := range rep.Arrows {
		switch {
		case a.Role == RoleFriction:
			friction = a
		case a.Label == "Parallel":
			parallel = a
		}
	}
	if parallel.Vector.Dot(friction.Vector) >= 0 {
		t.Errorf("friction %v should oppose the parallel component %v", friction.Vector, parallel.Vector)
	}
}

func TestSolve_Friction(t *testing.T) {
	rep, err := NewRegistry().Solve(config.GetPreset("friction", "default"))
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if rep.State != mechanics.Kinetic {
		t.Errorf("expected kinetic, got %s", rep.State)
	}
	if f, _ := rep.Metric("friction"); math.Abs(f-29.43) > 1e-9 {
		t.Errorf("expected friction 29.43, got %f", f)
	}
}

func TestSolve_FrictionLiftoff(t *testing.T) {
	rep, err := NewRegistry().Solve(config.GetPreset("friction", "liftoff"))
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	res, ok := rep.Result.(mechanics.FrictionResolution)
	if !ok {
		t.Fatalf("unexpected result type %T", rep.Result)
	}
	if !res.Liftoff {
		t.Error("expected liftoff")
	}
	if n, _ := rep.Metric("normal"); n >= 0 {
		t.Errorf("expected negative normal, got %f", n)
	}
}

func TestSolve_InvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Mass = 0
	_, err := NewRegistry().Solve(cfg)
	if !errors.Is(err, mechanics.ErrInvalidMass) {
		t.Errorf("expected ErrInvalidMass, got %v", err)
	}
}

func TestSweep_Incline(t *testing.T) {
	cfg := config.GetPreset("incline", "default")
	points, err := NewRegistry().Sweep(cfg, "angle", 0, 90, 10)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(points) != 10 {
		t.Fatalf("expected 10 points, got %d", len(points))
	}
	if points[0].X != 0 || points[9].X != 90 {
		t.Errorf("unexpected range: %f..%f", points[0].X, points[9].X)
	}
	if points[0].State != mechanics.Static || points[0].Acceleration != 0 {
		t.Errorf("flat ramp should be static, got %+v", points[0])
	}
	if points[9].State != mechanics.Sliding {
		t.Errorf("vertical ramp should slide, got %s", points[9].State)
	}
	if cfg.Incline.Angle != 30 {
		t.Error("sweep modified the input config")
	}
}

func TestSweep_Errors(t *testing.T) {
	reg := NewRegistry()
	cfg := config.GetPreset("friction", "default")

	if _, err := reg.Sweep(cfg, "gravity", 0, 1, 5); !errors.Is(err, ErrBadSweep) {
		t.Errorf("expected ErrBadSweep for unknown param, got %v", err)
	}
	if _, err := reg.Sweep(cfg, "force", 0, 1, 1); !errors.Is(err, ErrBadSweep) {
		t.Errorf("expected ErrBadSweep for too few steps, got %v", err)
	}
	if _, err := reg.Sweep(cfg, "mass", 0, 1, 3); !errors.Is(err, mechanics.ErrInvalidMass) {
		t.Errorf("expected ErrInvalidMass at mass 0, got %v", err)
	}
}
