package viz

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/forcelab/internal/config"
	"github.com/san-kum/forcelab/internal/scenario"
)

func solve(t *testing.T, problem, preset string) (*scenario.Report, *config.Config) {
	t.Helper()
	cfg := config.GetPreset(problem, preset)
	rep, err := scenario.NewRegistry().Solve(cfg)
	if err != nil {
		t.Fatalf("solve %s/%s: %v", problem, preset, err)
	}
	return rep, cfg
}

func TestBounds_ContainsArrows(t *testing.T) {
	for _, problem := range []string{"forces", "incline", "friction"} {
		rep, _ := solve(t, problem, "default")
		min, max := Bounds(rep)
		for _, a := range rep.Arrows {
			for _, p := range []mgl64.Vec2{a.Origin, a.Tip()} {
				if p[0] < min[0] || p[1] < min[1] || p[0] > max[0] || p[1] > max[1] {
					t.Errorf("%s: arrow %s point %v outside %v..%v", problem, a.Label, p, min, max)
				}
			}
		}
	}
}

func TestEqualAspect(t *testing.T) {
	min, max := equalAspect(mgl64.Vec2{0, 0}, mgl64.Vec2{10, 1})(100, 100)
	span := max.Sub(min)
	if span[0] != span[1] {
		t.Errorf("expected square span, got %v", span)
	}
	if min[0] != 0 || max[0] != 10 {
		t.Errorf("wider axis should be kept, got %v..%v", min, max)
	}
}

func TestDiagram(t *testing.T) {
	rep, cfg := solve(t, "incline", "default")
	c := Diagram(rep, cfg.Plot, 40, 14)

	if c.Width != 40 || c.Height != 14 {
		t.Fatalf("unexpected size %dx%d", c.Width, c.Height)
	}
	blank := strings.Repeat(string(rune(brailleBase)), 40)
	drawn := 0
	for _, line := range strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n") {
		if line != blank {
			drawn++
		}
	}
	if drawn == 0 {
		t.Error("diagram is empty")
	}
	if !strings.Contains(c.Render(), "⠀") {
		t.Error("rendered diagram lost its blank cells")
	}
}

func TestDiagram_SteepIncline(t *testing.T) {
	for _, angle := range []float64{60, 89, 90} {
		cfg := config.GetPreset("incline", "default")
		cfg.Incline.Angle = angle
		rep, err := scenario.NewRegistry().Solve(cfg)
		if err != nil {
			t.Fatalf("angle %g: solve failed: %v", angle, err)
		}

		min, max := Bounds(rep)
		if span := max.Sub(min); span[0] > 20 || span[1] > 20 {
			t.Errorf("angle %g: diagram bounds blew up to %v", angle, span)
		}

		c := Diagram(rep, cfg.Plot, 40, 10)
		vp := NewViewport(c, mgl64.Vec2{}, mgl64.Vec2{})
		vp.Min, vp.Max = equalAspect(min, max)(80, 40)

		var weight scenario.Arrow
		for _, a := range rep.Arrows {
			if a.Role == scenario.RoleWeight {
				weight = a
			}
		}
		bx, by := vp.Dot(rep.Body)
		tx, ty := vp.Dot(weight.Tip())
		if !c.IsSet(tx, ty) {
			t.Errorf("angle %g: weight arrow tip (%d,%d) not drawn", angle, tx, ty)
		}
		if absInt(tx-bx)+absInt(ty-by) < 3 {
			t.Errorf("angle %g: weight arrow collapsed to %d,%d from body %d,%d", angle, tx, ty, bx, by)
		}
	}
}

func TestArrowColor(t *testing.T) {
	plot := config.DefaultConfig().Plot
	if ArrowColor(scenario.RoleForce, plot) != "#1f77b4" {
		t.Errorf("force color: got %s", ArrowColor(scenario.RoleForce, plot))
	}
	if ArrowColor(scenario.RoleFriction, plot) != "#ff0000" {
		t.Errorf("friction color: got %s", ArrowColor(scenario.RoleFriction, plot))
	}
	if ArrowColor(scenario.RoleNormal, plot) == "" {
		t.Error("normal should have a fixed color")
	}
}

func TestRenderReport(t *testing.T) {
	rep, _ := solve(t, "friction", "default")
	out := RenderReport(rep)
	for _, want := range []string{"Normal force", "29.43 N", "kinetic"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestTheory(t *testing.T) {
	out := Theory(40)
	for _, want := range []string{"Newton's laws", "F_net = m · a", "f_k = μk · N"} {
		if !strings.Contains(out, want) {
			t.Errorf("theory missing %q", want)
		}
	}
}
