package viz

import "strings"

type theorySection struct {
	title string
	lines []string
}

var theory = []theorySection{
	{"Newton's laws", []string{
		"First law (inertia): a body at rest stays at rest, and a body in motion keeps moving in a straight line at constant speed, unless a net force acts on it.",
		"Second law: the acceleration of a body is proportional to the net force on it and inversely proportional to its mass.",
		"    F_net = m · a",
		"Third law: every action has an equal and opposite reaction.",
	}},
	{"Equilibrium", []string{
		"A body is in equilibrium when the forces cancel in every direction:",
		"    ΣFx = 0   and   ΣFy = 0",
	}},
	{"Friction", []string{
		"Static friction keeps a body from starting to move:",
		"    f_s ≤ μs · N",
		"Kinetic friction acts while the body is sliding:",
		"    f_k = μk · N",
		"μ is the friction coefficient and N the normal force.",
	}},
}

// Theory renders the reference notes shown under the calculators.
func Theory(width int) string {
	var b strings.Builder
	for i, s := range theory {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(TitleStyle.Render(s.title) + "\n")
		for _, l := range s.lines {
			if strings.HasPrefix(l, "    ") {
				b.WriteString(MetricValue.Render(l) + "\n")
				continue
			}
			b.WriteString(wrap(l, width) + "\n")
		}
	}
	return b.String()
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	var b strings.Builder
	line := 0
	for i, w := range strings.Fields(s) {
		n := len([]rune(w))
		if i > 0 && line+1+n > width {
			b.WriteString("\n")
			line = 0
		} else if i > 0 {
			b.WriteString(" ")
			line++
		}
		b.WriteString(w)
		line += n
	}
	return b.String()
}
