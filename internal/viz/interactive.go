package viz

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/forcelab/internal/config"
	"github.com/san-kum/forcelab/internal/scenario"
)

const (
	stateMenu = iota
	stateForm
)

const (
	diagramWidth  = 40
	diagramHeight = 14
)

// field is one editable number on a problem form.
type field struct {
	name     string
	step     float64
	min, max float64
	get      func(*config.Config) float64
	set      func(*config.Config, float64)
}

func (f field) apply(c *config.Config, v float64) {
	f.set(c, math.Max(f.min, math.Min(f.max, v)))
}

func massField() field {
	return field{"mass (kg)", 0.1, config.MinMass, math.Inf(1),
		func(c *config.Config) float64 { return c.Mass },
		func(c *config.Config, v float64) { c.Mass = v }}
}

func scaleField() field {
	return field{"vector scale", 0.1, config.MinScale, config.MaxScale,
		func(c *config.Config) float64 { return c.Plot.Scale },
		func(c *config.Config, v float64) { c.Plot.Scale = v }}
}

func muField(name string, p func(*config.Config) *float64) field {
	return field{name, 0.01, 0, math.Inf(1),
		func(c *config.Config) float64 { return *p(c) },
		func(c *config.Config, v float64) { *p(c) = v }}
}

// fields builds the form for the current problem. The forces form grows
// with the number of forces.
func fields(c *config.Config) []field {
	inf := math.Inf(1)
	switch c.Problem {
	case "incline":
		return []field{
			massField(),
			{"angle (°)", 1, 0, 90,
				func(c *config.Config) float64 { return c.Incline.Angle },
				func(c *config.Config, v float64) { c.Incline.Angle = v }},
			muField("μ static", func(c *config.Config) *float64 { return &c.Incline.MuStatic }),
			muField("μ kinetic", func(c *config.Config) *float64 { return &c.Incline.MuKinetic }),
			scaleField(),
		}
	case "friction":
		return []field{
			massField(),
			{"force (N)", 1, -inf, inf,
				func(c *config.Config) float64 { return c.Applied.Magnitude },
				func(c *config.Config, v float64) { c.Applied.Magnitude = v }},
			{"angle (°)", 1, -inf, inf,
				func(c *config.Config) float64 { return c.Applied.Angle },
				func(c *config.Config, v float64) { c.Applied.Angle = v }},
			muField("μ static", func(c *config.Config) *float64 { return &c.Applied.MuStatic }),
			muField("μ kinetic", func(c *config.Config) *float64 { return &c.Applied.MuKinetic }),
			scaleField(),
		}
	}

	fs := []field{
		massField(),
		{"forces", 1, 1, config.MaxForces,
			func(c *config.Config) float64 { return float64(len(c.Forces)) },
			func(c *config.Config, v float64) { resizeForces(c, int(math.Round(v))) }},
	}
	for i := range c.Forces {
		i := i
		fs = append(fs,
			field{fmt.Sprintf("F%d (N)", i+1), 0.1, -inf, inf,
				func(c *config.Config) float64 { return c.Forces[i].Magnitude },
				func(c *config.Config, v float64) { c.Forces[i].Magnitude = v }},
			field{fmt.Sprintf("θ%d (°)", i+1), 1, -inf, inf,
				func(c *config.Config) float64 { return c.Forces[i].Angle },
				func(c *config.Config, v float64) { c.Forces[i].Angle = v }},
		)
	}
	return append(fs, scaleField())
}

func resizeForces(c *config.Config, n int) {
	for len(c.Forces) < n {
		c.Forces = append(c.Forces, config.ForceConfig{Magnitude: config.DefaultForce})
	}
	c.Forces = c.Forces[:n]
}

type model struct {
	state, cursor int
	registry      *scenario.Registry
	problems      []string
	cfg           *config.Config
	presets       []string
	preset        int
	paramCursor   int
	editing       bool
	editBuf       string
	showTheory    bool
	width, height int
}

func NewInteractiveApp() *model {
	reg := scenario.NewRegistry()
	return &model{
		state:    stateMenu,
		registry: reg,
		problems: reg.List(),
		width:    100,
		height:   30,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateMenu {
			return m.menuKey(msg)
		}
		return m.formKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.problems)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.open(m.problems[m.cursor])
	}
	return m, nil
}

func (m *model) open(problem string) {
	m.presets = config.ListPresets(problem)
	m.preset = 0
	for i, p := range m.presets {
		if p == "default" {
			m.preset = i
		}
	}
	m.cfg = config.GetPreset(problem, "default")
	if m.cfg == nil {
		m.cfg = config.DefaultConfig()
		m.cfg.Problem = problem
	}
	m.state, m.paramCursor = stateForm, 0
}

func (m model) formKey(msg tea.KeyMsg) (model, tea.Cmd) {
	fs := fields(m.cfg)
	if m.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
				fs[m.paramCursor].apply(m.cfg, v)
			}
			m.editing, m.editBuf = false, ""
		case "esc":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if s := msg.String(); len(s) == 1 && strings.ContainsAny(s, "0123456789.-") {
				m.editBuf += s
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(fs)-1 {
			m.paramCursor++
		}
	case "left", "h":
		f := fs[m.paramCursor]
		f.apply(m.cfg, f.get(m.cfg)-f.step)
	case "right", "l":
		f := fs[m.paramCursor]
		f.apply(m.cfg, f.get(m.cfg)+f.step)
	case "enter", " ":
		m.editing, m.editBuf = true, strconv.FormatFloat(fs[m.paramCursor].get(m.cfg), 'f', -1, 64)
	case "p":
		if len(m.presets) > 0 {
			m.preset = (m.preset + 1) % len(m.presets)
			m.cfg = config.GetPreset(m.cfg.Problem, m.presets[m.preset])
		}
	case "g":
		m.cfg.Plot.Show = !m.cfg.Plot.Show
	case "t":
		m.showTheory = !m.showTheory
	}

	if n := len(fields(m.cfg)); m.paramCursor >= n {
		m.paramCursor = n - 1
	}
	return m, nil
}

func (m model) View() string {
	if m.state == stateMenu {
		return m.viewMenu()
	}
	return m.viewForm()
}

func (m model) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + TitleStyle.Render("FORCELAB") + "\n    " + Subtle.Render("Newton's second law calculator") + "\n    " + Separator(30) + "\n\n")
	for i, name := range m.problems {
		desc := ""
		if s, err := m.registry.Get(name); err == nil {
			desc = s.Description()
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", TitleStyle.Render("▸"), lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%-10s", name)), Selected.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n", Subtle.Render(fmt.Sprintf("%-10s", name)), Subtle.Render(desc)))
		}
	}
	b.WriteString("\n    " + Hints("j/k", "navigate", "enter", "select", "q", "quit") + "\n")
	return b.String()
}

func (m model) viewForm() string {
	var form strings.Builder
	form.WriteString(TitleStyle.Render(strings.ToUpper(m.cfg.Problem)))
	if len(m.presets) > 0 {
		form.WriteString(" " + Subtle.Render("preset: "+m.presets[m.preset]))
	}
	form.WriteString("\n\n")
	for i, f := range fields(m.cfg) {
		val := fmt.Sprintf("%8.2f", f.get(m.cfg))
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%8s", m.editBuf+"_")
		}
		if i == m.paramCursor {
			form.WriteString(fmt.Sprintf("%s %-14s %s\n", TitleStyle.Render("▸"), f.name, Selected.Render(val)))
		} else {
			form.WriteString(fmt.Sprintf("  %s %s\n", Subtle.Render(fmt.Sprintf("%-14s", f.name)), MetricLabel.Render(val)))
		}
	}

	var out strings.Builder
	rep, err := m.registry.Solve(m.cfg)
	if err != nil {
		out.WriteString(StatusAlert.Render(err.Error()))
	} else {
		out.WriteString(RenderReport(rep))
		if m.cfg.Plot.Show {
			out.WriteString("\n")
			out.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
				Diagram(rep, m.cfg.Plot, diagramWidth, diagramHeight).Render(),
				"  ",
				Legend(rep, m.cfg.Plot)))
		}
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(30).PaddingRight(2).Render(form.String()),
		out.String())
	if m.showTheory {
		view += "\n" + GlassPanel.Render(Theory(m.width-8))
	}
	return view + "\n" + Hints("j/k", "select", "h/l", "adjust", "enter", "edit", "p", "preset", "g", "diagram", "t", "theory", "esc", "back") + "\n"
}

func RunInteractive() error {
	_, err := tea.NewProgram(NewInteractiveApp(), tea.WithAltScreen()).Run()
	return err
}
