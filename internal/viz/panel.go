package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/forcelab/internal/config"
	"github.com/san-kum/forcelab/internal/mechanics"
	"github.com/san-kum/forcelab/internal/scenario"
)

const metricColumns = 3

// FormatValue prints a metric the way the result panels show it.
func FormatValue(m scenario.Metric) string {
	switch m.Unit {
	case "°", "kg":
		return fmt.Sprintf("%.1f %s", m.Value, m.Unit)
	}
	return fmt.Sprintf("%.2f %s", m.Value, m.Unit)
}

// MetricGrid lays metrics out in columns, filling each column top to bottom.
func MetricGrid(metrics []scenario.Metric) string {
	if len(metrics) == 0 {
		return ""
	}
	perCol := (len(metrics) + metricColumns - 1) / metricColumns
	cols := make([]string, 0, metricColumns)
	for start := 0; start < len(metrics); start += perCol {
		end := start + perCol
		if end > len(metrics) {
			end = len(metrics)
		}
		var b strings.Builder
		for i, m := range metrics[start:end] {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(MetricLabel.Render(m.Label) + "\n" + MetricValue.Render(FormatValue(m)))
		}
		cols = append(cols, lipgloss.NewStyle().Width(26).Render(b.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// RenderReport renders the result panel of a solved problem.
func RenderReport(rep *scenario.Report) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(rep.Title))
	if rep.State != "" {
		b.WriteString("  " + StateBadge(rep.State))
	}
	b.WriteString("\n\n")
	b.WriteString(MetricGrid(rep.Metrics))
	b.WriteString("\n\n")

	verdict := StatusStatic
	if res, ok := rep.Result.(mechanics.FrictionResolution); ok && res.Liftoff {
		verdict = StatusAlert
	} else if rep.State.Moving() {
		verdict = StatusMoving
	}
	b.WriteString(verdict.Render(rep.Verdict))
	if rep.Summary != "" {
		b.WriteString("\n" + InfoBox.Render("Newton's second law: "+rep.Summary))
	}
	return GlassPanel.Render(b.String())
}

// Legend lists the arrows of a diagram with their colors.
func Legend(rep *scenario.Report, plot config.PlotConfig) string {
	var b strings.Builder
	for _, a := range rep.Arrows {
		swatch := lipgloss.NewStyle().Foreground(ArrowColor(a.Role, plot)).Render("━━")
		b.WriteString(fmt.Sprintf("%s %s\n", swatch, a.Label))
	}
	return b.String()
}
