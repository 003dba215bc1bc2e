package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/X-Win42/MBES-Line-Spacing-Calculator/internal/sweep"
)

//nolint:gochecknoglobals // Shared immutable styles.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	focusedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	failStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	optimalStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (m Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("🌊 MBES Line Spacing Calculator"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Widest opening angle meeting the sounding-density requirement"))
	b.WriteString("\n\n")

	b.WriteString(m.renderForm())
	b.WriteString("\n")
	b.WriteString(m.renderTable())
	b.WriteString("\n")
	b.WriteString(m.renderOptimal())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderForm() string {
	rows := []struct {
		f     field
		label string
		value string
	}{
		{fieldDepth, "🌊 Depth (m)", fmt.Sprintf("%.1f", m.cfg.Depth)},
		{fieldCellSize, "🧱 Grid cell size (m)", fmt.Sprintf("%.2f", m.cfg.CellSize)},
		{fieldOverlap, "🔁 Swath overlap (%)", renderSlider(m.cfg.OverlapPercent)},
		{fieldMinHits, "🎯 Minimum hit count per cell", fmt.Sprintf("%d", m.cfg.MinHitCount)},
		{fieldBeams, "🔢 Number of beams", fmt.Sprintf("%d", m.cfg.BeamCount)},
		{fieldSpeed, "🚤 Acquisition speed (knots)", fmt.Sprintf("%.0f", m.cfg.SpeedKnots)},
	}

	var b strings.Builder
	for _, row := range rows {
		if row.f == m.focus {
			b.WriteString(focusedStyle.Render("> " + row.label))
			pad := formValueColumn - lipgloss.Width(row.label) - 2
			if pad < 1 {
				pad = 1
			}
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(focusedStyle.Render("◀ " + row.value + " ▶"))
		} else {
			b.WriteString(labelStyle.Render("  " + row.label))
			pad := formValueColumn - lipgloss.Width(row.label) - 2
			if pad < 1 {
				pad = 1
			}
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString("  " + row.value)
		}
		b.WriteString("\n")
	}
	return b.String()
}

const (
	formValueColumn = 34
	sliderWidth     = 16
)

// renderSlider draws the overlap percentage as a small bar, scaled to the
// widget's range.
func renderSlider(pct float64) string {
	filled := int(pct / sweep.MaxOverlapPercent * sliderWidth)
	if filled > sliderWidth {
		filled = sliderWidth
	}
	return fmt.Sprintf("%s%s %.0f%%",
		strings.Repeat("█", filled),
		dimStyle.Render(strings.Repeat("░", sliderWidth-filled)),
		pct)
}

func (m Model) renderTable() string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Render("📊 Results per swath angle"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%-10s %-14s %-14s %-11s %s",
		"Angle (°)", "Spacing (m)", "Coverage (m)", "Hits/cell", "Meets")))
	b.WriteString("\n")

	rows := m.res.Results
	if len(rows) > tableMaxRows {
		rows = rows[:tableMaxRows]
	}
	for _, r := range rows {
		line := fmt.Sprintf("%-10d %-14.2f %-14.2f %-11.1f ",
			r.OpeningAngleDeg, r.LineSpacingM, r.TotalCoverageM, r.HitsPerCell)
		if r.Meets {
			line += okStyle.Render("✅")
		} else {
			line += failStyle.Render("❌")
		}
		if m.res.Optimal != nil && r.OpeningAngleDeg == m.res.Optimal.OpeningAngleDeg {
			line = optimalStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(m.res.Results) > tableMaxRows {
		b.WriteString(dimStyle.Render(fmt.Sprintf("… %d more", len(m.res.Results)-tableMaxRows)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderOptimal() string {
	if m.res.Optimal == nil {
		return failStyle.Render("❌ No swath angle meets the minimum hit count requirement.")
	}
	return optimalStyle.Render(fmt.Sprintf("✔️ Maximum valid opening angle: %d°   📏 Maximum line spacing: %.2f m",
		m.res.Optimal.OpeningAngleDeg, m.res.Optimal.LineSpacingM))
}
