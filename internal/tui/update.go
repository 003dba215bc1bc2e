package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/X-Win42/MBES-Line-Spacing-Calculator/internal/sweep"
)

// Update implements tea.Model. Every parameter change re-runs the sweep
// inline; an evaluation is microseconds, so there is no background work.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { //nolint:ireturn // tea.Model contract
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		m.help.Width = x.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(x, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(x, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(x, m.keys.Up):
			m.focus = (m.focus + fieldCount - 1) % fieldCount
			return m, nil
		case key.Matches(x, m.keys.Down):
			m.focus = (m.focus + 1) % fieldCount
			return m, nil
		case key.Matches(x, m.keys.Decrease):
			m.adjust(-1, false)
		case key.Matches(x, m.keys.Increase):
			m.adjust(+1, false)
		case key.Matches(x, m.keys.CoarseDn):
			m.adjust(-1, true)
		case key.Matches(x, m.keys.CoarseUp):
			m.adjust(+1, true)
		case key.Matches(x, m.keys.Reset):
			m.cfg = sweep.DefaultConfig()
		default:
			return m, nil
		}
		m.res = m.eval.Evaluate(m.cfg)
		return m, nil
	}

	return m, nil
}

// adjust moves the focused widget by one step in the given direction,
// clamping to the widget's bounds or cycling its option list.
func (m *Model) adjust(dir int, coarse bool) {
	d := float64(dir)
	switch m.focus {
	case fieldDepth:
		step := depthStep
		if coarse {
			step = depthCoarse
		}
		m.cfg.Depth = clamp(m.cfg.Depth+d*step, depthMin, depthMax)
	case fieldCellSize:
		step := cellStep
		if coarse {
			step = cellCoarse
		}
		m.cfg.CellSize = clamp(m.cfg.CellSize+d*step, cellMin, cellMax)
	case fieldOverlap:
		step := overlapStep
		if coarse {
			step = overlapCoarse
		}
		m.cfg.OverlapPercent = clamp(m.cfg.OverlapPercent+d*step, overlapMin, sweep.MaxOverlapPercent)
	case fieldMinHits:
		m.cfg.MinHitCount = stepInt(sweep.HitCountOptions, m.cfg.MinHitCount, dir)
	case fieldBeams:
		m.cfg.BeamCount = stepInt(sweep.BeamOptions, m.cfg.BeamCount, dir)
	case fieldSpeed:
		m.cfg.SpeedKnots = stepFloat(sweep.SpeedOptions, m.cfg.SpeedKnots, dir)
	case fieldCount:
		// unreachable; fieldCount is a sentinel
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// stepInt moves to the adjacent entry of an option list, staying on the
// current entry at either end. An off-list current value snaps to the
// nearest end.
func stepInt(options []int, current, dir int) int {
	idx := 0
	for i, v := range options {
		if v == current {
			idx = i
			break
		}
		if v < current {
			idx = i
		}
	}
	idx += dir
	if idx < 0 {
		idx = 0
	}
	if idx >= len(options) {
		idx = len(options) - 1
	}
	return options[idx]
}

func stepFloat(options []float64, current float64, dir int) float64 {
	idx := 0
	for i, v := range options {
		if v == current {
			idx = i
			break
		}
		if v < current {
			idx = i
		}
	}
	idx += dir
	if idx < 0 {
		idx = 0
	}
	if idx >= len(options) {
		idx = len(options) - 1
	}
	return options[idx]
}
