package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/X-Win42/MBES-Line-Spacing-Calculator/internal/sweep"
)

// field identifies one input widget in the form.
type field int

const (
	fieldDepth field = iota
	fieldCellSize
	fieldOverlap
	fieldMinHits
	fieldBeams
	fieldSpeed
	fieldCount
)

// Model is the root Bubble Tea model: the current parameters, the focused
// widget, and the sweep recomputed on every change.
type Model struct {
	cfg  sweep.Config
	eval *sweep.Evaluator
	res  sweep.Result

	focus field
	keys  keyMap
	help  help.Model

	width    int
	height   int
	quitting bool
}

// NewModel constructs a Model with an initial configuration and evaluates it
// so the first frame already shows results.
func NewModel(cfg sweep.Config) Model {
	eval := sweep.NewEvaluator(sweep.DefaultModel())
	return Model{
		cfg:  cfg,
		eval: eval,
		res:  eval.Evaluate(cfg),
		keys: newKeyMap(),
		help: help.New(),
	}
}

// Config returns the current parameter set.
func (m Model) Config() sweep.Config {
	return m.cfg
}

// Result returns the sweep for the current parameter set.
func (m Model) Result() sweep.Result {
	return m.res
}

// Init implements tea.Model. The sweep is synchronous and instant, so there
// is nothing to start.
func (m Model) Init() tea.Cmd {
	return nil
}
