package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/X-Win42/MBES-Line-Spacing-Calculator/internal/sweep"
)

// Run starts the Bubble Tea program with cfg as the initial parameters and
// blocks until the user quits. It returns the parameter set in effect at
// quit time so the caller can print the final plan on the regular screen.
func Run(cfg sweep.Config) (sweep.Config, error) {
	model := NewModel(cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Silence external logs (WARN/ERRO) during TUI to avoid corrupting the view.
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(prevOut)

	final, err := p.Run()
	if err != nil {
		return cfg, err
	}
	if fm, ok := final.(Model); ok {
		return fm.Config(), nil
	}
	return cfg, nil
}
