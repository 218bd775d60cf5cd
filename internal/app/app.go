package app

import (
	"errors"
	"time"

	"github.com/atomicstack/aria-primitives/internal/anchor"
	"github.com/atomicstack/aria-primitives/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Inspector  bool
	Verbose    bool
	RootDemo   string
	Tunables   Tunables
}

// Tunables are the primitive options the playground exposes.
type Tunables struct {
	Placement         anchor.Placement
	Offset            float64
	Flip              bool
	Loop              bool
	TypeAheadTimeout  time.Duration
	TooltipOpenDelay  time.Duration
	TooltipCloseDelay time.Duration
}

// Options converts the configuration into playground model options.
func (c Config) Options() ui.Options {
	return ui.Options{
		Width:             c.Width,
		Height:            c.Height,
		ShowFooter:        c.ShowFooter,
		Inspector:         c.Inspector,
		Verbose:           c.Verbose,
		RootDemo:          c.RootDemo,
		Placement:         c.Tunables.Placement,
		Offset:            c.Tunables.Offset,
		Flip:              c.Tunables.Flip,
		Loop:              c.Tunables.Loop,
		TypeAheadTimeout:  c.Tunables.TypeAheadTimeout,
		TooltipOpenDelay:  c.Tunables.TooltipOpenDelay,
		TooltipCloseDelay: c.Tunables.TooltipCloseDelay,
	}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model := ui.NewModel(cfg.Options())
	defer model.Close()
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
