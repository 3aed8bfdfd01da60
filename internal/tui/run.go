package tui

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/board/internal/config"
	"github.com/idilsaglam/board/internal/drag"
	"github.com/idilsaglam/board/internal/ui"
)

// Run builds the board from configuration and starts the interactive
// session. It returns when the user quits.
func Run(cfg config.Config) error {
	ui.SetTheme(cfg.Theme)

	b := drag.New(cfg.InitialSnapshot())
	if cfg.Debug != "" {
		f, err := tea.LogToFile(cfg.Debug, "board")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		b.Logf = log.Printf
	}

	m := newModel(b, cfg.Mouse)
	defer m.cleanup()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
