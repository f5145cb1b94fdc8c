// Package tui is the interactive place browser.
package tui

import (
	"fmt"
	"log/slog"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sushantvema/zupo/internal/pkg/config"
	"github.com/sushantvema/zupo/internal/pkg/logging"
)

// Run starts the browser in the alternate screen and blocks until the
// user quits. Logging moves to a file for the duration, since the UI
// owns the terminal.
func Run(svc Services, cfg *config.Config) error {
	if path, err := config.Path(); err == nil {
		logPath := filepath.Join(filepath.Dir(path), "tui.log")
		if err := logging.SetupFile(cfg.LogLevel, "text", logPath); err != nil {
			return fmt.Errorf("open tui log: %w", err)
		}
	}
	slog.Info("tui started")

	p := tea.NewProgram(newModel(svc, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
