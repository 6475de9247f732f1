// Package tui provides the Bubble Tea host for the platformer.
// It handles the terminal UI loop, input mapping, and level orchestration.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// TickMsg is sent on every host frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// loadedMsg reports that a game finished loading its resources.
type loadedMsg struct {
	err error
}

// loadCmd loads a game's resources off the UI goroutine.
func loadCmd(ctx context.Context, l registry.Loader) tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{err: l.Load(ctx)}
	}
}
