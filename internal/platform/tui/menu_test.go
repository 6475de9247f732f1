package tui

import (
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var registerOnce sync.Once

func registerFakes() {
	registerOnce.Do(func() {
		registry.Register("fake", func() registry.Game { return &fakeGame{} })
	})
}

func TestMenuListsRegisteredLevels(t *testing.T) {
	registerFakes()
	m := NewMenuModel(nil, core.DefaultConfig())

	if !strings.Contains(m.View(), "Fake Level") {
		t.Error("menu should list the registered level")
	}
}

func TestMenuSelect(t *testing.T) {
	registerFakes()
	m := NewMenuModel(nil, core.DefaultConfig())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	menu := next.(MenuModel)
	if menu.Selected() == nil || menu.Selected().LevelID != "fake" {
		t.Fatalf("Selected() = %+v, want fake", menu.Selected())
	}
	if cmd == nil {
		t.Error("selecting should end the menu program")
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	registerFakes()
	m := NewMenuModel(nil, core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	next, _ = m.Update(runeKey("q"))
	if !next.(MenuModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestSessionStartsFreshGame(t *testing.T) {
	registerFakes()
	s := NewSessionModel(core.DefaultConfig(), Options{})

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if !s.inGame || s.gameModel == nil {
		t.Fatal("selecting a level should start a game")
	}
	first := s.gameModel.game

	// Pause, then go back to the menu and pick the level again
	s.gameModel.gameState.Paused = true
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.inGame {
		t.Fatal("back should return to the menu")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.gameModel.game == first {
		t.Error("each selection should get its own game instance")
	}
}
