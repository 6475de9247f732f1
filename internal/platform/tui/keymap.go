package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// GameKeyMap defines the key bindings while playing.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Pause, k.Restart, k.Back},
		{k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space/↑", "jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{Keys: DefaultGameKeyMap()}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.Keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Jump):
		return core.ActionJump, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// IsHeldAction reports whether an action is held over time rather than
// triggered once per press.
func IsHeldAction(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionJump:
		return true
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
