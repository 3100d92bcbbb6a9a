package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Action is what a key press asks the frontend to do.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionJump
	ActionRetry
	ActionHelp
	ActionQuit
)

// KeyMap defines the key bindings for the runner.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Jump  key.Binding
	Retry key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Retry, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Retry, k.Help, k.Quit},
	}
}

// NewKeyMap returns the bindings for a scheme: "arrows", "wasd" or "both".
// Space always jumps. Unknown schemes fall back to both.
func NewKeyMap(scheme string) KeyMap {
	var left, right, jump []string
	var leftHelp, rightHelp, jumpHelp string

	switch scheme {
	case config.SchemeArrows:
		left, right, jump = []string{"left"}, []string{"right"}, []string{"up", " "}
		leftHelp, rightHelp, jumpHelp = "←", "→", "↑/space"
	case config.SchemeWASD:
		left, right, jump = []string{"a"}, []string{"d"}, []string{"w", " "}
		leftHelp, rightHelp, jumpHelp = "a", "d", "w/space"
	default:
		left, right, jump = []string{"left", "a"}, []string{"right", "d"}, []string{"up", "w", " "}
		leftHelp, rightHelp, jumpHelp = "←/a", "→/d", "↑/w/space"
	}

	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys(left...),
			key.WithHelp(leftHelp, "run left"),
		),
		Right: key.NewBinding(
			key.WithKeys(right...),
			key.WithHelp(rightHelp, "run right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(jump...),
			key.WithHelp(jumpHelp, "jump"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r/enter", "retry"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message. Quit is checked first so it can never be
// shadowed by a movement binding.
func (k KeyMap) Action(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, k.Quit):
		return ActionQuit
	case key.Matches(msg, k.Left):
		return ActionLeft
	case key.Matches(msg, k.Right):
		return ActionRight
	case key.Matches(msg, k.Jump):
		return ActionJump
	case key.Matches(msg, k.Retry):
		return ActionRetry
	case key.Matches(msg, k.Help):
		return ActionHelp
	}
	return ActionNone
}
