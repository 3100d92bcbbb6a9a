package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapSchemes(t *testing.T) {
	tests := []struct {
		scheme string
		msg    tea.KeyMsg
		want   Action
	}{
		{config.SchemeArrows, tea.KeyMsg{Type: tea.KeyLeft}, ActionLeft},
		{config.SchemeArrows, tea.KeyMsg{Type: tea.KeyRight}, ActionRight},
		{config.SchemeArrows, tea.KeyMsg{Type: tea.KeyUp}, ActionJump},
		{config.SchemeArrows, runeKey('a'), ActionNone},
		{config.SchemeArrows, runeKey('w'), ActionNone},

		{config.SchemeWASD, runeKey('a'), ActionLeft},
		{config.SchemeWASD, runeKey('d'), ActionRight},
		{config.SchemeWASD, runeKey('w'), ActionJump},
		{config.SchemeWASD, tea.KeyMsg{Type: tea.KeyLeft}, ActionNone},

		{config.SchemeBoth, tea.KeyMsg{Type: tea.KeyLeft}, ActionLeft},
		{config.SchemeBoth, runeKey('d'), ActionRight},
		{config.SchemeBoth, runeKey('w'), ActionJump},
		{config.SchemeBoth, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ActionJump},
	}

	for _, tt := range tests {
		t.Run(tt.scheme+"/"+tt.msg.String(), func(t *testing.T) {
			if got := NewKeyMap(tt.scheme).Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapCommonKeys(t *testing.T) {
	for _, scheme := range []string{config.SchemeArrows, config.SchemeWASD, config.SchemeBoth} {
		k := NewKeyMap(scheme)
		if got := k.Action(runeKey('r')); got != ActionRetry {
			t.Errorf("%s: r = %v, expected retry", scheme, got)
		}
		if got := k.Action(tea.KeyMsg{Type: tea.KeyEnter}); got != ActionRetry {
			t.Errorf("%s: enter = %v, expected retry", scheme, got)
		}
		if got := k.Action(runeKey('q')); got != ActionQuit {
			t.Errorf("%s: q = %v, expected quit", scheme, got)
		}
		if got := k.Action(tea.KeyMsg{Type: tea.KeyCtrlC}); got != ActionQuit {
			t.Errorf("%s: ctrl+c = %v, expected quit", scheme, got)
		}
		if got := k.Action(runeKey('?')); got != ActionHelp {
			t.Errorf("%s: ? = %v, expected help", scheme, got)
		}
		if got := k.Action(runeKey('x')); got != ActionNone {
			t.Errorf("%s: x = %v, expected none", scheme, got)
		}
	}
}

func TestKeyMapHelp(t *testing.T) {
	k := NewKeyMap(config.SchemeBoth)
	if n := len(k.ShortHelp()); n != 6 {
		t.Errorf("ShortHelp() has %d bindings, expected 6", n)
	}
	var total int
	for _, col := range k.FullHelp() {
		total += len(col)
	}
	if total != 6 {
		t.Errorf("FullHelp() has %d bindings, expected 6", total)
	}
}
