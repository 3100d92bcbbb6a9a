package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Scoreboard styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// renderScoreboard renders the single-line HUD above the field: title,
// current score, session best and a right-aligned status or notice.
func renderScoreboard(state core.GameState, status, notice string, width int) string {
	left := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("RUNNER"),
		"  ",
		mutedStyle.Render("Score "),
		scoreStyle.Render(fmt.Sprintf("%d", state.Score)),
		"  ",
		mutedStyle.Render("Best "),
		scoreStyle.Render(fmt.Sprintf("%d", state.Best)),
	)

	right := mutedStyle.Render(status)
	if notice != "" {
		right = noticeStyle.Render(notice)
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}
