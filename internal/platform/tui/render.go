package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Canvas is an engine renderer that keeps the latest frame and draws it,
// scaled from canvas units to terminal cells, inside a bordered field.
type Canvas struct {
	frame    runner.Frame
	hasFrame bool

	player   core.Color
	obstacle core.Color
	border   core.Color
}

// NewCanvas creates a canvas using the configured colours.
func NewCanvas(cfg config.RunnerConfig) *Canvas {
	c := &Canvas{border: core.ColorGray}
	c.SetColors(cfg)
	return c
}

// SetColors updates entity colours. Unknown names draw in the default colour.
func (c *Canvas) SetColors(cfg config.RunnerConfig) {
	c.player, _ = core.ParseColor(cfg.Player.Color)
	c.obstacle, _ = core.ParseColor(cfg.Obstacle.Color)
}

// Render stores the frame for the next Draw.
func (c *Canvas) Render(f runner.Frame) {
	c.frame = f
	c.hasFrame = true
}

// Draw clears dst and draws the field border and, once a frame has been
// rendered, the obstacle and the player. The bottom border is the floor.
func (c *Canvas) Draw(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < 3 || h < 3 {
		return
	}
	dst.DrawBox(0, 0, w, h, c.border)

	if !c.hasFrame || !c.frame.Bounds.Valid() {
		return
	}

	field := cellMap{
		x0: 1, y0: 1,
		w: w - 2, h: h - 2,
		sx: float64(w-2) / c.frame.Bounds.W,
		sy: float64(h-2) / c.frame.Bounds.H,
	}
	field.fill(dst, c.frame.Obstacle, core.Cell{Rune: ObstacleChar, Color: c.obstacle})
	field.fill(dst, c.frame.Player, core.Cell{Rune: PlayerChar, Color: c.player})
}

// cellMap projects canvas units onto a block of screen cells.
type cellMap struct {
	x0, y0 int
	w, h   int
	sx, sy float64
}

// fill paints every cell the rect touches, at least one cell in each axis.
func (m cellMap) fill(dst *core.Screen, r core.Rect, c core.Cell) {
	left, right := m.span(r.Left(), r.Right(), m.sx, m.w)
	top, bottom := m.span(r.Top(), r.Bottom(), m.sy, m.h)
	dst.FillRect(m.x0+left, m.y0+top, right-left, bottom-top, c)
}

func (m cellMap) span(lo, hi, scale float64, limit int) (int, int) {
	a := int(math.Floor(lo * scale))
	b := int(math.Ceil(hi * scale))
	if b <= a {
		b = a + 1
	}
	a = core.Clamp(a, 0, limit-1)
	b = core.Clamp(b, a+1, limit)
	return a, b
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	if subtitle == "" {
		boxH = 3
	}
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, core.Cell{Rune: ' '})
	dst.DrawBox(boxX, boxY, boxW, boxH, c)

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawColorText(titleX, boxY+1, title, c)

	if subtitle != "" {
		subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
		dst.DrawText(subtitleX, boxY+3, subtitle)
	}
}
