package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jet-defender/internal/core"
)

// ansiCodes are the 256-color codes of the palette.
var ansiCodes = map[core.Color]string{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightGreen:  "10",
	core.ColorBrightYellow: "11",
	core.ColorBrightCyan:   "14",
	core.ColorBrightWhite:  "15",
	core.ColorOrange:       "208",
	core.ColorGray:         "245",
}

// hudBand is the background of the status rows.
const hudBand = lipgloss.Color("236")

var (
	fieldStyles = buildStyles(false)
	hudStyles   = buildStyles(true)
)

func buildStyles(hud bool) map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(ansiCodes)+1)
	base := lipgloss.NewStyle()
	if hud {
		base = base.Background(hudBand)
	}
	styles[core.ColorDefault] = base
	for c, code := range ansiCodes {
		styles[c] = base.Foreground(lipgloss.Color(code))
	}
	// Shield halo and blasts stand out against the starfield.
	styles[core.ColorShield] = styles[core.ColorShield].Bold(true)
	styles[core.ColorBlast] = styles[core.ColorBlast].Bold(true)
	return styles
}

// cellStyle returns the style of a color on the play field or in the HUD.
// Unknown colors fall back to the default.
func cellStyle(c core.Color, hud bool) lipgloss.Style {
	styles := fieldStyles
	if hud {
		styles = hudStyles
	}
	if s, ok := styles[c]; ok {
		return s
	}
	return styles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string with no HUD.
func RenderScreen(s *core.Screen) string {
	return RenderFrame(s, 0)
}

// RenderFrame converts a Screen buffer to a styled string. The top hudRows
// rows are drawn on the status band. Runs of one color share an escape.
func RenderFrame(s *core.Screen, hudRows int) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		hud := y < hudRows

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(cellStyle(color, hud).Render(run.String()))
		}
	}
	return sb.String()
}
