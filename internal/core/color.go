package core

// Color represents a foreground color for a screen cell or particle.
// Uses ANSI 256-color codes for terminal compatibility; the desktop frontend
// maps the same values to RGB.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Explosion palette.
const (
	ColorBlast  = ColorOrange      // Hits and kills
	ColorShield = ColorBrightCyan  // Shield absorbing a crash
	ColorPickup = ColorBrightGreen // Power-up collected
)

// RGB returns an approximate 24-bit value for the color.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 0xcc, 0x33, 0x33
	case ColorGreen:
		return 0x33, 0xaa, 0x33
	case ColorYellow:
		return 0xcc, 0xcc, 0x33
	case ColorBlue:
		return 0x33, 0x55, 0xcc
	case ColorMagenta:
		return 0xaa, 0x33, 0xaa
	case ColorCyan:
		return 0x33, 0xaa, 0xaa
	case ColorBrightRed:
		return 0xff, 0x55, 0x55
	case ColorBrightGreen:
		return 0x88, 0xff, 0x88
	case ColorBrightYellow:
		return 0xff, 0xff, 0x66
	case ColorBrightCyan:
		return 0x66, 0xcc, 0xff
	case ColorBrightWhite:
		return 0xff, 0xff, 0xff
	case ColorOrange:
		return 0xff, 0xcc, 0x66
	case ColorGray:
		return 0x88, 0x88, 0x88
	default:
		return 0xdd, 0xdd, 0xdd
	}
}
