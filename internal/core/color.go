package core

// Color represents a foreground color for a visual or screen cell.
// Uses ANSI 256-color codes for terminal compatibility; RGB gives the
// equivalent for pixel hosts.
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
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorNames = map[string]Color{
	"default":        ColorDefault,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright_red":     ColorBrightRed,
	"bright_green":   ColorBrightGreen,
	"bright_yellow":  ColorBrightYellow,
	"bright_blue":    ColorBrightBlue,
	"bright_magenta": ColorBrightMagenta,
	"bright_cyan":    ColorBrightCyan,
	"bright_white":   ColorBrightWhite,
	"orange":         ColorOrange,
	"gray":           ColorGray,
}

// ParseColor looks up a color by its config name (e.g. "orange").
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}

// RGB returns the 8-bit red, green and blue components.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 0xcc, 0x22, 0x00
	case ColorGreen:
		return 0x44, 0xaa, 0x44
	case ColorYellow:
		return 0xff, 0xcc, 0x66
	case ColorBlue:
		return 0x44, 0x44, 0xaa
	case ColorMagenta:
		return 0xaa, 0x00, 0xaa
	case ColorCyan:
		return 0x88, 0xff, 0xff
	case ColorWhite:
		return 0xdd, 0xdd, 0xdd
	case ColorBrightRed:
		return 0xff, 0x00, 0x00
	case ColorBrightGreen:
		return 0x00, 0xff, 0x00
	case ColorBrightYellow:
		return 0xff, 0xff, 0x00
	case ColorBrightBlue:
		return 0x66, 0x88, 0xff
	case ColorBrightMagenta:
		return 0xff, 0x00, 0xff
	case ColorBrightCyan:
		return 0x00, 0xff, 0xff
	case ColorBrightWhite:
		return 0xff, 0xff, 0xff
	case ColorOrange:
		return 0xff, 0xaa, 0x00
	case ColorGray:
		return 0x66, 0x66, 0x66
	default:
		return 0xcc, 0xcc, 0xcc
	}
}
