package core

// Color is the colour tag carried by blocks, particles and screen cells.
// Values map onto ANSI 256-colour codes in the terminal front end.
type Color uint8

// Predefined colors. The neon palette (Cyan, Purple, Orange, Pink, Yellow)
// is what level layouts and particle bursts draw from.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorPurple
	ColorPink
	ColorGray
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorBrightWhite:
		return "bright-white"
	case ColorOrange:
		return "orange"
	case ColorPurple:
		return "purple"
	case ColorPink:
		return "pink"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}
