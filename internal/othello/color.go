package othello

import "fmt"

// Color is the content of a square, or the side to move.
type Color int

const (
	Empty Color = iota
	Dark
	Light
)

// Opposite returns the other player's color. Empty stays Empty.
func (c Color) Opposite() Color {
	switch c {
	case Dark:
		return Light
	case Light:
		return Dark
	default:
		return Empty
	}
}

// String returns the lowercase name of the color.
func (c Color) String() string {
	switch c {
	case Dark:
		return "dark"
	case Light:
		return "light"
	default:
		return "empty"
	}
}

// Symbol returns the character used when printing a board.
func (c Color) Symbol() string {
	switch c {
	case Dark:
		return "●"
	case Light:
		return "○"
	default:
		return " "
	}
}

// ParseColor parses the output of String for the two player colors.
func ParseColor(s string) (Color, error) {
	switch s {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	default:
		return Empty, fmt.Errorf("invalid color: %q", s)
	}
}
