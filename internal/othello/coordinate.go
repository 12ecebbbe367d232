package othello

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Size is the number of rows and columns of the board.
	Size = 8

	rowLetters = "abcdefgh"
	colDigits  = "12345678"
)

var ErrInvalidField = errors.New("invalid field")

// PassMove is the coordinate recorded in a game when the side to move cannot play.
var PassMove = Coordinate{Row: -1, Col: -1}

// Coordinate is a square on the board. Values outside the board can be constructed,
// but every board operation rejects them.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Direction is one of the 8 compass offsets used to walk rays over the board.
type Direction struct {
	DRow int
	DCol int
}

// Directions contains all 8 directions, excluding the null offset.
var Directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// IsValid returns whether the coordinate lies on the board.
func (c Coordinate) IsValid() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Add returns the coordinate one step further in direction d.
func (c Coordinate) Add(d Direction) Coordinate {
	return Coordinate{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// Index returns the row-major index of the coordinate. Only meaningful for valid coordinates.
func (c Coordinate) Index() int {
	return c.Row*Size + c.Col
}

// String returns the field notation of a coordinate, e.g. "d3" for row d, column 3.
func (c Coordinate) String() string {
	if c == PassMove {
		return "--"
	}

	if !c.IsValid() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}

	return fmt.Sprintf("%c%c", rowLetters[c.Row], colDigits[c.Col])
}

// RowIndex maps a row token "a".."h" to 0..7. Any other token maps to -1.
func RowIndex(token string) int {
	token = strings.ToLower(strings.TrimSpace(token))
	if len(token) != 1 {
		return -1
	}
	return strings.Index(rowLetters, token)
}

// ColIndex maps a column token "1".."8" to 0..7. Any other token maps to -1.
func ColIndex(token string) int {
	token = strings.TrimSpace(token)
	if len(token) != 1 {
		return -1
	}
	return strings.Index(colDigits, token)
}

// ParseCoordinate parses human input of the form "<row> <col>", e.g. "c 4".
// Malformed input results in a coordinate that is not valid.
func ParseCoordinate(line string) Coordinate {
	tokens := strings.Fields(line)
	if len(tokens) != 2 {
		return Coordinate{Row: -1, Col: -1}
	}

	return Coordinate{Row: RowIndex(tokens[0]), Col: ColIndex(tokens[1])}
}

// ParseField converts field notation (e.g. "a1", "h8") to a coordinate.
// PassMove is returned if the field is "--", "ps", or "pa".
func ParseField(field string) (Coordinate, error) {
	if len(field) != 2 {
		return Coordinate{}, fmt.Errorf("%w: %q has length %d", ErrInvalidField, field, len(field))
	}

	field = strings.ToLower(field)

	if field == "--" || field == "ps" || field == "pa" {
		return PassMove, nil
	}

	c := Coordinate{Row: RowIndex(field[:1]), Col: ColIndex(field[1:])}
	if !c.IsValid() {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	return c, nil
}
