package game

import (
	"errors"
	"fmt"
	"strings"
)

// Direction represents one step a player can take on the board.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// ErrUnknownDirection indicates a direction name that is not one of U, D, L or R.
var ErrUnknownDirection = errors.New("unknown direction")

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts the single-letter keys U, D, L, R as well as the full
// direction names, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "U", "UP":
		return Up, nil
	case "D", "DOWN":
		return Down, nil
	case "L", "LEFT":
		return Left, nil
	case "R", "RIGHT":
		return Right, nil
	default:
		return Up, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}
