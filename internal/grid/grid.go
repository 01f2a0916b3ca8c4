package grid

import (
	"fmt"
	"strings"
)

// Position is a cell coordinate on the arena. Y grows upward: Up adds one
// to Y, and the renderer flips rows when drawing.
type Position struct {
	X int
	Y int
}

// Add returns p shifted by the direction's unit offset.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Offset()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four headings an actor segment can face.
type Direction uint8

const (
	Left Direction = iota
	Up
	Right
	Down
)

// Directions lists every heading in declaration order.
var Directions = [4]Direction{Left, Up, Right, Down}

// Opposite maps Left<->Right and Up<->Down.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Offset returns the unit (dx, dy) for one step in this direction.
func (d Direction) Offset() (int, int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, 1
	default:
		return 0, -1
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// ParseDirection accepts the String() form, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "up":
		return Up, nil
	case "right":
		return Right, nil
	case "down":
		return Down, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// UnmarshalText lets directions appear by name in TOML and YAML files.
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
