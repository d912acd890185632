// Package geometry provides the axis-aligned primitives used to plan swipe
// gestures: directions, 2D vectors and direction-agnostic points.
package geometry

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDirection is returned whenever an operation needs to classify a
// direction that is not one of Up, Down, Left or Right.
var ErrInvalidDirection = errors.New("unsupported swipe direction")

// Direction is the direction of travel of a swipe.
// The zero value is not a valid direction.
type Direction int

// Direction constants
const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// AllDirections returns every valid direction.
func AllDirections() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// ParseDirection parses a direction name (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// IsValid returns true if d is one of the four cardinal directions.
func (d Direction) IsValid() bool {
	return d >= Up && d <= Right
}

// Validate returns ErrInvalidDirection (wrapped) for an unknown direction.
func (d Direction) Validate() error {
	if !d.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	return nil
}

// IsHorizontal returns true for Left and Right.
func (d Direction) IsHorizontal() bool {
	return d == Left || d == Right
}

// IsVertical returns true for Up and Down.
func (d Direction) IsVertical() bool {
	return d == Up || d == Down
}

// Opposite returns the direction pointing the other way.
// Invalid directions are returned unchanged.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// quarterTurns is the clockwise screen angle of d in units of 90 degrees,
// with Right at 0. Screen y grows downwards, so Down is one turn from Right.
func (d Direction) quarterTurns() int {
	switch d {
	case Right:
		return 0
	case Down:
		return 1
	case Left:
		return 2
	case Up:
		return 3
	default:
		return -1
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalYAML decodes a direction from a scalar node such as "up".
func (d *Direction) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: direction must be a scalar", value.Line)
	}
	parsed, err := ParseDirection(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = parsed
	return nil
}
