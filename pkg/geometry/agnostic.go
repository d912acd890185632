package geometry

import "fmt"

// AgnosticPoint2D is a point expressed along the axis of travel (Primary)
// and across it (Secondary), independent of which way the swipe goes.
type AgnosticPoint2D struct {
	Primary   float64
	Secondary float64
}

// ToXY converts p to screen axes: Primary is X for horizontal directions
// and Y for vertical ones.
func (p AgnosticPoint2D) ToXY(direction Direction) (Vector2D, error) {
	switch {
	case direction.IsHorizontal():
		return Vector2D{X: p.Primary, Y: p.Secondary}, nil
	case direction.IsVertical():
		return Vector2D{X: p.Secondary, Y: p.Primary}, nil
	default:
		return Vector2D{}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(direction))
	}
}

// FromXY is the inverse of ToXY.
func FromXY(v Vector2D, direction Direction) (AgnosticPoint2D, error) {
	switch {
	case direction.IsHorizontal():
		return AgnosticPoint2D{Primary: v.X, Secondary: v.Y}, nil
	case direction.IsVertical():
		return AgnosticPoint2D{Primary: v.Y, Secondary: v.X}, nil
	default:
		return AgnosticPoint2D{}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(direction))
	}
}
