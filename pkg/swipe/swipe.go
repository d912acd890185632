// Package swipe computes the start and end screen coordinates of a
// directional swipe inside a view.
package swipe

import (
	"math"

	"github.com/devicelab-dev/swipe-geometry/pkg/geometry"
)

// EdgeFuzzFactor is the fraction of the view kept free on every side, so a
// swipe never starts on a boundary pixel that hit-testing may miss.
const EdgeFuzzFactor = 0.083

// DefaultAmount is used when no amount is specified.
const DefaultAmount = 0.75

func minMax(minValue, value, maxValue float64) float64 {
	return math.Max(minValue, math.Min(value, maxValue))
}

// Swipe is a resolved swipe: everything that does not depend on the view or
// screen it will be applied to.
type Swipe struct {
	Direction       geometry.Direction
	Speed           Speed
	Precision       Precision
	NormalizedStart geometry.Vector2D
	Amount          float64
}

// DefaultStart returns the normalized start point used when the caller does
// not choose one: centered across the direction of travel and inset by the
// edge fuzz from the edge the swipe moves away from.
func DefaultStart(direction geometry.Direction) (geometry.Vector2D, error) {
	rotated, err := geometry.Vec(0.5, EdgeFuzzFactor).Rotate(geometry.Down, direction)
	if err != nil {
		return geometry.Vector2D{}, err
	}
	return rotated.WrapUnit(), nil
}

// Resolve applies defaults and clamping to p.
func Resolve(p Params) (Swipe, error) {
	edgeMin, edgeMax := EdgeFuzzFactor, 1-EdgeFuzzFactor

	def, err := DefaultStart(p.Direction)
	if err != nil {
		return Swipe{}, err
	}
	start := geometry.Vec(
		minMax(edgeMin, p.StartX.Or(def.X), edgeMax),
		minMax(edgeMin, p.StartY.Or(def.Y), edgeMax),
	)

	amount := DefaultAmount
	if p.Amount.IsSet() {
		amount = minMax(0, p.Amount.Value, 1)
	}

	speed := SpeedSlow
	if p.Fast {
		speed = SpeedFast
	}

	return Swipe{
		Direction:       p.Direction,
		Speed:           speed,
		Precision:       PrecisionFinger,
		NormalizedStart: start,
		Amount:          amount,
	}, nil
}

// StartCoordinate places the normalized start inside the view.
func (s Swipe) StartCoordinate(g Geometry) geometry.Vector2D {
	return geometry.Vec(
		g.View.X+s.NormalizedStart.X*g.View.Width,
		g.View.Y+s.NormalizedStart.Y*g.View.Height,
	)
}

// EndCoordinate moves from the start toward the screen edge in the swipe
// direction by Amount of the screen's extent along that axis, never leaving
// the screen. Only the coordinate along the direction of travel changes.
func (s Swipe) EndCoordinate(g Geometry) (geometry.Vector2D, error) {
	start := s.StartCoordinate(g)

	screen := geometry.Vec(g.Screen.Width, g.Screen.Height)
	extent, err := geometry.FromXY(screen, s.Direction)
	if err != nil {
		return geometry.Vector2D{}, err
	}
	edge, err := geometry.Vec(0, extent.Primary).Rotate(geometry.Down, s.Direction)
	if err != nil {
		return geometry.Vector2D{}, err
	}

	swipeEnd := start.
		Add(edge.Scale(s.Amount)).
		TrimMin(0, 0).
		TrimMax(screen.X, screen.Y)

	from, err := geometry.FromXY(start, s.Direction)
	if err != nil {
		return geometry.Vector2D{}, err
	}
	to, err := geometry.FromXY(swipeEnd, s.Direction)
	if err != nil {
		return geometry.Vector2D{}, err
	}
	return geometry.AgnosticPoint2D{Primary: to.Primary, Secondary: from.Secondary}.ToXY(s.Direction)
}

// Gesture evaluates s against g.
func (s Swipe) Gesture(g Geometry) (Gesture, error) {
	end, err := s.EndCoordinate(g)
	if err != nil {
		return Gesture{}, err
	}
	return Gesture{
		Direction: s.Direction,
		Speed:     s.Speed,
		Start:     s.StartCoordinate(g),
		End:       end,
		Precision: s.Precision,
	}, nil
}

// Compute resolves p and evaluates it against g.
func Compute(p Params, g Geometry) (Gesture, error) {
	s, err := Resolve(p)
	if err != nil {
		return Gesture{}, err
	}
	return s.Gesture(g)
}
