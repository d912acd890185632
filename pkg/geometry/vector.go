package geometry

import (
	"fmt"
	"math"
)

// Vector2D is an immutable pair of screen-axis components.
type Vector2D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Vec is shorthand for Vector2D{X: x, Y: y}.
func Vec(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// Rotate maps v, expressed relative to thisDirection, into the frame of
// intoDirection. Only whole quarter turns exist, so the rotation is done by
// transposing and negating components.
func (v Vector2D) Rotate(thisDirection, intoDirection Direction) (Vector2D, error) {
	if err := thisDirection.Validate(); err != nil {
		return Vector2D{}, err
	}
	if err := intoDirection.Validate(); err != nil {
		return Vector2D{}, err
	}

	turns := (intoDirection.quarterTurns() - thisDirection.quarterTurns() + 4) % 4
	switch turns {
	case 1:
		return Vector2D{X: -v.Y, Y: v.X}, nil
	case 2:
		return Vector2D{X: -v.X, Y: -v.Y}, nil
	case 3:
		return Vector2D{X: v.Y, Y: -v.X}, nil
	default:
		return v, nil
	}
}

// Normalize divides both components by the larger absolute component.
// The zero vector has no normalization; the result is then NaN.
func (v Vector2D) Normalize() Vector2D {
	m := math.Max(math.Abs(v.X), math.Abs(v.Y))
	return Vector2D{X: v.X / m, Y: v.Y / m}
}

// WrapUnit maps each negative component c to 1+c, turning an offset measured
// back from the far edge of the unit square into a position inside it.
func (v Vector2D) WrapUnit() Vector2D {
	return Vector2D{X: wrapUnit(v.X), Y: wrapUnit(v.Y)}
}

func wrapUnit(c float64) float64 {
	if c < 0 {
		return 1 + c
	}
	return c
}

// Scale multiplies both components by f.
func (v Vector2D) Scale(f float64) Vector2D {
	return Vector2D{X: v.X * f, Y: v.Y * f}
}

// Add returns the componentwise sum.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{X: v.X + other.X, Y: v.Y + other.Y}
}

// TrimMin raises each component to at least the given floor.
func (v Vector2D) TrimMin(minX, minY float64) Vector2D {
	return Vector2D{X: math.Max(v.X, minX), Y: math.Max(v.Y, minY)}
}

// TrimMax lowers each component to at most the given ceiling.
func (v Vector2D) TrimMax(maxX, maxY float64) Vector2D {
	return Vector2D{X: math.Min(v.X, maxX), Y: math.Min(v.Y, maxY)}
}

// Abs returns the componentwise absolute value.
func (v Vector2D) Abs() Vector2D {
	return Vector2D{X: math.Abs(v.X), Y: math.Abs(v.Y)}
}

// Equal reports whether both components are within tolerance of other's.
func (v Vector2D) Equal(other Vector2D, tolerance float64) bool {
	return math.Abs(v.X-other.X) <= tolerance && math.Abs(v.Y-other.Y) <= tolerance
}

func (v Vector2D) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
