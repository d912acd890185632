package swipe

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/devicelab-dev/swipe-geometry/pkg/geometry"
)

// Speed classifies how quickly the gesture-dispatch side should play a swipe.
type Speed string

// Speed values
const (
	SpeedFast Speed = "fast"
	SpeedSlow Speed = "slow"
)

// Duration returns the time a swipe of this speed takes, matching the
// Espresso FAST and SLOW swipers.
func (s Speed) Duration() time.Duration {
	if s == SpeedFast {
		return 100 * time.Millisecond
	}
	return 1500 * time.Millisecond
}

// Precision describes the contact area of the synthesized touch.
type Precision string

// PrecisionFinger is the only precision produced by the calculator.
const PrecisionFinger Precision = "finger"

// Params are the caller-facing swipe options.
type Params struct {
	Direction geometry.Direction
	Fast      bool
	Amount    Optional // fraction of the travel to the screen edge, [0,1]
	StartX    Optional // normalized start inside the view, [0,1]
	StartY    Optional
}

// Rect is a view's top-left screen location and size.
type Rect struct {
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// Size is the physical screen size.
type Size struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// ErrInvalidGeometry is returned for view or screen measurements that are
// not finite, or sizes that are not positive.
var ErrInvalidGeometry = errors.New("invalid geometry")

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Validate checks that the view has a finite location and a positive size.
func (r Rect) Validate() error {
	if !isFinite(r.X) || !isFinite(r.Y) {
		return fmt.Errorf("%w: view location (%g, %g)", ErrInvalidGeometry, r.X, r.Y)
	}
	if !isPositive(r.Width) || !isPositive(r.Height) {
		return fmt.Errorf("%w: view size %gx%g", ErrInvalidGeometry, r.Width, r.Height)
	}
	return nil
}

// IsZero returns true for an unspecified screen size.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Validate checks that both screen dimensions are positive and finite.
func (s Size) Validate() error {
	if !isPositive(s.Width) || !isPositive(s.Height) {
		return fmt.Errorf("%w: screen size %gx%g", ErrInvalidGeometry, s.Width, s.Height)
	}
	return nil
}

// Geometry is the already-measured view and screen a swipe is planned in.
type Geometry struct {
	View   Rect
	Screen Size
}

// Validate checks both the view and the screen.
func (g Geometry) Validate() error {
	if err := g.View.Validate(); err != nil {
		return err
	}
	return g.Screen.Validate()
}

// Gesture is what gets handed to the dispatcher. Start and End are absolute
// coordinates in the same frame as Geometry.
type Gesture struct {
	Direction geometry.Direction `json:"direction"`
	Speed     Speed              `json:"speed"`
	Start     geometry.Vector2D  `json:"start"`
	End       geometry.Vector2D  `json:"end"`
	Precision Precision          `json:"precision"`
}

// Dispatcher turns a computed gesture into real touch events.
type Dispatcher interface {
	Dispatch(ctx context.Context, g Gesture) error
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(ctx context.Context, g Gesture) error

// Dispatch calls f(ctx, g).
func (f DispatcherFunc) Dispatch(ctx context.Context, g Gesture) error {
	return f(ctx, g)
}
