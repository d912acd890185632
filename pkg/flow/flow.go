// Package flow handles parsing and representation of swipe plan files.
package flow

import (
	"fmt"

	"github.com/devicelab-dev/swipe-geometry/pkg/geometry"
	"github.com/devicelab-dev/swipe-geometry/pkg/swipe"
)

// Flow represents a parsed swipe plan file.
type Flow struct {
	SourcePath string      // Path to the source file
	Config     Config      // Plan configuration (name, tags, screen)
	Steps      []SwipeStep // Swipes to compute, in order
}

// Name returns the configured name, falling back to the source path.
func (f *Flow) Name() string {
	if f.Config.Name != "" {
		return f.Config.Name
	}
	return f.SourcePath
}

// Config represents plan-level configuration.
type Config struct {
	Name   string     `yaml:"name"`
	Tags   []string   `yaml:"tags"`
	Screen swipe.Size `yaml:"screen"` // zero means "ask the device"
}

// HasScreen returns true if the plan names its screen size.
func (c Config) HasScreen() bool {
	return c.Screen.Width > 0 && c.Screen.Height > 0
}

// SwipeStep is one swipe inside a plan.
type SwipeStep struct {
	Label     string             `yaml:"label"`
	Direction geometry.Direction `yaml:"direction"`
	Fast      *bool              `yaml:"fast"` // nil = fast
	Amount    swipe.Optional     `yaml:"amount"`
	StartX    swipe.Optional     `yaml:"startX"`
	StartY    swipe.Optional     `yaml:"startY"`
	View      *swipe.Rect        `yaml:"view"` // nil = whole screen
}

// Params converts the step to calculator parameters.
func (s *SwipeStep) Params() swipe.Params {
	fast := true
	if s.Fast != nil {
		fast = *s.Fast
	}
	return swipe.Params{
		Direction: s.Direction,
		Fast:      fast,
		Amount:    s.Amount,
		StartX:    s.StartX,
		StartY:    s.StartY,
	}
}

// Geometry returns the view/screen pair the step is computed against.
func (s *SwipeStep) Geometry(screen swipe.Size) swipe.Geometry {
	view := swipe.Rect{Width: screen.Width, Height: screen.Height}
	if s.View != nil {
		view = *s.View
	}
	return swipe.Geometry{View: view, Screen: screen}
}

// Describe returns a human-readable description of the step.
func (s *SwipeStep) Describe() string {
	if s.Label != "" {
		return s.Label
	}
	return fmt.Sprintf("swipe %s", s.Direction)
}
