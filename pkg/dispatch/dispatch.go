// Package dispatch plays computed swipe gestures on a device.
package dispatch

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/devicelab-dev/swipe-geometry/pkg/logger"
	"github.com/devicelab-dev/swipe-geometry/pkg/swipe"
	"github.com/devicelab-dev/swipe-geometry/pkg/uiautomator2"
)

// Dragger is the part of uiautomator2.Client the dispatcher needs.
// Allows mocking in tests.
type Dragger interface {
	Drag(ctx context.Context, start, end uiautomator2.PointModel, speed int) error
}

// UIAutomator2 dispatches gestures as coordinate drags.
type UIAutomator2 struct {
	client Dragger
	log    *zap.Logger
}

var _ swipe.Dispatcher = (*UIAutomator2)(nil)

// NewUIAutomator2 creates a dispatcher backed by client.
func NewUIAutomator2(client Dragger, log *zap.Logger) *UIAutomator2 {
	return &UIAutomator2{client: client, log: logger.OrNop(log)}
}

// Dispatch implements swipe.Dispatcher.
func (u *UIAutomator2) Dispatch(ctx context.Context, g swipe.Gesture) error {
	start := toPoint(g.Start.X, g.Start.Y)
	end := toPoint(g.End.X, g.End.Y)
	speed := Speed(g)

	u.log.Debug("dispatching swipe",
		zap.Stringer("direction", g.Direction),
		zap.Int("startX", start.X), zap.Int("startY", start.Y),
		zap.Int("endX", end.X), zap.Int("endY", end.Y),
		zap.Int("speed", speed))

	if err := u.client.Drag(ctx, start, end, speed); err != nil {
		return fmt.Errorf("drag %s: %w", g.Direction, err)
	}
	return nil
}

// Speed converts a gesture's path length and duration into pixels per
// second. A zero-length gesture still gets a speed of 1.
func Speed(g swipe.Gesture) int {
	dist := math.Hypot(g.End.X-g.Start.X, g.End.Y-g.Start.Y)
	speed := int(math.Round(dist / g.Speed.Duration().Seconds()))
	if speed < 1 {
		return 1
	}
	return speed
}

func toPoint(x, y float64) uiautomator2.PointModel {
	return uiautomator2.PointModel{X: int(math.Round(x)), Y: int(math.Round(y))}
}
