package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/devicelab-dev/swipe-geometry/pkg/swipe"
)

// parseNumbers parses a comma-separated list of exactly n numbers.
func parseNumbers(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma-separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", p)
		}
		out[i] = v
	}
	return out, nil
}

// parseRect parses "x,y,width,height".
func parseRect(s string) (swipe.Rect, error) {
	v, err := parseNumbers(s, 4)
	if err != nil {
		return swipe.Rect{}, err
	}
	r := swipe.Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}
	if err := r.Validate(); err != nil {
		return swipe.Rect{}, err
	}
	return r, nil
}

// parseSize parses "width,height".
func parseSize(s string) (swipe.Size, error) {
	v, err := parseNumbers(s, 2)
	if err != nil {
		return swipe.Size{}, err
	}
	size := swipe.Size{Width: v[0], Height: v[1]}
	if err := size.Validate(); err != nil {
		return swipe.Size{}, err
	}
	return size, nil
}

func msDuration(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
