package uiautomator2

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// GetDeviceInfo returns device information.
func (c *Client) GetDeviceInfo(ctx context.Context) (*DeviceInfo, error) {
	data, err := c.request(ctx, "GET", c.sessionPath("/appium/device/info"), nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Value DeviceInfo `json:"value"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}

	return &resp.Value, nil
}

// ScreenSize returns the physical display size in pixels.
func (c *Client) ScreenSize(ctx context.Context) (width, height int, err error) {
	info, err := c.GetDeviceInfo(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("get device info: %w", err)
	}
	return parseDisplaySize(info.RealDisplaySize)
}

// parseDisplaySize parses sizes of the form "1080x2400".
func parseDisplaySize(s string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(s), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid display size %q", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid display width %q", parts[0])
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid display height %q", parts[1])
	}
	return w, h, nil
}
