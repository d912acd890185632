package uiautomator2

import "context"

// Drag moves a single finger from start to end at speed pixels per second.
func (c *Client) Drag(ctx context.Context, start, end PointModel, speed int) error {
	req := DragRequest{
		Start: &start,
		End:   &end,
		Speed: speed,
	}
	_, err := c.request(ctx, "POST", c.sessionPath("/appium/gestures/drag"), req)
	return err
}
