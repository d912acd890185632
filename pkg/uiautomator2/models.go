package uiautomator2

// Response is the generic envelope returned by the server.
type Response struct {
	SessionID string      `json:"sessionId,omitempty"`
	Value     interface{} `json:"value"`
}

// Capabilities are sent when creating a session.
type Capabilities struct {
	PlatformName   string `json:"platformName,omitempty"`
	DeviceName     string `json:"deviceName,omitempty"`
	AutomationName string `json:"automationName,omitempty"`
}

// SessionRequest wraps capabilities for session creation.
type SessionRequest struct {
	Capabilities Capabilities `json:"capabilities"`
}

// PointModel is an absolute screen coordinate.
type PointModel struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DragRequest is the body of /appium/gestures/drag.
// Speed is in pixels per second.
type DragRequest struct {
	Start *PointModel `json:"start"`
	End   *PointModel `json:"end"`
	Speed int         `json:"speed,omitempty"`
}

// DeviceInfo is the subset of /appium/device/info the client uses.
type DeviceInfo struct {
	Manufacturer    string `json:"manufacturer"`
	Model           string `json:"model"`
	APIVersion      string `json:"apiVersion"`
	PlatformVersion string `json:"platformVersion"`
	RealDisplaySize string `json:"realDisplaySize"`
	DisplayDensity  int    `json:"displayDensity"`
}
