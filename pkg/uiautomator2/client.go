// Package uiautomator2 is a minimal client for the UIAutomator2 server used
// to play computed swipe gestures on an Android device.
package uiautomator2

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Client communicates with UIAutomator2 server.
type Client struct {
	http       *http.Client
	baseURL    string
	sessionID  string
	socketPath string
}

// NewClient creates a client using Unix socket (Linux/Mac).
func NewClient(socketPath string) *Client {
	transport := &http.Transport{
		DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "unix", socketPath)
		},
	}

	return &Client{
		http: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
		baseURL:    "http://localhost",
		socketPath: socketPath,
	}
}

// NewClientTCP creates a client using TCP port (Windows, forwarded ports).
func NewClientTCP(port int) *Client {
	return NewClientURL(fmt.Sprintf("http://127.0.0.1:%d", port))
}

// NewClientURL creates a client for an arbitrary base URL.
func NewClientURL(baseURL string) *Client {
	return &Client{
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
	}
}

// SessionID returns the current session ID.
func (c *Client) SessionID() string {
	return c.sessionID
}

// HasSession returns true if a session is active.
func (c *Client) HasSession() bool {
	return c.sessionID != ""
}

// RequestError is a failed call to the UIAutomator2 server. StatusCode is 0
// when no response arrived.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	Kind       string // the server's "error" field, e.g. "no such element"
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	prefix := e.Method + " " + e.Path
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	case e.Kind != "":
		return fmt.Sprintf("%s: %s: %s", prefix, e.Kind, e.Message)
	default:
		return fmt.Sprintf("%s: server error %d: %s", prefix, e.StatusCode, e.Message)
	}
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// request makes an HTTP request to UIAutomator2.
func (c *Client) request(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	fail := func(format string, err error) error {
		return &RequestError{Method: method, Path: path, Err: fmt.Errorf(format, err)}
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fail("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fail("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fail("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fail("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		reqErr := &RequestError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
		var errResp Response
		if json.Unmarshal(respBody, &errResp) == nil {
			if errVal, ok := errResp.Value.(map[string]interface{}); ok {
				reqErr.Kind, _ = errVal["error"].(string)
				reqErr.Message, _ = errVal["message"].(string)
			}
		}
		return nil, reqErr
	}

	return respBody, nil
}

// sessionPath returns path with session ID prefix.
func (c *Client) sessionPath(path string) string {
	return fmt.Sprintf("/session/%s%s", c.sessionID, path)
}

// Status checks if the server is ready.
func (c *Client) Status(ctx context.Context) (bool, error) {
	data, err := c.request(ctx, "GET", "/status", nil)
	if err != nil {
		return false, err
	}

	var resp struct {
		Value struct {
			Ready   bool   `json:"ready"`
			Message string `json:"message"`
		} `json:"value"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return false, err
	}

	return resp.Value.Ready, nil
}

// CreateSession starts a new automation session.
func (c *Client) CreateSession(ctx context.Context, caps Capabilities) error {
	req := SessionRequest{Capabilities: caps}
	data, err := c.request(ctx, "POST", "/session", req)
	if err != nil {
		return err
	}

	var resp struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("parse session response: %w", err)
	}

	if resp.SessionID == "" {
		// W3C servers nest the session under "value"
		var altResp struct {
			Value struct {
				SessionID string `json:"sessionId"`
			} `json:"value"`
		}
		if json.Unmarshal(data, &altResp) == nil && altResp.Value.SessionID != "" {
			resp.SessionID = altResp.Value.SessionID
		}
	}

	if resp.SessionID == "" {
		return fmt.Errorf("no session ID in response")
	}

	c.sessionID = resp.SessionID
	return nil
}

// DeleteSession ends the current session.
func (c *Client) DeleteSession(ctx context.Context) error {
	if c.sessionID == "" {
		return nil
	}

	_, err := c.request(ctx, "DELETE", c.sessionPath(""), nil)
	c.sessionID = ""
	return err
}

// Close ends the session and cleans up.
func (c *Client) Close() error {
	return c.DeleteSession(context.Background())
}
