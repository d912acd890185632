package uiautomator2

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClientURL(server.URL), server
}

func newTestClientWithSession(handler http.HandlerFunc) (*Client, *httptest.Server) {
	client, server := newTestClient(handler)
	client.sessionID = "test-session"
	return client, server
}

func TestStatus(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/status" {
			t.Errorf("expected /status, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"value": map[string]interface{}{"ready": true, "message": "ok"},
		})
	})
	defer server.Close()

	ready, err := client.Status(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ready {
		t.Error("expected ready")
	}
}

func TestCreateSession(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/session" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var req SessionRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Capabilities.PlatformName != "Android" {
			t.Errorf("expected Android, got %s", req.Capabilities.PlatformName)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"sessionId": "abc"})
	})
	defer server.Close()

	err := client.CreateSession(context.Background(), Capabilities{PlatformName: "Android"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.SessionID() != "abc" || !client.HasSession() {
		t.Errorf("expected session abc, got %q", client.SessionID())
	}
}

func TestCreateSessionNestedValue(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"value": map[string]interface{}{"sessionId": "nested"},
		})
	})
	defer server.Close()

	if err := client.CreateSession(context.Background(), Capabilities{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.SessionID() != "nested" {
		t.Errorf("expected nested, got %q", client.SessionID())
	}
}

func TestCreateSessionMissingID(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"value": map[string]interface{}{}})
	})
	defer server.Close()

	if err := client.CreateSession(context.Background(), Capabilities{}); err == nil {
		t.Error("expected error for missing session ID")
	}
}

func TestServerError(t *testing.T) {
	client, server := newTestClientWithSession(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"value": map[string]interface{}{
				"error":   "unknown error",
				"message": "boom",
			},
		})
	})
	defer server.Close()

	err := client.Drag(context.Background(), PointModel{}, PointModel{X: 1}, 100)
	if err == nil {
		t.Fatal("expected error")
	}
	want := "POST /session/test-session/appium/gestures/drag: unknown error: boom"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %T", err)
	}
	if reqErr.StatusCode != http.StatusInternalServerError || reqErr.Kind != "unknown error" || reqErr.Message != "boom" {
		t.Errorf("unexpected request error %+v", reqErr)
	}
}

func TestServerErrorPlainBody(t *testing.T) {
	client, server := newTestClientWithSession(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("bad gateway"))
	})
	defer server.Close()

	err := client.Drag(context.Background(), PointModel{}, PointModel{}, 0)
	if err == nil || !strings.Contains(err.Error(), "server error 502: bad gateway") {
		t.Errorf("expected server error 502, got %v", err)
	}
	var reqErr *RequestError
	if !errors.As(err, &reqErr) || reqErr.Path != "/session/test-session/appium/gestures/drag" {
		t.Errorf("expected request error carrying the drag path, got %#v", err)
	}
}

func TestDeleteSession(t *testing.T) {
	var calls int
	client, server := newTestClientWithSession(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Method != "DELETE" || r.URL.Path != "/session/test-session" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"value": nil})
	})
	defer server.Close()

	if err := client.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.HasSession() {
		t.Error("expected session to be cleared")
	}
	// second close is a no-op
	if err := client.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRequestCanceled(t *testing.T) {
	client, server := newTestClientWithSession(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"value": nil})
	})
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Drag(ctx, PointModel{}, PointModel{}, 0)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	var reqErr *RequestError
	if !errors.As(err, &reqErr) || reqErr.StatusCode != 0 {
		t.Errorf("expected request error without status, got %#v", err)
	}
}
