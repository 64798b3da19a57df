package greeting

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio/internal/logging"
)

func TestHandler_Hello(t *testing.T) {
	var logs bytes.Buffer
	h := NewHandler(logging.NewWriter(&logs, false))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, HelloPath, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", got)
	}
	if got, want := rec.Body.String(), `{"message":"hello hi"}`; got != want {
		t.Fatalf("body = %q, want %q", got, want)
	}
	if !strings.Contains(logs.String(), "http request method=GET path=/api/hello status=200") {
		t.Fatalf("request log = %q", logs.String())
	}
}

func TestHandler_OtherRoutes(t *testing.T) {
	h := NewHandler(logging.NewWriter(io.Discard, false))
	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "head is served by get", method: http.MethodHead, path: HelloPath, want: http.StatusOK},
		{name: "post not allowed", method: http.MethodPost, path: HelloPath, want: http.StatusMethodNotAllowed},
		{name: "delete not allowed", method: http.MethodDelete, path: HelloPath, want: http.StatusMethodNotAllowed},
		{name: "unknown path", method: http.MethodGet, path: "/api/bye", want: http.StatusNotFound},
		{name: "root", method: http.MethodGet, path: "/", want: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.want {
				t.Fatalf("%s %s status = %d, want %d", tt.method, tt.path, rec.Code, tt.want)
			}
		})
	}
}

func TestServer_RunServesAndShutsDown(t *testing.T) {
	srv := NewServer("127.0.0.1:0", logging.NewWriter(io.Discard, false))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	var addr net.Addr
	select {
	case addr = <-srv.Ready():
	case err := <-done:
		t.Fatalf("Run() returned early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not become ready")
	}

	resp, err := http.Get("http://" + addr.String() + HelloPath)
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != `{"message":"hello hi"}` {
		t.Fatalf("GET = %d %q", resp.StatusCode, body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("Run() did not stop after cancel")
	}
}

func TestServer_RunReturnsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	defer ln.Close()

	srv := NewServer(ln.Addr().String(), logging.NewWriter(io.Discard, false))
	if err := srv.Run(context.Background()); err == nil || !strings.Contains(err.Error(), "listen") {
		t.Fatalf("Run() error = %v, want listen error", err)
	}
}
