package main

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ferrygame/river-crossing/config"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName == "" {
		t.Error("AppName should not be empty")
	}

	expectedVersion := "1.0.0"
	if Version != expectedVersion {
		t.Errorf("Expected version %s, got %s", expectedVersion, Version)
	}
}

func TestNewGameService(t *testing.T) {
	gameService, sessionManager := newGameService()

	if gameService == nil {
		t.Fatal("Expected game service to be initialized")
	}
	if sessionManager == nil {
		t.Fatal("Expected session manager to be initialized")
	}

	// The service should drive the manager it was wired with
	info, err := gameService.CreateSession(context.Background())
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if info.ID == "" {
		t.Error("Expected a session ID")
	}
	if sessionManager.Count() != 1 {
		t.Errorf("Expected 1 session in the manager, got %d", sessionManager.Count())
	}
}

func TestRootCommand(t *testing.T) {
	cmd := rootCommand()

	if cmd.Name != "river-crossing" {
		t.Errorf("Expected command name river-crossing, got %s", cmd.Name)
	}
	if cmd.Version != Version {
		t.Errorf("Expected version %s, got %s", Version, cmd.Version)
	}

	want := map[string]bool{"serve": false, "play": false, "mcp": false}
	for _, sub := range cmd.Commands {
		if _, ok := want[sub.Name]; ok {
			want[sub.Name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("Expected subcommand %q", name)
		}
	}
}

func TestServeFlags(t *testing.T) {
	flags := serveFlags()

	var names []string
	for _, f := range flags {
		names = append(names, f.Names()...)
	}
	joined := strings.Join(names, ",")

	for _, want := range []string{"ngrok", "debug"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected flag %q, got %v", want, names)
		}
	}
}

func TestSelectAPIServer_External(t *testing.T) {
	// A healthy server at the configured address should be reused
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/healthz" {
			t.Errorf("Expected probe on /api/healthz, got %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	u, err := url.Parse(ts.URL)
	if err != nil {
		t.Fatalf("parse test server URL: %v", err)
	}
	host, portStr, err := net.SplitHostPort(u.Host)
	if err != nil {
		t.Fatalf("split test server host: %v", err)
	}
	port, _ := strconv.Atoi(portStr)

	cfg := &config.Config{Host: host, Port: port}

	baseURL, err := selectAPIServer(cfg)
	if err != nil {
		t.Fatalf("selectAPIServer failed: %v", err)
	}
	if baseURL != ts.URL {
		t.Errorf("Expected external URL %s, got %s", ts.URL, baseURL)
	}
}

func TestSelectAPIServer_InternalFallback(t *testing.T) {
	// Find a port with nothing listening on it
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserve port: %v", err)
	}
	freePort := l.Addr().(*net.TCPAddr).Port
	l.Close()

	cfg := &config.Config{Host: "127.0.0.1", Port: freePort}

	baseURL, err := selectAPIServer(cfg)
	if err != nil {
		t.Fatalf("selectAPIServer failed: %v", err)
	}
	if baseURL == cfg.BaseURL() {
		t.Fatal("Expected an internal server on a fresh port, got the dead external address")
	}

	// The internal server should actually answer
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(baseURL + "/api/healthz")
	if err != nil {
		t.Fatalf("internal server not reachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200 from internal server, got %d", resp.StatusCode)
	}
}

// main(), runServe() and runMCP() start servers and block on signals or
// stdio, so they are exercised by running the binary rather than unit
// tests, same as the HTTP handlers are exercised through the api tests.
