package main

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

func Test_application_secureHeadersAndHealth(t *testing.T) {
	ctx := t.Context()
	server := startTestServer(t)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL()+"/api/healthy", nil)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Failed to get healthy endpoint: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /api/healthy: got status %d, want %d", resp.StatusCode, http.StatusOK)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	if got := string(body); got != `{"status":"ok"}` {
		t.Errorf("body = %q, want ok status", got)
	}

	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "deny",
		"Referrer-Policy":        "origin-when-cross-origin",
	} {
		if got := resp.Header.Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	if csp := resp.Header.Get("Content-Security-Policy"); !strings.Contains(csp, "default-src 'none'") {
		t.Errorf("Content-Security-Policy = %q, want default-src 'none'", csp)
	}
}

func Test_application_language(t *testing.T) {
	ctx := t.Context()
	server := startTestServer(t)
	client := server.Client()

	status, err := client.PostJSON(ctx, "/api/language", map[string]any{"language": "fi"}, nil)
	if err != nil {
		t.Fatalf("Failed to set language: %v", err)
	}
	if status != http.StatusNoContent {
		t.Errorf("POST /api/language: got status %d, want %d", status, http.StatusNoContent)
	}

	if status, err = client.PostJSON(ctx, "/api/language", map[string]any{"language": "sv"}, nil); err != nil {
		t.Fatalf("Failed to set language: %v", err)
	}
	if status != http.StatusUnprocessableEntity {
		t.Errorf("unsupported language: got status %d, want %d", status, http.StatusUnprocessableEntity)
	}
}
