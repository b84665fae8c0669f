package judge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func closeIdleConnections() {
	if tr, ok := http.DefaultTransport.(*http.Transport); ok {
		tr.CloseIdleConnections()
	}
}

func TestOllamaClientCompleteWithSystem(t *testing.T) {
	defer closeIdleConnections()

	var captured ollamaGenerateRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %q, want /api/generate", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(ollamaGenerateResponse{Response: `{"ok": true}`})
	}))
	defer ts.Close()

	c := NewOllamaClient(ts.URL, "test-model", 5*time.Second)
	got, err := c.CompleteWithSystem(context.Background(), "system text", "user text")
	if err != nil {
		t.Fatalf("CompleteWithSystem() error = %v", err)
	}
	if got != `{"ok": true}` {
		t.Errorf("response = %q", got)
	}

	if captured.Model != "test-model" {
		t.Errorf("model = %q, want test-model", captured.Model)
	}
	if captured.Stream {
		t.Error("stream must be false")
	}
	if captured.Format != "json" {
		t.Errorf("format = %q, want json", captured.Format)
	}
	if captured.Options.Temperature != 0 {
		t.Errorf("temperature = %v, want 0", captured.Options.Temperature)
	}
	for _, want := range []string{"[SYSTEM]\nsystem text", "[USER]\nuser text", "Return ONLY valid JSON"} {
		if !strings.Contains(captured.Prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, captured.Prompt)
		}
	}
}

func TestOllamaClientOmitsEmptySystem(t *testing.T) {
	defer closeIdleConnections()

	var captured ollamaGenerateRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(ollamaGenerateResponse{Response: "ok"})
	}))
	defer ts.Close()

	c := NewOllamaClient(ts.URL, "m", time.Second)
	if _, err := c.CompleteWithSystem(context.Background(), "  ", "hello"); err != nil {
		t.Fatalf("CompleteWithSystem() error = %v", err)
	}
	if strings.Contains(captured.Prompt, "[SYSTEM]") {
		t.Errorf("blank system prompt should be omitted:\n%s", captured.Prompt)
	}
}

func TestOllamaClientServerError(t *testing.T) {
	defer closeIdleConnections()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer ts.Close()

	c := NewOllamaClient(ts.URL, "m", time.Second)
	_, err := c.CompleteWithSystem(context.Background(), "s", "u")
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("error = %v, want status 404 mention", err)
	}
}

func TestOllamaClientEmptyCompletion(t *testing.T) {
	defer closeIdleConnections()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaGenerateResponse{Response: "   "})
	}))
	defer ts.Close()

	c := NewOllamaClient(ts.URL, "m", time.Second)
	if _, err := c.CompleteWithSystem(context.Background(), "s", "u"); err == nil {
		t.Error("blank completion should be an error")
	}
}

func TestNewOllamaClientDefaults(t *testing.T) {
	c := NewOllamaClient("", "", 0)
	if c.endpoint != "http://localhost:11434" {
		t.Errorf("endpoint = %q", c.endpoint)
	}
	if c.Model() != "deepseek-r1:latest" {
		t.Errorf("model = %q", c.Model())
	}
	if c.client.Timeout != 120*time.Second {
		t.Errorf("timeout = %v", c.client.Timeout)
	}

	c = NewOllamaClient("http://host:1234/", "m", time.Second)
	if c.endpoint != "http://host:1234" {
		t.Errorf("trailing slash not trimmed: %q", c.endpoint)
	}
}
