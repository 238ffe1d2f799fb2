package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	s, err := New(context.Background(), DefaultConfig(), logger)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func postGenerate(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestGeneratePDF(t *testing.T) {
	s := testServer(t)
	rec := postGenerate(t, s, `{"text":"hello world","seed":7}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF document")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestGeneratePages(t *testing.T) {
	s := testServer(t)
	rec := postGenerate(t, s, `{"text":"hi","output_type":"png/buf","seed":7}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp generateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.PageCount != len(resp.Pages) {
		t.Errorf("page_count = %d but %d pages", resp.PageCount, len(resp.Pages))
	}
	raw, err := base64.StdEncoding.DecodeString(resp.Pages[0])
	if err != nil {
		t.Fatalf("page 0 is not base64: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("\x89PNG")) {
		t.Error("page 0 does not decode to a PNG")
	}
}

func TestGenerateValidationErrors(t *testing.T) {
	s := testServer(t)
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"empty text", `{"text":""}`, "INVALID_INPUT"},
		{"bad output type", `{"text":"hi","output_type":"gif"}`, "INVALID_OUTPUT_TYPE"},
		{"bad ink color", `{"text":"hi","ink_color":"green"}`, "INVALID_INK_COLOR"},
		{"malformed json", `{`, "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postGenerate(t, s, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("error code = %q, want %q", resp.Error.Code, tt.wantCode)
			}
			if resp.Error.Message == "" {
				t.Error("error message is empty")
			}
		})
	}
}

func TestUnknownOutputTypeListsSupported(t *testing.T) {
	s := testServer(t)
	rec := postGenerate(t, s, `{"text":"hi","output_type":"tiff"}`)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, want := range []string{"pdf", "png/buf", "jpeg/buf", "png/b64", "jpeg/b64"} {
		if !strings.Contains(resp.Error.Message, want) {
			t.Errorf("message %q does not list %q", resp.Error.Message, want)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.toml")
	content := `
addr = ":9090"

[cache]
backend = "file"
dir = "/tmp/hw-cache"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Addr)
	}
	if cfg.Cache.Backend != CacheBackendFile || cfg.Cache.Dir != "/tmp/hw-cache" {
		t.Errorf("cache config = %+v", cfg.Cache)
	}
	// Unset fields keep their defaults.
	if cfg.MaxTextBytes != DefaultConfig().MaxTextBytes {
		t.Errorf("MaxTextBytes = %d, want default", cfg.MaxTextBytes)
	}
	if cfg.DefaultOutputType != "pdf" {
		t.Errorf("DefaultOutputType = %q, want pdf", cfg.DefaultOutputType)
	}
}

func TestLoadConfigBadBackend(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.toml")
	if err := os.WriteFile(path, []byte("[cache]\nbackend = \"memcache\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for unknown cache backend")
	}
}
