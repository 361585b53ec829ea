package httpclient

import (
	"context"
	"io"
	"testing"
)

func TestRequest_Build(t *testing.T) {
	req := NewRequest("GET", "/users").
		WithQueryParam("page", "2").
		WithQueryParam("limit", "10").
		WithHeader("Accept", "application/json")

	httpReq, err := req.Build(context.Background(), "https://api.example.com")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if httpReq.Method != "GET" {
		t.Errorf("Method = %q, want GET", httpReq.Method)
	}
	if httpReq.URL.Path != "/users" {
		t.Errorf("Path = %q, want /users", httpReq.URL.Path)
	}
	if httpReq.URL.Query().Get("page") != "2" {
		t.Errorf("page = %q, want 2", httpReq.URL.Query().Get("page"))
	}
	if httpReq.URL.Query().Get("limit") != "10" {
		t.Errorf("limit = %q, want 10", httpReq.URL.Query().Get("limit"))
	}
	if httpReq.Header.Get("Accept") != "application/json" {
		t.Errorf("Accept = %q", httpReq.Header.Get("Accept"))
	}
}

func TestRequest_BuildJoinsBasePath(t *testing.T) {
	tests := []struct {
		baseURL string
		path    string
		want    string
	}{
		{"https://api.example.com", "/users", "/users"},
		{"https://api.example.com/v1", "/users", "/v1/users"},
		{"https://api.example.com/v1/", "users", "/v1/users"},
	}

	for _, tt := range tests {
		httpReq, err := NewRequest("GET", tt.path).Build(context.Background(), tt.baseURL)
		if err != nil {
			t.Fatalf("Build(%q, %q) failed: %v", tt.baseURL, tt.path, err)
		}
		if httpReq.URL.Path != tt.want {
			t.Errorf("Build(%q, %q) path = %q, want %q", tt.baseURL, tt.path, httpReq.URL.Path, tt.want)
		}
	}
}

func TestRequest_BuildBody(t *testing.T) {
	t.Run("string body sent verbatim", func(t *testing.T) {
		httpReq, err := NewRequest("POST", "/raw").WithBody("plain text").Build(context.Background(), "http://host")
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		body, _ := io.ReadAll(httpReq.Body)
		if string(body) != "plain text" {
			t.Errorf("body = %q", body)
		}
		if ct := httpReq.Header.Get("Content-Type"); ct != "" {
			t.Errorf("Content-Type = %q, want empty for raw string", ct)
		}
	})

	t.Run("struct body marshaled as JSON", func(t *testing.T) {
		payload := map[string]string{"name": "test"}
		httpReq, err := NewRequest("POST", "/users").WithBody(payload).Build(context.Background(), "http://host")
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		body, _ := io.ReadAll(httpReq.Body)
		if string(body) != `{"name":"test"}` {
			t.Errorf("body = %q", body)
		}
		if ct := httpReq.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
	})
}

func TestRequest_BuildInvalidBaseURL(t *testing.T) {
	if _, err := NewRequest("GET", "/x").Build(context.Background(), "://bad"); err == nil {
		t.Fatal("Build should fail on an unparseable base URL")
	}
}
