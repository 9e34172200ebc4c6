package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postAssist(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/assist", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func TestAssistRejectsMissingPrompt(t *testing.T) {
	s := New(Config{APIKey: "sk-test"})

	for _, body := range []string{`{}`, `{"prompt":""}`, `not json`} {
		w := postAssist(t, s, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, w.Code)
		}
	}
}

func TestAssistRequiresServerKey(t *testing.T) {
	t.Setenv("CLAUDE_API_KEY", "")
	s := New(Config{})

	w := postAssist(t, s, `{"prompt":"hello"}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestAssistSuccess(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-api-key"); got != "sk-test" {
			t.Errorf("x-api-key = %q", got)
		}
		var req upstreamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req.System != "be kind" {
			t.Errorf("system = %q", req.System)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"text": "a generated reply"}},
		})
	}))
	defer upstream.Close()

	s := New(Config{APIKey: "sk-test"})
	s.upstreamURL = upstream.URL

	w := postAssist(t, s, `{"prompt":"hello","systemPrompt":"be kind"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var out struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Text != "a generated reply" {
		t.Errorf("text = %q", out.Text)
	}
}

func TestAssistPassesThroughUpstreamStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	s := New(Config{APIKey: "sk-test"})
	s.upstreamURL = upstream.URL

	w := postAssist(t, s, `{"prompt":"hello"}`)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want upstream's 429", w.Code)
	}
	if !strings.Contains(w.Body.String(), "error") {
		t.Errorf("body = %s, want an error payload", w.Body.String())
	}
}

func TestAssistReportsUpstreamUnreachable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	s := New(Config{APIKey: "sk-test"})
	s.upstreamURL = upstream.URL

	w := postAssist(t, s, `{"prompt":"hello"}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	s := New(Config{APIKey: "sk-test"})

	w := postAssist(t, s, `{}`)
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}
