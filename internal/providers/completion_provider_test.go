package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAIProviderComplete(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-test",
			"object": "chat.completion",
			"choices": [
				{"index": 0, "message": {"role": "assistant", "content": "{\"tail_number\": \"N12345\"}"}, "finish_reason": "stop"}
			]
		}`))
	}))
	defer srv.Close()

	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", srv.URL+"/v1")
	t.Setenv("OPENAI_MODEL", "gpt-4o")

	provider := NewOpenAIProvider()
	got, err := provider.Complete(context.Background(), "extract the booking")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if got != `{"tail_number": "N12345"}` {
		t.Errorf("content = %q", got)
	}

	if !strings.HasSuffix(gotPath, "/chat/completions") {
		t.Errorf("request path = %q, want chat completions endpoint", gotPath)
	}
	if gotBody["model"] != "gpt-4o" {
		t.Errorf("model = %v, want gpt-4o", gotBody["model"])
	}
	if temp, ok := gotBody["temperature"].(float64); !ok || temp != 0.1 {
		t.Errorf("temperature = %v, want 0.1", gotBody["temperature"])
	}
	msgs, _ := gotBody["messages"].([]interface{})
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	first, _ := msgs[0].(map[string]interface{})
	if first["content"] != "extract the booking" {
		t.Errorf("prompt = %v", first["content"])
	}
}

func TestOpenAIProviderUpstreamError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, `{"error": {"message": "overloaded"}}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", srv.URL+"/v1")

	provider := NewOpenAIProvider()
	if _, err := provider.Complete(context.Background(), "extract"); err == nil {
		t.Fatal("expected error from 503 upstream")
	}
	if calls != 1 {
		t.Errorf("upstream called %d times, want exactly 1 (no retries)", calls)
	}
}

func TestOpenAIProviderEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "chatcmpl-test", "object": "chat.completion", "choices": []}`))
	}))
	defer srv.Close()

	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", srv.URL+"/v1")

	provider := NewOpenAIProvider()
	if _, err := provider.Complete(context.Background(), "extract"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}
