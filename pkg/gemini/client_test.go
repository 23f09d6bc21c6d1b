package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"calendar-assistant/pkg/gemini"
)

func TestGenerateText(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req gemini.GenerateRequest
		json.NewDecoder(r.Body).Decode(&req)
		prompt := req.Contents[0].Parts[0].Text

		switch prompt {
		case "cause_error":
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": "bad request"}`))
		case "cause_empty":
			w.Write([]byte(`{"candidates": []}`))
		default:
			w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "Paris"}]}}]}`))
		}
	}))
	defer ts.Close()

	client := gemini.NewClient("test-key")
	client.SetAPIURL(ts.URL)

	t.Run("Success", func(t *testing.T) {
		answer, err := client.GenerateText(context.Background(), "What is the capital of France?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if answer != "Paris" {
			t.Errorf("got answer %q, want %q", answer, "Paris")
		}
	})

	t.Run("API Error", func(t *testing.T) {
		_, err := client.GenerateText(context.Background(), "cause_error")
		if err == nil {
			t.Fatalf("expected error on API failure")
		}
	})

	t.Run("Empty Candidates", func(t *testing.T) {
		_, err := client.GenerateText(context.Background(), "cause_empty")
		if err == nil || !strings.Contains(err.Error(), "no candidates") {
			t.Fatalf("expected empty response error, got: %v", err)
		}
	})
}
