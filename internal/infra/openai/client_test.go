package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func completionResponse(content string) map[string]any {
	return map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
	}
}

func TestClient_Answer(t *testing.T) {
	var gotReq struct {
		Model       string  `json:"model"`
		MaxTokens   int     `json:"max_tokens"`
		Temperature float32 `json:"temperature"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionResponse("  It means a nil reference was dereferenced.  "))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", "gpt-4o-mini", 200, 0.5, 5*time.Second, server.URL+"/v1")

	answer, err := client.Answer(context.Background(),
		"NullPointerException at line 42", "what does this error mean")
	if err != nil {
		t.Fatalf("Answer error: %v", err)
	}

	if answer != "It means a nil reference was dereferenced." {
		t.Errorf("answer: got %q", answer)
	}

	if gotReq.Model != "gpt-4o-mini" {
		t.Errorf("model: got %q", gotReq.Model)
	}
	if gotReq.MaxTokens != 200 {
		t.Errorf("max_tokens: got %d, want 200", gotReq.MaxTokens)
	}
	if gotReq.Temperature != 0.5 {
		t.Errorf("temperature: got %v, want 0.5", gotReq.Temperature)
	}

	if len(gotReq.Messages) != 2 {
		t.Fatalf("messages: got %d, want 2", len(gotReq.Messages))
	}
	if gotReq.Messages[0].Role != "system" || gotReq.Messages[0].Content != systemPrompt {
		t.Errorf("system message: got %+v", gotReq.Messages[0])
	}

	user := gotReq.Messages[1].Content
	if !strings.Contains(user, "NullPointerException at line 42") {
		t.Errorf("user prompt missing screen text: %q", user)
	}
	if !strings.Contains(user, "what does this error mean") {
		t.Errorf("user prompt missing question: %q", user)
	}
}

func TestClient_AnswerAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "invalid api key", "type": "invalid_request_error"},
		})
	}))
	defer server.Close()

	client := NewClientWithBaseURL("bad-key", "gpt-4o-mini", 200, 0.5, 5*time.Second, server.URL+"/v1")

	_, err := client.Answer(context.Background(), "", "hello")
	if err == nil {
		t.Fatal("expected error from API failure")
	}
}

func TestBuildPrompt(t *testing.T) {
	got := buildPrompt("NullPointerException at line 42", "what does this error mean")
	want := `CONTEXT FROM SCREEN:
---
NullPointerException at line 42
---
USER'S QUESTION: "what does this error mean"`
	if got != want {
		t.Errorf("prompt:\ngot  %q\nwant %q", got, want)
	}
}

func TestBuildPrompt_EmptyScreenUsesSentinel(t *testing.T) {
	for _, screenText := range []string{"", "   \n\t"} {
		got := buildPrompt(screenText, "hello")
		if !strings.Contains(got, noScreenText) {
			t.Errorf("prompt for %q missing sentinel: %q", screenText, got)
		}
	}
}
