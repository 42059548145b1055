package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing API key")
	}

	cfg = Config{APIKey: "key"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Model != DefaultModel {
		t.Errorf("model = %q, want default", cfg.Model)
	}
	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("apiURL = %q, want default", cfg.APIURL)
	}
	if cfg.HTTPClient == nil {
		t.Error("HTTP client not defaulted")
	}
}

func TestGenerateContent(t *testing.T) {
	var gotReq geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []geminiCandidate{
				{Content: geminiContent{Role: "model", Parts: []geminiPart{{Text: `{"tasks":`}, {Text: `[]}`}}}},
			},
			UsageMetadata: &geminiUsageMetadata{PromptTokenCount: 10, CandidatesTokenCount: 5, TotalTokenCount: 15},
		})
	}))
	defer server.Close()

	client, err := New(Config{APIKey: "test-key", APIURL: server.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &Request{
		SystemInstruction: "extract tasks",
		Messages:          []Message{{Role: "user", Text: "Midterm due Oct 25"}},
		Temperature:       0.2,
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}

	if gotReq.SystemInstruction == nil || gotReq.SystemInstruction.Parts[0].Text != "extract tasks" {
		t.Errorf("system instruction not forwarded: %+v", gotReq.SystemInstruction)
	}
	if len(gotReq.Contents) != 1 || gotReq.Contents[0].Parts[0].Text != "Midterm due Oct 25" {
		t.Errorf("contents not forwarded: %+v", gotReq.Contents)
	}

	// Multi-part candidates are joined into a single text.
	if resp.Text != `{"tasks":[]}` {
		t.Errorf("text = %q", resp.Text)
	}
	if resp.Usage.TotalTokens != 15 {
		t.Errorf("usage = %+v", resp.Usage)
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := New(Config{APIKey: "test-key", APIURL: server.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := client.GenerateContent(context.Background(), &Request{}); err == nil {
		t.Error("expected error on non-200 status")
	}
}
