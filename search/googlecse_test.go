package search

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewGoogleCSERequiresCredentials(t *testing.T) {
	ctx := context.Background()

	if _, err := NewGoogleCSE(ctx, GoogleCSEConfig{EngineID: "engine"}); err == nil {
		t.Error("Expected error when API key is missing")
	}
	if _, err := NewGoogleCSE(ctx, GoogleCSEConfig{APIKey: "key"}); err == nil {
		t.Error("Expected error when engine ID is missing")
	}
}

func TestGoogleCSESearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("cx"); got != "engine-1" {
			t.Errorf("Expected engine ID engine-1, got %q", got)
		}
		if got := r.URL.Query().Get("q"); got != `"a distinctive phrase"` {
			t.Errorf("Unexpected query %q", got)
		}
		if got := r.URL.Query().Get("num"); got != "3" {
			t.Errorf("Expected num=3, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"items":[{"link":"https://a.example/page"},{"link":"https://b.example/post"}]}`)
	}))
	defer server.Close()

	backend, err := NewGoogleCSE(context.Background(), GoogleCSEConfig{
		APIKey:   "test-key",
		EngineID: "engine-1",
		Endpoint: server.URL + "/",
	})
	if err != nil {
		t.Fatalf("Failed to create backend: %v", err)
	}

	urls, err := backend.Search(context.Background(), `"a distinctive phrase"`, 3)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(urls) != 2 {
		t.Fatalf("Expected 2 URLs, got %d: %v", len(urls), urls)
	}
	if urls[0] != "https://a.example/page" || urls[1] != "https://b.example/post" {
		t.Errorf("Unexpected URLs: %v", urls)
	}
}

func TestGoogleCSESearchCapsResultCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("num"); got != "10" {
			t.Errorf("Expected num capped at 10, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"items":[]}`)
	}))
	defer server.Close()

	backend, err := NewGoogleCSE(context.Background(), GoogleCSEConfig{
		APIKey:   "test-key",
		EngineID: "engine-1",
		Endpoint: server.URL + "/",
	})
	if err != nil {
		t.Fatalf("Failed to create backend: %v", err)
	}

	urls, err := backend.Search(context.Background(), "query", 50)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(urls) != 0 {
		t.Errorf("Expected no URLs, got %v", urls)
	}

	urls, err = backend.Search(context.Background(), "query", 0)
	if err != nil || urls != nil {
		t.Errorf("Expected nil result for zero max, got %v, %v", urls, err)
	}
}
