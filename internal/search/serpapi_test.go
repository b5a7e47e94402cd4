package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSerpAPISearch(t *testing.T) {
	var gotQuery, gotKey, gotNum string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search.json" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		gotQuery = q.Get("q")
		gotKey = q.Get("api_key")
		gotNum = q.Get("num")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"organic_results":[
			{"title":"Carrier 58STA Service Manual","link":"https://www.manualslib.com/manual/123","snippet":"service manual"},
			{"title":"Broken entry","link":""},
			{"title":"Parts","link":"https://www.repairclinic.com/parts/456"}
		]}`))
	}))
	defer server.Close()

	client := NewSerpAPIClient(SerpAPIConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})

	results, err := client.Search(context.Background(), "carrier 58STA service manual", 5)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}

	if gotQuery != "carrier 58STA service manual" {
		t.Errorf("query param = %q", gotQuery)
	}
	if gotKey != "test-key" {
		t.Errorf("api_key param = %q", gotKey)
	}
	if gotNum != "5" {
		t.Errorf("num param = %q", gotNum)
	}

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 (empty link dropped)", len(results))
	}
	if results[0].URL != "https://www.manualslib.com/manual/123" {
		t.Errorf("first URL = %q", results[0].URL)
	}
	if results[1].URL != "https://www.repairclinic.com/parts/456" {
		t.Errorf("second URL = %q", results[1].URL)
	}
}

func TestSerpAPISearchClampsCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("num"); got != "10" {
			t.Errorf("num = %q, want 10", got)
		}
		w.Write([]byte(`{"organic_results":[]}`))
	}))
	defer server.Close()

	client := NewSerpAPIClient(SerpAPIConfig{APIKey: "k", BaseURL: server.URL})
	if _, err := client.Search(context.Background(), "q", 50); err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if _, err := client.Search(context.Background(), "q", 0); err != nil {
		t.Fatalf("Search() error: %v", err)
	}
}

func TestSerpAPISearchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewSerpAPIClient(SerpAPIConfig{APIKey: "k", BaseURL: server.URL})
	if _, err := client.Search(context.Background(), "q", 3); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestSerpAPISearchContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"organic_results":[]}`))
	}))
	defer server.Close()

	client := NewSerpAPIClient(SerpAPIConfig{APIKey: "k", BaseURL: server.URL})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := client.Search(ctx, "q", 3); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
