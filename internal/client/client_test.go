package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chromasynth/go-seadream/internal/playground"
)

func TestHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/history" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{
				{"id": "s1", "brief": "neon diner", "liked": true},
				{"id": "s2", "brief": "pavilion"},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	items, err := c.History(context.Background())
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items", len(items))
	}
	if items[0].ID != "s1" || !items[0].Liked {
		t.Errorf("items[0] = %+v", items[0])
	}
}

func TestHistory_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.History(context.Background())

	var ferr *FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("error = %v, want *FetchError", err)
	}
	if ferr.Resource != "history" || ferr.Status != http.StatusInternalServerError {
		t.Errorf("FetchError = %+v", ferr)
	}
}

func TestHistory_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before the request

	c := New(srv.URL)
	_, err := c.History(context.Background())

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("error = %v, want *TransportError", err)
	}
}

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/generate" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		var req playground.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Brief != "neon diner" || req.CaseID != "neon_diner" {
			t.Errorf("request = %+v", req)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"session": map[string]any{
				"id":        "s9",
				"brief":     req.Brief,
				"blueprint": "# Creative Blueprint",
				"prompts":   map[string]string{"DALL-E_3": "..."},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	sess, err := c.Generate(context.Background(), playground.GenerateRequest{
		Brief:  "neon diner",
		Theme:  "cinematic",
		CaseID: "neon_diner",
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if sess.ID != "s9" || sess.Prompts["DALL-E_3"] == "" {
		t.Errorf("session = %+v", sess)
	}
}

func TestGenerate_ValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": {
			"message": "Generated payload missing required fields.",
			"missing_fields": [
				{"component": "blueprint", "field": "description"},
				{"component": "prompts"}
			]
		}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Generate(context.Background(), playground.GenerateRequest{Brief: "x"})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	paths := verr.FieldPaths()
	if len(paths) != 2 || paths[0] != "blueprint.description" || paths[1] != "prompts" {
		t.Errorf("FieldPaths() = %v", paths)
	}
}

func TestGenerate_BackendErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "Unsupported theme 'noir'."}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Generate(context.Background(), playground.GenerateRequest{Brief: "x", Theme: "noir"})

	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("error = %v, want *GenerationError", err)
	}
	if gerr.Message != "Unsupported theme 'noir'." {
		t.Errorf("Message = %q", gerr.Message)
	}
}

func TestGenerate_OpaqueErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Generate(context.Background(), playground.GenerateRequest{Brief: "x"})

	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("error = %v, want *GenerationError", err)
	}
	if gerr.Message != "prompt generation failed" {
		t.Errorf("Message = %q, want fallback", gerr.Message)
	}
}

func TestSetLiked(t *testing.T) {
	var gotPath string
	var gotBody struct {
		Liked bool `json:"liked"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{"session": map[string]any{"id": "s1", "liked": true}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.SetLiked(context.Background(), "s1", true); err != nil {
		t.Fatalf("SetLiked() error = %v", err)
	}
	if gotPath != "/history/s1/like" {
		t.Errorf("path = %q", gotPath)
	}
	if !gotBody.Liked {
		t.Error("body should carry liked=true")
	}
}

func TestSetLiked_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.SetLiked(context.Background(), "ghost", true)

	var lerr *LikeError
	if !errors.As(err, &lerr) {
		t.Fatalf("error = %v, want *LikeError", err)
	}
	if lerr.SessionID != "ghost" || lerr.Status != http.StatusNotFound {
		t.Errorf("LikeError = %+v", lerr)
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c := New("http://localhost:8000/")
	if c.baseURL != "http://localhost:8000" {
		t.Errorf("baseURL = %q", c.baseURL)
	}
}

func TestNew_EmptyUsesDefault(t *testing.T) {
	c := New("")
	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q", c.baseURL)
	}
}
