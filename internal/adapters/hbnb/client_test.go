package hbnb_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hbnb_web/internal/adapters/hbnb"
	"hbnb_web/internal/domain"
)

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestClient_Login_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "a@b.com" || body["password"] != "pw" {
			t.Errorf("unexpected body: %+v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "abc"})
	}))
	defer ts.Close()

	cl := hbnb.New(ts.URL, 100)
	tok, err := cl.Login(testCtx(t), "a@b.com", "pw")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if tok != "abc" {
		t.Fatalf("token = %q, want abc", tok)
	}
}

func TestClient_Login_MissingTokenField(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	defer ts.Close()

	cl := hbnb.New(ts.URL, 100)
	_, err := cl.Login(testCtx(t), "a@b.com", "pw")
	if !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestClient_Login_BadCredentials(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "bad credentials"})
	}))
	defer ts.Close()

	cl := hbnb.New(ts.URL, 100)
	_, err := cl.Login(testCtx(t), "a@b.com", "nope")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if got := domain.Message(err); got != "bad credentials" {
		t.Fatalf("message = %q", got)
	}
}

func TestClient_GetPlace_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl := hbnb.New(ts.URL, 100)
	_, err := cl.GetPlace(testCtx(t), "nope", "")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_ListPlaces_TokenOptional(t *testing.T) {
	var gotAuth []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": "p1", "title": "Loft", "price": 42.0}})
	}))
	defer ts.Close()

	cl := hbnb.New(ts.URL, 100)
	if _, err := cl.ListPlaces(testCtx(t), ""); err != nil {
		t.Fatalf("anonymous list: %v", err)
	}
	out, err := cl.ListPlaces(testCtx(t), "tok123")
	if err != nil {
		t.Fatalf("authenticated list: %v", err)
	}
	if len(out) != 1 || out[0]["title"] != "Loft" {
		t.Fatalf("unexpected payload: %+v", out)
	}
	if gotAuth[0] != "" {
		t.Fatalf("anonymous call sent Authorization %q", gotAuth[0])
	}
	if gotAuth[1] != "Bearer tok123" {
		t.Fatalf("authenticated call sent Authorization %q", gotAuth[1])
	}
}

func TestClient_PostReview(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reviews/" || r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("unexpected request: %s auth=%q", r.URL.Path, r.Header.Get("Authorization"))
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["text"] != "nice" || body["place_id"] != "p1" || body["rating"] != 5.0 {
			t.Errorf("unexpected body: %+v", body)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	cl := hbnb.New(ts.URL, 100)
	if err := cl.PostReview(testCtx(t), "tok", "p1", "nice", 5); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestClient_PostReview_ServerMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "you already reviewed this place"})
	}))
	defer ts.Close()

	cl := hbnb.New(ts.URL, 100)
	err := cl.PostReview(testCtx(t), "tok", "p1", "again", 4)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := domain.Message(err); got != "you already reviewed this place" {
		t.Fatalf("message = %q", got)
	}
}

func TestClient_GetUser(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/u1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "u1", "name": "Ana"})
	}))
	defer ts.Close()

	cl := hbnb.New(ts.URL, 100)
	u, err := cl.GetUser(testCtx(t), "u1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u["name"] != "Ana" {
		t.Fatalf("unexpected user: %+v", u)
	}
}
