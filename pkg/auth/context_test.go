package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gescar/dealership-system/pkg/client"
	"github.com/gescar/dealership-system/pkg/session"
)

// failingBackend simulates an unreachable or erroring auth server and
// counts how many requests actually arrived.
func failingBackend(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func workingBackend(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestContext(t *testing.T, baseURL string) (*Context, *session.Store) {
	t.Helper()
	store := session.NewStore(t.TempDir())
	api := client.New(baseURL, client.WithSessionStore(store))
	return NewContext(api, store), store
}

func TestContext_InitWithoutSessionIsAnonymous(t *testing.T) {
	authCtx, _ := newTestContext(t, "http://localhost:0")

	authCtx.Init()

	if authCtx.IsLoading() {
		t.Error("expected loading finished after Init")
	}
	if authCtx.State() != StateAnonymous {
		t.Errorf("expected anonymous, got %v", authCtx.State())
	}
	if authCtx.IsAuthenticated() {
		t.Error("expected not authenticated")
	}
}

func TestContext_InitRehydratesPersistedSession(t *testing.T) {
	authCtx, store := newTestContext(t, "http://localhost:0")
	persisted := session.User{ID: "42", Name: "Ana", Email: "ana@example.com", Role: "client"}
	if err := store.Save("tkn", persisted); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	authCtx.Init()

	if authCtx.State() != StateAuthenticated {
		t.Fatalf("expected authenticated, got %v", authCtx.State())
	}
	if got := authCtx.User(); got == nil || *got != persisted {
		t.Errorf("expected persisted user reproduced exactly, got %+v", got)
	}
}

func TestContext_LoginFallsBackToDemoSession(t *testing.T) {
	srv := failingBackend(t, nil)
	authCtx, store := newTestContext(t, srv.URL)
	authCtx.Init()

	user, err := authCtx.Login(context.Background(), "a@b.com", "x")
	if err != nil {
		t.Fatalf("demo fallback must resolve successfully, got: %v", err)
	}
	if user.Email != "a@b.com" || user.Role != "dealer" {
		t.Errorf("expected demo dealer identity with given email, got %+v", user)
	}
	if !authCtx.IsAuthenticated() {
		t.Error("expected authenticated after fallback")
	}

	// A fresh context over the same store reproduces the demo session.
	token, persisted := store.Load()
	if token != "demo_token" {
		t.Errorf("expected sentinel token persisted, got %q", token)
	}
	reloaded := NewContext(client.New(srv.URL, client.WithSessionStore(store)), store)
	reloaded.Init()
	if got := reloaded.User(); got == nil || *got != *persisted || got.Email != "a@b.com" {
		t.Errorf("reload mismatch: %+v", got)
	}
}

func TestContext_LoginAgainstWorkingBackend(t *testing.T) {
	srv := workingBackend(t, `{"token":"real","user":{"id":"9","name":"Ana","email":"ana@example.com","role":"client"}}`)
	authCtx, store := newTestContext(t, srv.URL)
	authCtx.Init()

	user, err := authCtx.Login(context.Background(), "ana@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != "9" || user.Role != "client" {
		t.Errorf("expected backend identity, got %+v", user)
	}
	if token, _ := store.Load(); token != "real" {
		t.Errorf("expected backend token persisted, got %q", token)
	}
}

func TestContext_RegisterShortPasswordRejectedBeforeNetwork(t *testing.T) {
	var hits atomic.Int64
	srv := failingBackend(t, &hits)
	authCtx, store := newTestContext(t, srv.URL)
	authCtx.Init()

	_, err := authCtx.Register(context.Background(), "Ana", "ana@x.com", "short", "client")

	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got: %v", err)
	}
	if validation.Field != "password" {
		t.Errorf("expected password field flagged, got %q", validation.Field)
	}
	if hits.Load() != 0 {
		t.Errorf("expected no network call, backend saw %d", hits.Load())
	}
	if authCtx.IsAuthenticated() {
		t.Error("expected no state change")
	}
	if token, _ := store.Load(); token != "" {
		t.Error("expected nothing persisted")
	}
}

func TestContext_RegisterFallbackKeepsRequestedRole(t *testing.T) {
	srv := failingBackend(t, nil)
	authCtx, _ := newTestContext(t, srv.URL)
	authCtx.Init()

	user, err := authCtx.Register(context.Background(), "Ana", "ana@x.com", "secret1", "client")
	if err != nil {
		t.Fatalf("expected fallback success, got: %v", err)
	}
	if user.Name != "Ana" || user.Email != "ana@x.com" || user.Role != "client" {
		t.Errorf("fallback identity mismatch: %+v", user)
	}
	if LandingPath(user.Role) != "/catalogo" {
		t.Errorf("expected client landing after registration")
	}
}

func TestContext_LogoutAlwaysClears(t *testing.T) {
	// Backend rejects the logout call; local state must clear anyway.
	srv := failingBackend(t, nil)
	authCtx, store := newTestContext(t, srv.URL)
	authCtx.Init()

	if _, err := authCtx.Login(context.Background(), "a@b.com", "x"); err != nil {
		t.Fatalf("login: %v", err)
	}

	authCtx.Logout(context.Background())

	if authCtx.IsAuthenticated() {
		t.Error("expected anonymous after logout")
	}
	if token, user := store.Load(); token != "" || user != nil {
		t.Error("expected both storage keys cleared")
	}
}

func TestContext_AccessBeforeInitPanics(t *testing.T) {
	authCtx, _ := newTestContext(t, "http://localhost:0")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when reading an uninitialized context")
		}
	}()
	_ = authCtx.User()
}

func TestContext_InvalidateDropsSession(t *testing.T) {
	authCtx, store := newTestContext(t, "http://localhost:0")
	if err := store.Save("tkn", session.User{ID: "1", Role: "dealer"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	authCtx.Init()

	authCtx.Invalidate()

	if authCtx.IsAuthenticated() {
		t.Error("expected anonymous after invalidation")
	}
}
