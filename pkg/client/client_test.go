package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gescar/dealership-system/pkg/session"
)

func TestClient_BearerInjection(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[],"pagination":{"total":0,"page":1,"limit":20,"total_pages":0}}`))
	}))
	defer srv.Close()

	store := session.NewStore(t.TempDir())
	if err := store.Save("tkn", session.User{ID: "1", Role: "dealer"}); err != nil {
		t.Fatalf("save session: %v", err)
	}

	api := New(srv.URL, WithSessionStore(store))
	if _, err := api.ListVehicles(context.Background(), VehicleFilter{}); err != nil {
		t.Fatalf("list vehicles: %v", err)
	}
	if gotAuth != "Bearer tkn" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"t","user":{"id":"1","name":"Ana","email":"a@b.com","role":"client"}}`))
	}))
	defer srv.Close()

	api := New(srv.URL, WithSessionStore(session.NewStore(t.TempDir())))
	if _, _, err := api.Login(context.Background(), "a@b.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no auth header without a session, got %q", gotAuth)
	}
}

func TestClient_AuthRejectedClearsSessionAndFiresHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := session.NewStore(t.TempDir())
	if err := store.Save("stale", session.User{ID: "1"}); err != nil {
		t.Fatalf("save session: %v", err)
	}

	hookFired := false
	api := New(srv.URL,
		WithSessionStore(store),
		WithAuthRejectedHook(func() { hookFired = true }),
	)

	_, err := api.ListVehicles(context.Background(), VehicleFilter{})
	if !errors.Is(err, ErrAuthRejected) {
		t.Fatalf("expected ErrAuthRejected, got: %v", err)
	}
	if !hookFired {
		t.Error("expected auth-rejected hook to fire")
	}
	if token, user := store.Load(); token != "" || user != nil {
		t.Error("expected session cleared after 401")
	}
}

func TestClient_NonOKStatusIsRequestFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"vehicle not available"}`))
	}))
	defer srv.Close()

	api := New(srv.URL)
	_, err := api.CreateSale(context.Background(), CreateSaleInput{VehicleID: "v1"})

	var failure *RequestFailure
	if !errors.As(err, &failure) {
		t.Fatalf("expected *RequestFailure, got: %v", err)
	}
	if failure.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", failure.StatusCode)
	}
	if failure.Message != "vehicle not available" {
		t.Errorf("expected server message carried over, got %q", failure.Message)
	}
}

func TestClient_NetworkErrorIsRequestFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	api := New(srv.URL)
	_, err := api.GetDashboardSummary(context.Background())

	var failure *RequestFailure
	if !errors.As(err, &failure) {
		t.Fatalf("expected *RequestFailure, got: %v", err)
	}
}

func TestClient_MalformedBodyIsRequestFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"vehicles_in_stock": "not-a-number"}`))
	}))
	defer srv.Close()

	api := New(srv.URL)
	_, err := api.GetDashboardSummary(context.Background())

	var failure *RequestFailure
	if !errors.As(err, &failure) {
		t.Fatalf("expected *RequestFailure, got: %v", err)
	}
}

func TestClient_ListVehiclesQueryParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[],"pagination":{}}`))
	}))
	defer srv.Close()

	api := New(srv.URL)
	_, err := api.ListVehicles(context.Background(), VehicleFilter{
		Status: "estoque",
		Year:   2022,
		Brand:  "Toyota",
		Page:   2,
		Limit:  10,
	})
	if err != nil {
		t.Fatalf("list vehicles: %v", err)
	}
	for _, want := range []string{"status=estoque", "year=2022", "brand=Toyota", "page=2", "limit=10"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}
}
