package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/habtamu/memberdesk/internal/upstream"
)

func TestResolveAuthenticated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/current" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"user":{"isAuthenticated":true,"studentid":"UGR-0001-15","adminusername":"abel","isSuperAdmin":true}}`))
	}))
	defer srv.Close()

	res := Resolve(context.Background(), upstream.NewClient(srv.URL, time.Second))
	if res.Status != StatusAuthenticated {
		t.Fatalf("expected authenticated, got %v", res.Status)
	}
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Identity == nil || res.Identity.Username != "abel" || !res.Identity.IsSuperAdmin {
		t.Fatalf("unexpected identity: %+v", res.Identity)
	}
}

func TestResolveNegativeAnswerIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	res := Resolve(context.Background(), upstream.NewClient(srv.URL, time.Second))
	if res.Status != StatusUnauthenticated {
		t.Fatalf("expected unauthenticated, got %v", res.Status)
	}
	if res.Err != nil {
		t.Fatalf("a 200 with success=false is a plain negative answer, got error %v", res.Err)
	}
	if res.Identity != nil {
		t.Fatalf("expected no identity, got %+v", res.Identity)
	}
}

func TestResolveUnauthenticatedFlag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"user":{"isAuthenticated":false}}`))
	}))
	defer srv.Close()

	res := Resolve(context.Background(), upstream.NewClient(srv.URL, time.Second))
	if res.Status != StatusUnauthenticated || res.Err != nil {
		t.Fatalf("expected silent unauthenticated, got %+v", res)
	}
}

func TestResolveTransportFailureDeniesWithError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	res := Resolve(context.Background(), upstream.NewClient(srv.URL, time.Second))
	if res.Status != StatusUnauthenticated {
		t.Fatalf("a failed check must never grant access, got %v", res.Status)
	}
	if res.Err == nil {
		t.Fatal("expected the transport error to be surfaced")
	}
}
