package auth

import (
	"errors"
	"testing"
	"time"
)

func TestCookieRoundTrip(t *testing.T) {
	svc := NewCookieService(CookieConfig{Secret: "test-secret", TTL: time.Hour, Issuer: "memberdesk"})

	token, err := svc.Issue("session-1")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	id, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if id != "session-1" {
		t.Fatalf("expected session-1, got %q", id)
	}
}

func TestCookieWrongSecretRejected(t *testing.T) {
	svc := NewCookieService(CookieConfig{Secret: "test-secret", TTL: time.Hour, Issuer: "memberdesk"})
	other := NewCookieService(CookieConfig{Secret: "other-secret", TTL: time.Hour, Issuer: "memberdesk"})

	token, err := svc.Issue("session-1")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	if _, err := other.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCookieExpiredRejected(t *testing.T) {
	svc := NewCookieService(CookieConfig{Secret: "test-secret", TTL: -time.Minute, Issuer: "memberdesk"})

	token, err := svc.Issue("session-1")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestCookieGarbageRejected(t *testing.T) {
	svc := NewCookieService(CookieConfig{Secret: "test-secret", TTL: time.Hour, Issuer: "memberdesk"})
	if _, err := svc.Verify("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
