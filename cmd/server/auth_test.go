package main

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSessionValue_RoundTrip(t *testing.T) {
	auth := newAuthService(nil, "test-secret")

	value := auth.createSessionValue("admin@example.com")
	email, ok := auth.verifySessionValue(value)
	if !ok {
		t.Fatal("valid session value rejected")
	}
	if email != "admin@example.com" {
		t.Fatalf("unexpected email: %q", email)
	}
}

func TestSessionValue_RejectsTamperedPayload(t *testing.T) {
	auth := newAuthService(nil, "test-secret")

	value := auth.createSessionValue("admin@example.com")
	payload, signature, _ := strings.Cut(value, ".")
	tampered := payload + "x." + signature

	if _, ok := auth.verifySessionValue(tampered); ok {
		t.Fatal("tampered session value accepted")
	}
}

func TestSessionValue_RejectsWrongSecret(t *testing.T) {
	auth := newAuthService(nil, "test-secret")
	other := newAuthService(nil, "different-secret")

	value := auth.createSessionValue("admin@example.com")
	if _, ok := other.verifySessionValue(value); ok {
		t.Fatal("session value accepted under a different secret")
	}
}

func TestSessionValue_RejectsMalformed(t *testing.T) {
	auth := newAuthService(nil, "test-secret")

	for _, value := range []string{"", "no-dot", "notbase64!.deadbeef", "cGF5bG9hZA.nothex"} {
		if _, ok := auth.verifySessionValue(value); ok {
			t.Fatalf("malformed value %q accepted", value)
		}
	}
}

func TestIsAuthenticated(t *testing.T) {
	auth := newAuthService(nil, "test-secret")

	req := httptest.NewRequest("GET", "/admin/presets", nil)
	if isAuthenticated(req, auth) {
		t.Fatal("request without cookie authenticated")
	}

	rec := httptest.NewRecorder()
	auth.setSessionCookie(rec, "admin@example.com")
	req.Header.Set("Cookie", rec.Header().Get("Set-Cookie"))

	if !isAuthenticated(req, auth) {
		t.Fatal("request with valid session cookie rejected")
	}
}

func TestHashPassword_StableAndDistinct(t *testing.T) {
	if hashPassword("secret") != hashPassword("secret") {
		t.Fatal("hash not deterministic")
	}
	if hashPassword("secret") == hashPassword("Secret") {
		t.Fatal("distinct passwords collide")
	}
}
