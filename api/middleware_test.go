package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/OpenStag/openstage-website/auth"
	"github.com/google/uuid"
)

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	verifier := auth.NewTokenVerifier([]byte("test-secret"), "authenticated")
	m := newAuthMiddleware(verifier)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run without a token")
	})

	req := httptest.NewRequest(http.MethodGet, "/designs", nil)
	rec := httptest.NewRecorder()
	m.authenticate(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticateRejectsInvalidToken(t *testing.T) {
	verifier := auth.NewTokenVerifier([]byte("test-secret"), "authenticated")
	m := newAuthMiddleware(verifier)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run with a bad token")
	})

	req := httptest.NewRequest(http.MethodGet, "/designs", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()
	m.authenticate(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticatePutsIdentityInContext(t *testing.T) {
	verifier := auth.NewTokenVerifier([]byte("test-secret"), "authenticated")
	m := newAuthMiddleware(verifier)

	ident := auth.Identity{ID: uuid.New(), Email: "ada@example.org", FirstName: "Ada"}
	token, err := verifier.Sign(ident, time.Hour)
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		got := identityFromCtx(r.Context())
		if got == nil {
			t.Fatal("expected an identity in the request context")
		}
		if got.ID != ident.ID || got.Email != ident.Email {
			t.Errorf("wrong identity in context: %+v", got)
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/designs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	m.authenticate(next).ServeHTTP(rec, req)

	if !called {
		t.Fatal("next handler was not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestLogInternalServerErrorsRecoversPanic(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/designs", nil)
	rec := httptest.NewRecorder()
	LogInternalServerErrors(panicking).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 after panic, got %d", rec.Code)
	}
}
