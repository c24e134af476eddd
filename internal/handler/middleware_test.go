package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/msomdec/yatube/internal/handler"
)

func TestRequireLogin_ValidJWT(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "valid", testPassword, testPassword); err != nil {
		t.Fatalf("Register: %v", err)
	}
	token, err := auth.Login(ctx, "valid", testPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	var gotUser string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := handler.UserFromContext(r.Context()); user != nil {
			gotUser = user.Username
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/create/", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	w := httptest.NewRecorder()

	handler.RequireLogin(auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotUser != "valid" {
		t.Fatalf("expected user 'valid', got %q", gotUser)
	}
}

func TestRequireLogin_MissingCookie(t *testing.T) {
	auth := newTestAuthService(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/posts/7/edit/", nil)
	w := httptest.NewRecorder()

	handler.RequireLogin(auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/auth/login/?next=/posts/7/edit/" {
		t.Fatalf("unexpected redirect %q", loc)
	}
}

func TestRequireLogin_KeepsQueryInNext(t *testing.T) {
	auth := newTestAuthService(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/create/?x=1", nil)
	w := httptest.NewRecorder()

	handler.RequireLogin(auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	loc, err := url.Parse(w.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse Location: %v", err)
	}
	if loc.Path != handler.LoginPath {
		t.Fatalf("expected redirect to %s, got %s", handler.LoginPath, loc.Path)
	}
	if next := loc.Query().Get("next"); next != "/create/?x=1" {
		t.Fatalf("expected next=/create/?x=1, got %q", next)
	}
}

func TestRequireLogin_InvalidToken(t *testing.T) {
	auth := newTestAuthService(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	for name, token := range map[string]string{
		"garbage":  "invalid.jwt.token",
		"wrongkey": signedWithOtherKey(t),
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/create/", nil)
			req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
			w := httptest.NewRecorder()

			handler.RequireLogin(auth, inner).ServeHTTP(w, req)

			if w.Code != http.StatusFound {
				t.Fatalf("expected 302, got %d", w.Code)
			}
		})
	}
}

func TestOptionalAuth_WithToken(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "opt", testPassword, testPassword); err != nil {
		t.Fatalf("Register: %v", err)
	}
	token, err := auth.Login(ctx, "opt", testPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	var gotUser string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := handler.UserFromContext(r.Context()); user != nil {
			gotUser = user.Username
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	w := httptest.NewRecorder()

	handler.OptionalAuth(auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotUser != "opt" {
		t.Fatalf("expected user 'opt', got %q", gotUser)
	}
}

func TestOptionalAuth_WithoutToken(t *testing.T) {
	auth := newTestAuthService(t)

	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if handler.UserFromContext(r.Context()) != nil {
			t.Error("expected nil user in context for unauthenticated request")
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.OptionalAuth(auth, inner).ServeHTTP(w, req)

	if !called || w.Code != http.StatusOK {
		t.Fatalf("expected inner handler to run with 200, got %d", w.Code)
	}
}

func TestLoginURL(t *testing.T) {
	tests := map[string]string{
		"/create/":       "/auth/login/?next=/create/",
		"/posts/1/edit/": "/auth/login/?next=/posts/1/edit/",
		"/profile/a b/":  "/auth/login/?next=/profile/a+b/",
	}
	for path, want := range tests {
		if got := handler.LoginURL(path); got != want {
			t.Errorf("LoginURL(%q) = %q, want %q", path, got, want)
		}
	}
}

func signedWithOtherKey(t *testing.T) string {
	t.Helper()
	db := newTestDB(t)
	other := newAuthWithSecret(db, "another-secret-another-secret-xx")
	user, err := other.Register(context.Background(), "someone", testPassword, testPassword)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	token, err := other.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	return token
}
