package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/msomdec/yatube/internal/domain"
	"github.com/msomdec/yatube/internal/handler"
	"github.com/msomdec/yatube/internal/repository/sqlite"
	"github.com/msomdec/yatube/internal/service"
)

const (
	testJWTSecret = "test-secret-for-handler-tests-0123456789"
	testPassword  = "password123"
)

type testApp struct {
	db   *sqlite.DB
	auth *service.AuthService
	svc  handler.Services
	srv  *httptest.Server
}

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	return service.NewAuthService(newTestDB(t).Users(), testJWTSecret, 4)
}

func newTestApp(t *testing.T, opts ...func(*handler.Services)) *testApp {
	t.Helper()
	db := newTestDB(t)
	auth := service.NewAuthService(db.Users(), testJWTSecret, 4)
	svc := handler.Services{
		Auth:    auth,
		Listing: service.NewListingService(db.Posts(), db.Groups(), db.Users()),
		Posts:   service.NewPostService(db.Posts(), db.Groups()),
	}
	for _, opt := range opts {
		opt(&svc)
	}

	srv := httptest.NewServer(handler.New(svc))
	t.Cleanup(srv.Close)

	return &testApp{db: db, auth: auth, svc: svc, srv: srv}
}

// client returns a client that keeps cookies and does not follow redirects.
func (a *testApp) client(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("create cookie jar: %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// register creates a user with testPassword.
func (a *testApp) register(t *testing.T, username string) *domain.User {
	t.Helper()
	user, err := a.auth.Register(context.Background(), username, testPassword, testPassword)
	if err != nil {
		t.Fatalf("Register %s: %v", username, err)
	}
	return user
}

// loggedIn returns a client carrying a valid auth cookie for a new user.
func (a *testApp) loggedIn(t *testing.T, username string) (*http.Client, *domain.User) {
	t.Helper()
	user := a.register(t, username)
	token, err := a.auth.Login(context.Background(), username, testPassword)
	if err != nil {
		t.Fatalf("Login %s: %v", username, err)
	}
	c := a.client(t)
	u, _ := url.Parse(a.srv.URL)
	c.Jar.SetCookies(u, []*http.Cookie{{Name: "auth_token", Value: token, Path: "/"}})
	return c, user
}

func (a *testApp) group(t *testing.T, slug string) *domain.Group {
	t.Helper()
	g := &domain.Group{Title: "Тестовая группа " + slug, Slug: slug, Description: "Тестовое описание"}
	if err := a.db.Groups().Create(context.Background(), g); err != nil {
		t.Fatalf("create group %s: %v", slug, err)
	}
	return g
}

func (a *testApp) post(t *testing.T, author *domain.User, group *domain.Group, text string) *domain.Post {
	t.Helper()
	p := &domain.Post{Text: text, Author: *author, Group: group}
	if err := a.db.Posts().Create(context.Background(), p); err != nil {
		t.Fatalf("create post: %v", err)
	}
	return p
}

func get(t *testing.T, c *http.Client, rawURL string) (*http.Response, string) {
	t.Helper()
	resp, err := c.Get(rawURL)
	if err != nil {
		t.Fatalf("GET %s: %v", rawURL, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(body)
}

func postForm(t *testing.T, c *http.Client, rawURL string, form url.Values) (*http.Response, string) {
	t.Helper()
	resp, err := c.PostForm(rawURL, form)
	if err != nil {
		t.Fatalf("POST %s: %v", rawURL, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(body)
}

func newAuthWithSecret(db *sqlite.DB, secret string) *service.AuthService {
	return service.NewAuthService(db.Users(), secret, 4)
}
