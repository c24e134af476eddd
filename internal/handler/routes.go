package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/msomdec/yatube/internal/service"
)

// Services bundles what the HTTP layer needs.
type Services struct {
	Auth    *service.AuthService
	Listing *service.ListingService
	Posts   *service.PostService

	// LoginLimiter throttles login attempts per client IP. Nil disables it.
	LoginLimiter *service.RateLimiter
	CookieSecure bool
}

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, svc Services) {
	posts := NewPostHandler(svc.Listing, svc.Posts)
	auth := NewAuthHandler(svc.Auth, svc.LoginLimiter, svc.CookieSecure)

	public := func(h http.HandlerFunc) http.Handler { return OptionalAuth(svc.Auth, h) }
	private := func(h http.HandlerFunc) http.Handler { return RequireLogin(svc.Auth, h) }

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.Handle("GET /{$}", public(posts.HandleIndex))
	mux.Handle("GET /group/{$}", public(posts.HandleGroupIndex))
	mux.Handle("GET /group/{slug}/{$}", public(posts.HandleGroup))
	mux.Handle("GET /profile/{username}/{$}", public(posts.HandleProfile))
	mux.Handle("GET /posts/{post_id}/{$}", public(posts.HandleDetail))
	mux.Handle("GET /more/{$}", public(posts.HandleMore))

	mux.Handle("GET /create/{$}", private(posts.HandleCreateForm))
	mux.Handle("POST /create/{$}", private(posts.HandleCreate))
	mux.Handle("GET /posts/{post_id}/edit/{$}", private(posts.HandleEditForm))
	mux.Handle("POST /posts/{post_id}/edit/{$}", private(posts.HandleEdit))

	mux.Handle("GET /auth/login/{$}", public(auth.HandleLoginPage))
	mux.HandleFunc("POST /auth/login/{$}", auth.HandleLogin)
	mux.Handle("GET /auth/signup/{$}", public(auth.HandleSignupPage))
	mux.HandleFunc("POST /auth/signup/{$}", auth.HandleSignup)
	mux.HandleFunc("POST /auth/logout/{$}", auth.HandleLogout)

	mux.Handle("/", public(HandleNotFound))
}

// New builds the full application handler: routes plus the request-wide
// middleware chain.
func New(svc Services) http.Handler {
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	var h http.Handler = mux
	h = SecurityHeaders(h)
	h = middleware.Recoverer(h)
	h = LogRequests(h)
	h = middleware.RealIP(h)
	h = middleware.RequestID(h)
	return h
}
