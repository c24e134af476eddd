package handler

import (
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/msomdec/yatube/internal/domain"
	"github.com/msomdec/yatube/internal/service"
	"github.com/msomdec/yatube/internal/view"
)

const authCookieName = "auth_token"

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	auth         *service.AuthService
	limiter      *service.RateLimiter
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler. limiter may be nil.
func NewAuthHandler(auth *service.AuthService, limiter *service.RateLimiter, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter, cookieSecure: cookieSecure}
}

// HandleLoginPage renders the login form.
// GET /auth/login/
func (h *AuthHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, view.LoginPage("", r.URL.Query().Get("next"), ""))
}

// HandleLogin processes the login form and sets the auth cookie.
// POST /auth/login/
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	next := r.PostFormValue("next")

	if h.limiter != nil && !h.limiter.Allow(clientIP(r)) {
		render(w, http.StatusTooManyRequests, view.LoginPage(username, next, "Слишком много попыток входа. Попробуйте позже."))
		return
	}

	token, err := h.auth.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			render(w, http.StatusOK, view.LoginPage(username, next, "Введите правильные имя пользователя и пароль."))
			return
		}
		slog.Error("login user", "error", err)
		render(w, http.StatusInternalServerError, view.ErrorPage(nil))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(service.TokenTTL.Seconds()),
	})

	http.Redirect(w, r, safeNext(next, "/"), http.StatusSeeOther)
}

// HandleSignupPage renders the registration form.
// GET /auth/signup/
func (h *AuthHandler) HandleSignupPage(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, view.SignupPage("", ""))
}

// HandleSignup creates an account and redirects to the login page.
// POST /auth/signup/
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")

	_, err := h.auth.Register(r.Context(), username, r.PostFormValue("password1"), r.PostFormValue("password2"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername):
			render(w, http.StatusOK, view.SignupPage(username, "Пользователь с таким именем уже существует."))
		case errors.Is(err, domain.ErrInvalidInput):
			render(w, http.StatusOK, view.SignupPage(username, inputMessage(err)))
		default:
			slog.Error("register user", "error", err)
			render(w, http.StatusInternalServerError, view.ErrorPage(nil))
		}
		return
	}

	http.Redirect(w, r, LoginPath, http.StatusSeeOther)
}

// HandleLogout clears the auth cookie.
// POST /auth/logout/
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// inputMessage strips the sentinel prefix from a wrapped ErrInvalidInput.
func inputMessage(err error) string {
	msg := err.Error()
	if _, rest, ok := strings.Cut(msg, domain.ErrInvalidInput.Error()+": "); ok {
		return rest
	}
	return msg
}

// clientIP returns the request's remote host. RealIP has already applied
// forwarding headers.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
