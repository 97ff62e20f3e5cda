package adaptor

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"movie-db/internal/dto/request"
	"movie-db/internal/dto/response"
	"movie-db/internal/usecase"
	"movie-db/pkg/middleware"
	"movie-db/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	config  *utils.Config
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, config *utils.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		config:  config,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// ShowLogin serves the login form context. An already-authenticated
// visitor is sent back home instead.
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetUserIDFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	page := &response.AuthPage{
		Title:  "Login - Movie Database",
		Notice: utils.PopFlash(w, r),
	}
	utils.ResponseSuccess(w, "Login page retrieved successfully", page)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetUserIDFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		utils.ResponseBadRequest(w, "Invalid form data", nil)
		return
	}

	req := &request.LoginRequest{
		Username:   strings.TrimSpace(r.PostFormValue("username")),
		Password:   r.PostFormValue("password"),
		RememberMe: r.PostFormValue("remember_me") != "",
	}

	user, session, err := h.service.Login(r.Context(), req, r.UserAgent(), clientIP(r))
	if err != nil {
		h.handleServiceError(w, err, req.Username)
		return
	}

	h.setSessionCookie(w, session.Token.String(), req.RememberMe)
	utils.SetFlash(w, utils.FlashSuccess, fmt.Sprintf("Welcome back, %s!", user.Username))
	http.Redirect(w, r, safeNext(r), http.StatusSeeOther)
}

// ShowSignup serves the registration form context
func (h *AuthHandler) ShowSignup(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetUserIDFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	page := &response.AuthPage{
		Title:  "Sign Up - Movie Database",
		Notice: utils.PopFlash(w, r),
	}
	utils.ResponseSuccess(w, "Signup page retrieved successfully", page)
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetUserIDFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		utils.ResponseBadRequest(w, "Invalid form data", nil)
		return
	}

	req := &request.SignupRequest{
		Username:  strings.TrimSpace(r.PostFormValue("username")),
		Password1: r.PostFormValue("password1"),
		Password2: r.PostFormValue("password2"),
	}

	user, session, err := h.service.Signup(r.Context(), req, r.UserAgent(), clientIP(r))
	if err != nil {
		h.handleServiceError(w, err, req.Username)
		return
	}

	// Fresh accounts get a browser-close session
	h.setSessionCookie(w, session.Token.String(), false)
	utils.SetFlash(w, utils.FlashSuccess, fmt.Sprintf("Welcome, %s! Your account has been created.", user.Username))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout revokes the current session and clears the cookie. Harmless to
// call while logged out.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		if err := h.service.Logout(r.Context(), cookie.Value); err != nil {
			h.log.Error("Failed to logout", zap.Error(err))
			utils.ResponseInternalError(w, "Failed to logout")
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if username, ok := utils.GetUsernameFromContext(r.Context()); ok {
		utils.SetFlash(w, utils.FlashInfo, fmt.Sprintf("You have been logged out. See you soon, %s!", username))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string, remember bool) {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	// Without remember-me the cookie has no MaxAge and dies with the browser
	if remember {
		cookie.MaxAge = h.config.Session.RememberDays * 24 * 60 * 60
	}
	http.SetCookie(w, cookie)
}

// Handle service errors with appropriate status code. The submitted
// username rides back so a failed form re-renders filled in.
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, username string) {
	errMsg := err.Error()
	fields := map[string]string{"username": username}

	switch {
	case strings.Contains(errMsg, "validation failed"):
		utils.ResponseJSON(w, http.StatusBadRequest, false, errMsg, &response.AuthPage{Fields: fields}, nil)
	case strings.Contains(errMsg, "username already taken"):
		errors := map[string]string{"username": "This username is already taken."}
		utils.ResponseJSON(w, http.StatusBadRequest, false, "Signup failed", &response.AuthPage{Fields: fields}, errors)
	case strings.Contains(errMsg, "invalid credentials"):
		errors := map[string]string{"__all__": "Please enter a correct username and password."}
		utils.ResponseJSON(w, http.StatusBadRequest, false, "Login failed", &response.AuthPage{Fields: fields}, errors)
	default:
		h.log.Error("Unhandled service error", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// safeNext extracts the post-login return path, falling back to home for
// anything that is not a local path.
func safeNext(r *http.Request) string {
	next := r.URL.Query().Get("next")
	if next == "" {
		next = r.PostFormValue("next")
	}
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	if _, err := url.Parse(next); err != nil {
		return "/"
	}
	return next
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
