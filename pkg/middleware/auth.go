package middleware

import (
	"net/http"
	"net/url"

	"movie-db/internal/data/entity"
	"movie-db/internal/data/repository"
	"movie-db/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionCookie carries the session token between browser and server
const SessionCookie = "session_token"

// CurrentUser resolves the session cookie into a user and attaches it to the
// request context. Anonymous requests pass through untouched.
func CurrentUser(sessionRepo repository.SessionRepository, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			// The token column is uuid-typed; a garbage cookie value would
			// be rejected by the database, not matched. Treat it as anonymous
			// so the visitor can still reach /login/ and /logout/.
			if _, err := uuid.Parse(cookie.Value); err != nil {
				logger.Debug("Malformed session cookie", zap.String("path", r.URL.Path))
				next.ServeHTTP(w, r)
				return
			}

			session, err := sessionRepo.FindValidSession(r.Context(), cookie.Value)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if session == nil {
				// Stale cookie, treat as anonymous
				next.ServeHTTP(w, r)
				return
			}

			user, err := userRepo.FindByID(r.Context(), session.UserID)
			if err != nil {
				logger.Error("Failed to load session user",
					zap.Error(err),
					zap.Int64("user_id", session.UserID))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, user.Username, string(user.Role))
			ctx = utils.SetTokenContext(ctx, cookie.Value)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser redirects anonymous visitors to the login page with a
// return-path parameter, the way a browser app prompts for credentials.
func RequireUser(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
				logger.Debug("Anonymous access to protected route",
					zap.String("path", r.URL.Path))
				http.Redirect(w, r, "/login/?next="+url.QueryEscape(r.URL.Path), http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireOperator guards the administrative console
func RequireOperator(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				http.Redirect(w, r, "/login/?next="+url.QueryEscape(r.URL.Path), http.StatusFound)
				return
			}

			if role != string(entity.RoleOperator) {
				userID, _ := utils.GetUserIDFromContext(r.Context())
				logger.Warn("Non-operator access attempt",
					zap.Int64("user_id", userID),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Operator access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
