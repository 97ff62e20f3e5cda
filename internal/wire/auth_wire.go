package wire

import (
	"movie-db/internal/adaptor"
	"movie-db/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Credential pages must never come out of a cache
	r.Group(func(r chi.Router) {
		r.Use(middleware.NoCache)

		// GET  /login/  - Login form
		// POST /login/  - Authenticate and start a session
		r.Get("/login/", authHandler.ShowLogin)
		r.Post("/login/", authHandler.Login)

		// GET  /signup/ - Registration form
		// POST /signup/ - Create account and log in
		r.Get("/signup/", authHandler.ShowSignup)
		r.Post("/signup/", authHandler.Signup)
	})

	// Logout works from a plain link as well as a form
	r.Get("/logout/", authHandler.Logout)
	r.Post("/logout/", authHandler.Logout)
}
