package wire

import (
	"movie-db/internal/adaptor"
	"movie-db/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler, log *zap.Logger) {
	// ==================== OPERATOR ROUTES ====================
	// Group admin routes with middleware chain
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireUser(log))     // Must be authenticated
		r.Use(middleware.RequireOperator(log)) // Must be an operator

		// Movie management
		r.Get("/movies", adminHandler.ListMovies)            // GET    /admin/movies?q=&year=&page=
		r.Post("/movies", adminHandler.CreateMovie)          // POST   /admin/movies
		r.Put("/movies/{id}", adminHandler.UpdateMovie)      // PUT    /admin/movies/{id}
		r.Delete("/movies/{id}", adminHandler.DeleteMovie)   // DELETE /admin/movies/{id}

		// Movie details management
		r.Get("/movie-info", adminHandler.ListMovieInfo)          // GET    /admin/movie-info?q=&year=&director=
		r.Post("/movie-info", adminHandler.CreateMovieInfo)       // POST   /admin/movie-info
		r.Put("/movie-info/{id}", adminHandler.UpdateMovieInfo)   // PUT    /admin/movie-info/{id}
		r.Delete("/movie-info/{id}", adminHandler.DeleteMovieInfo) // DELETE /admin/movie-info/{id}

		// Review moderation
		r.Get("/reviews", adminHandler.ListReviews)          // GET    /admin/reviews?q=&rating=&movie_id=&since=
		r.Delete("/reviews/{id}", adminHandler.DeleteReview) // DELETE /admin/reviews/{id}
	})
}
