package wire

import (
	"movie-db/internal/adaptor"
	"movie-db/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler, log *zap.Logger) {
	// Review mutations are POST-only browser forms behind a login wall;
	// anonymous visitors are bounced to /login/ with a return path
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser(log))

		// POST /movie/{id}/review/add/    - Post the viewer's review
		// POST /movie/{id}/review/edit/   - Rewrite the viewer's review
		// POST /movie/{id}/review/delete/ - Remove the viewer's review
		r.Post("/movie/{id}/review/add/", reviewHandler.Add)
		r.Post("/movie/{id}/review/edit/", reviewHandler.Edit)
		r.Post("/movie/{id}/review/delete/", reviewHandler.Delete)
	})
}
