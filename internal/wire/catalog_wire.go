package wire

import (
	"movie-db/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET / - Movie listing with catalog statistics
	r.Get("/", catalogHandler.Home)

	// GET /movie/{id}/ - Movie detail with reviews and average rating
	r.Get("/movie/{id}/", catalogHandler.MovieDetail)
}
