package adaptor

import (
	"net/http"
	"strings"

	"movie-db/internal/usecase"
	"movie-db/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.Home(r.Context())
	if err != nil {
		h.log.Error("Failed to build home page", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	page.Notice = utils.PopFlash(w, r)
	utils.ResponseSuccess(w, "Home page retrieved successfully", page)
}

func (h *CatalogHandler) MovieDetail(w http.ResponseWriter, r *http.Request) {
	movieID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "Movie not found")
		return
	}

	// Anonymous visitors still see the page, just without their own review
	var viewerID *int64
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		viewerID = &userID
	}

	page, err := h.service.MovieDetail(r.Context(), movieID, viewerID)
	if err != nil {
		if strings.Contains(err.Error(), "movie not found") {
			utils.ResponseNotFound(w, "Movie not found")
			return
		}
		h.log.Error("Failed to build movie detail page", zap.Error(err), zap.Int64("movie_id", movieID))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	page.Notice = utils.PopFlash(w, r)
	utils.ResponseSuccess(w, "Movie detail retrieved successfully", page)
}
