package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"movie-db/internal/data/repository"
	"movie-db/internal/dto/request"
	"movie-db/internal/usecase"
	"movie-db/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminHandler is the operator console. Unlike the public pages it speaks
// JSON both ways and paginates its listings.
type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// ==================== MOVIES ====================

func (h *AdminHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.MovieFilter{
		Query: strings.TrimSpace(query.Get("q")),
		Year:  parseIntParam(query.Get("year")),
	}

	result, err := h.service.ListMovies(r.Context(), filter, parsePage(r))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", result)
}

func (h *AdminHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", movie)
}

func (h *AdminHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "movie not found")
		return
	}

	var req request.MovieUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), movieID, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", movie)
}

func (h *AdminHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "movie not found")
		return
	}

	if err := h.service.DeleteMovie(r.Context(), movieID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Movie deleted successfully", nil)
}

// ==================== MOVIE INFO ====================

func (h *AdminHandler) ListMovieInfo(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.MovieInfoFilter{
		Query:    strings.TrimSpace(query.Get("q")),
		Year:     parseIntParam(query.Get("year")),
		Director: strings.TrimSpace(query.Get("director")),
	}

	result, err := h.service.ListMovieInfo(r.Context(), filter, parsePage(r))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Movie details retrieved successfully", result)
}

func (h *AdminHandler) CreateMovieInfo(w http.ResponseWriter, r *http.Request) {
	var req request.MovieInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	info, err := h.service.CreateMovieInfo(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Movie details created successfully", info)
}

func (h *AdminHandler) UpdateMovieInfo(w http.ResponseWriter, r *http.Request) {
	infoID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "movie info not found")
		return
	}

	var req request.MovieInfoUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	info, err := h.service.UpdateMovieInfo(r.Context(), infoID, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Movie details updated successfully", info)
}

func (h *AdminHandler) DeleteMovieInfo(w http.ResponseWriter, r *http.Request) {
	infoID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "movie info not found")
		return
	}

	if err := h.service.DeleteMovieInfo(r.Context(), infoID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Movie details deleted successfully", nil)
}

// ==================== REVIEWS ====================

func (h *AdminHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.ReviewFilter{
		Query:  strings.TrimSpace(query.Get("q")),
		Rating: parseIntParam(query.Get("rating")),
	}
	if movieID, err := utils.ParseID(query.Get("movie_id")); err == nil && movieID > 0 {
		filter.MovieID = &movieID
	}
	if since, err := time.Parse("2006-01-02", query.Get("since")); err == nil {
		filter.CreatedSince = &since
	}

	result, err := h.service.ListReviews(r.Context(), filter, parsePage(r))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", result)
}

func (h *AdminHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "review not found")
		return
	}

	if err := h.service.DeleteReview(r.Context(), reviewID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Review deleted successfully", nil)
}

// Handle service errors with appropriate status code
func (h *AdminHandler) handleServiceError(w http.ResponseWriter, err error) {
	errMsg := err.Error()
	switch {
	case strings.Contains(errMsg, "not found"):
		utils.ResponseNotFound(w, errMsg)
	case strings.Contains(errMsg, "already exists"):
		utils.ResponseConflict(w, errMsg, nil)
	case strings.Contains(errMsg, "validation failed"):
		utils.ResponseBadRequest(w, errMsg, nil)
	default:
		h.log.Error("Unhandled service error", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

func parsePage(r *http.Request) request.PaginatedRequest {
	query := r.URL.Query()
	return request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 20),
	}
}

func parseIntParam(value string) *int {
	if value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &parsed
}
