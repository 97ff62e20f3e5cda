package adaptor

import (
	"fmt"
	"net/http"
	"strings"

	"movie-db/internal/dto/request"
	"movie-db/internal/usecase"
	"movie-db/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ReviewHandler serves the browser review forms. Every outcome that keeps
// the movie page meaningful answers with a flash notice and a redirect
// back to that page.
type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

func (h *ReviewHandler) Add(w http.ResponseWriter, r *http.Request) {
	movieID, userID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	req, err := parseReviewForm(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid form data", nil)
		return
	}

	title, err := h.service.AddReview(r.Context(), userID, movieID, req)
	if err != nil {
		h.handleServiceError(w, r, err, movieID)
		return
	}

	utils.SetFlash(w, utils.FlashSuccess, fmt.Sprintf("Your review of %s has been posted.", title))
	http.Redirect(w, r, movieURL(movieID), http.StatusSeeOther)
}

func (h *ReviewHandler) Edit(w http.ResponseWriter, r *http.Request) {
	movieID, userID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	req, err := parseReviewForm(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid form data", nil)
		return
	}

	title, err := h.service.EditReview(r.Context(), userID, movieID, req)
	if err != nil {
		h.handleServiceError(w, r, err, movieID)
		return
	}

	utils.SetFlash(w, utils.FlashSuccess, fmt.Sprintf("Your review of %s has been updated.", title))
	http.Redirect(w, r, movieURL(movieID), http.StatusSeeOther)
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	movieID, userID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	title, err := h.service.DeleteReview(r.Context(), userID, movieID)
	if err != nil {
		h.handleServiceError(w, r, err, movieID)
		return
	}

	utils.SetFlash(w, utils.FlashInfo, fmt.Sprintf("Your review of %s has been deleted.", title))
	http.Redirect(w, r, movieURL(movieID), http.StatusSeeOther)
}

// requestIDs pulls the movie from the URL and the user from the session
// context. The auth middleware guarantees the latter.
func (h *ReviewHandler) requestIDs(w http.ResponseWriter, r *http.Request) (movieID, userID int64, ok bool) {
	movieID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "Movie not found")
		return 0, 0, false
	}

	userID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		utils.ResponseUnauthorized(w, "Authentication required")
		return 0, 0, false
	}

	return movieID, userID, true
}

func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, movieID int64) {
	errMsg := err.Error()
	switch {
	case strings.Contains(errMsg, "movie not found"):
		utils.ResponseNotFound(w, "Movie not found")
	case strings.Contains(errMsg, "review not found"):
		utils.ResponseNotFound(w, "Review not found")
	case strings.Contains(errMsg, "already reviewed"):
		utils.SetFlash(w, utils.FlashError, "You have already reviewed this movie. You can edit your existing review instead.")
		http.Redirect(w, r, movieURL(movieID), http.StatusSeeOther)
	case strings.Contains(errMsg, "validation failed"):
		utils.SetFlash(w, utils.FlashError, "Please correct the errors in your review and try again.")
		http.Redirect(w, r, movieURL(movieID), http.StatusSeeOther)
	default:
		h.log.Error("Unhandled service error", zap.Error(err), zap.Int64("movie_id", movieID))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

func parseReviewForm(r *http.Request) (*request.ReviewRequest, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	req := &request.ReviewRequest{
		Rating: utils.ParseInt(r.PostFormValue("rating"), 0),
	}
	if text := strings.TrimSpace(r.PostFormValue("review_text")); text != "" {
		req.ReviewText = &text
	}
	return req, nil
}

func movieURL(movieID int64) string {
	return fmt.Sprintf("/movie/%d/", movieID)
}
