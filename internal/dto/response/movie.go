package response

import (
	"time"

	"movie-db/internal/data/entity"
	"movie-db/pkg/utils"
)

type MovieResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PosterURL   *string   `json:"poster_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type MovieInfoResponse struct {
	ID       int64    `json:"id"`
	MovieID  int64    `json:"movie_id"`
	Director string   `json:"director"`
	Actors   []string `json:"actors"`
	Year     int      `json:"year"`
}

// HomePage is the context the catalog listing renders from
type HomePage struct {
	Title       string          `json:"title"`
	Movies      []MovieResponse `json:"movies"`
	TotalMovies int64           `json:"total_movies"`
	TotalUsers  int64           `json:"total_users"`
	Notice      *utils.Flash    `json:"notice,omitempty"`
}

// MovieDetailPage is the context the detail view renders from.
// Details is nil when no metadata exists; AverageRating is nil when the
// movie has no reviews, never zero.
type MovieDetailPage struct {
	Title         string             `json:"title"`
	Movie         MovieResponse      `json:"movie"`
	Details       *MovieInfoResponse `json:"movie_details"`
	Reviews       []ReviewResponse   `json:"reviews"`
	UserReview    *ReviewResponse    `json:"user_review,omitempty"`
	TotalReviews  int64              `json:"total_reviews"`
	AverageRating *float64           `json:"average_rating,omitempty"`
	Notice        *utils.Flash       `json:"notice,omitempty"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		PosterURL:   movie.PosterURL,
		CreatedAt:   movie.CreatedAt,
	}
}

func MovieInfoToResponse(info *entity.MovieInfo) MovieInfoResponse {
	return MovieInfoResponse{
		ID:       info.ID,
		MovieID:  info.MovieID,
		Director: info.Director,
		Actors:   info.Actors(),
		Year:     info.Year,
	}
}
