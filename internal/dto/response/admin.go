package response

import (
	"strings"
	"time"

	"movie-db/internal/data/entity"
	"movie-db/pkg/utils"
)

// Operator console rows. DescriptionPreview, HasPoster, HasDetails and
// MainActorsPreview are display-only computed fields.

type AdminMovieRow struct {
	ID                 int64  `json:"id"`
	Title              string `json:"title"`
	DescriptionPreview string `json:"description_preview"`
	HasPoster          bool   `json:"has_poster"`
	HasDetails         bool   `json:"has_details"`
}

type AdminMovieInfoRow struct {
	ID                int64  `json:"id"`
	MovieID           int64  `json:"movie_id"`
	MovieTitle        string `json:"movie_title"`
	Director          string `json:"director"`
	Year              int    `json:"year"`
	MainActorsPreview string `json:"main_actors_preview"`
}

type AdminReviewRow struct {
	ID         int64     `json:"id"`
	MovieID    int64     `json:"movie_id"`
	MovieTitle string    `json:"movie_title"`
	Username   string    `json:"username"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
}

// Helper converters
func MovieToAdminRow(movie *entity.Movie, hasDetails bool) AdminMovieRow {
	return AdminMovieRow{
		ID:                 movie.ID,
		Title:              movie.Title,
		DescriptionPreview: utils.Truncate(movie.Description, 50),
		HasPoster:          movie.PosterURL != nil && *movie.PosterURL != "",
		HasDetails:         hasDetails,
	}
}

func MovieInfoToAdminRow(info *entity.MovieInfo) AdminMovieInfoRow {
	actors := info.Actors()
	preview := strings.Join(actors[:min(len(actors), 2)], ", ")
	if len(actors) > 2 {
		preview += "..."
	}

	return AdminMovieInfoRow{
		ID:                info.ID,
		MovieID:           info.MovieID,
		MovieTitle:        info.MovieTitle,
		Director:          info.Director,
		Year:              info.Year,
		MainActorsPreview: preview,
	}
}

func ReviewToAdminRow(review *entity.Review) AdminReviewRow {
	return AdminReviewRow{
		ID:         review.ID,
		MovieID:    review.MovieID,
		MovieTitle: review.MovieTitle,
		Username:   review.Username,
		Rating:     review.Rating,
		CreatedAt:  review.CreatedAt,
	}
}
