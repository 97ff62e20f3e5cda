package usecase

import (
	"context"
	"fmt"
	"math"

	"movie-db/internal/data/repository"
	"movie-db/internal/dto/response"

	"go.uber.org/zap"
)

type CatalogService interface {
	Home(ctx context.Context) (*response.HomePage, error)
	// MovieDetail assembles the detail page. viewerID, when non-nil, pulls
	// the viewer's own review so the page can offer edit/delete.
	MovieDetail(ctx context.Context, movieID int64, viewerID *int64) (*response.MovieDetailPage, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) Home(ctx context.Context) (*response.HomePage, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}

	// Sidebar statistics
	totalMovies, err := s.repo.Movie.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count movies", zap.Error(err))
		return nil, fmt.Errorf("count movies: %w", err)
	}

	totalUsers, err := s.repo.User.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie)
	}

	return &response.HomePage{
		Title:       "Movie Database",
		Movies:      movieResponses,
		TotalMovies: totalMovies,
		TotalUsers:  totalUsers,
	}, nil
}

func (s *catalogService) MovieDetail(ctx context.Context, movieID int64, viewerID *int64) (*response.MovieDetailPage, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("get movie %d: %w", movieID, err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	// Details are optional; a movie without them is a normal state
	var details *response.MovieInfoResponse
	info, err := s.repo.MovieInfo.FindByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie info", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("get movie info for %d: %w", movieID, err)
	}
	if info != nil {
		resp := response.MovieInfoToResponse(info)
		details = &resp
	}

	reviews, err := s.repo.Review.FindByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get reviews", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("get reviews for movie %d: %w", movieID, err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	ratingSum := 0
	for i, review := range reviews {
		reviewResponses[i] = response.ReviewToResponse(review)
		ratingSum += review.Rating
	}

	// Average rating is undefined, not zero, without reviews. One decimal
	// place, ties round to even (4.25 -> 4.2).
	var averageRating *float64
	if len(reviews) > 0 {
		avg := math.RoundToEven(float64(ratingSum)/float64(len(reviews))*10) / 10
		averageRating = &avg
	}

	var userReview *response.ReviewResponse
	if viewerID != nil {
		review, err := s.repo.Review.FindByUserAndMovie(ctx, *viewerID, movieID)
		if err != nil {
			s.log.Error("Failed to get viewer review",
				zap.Error(err),
				zap.Int64("user_id", *viewerID),
				zap.Int64("movie_id", movieID))
			return nil, fmt.Errorf("get viewer review: %w", err)
		}
		if review != nil {
			resp := response.ReviewToResponse(review)
			userReview = &resp
		}
	}

	return &response.MovieDetailPage{
		Title:         fmt.Sprintf("%s - Movie Database", movie.Title),
		Movie:         response.MovieToResponse(movie),
		Details:       details,
		Reviews:       reviewResponses,
		UserReview:    userReview,
		TotalReviews:  int64(len(reviews)),
		AverageRating: averageRating,
	}, nil
}
