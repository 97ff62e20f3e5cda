package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-db/internal/data/entity"
	"movie-db/internal/data/repository"
	"movie-db/internal/dto/request"
	"movie-db/internal/dto/response"
	"movie-db/pkg/utils"

	"go.uber.org/zap"
)

// AdminService backs the operator console: searchable listings plus the
// generic create/update/delete the console provides.
type AdminService interface {
	ListMovies(ctx context.Context, filter repository.MovieFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.AdminMovieRow], error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID int64, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID int64) error

	ListMovieInfo(ctx context.Context, filter repository.MovieInfoFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.AdminMovieInfoRow], error)
	CreateMovieInfo(ctx context.Context, req *request.MovieInfoRequest) (*response.MovieInfoResponse, error)
	UpdateMovieInfo(ctx context.Context, infoID int64, req *request.MovieInfoUpdateRequest) (*response.MovieInfoResponse, error)
	DeleteMovieInfo(ctx context.Context, infoID int64) error

	ListReviews(ctx context.Context, filter repository.ReviewFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.AdminReviewRow], error)
	DeleteReview(ctx context.Context, reviewID int64) error
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

// ==================== MOVIES ====================

func (s *adminService) ListMovies(ctx context.Context, filter repository.MovieFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.AdminMovieRow], error) {
	movies, err := s.repo.Movie.Search(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to search movies", zap.Error(err))
		return nil, fmt.Errorf("search movies: %w", err)
	}

	total, err := s.repo.Movie.CountSearch(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count movie search", zap.Error(err))
		return nil, fmt.Errorf("count movie search: %w", err)
	}

	rows := make([]response.AdminMovieRow, len(movies))
	for i, movie := range movies {
		info, err := s.repo.MovieInfo.FindByMovieID(ctx, movie.ID)
		if err != nil {
			s.log.Warn("Failed to check movie details",
				zap.Error(err),
				zap.Int64("movie_id", movie.ID))
		}
		rows[i] = response.MovieToAdminRow(movie, info != nil)
	}

	return response.NewPaginatedResponse(rows, page.Page, page.PerPage, total), nil
}

func (s *adminService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
		PosterURL:   req.PosterURL,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrDuplicateTitle) {
			return nil, fmt.Errorf("title already exists")
		}
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title))

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *adminService) UpdateMovie(ctx context.Context, movieID int64, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("get movie %d: %w", movieID, err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Description != nil {
		movie.Description = *req.Description
	}
	if req.PosterURL != nil {
		movie.PosterURL = req.PosterURL
	}
	movie.UpdatedAt = time.Now()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrDuplicateTitle) {
			return nil, fmt.Errorf("title already exists")
		}
		s.log.Error("Failed to update movie", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("update movie: %w", err)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *adminService) DeleteMovie(ctx context.Context, movieID int64) error {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie", zap.Error(err), zap.Int64("movie_id", movieID))
		return fmt.Errorf("get movie %d: %w", movieID, err)
	}
	if movie == nil {
		return fmt.Errorf("movie not found")
	}

	// Details and reviews cascade with the movie
	if err := s.repo.Movie.Delete(ctx, movieID); err != nil {
		s.log.Error("Failed to delete movie", zap.Error(err), zap.Int64("movie_id", movieID))
		return fmt.Errorf("delete movie: %w", err)
	}

	return nil
}

// ==================== MOVIE INFO ====================

func (s *adminService) ListMovieInfo(ctx context.Context, filter repository.MovieInfoFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.AdminMovieInfoRow], error) {
	infos, err := s.repo.MovieInfo.Search(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to search movie info", zap.Error(err))
		return nil, fmt.Errorf("search movie info: %w", err)
	}

	total, err := s.repo.MovieInfo.CountSearch(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count movie info search", zap.Error(err))
		return nil, fmt.Errorf("count movie info search: %w", err)
	}

	rows := make([]response.AdminMovieInfoRow, len(infos))
	for i, info := range infos {
		rows[i] = response.MovieInfoToAdminRow(info)
	}

	return response.NewPaginatedResponse(rows, page.Page, page.PerPage, total), nil
}

func (s *adminService) CreateMovieInfo(ctx context.Context, req *request.MovieInfoRequest) (*response.MovieInfoResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie info validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movie, err := s.repo.Movie.FindByID(ctx, req.MovieID)
	if err != nil {
		s.log.Error("Failed to get movie", zap.Error(err), zap.Int64("movie_id", req.MovieID))
		return nil, fmt.Errorf("get movie %d: %w", req.MovieID, err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	info := &entity.MovieInfo{
		BaseSimple: entity.BaseSimple{
			CreatedAt: time.Now(),
		},
		MovieID:  req.MovieID,
		Director: req.Director,
		Actor1:   req.Actor1,
		Actor2:   req.Actor2,
		Actor3:   req.Actor3,
		Actor4:   req.Actor4,
		Year:     req.Year,
	}

	if err := s.repo.MovieInfo.Create(ctx, info); err != nil {
		s.log.Error("Failed to create movie info", zap.Error(err), zap.Int64("movie_id", req.MovieID))
		return nil, fmt.Errorf("create movie info: %w", err)
	}

	s.log.Info("Movie info created",
		zap.Int64("info_id", info.ID),
		zap.Int64("movie_id", info.MovieID))

	resp := response.MovieInfoToResponse(info)
	return &resp, nil
}

func (s *adminService) UpdateMovieInfo(ctx context.Context, infoID int64, req *request.MovieInfoUpdateRequest) (*response.MovieInfoResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie info validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	info, err := s.repo.MovieInfo.FindByID(ctx, infoID)
	if err != nil {
		s.log.Error("Failed to get movie info", zap.Error(err), zap.Int64("info_id", infoID))
		return nil, fmt.Errorf("get movie info %d: %w", infoID, err)
	}
	if info == nil {
		return nil, fmt.Errorf("movie info not found")
	}

	if req.Director != nil {
		info.Director = *req.Director
	}
	if req.Actor1 != nil {
		info.Actor1 = *req.Actor1
	}
	if req.Actor2 != nil {
		info.Actor2 = *req.Actor2
	}
	if req.Actor3 != nil {
		info.Actor3 = *req.Actor3
	}
	if req.Actor4 != nil {
		info.Actor4 = *req.Actor4
	}
	if req.Year != nil {
		info.Year = *req.Year
	}

	if err := s.repo.MovieInfo.Update(ctx, info); err != nil {
		s.log.Error("Failed to update movie info", zap.Error(err), zap.Int64("info_id", infoID))
		return nil, fmt.Errorf("update movie info: %w", err)
	}

	resp := response.MovieInfoToResponse(info)
	return &resp, nil
}

func (s *adminService) DeleteMovieInfo(ctx context.Context, infoID int64) error {
	info, err := s.repo.MovieInfo.FindByID(ctx, infoID)
	if err != nil {
		s.log.Error("Failed to get movie info", zap.Error(err), zap.Int64("info_id", infoID))
		return fmt.Errorf("get movie info %d: %w", infoID, err)
	}
	if info == nil {
		return fmt.Errorf("movie info not found")
	}

	if err := s.repo.MovieInfo.Delete(ctx, infoID); err != nil {
		s.log.Error("Failed to delete movie info", zap.Error(err), zap.Int64("info_id", infoID))
		return fmt.Errorf("delete movie info: %w", err)
	}

	return nil
}

// ==================== REVIEWS ====================

func (s *adminService) ListReviews(ctx context.Context, filter repository.ReviewFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.AdminReviewRow], error) {
	reviews, err := s.repo.Review.Search(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to search reviews", zap.Error(err))
		return nil, fmt.Errorf("search reviews: %w", err)
	}

	total, err := s.repo.Review.CountSearch(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count review search", zap.Error(err))
		return nil, fmt.Errorf("count review search: %w", err)
	}

	rows := make([]response.AdminReviewRow, len(reviews))
	for i, review := range reviews {
		rows[i] = response.ReviewToAdminRow(review)
	}

	return response.NewPaginatedResponse(rows, page.Page, page.PerPage, total), nil
}

func (s *adminService) DeleteReview(ctx context.Context, reviewID int64) error {
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		s.log.Error("Failed to get review", zap.Error(err), zap.Int64("review_id", reviewID))
		return fmt.Errorf("get review %d: %w", reviewID, err)
	}
	if review == nil {
		return fmt.Errorf("review not found")
	}

	if err := s.repo.Review.Delete(ctx, reviewID); err != nil {
		s.log.Error("Failed to delete review", zap.Error(err), zap.Int64("review_id", reviewID))
		return fmt.Errorf("delete review: %w", err)
	}

	return nil
}
