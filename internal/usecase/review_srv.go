package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-db/internal/data/entity"
	"movie-db/internal/data/repository"
	"movie-db/internal/dto/request"
	"movie-db/pkg/utils"

	"go.uber.org/zap"
)

// ReviewService mutates the viewer's review of a movie. Each method
// returns the movie title for the confirmation notice.
type ReviewService interface {
	AddReview(ctx context.Context, userID, movieID int64, req *request.ReviewRequest) (string, error)
	EditReview(ctx context.Context, userID, movieID int64, req *request.ReviewRequest) (string, error)
	DeleteReview(ctx context.Context, userID, movieID int64) (string, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) AddReview(ctx context.Context, userID, movieID int64, req *request.ReviewRequest) (string, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return "", err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add review validation failed", zap.Any("errors", errs))
		return movie.Title, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Friendly answer for the common case; the unique constraint below is
	// what actually holds under concurrency.
	existing, err := s.repo.Review.FindByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		s.log.Error("Failed to check existing review",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", movieID))
		return movie.Title, fmt.Errorf("check existing review: %w", err)
	}
	if existing != nil {
		return movie.Title, fmt.Errorf("already reviewed")
	}

	now := time.Now()
	review := &entity.Review{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:     userID,
		MovieID:    movieID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		// Lost the race against a concurrent add from the same user
		if errors.Is(err, repository.ErrDuplicateReview) {
			s.log.Warn("Add review lost duplicate race",
				zap.Int64("user_id", userID),
				zap.Int64("movie_id", movieID))
			return movie.Title, fmt.Errorf("already reviewed")
		}
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", movieID))
		return movie.Title, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review added",
		zap.Int64("review_id", review.ID),
		zap.Int64("user_id", userID),
		zap.Int64("movie_id", movieID),
		zap.Int("rating", req.Rating))

	return movie.Title, nil
}

func (s *reviewService) EditReview(ctx context.Context, userID, movieID int64, req *request.ReviewRequest) (string, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return "", err
	}

	review, err := s.findOwnReview(ctx, userID, movieID)
	if err != nil {
		return movie.Title, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Edit review validation failed", zap.Any("errors", errs))
		return movie.Title, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Overwrite in place; created_at stays as it was
	review.Rating = req.Rating
	review.ReviewText = req.ReviewText
	review.UpdatedAt = time.Now()

	if err := s.repo.Review.Update(ctx, review); err != nil {
		s.log.Error("Failed to update review",
			zap.Error(err),
			zap.Int64("review_id", review.ID))
		return movie.Title, fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated",
		zap.Int64("review_id", review.ID),
		zap.Int64("user_id", userID),
		zap.Int64("movie_id", movieID))

	return movie.Title, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, userID, movieID int64) (string, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return "", err
	}

	review, err := s.findOwnReview(ctx, userID, movieID)
	if err != nil {
		return movie.Title, err
	}

	if err := s.repo.Review.Delete(ctx, review.ID); err != nil {
		s.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", review.ID))
		return movie.Title, fmt.Errorf("delete review: %w", err)
	}

	return movie.Title, nil
}

func (s *reviewService) findMovie(ctx context.Context, movieID int64) (*entity.Movie, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("get movie %d: %w", movieID, err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}
	return movie, nil
}

func (s *reviewService) findOwnReview(ctx context.Context, userID, movieID int64) (*entity.Review, error) {
	review, err := s.repo.Review.FindByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		s.log.Error("Failed to find review",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review not found")
	}
	return review, nil
}
