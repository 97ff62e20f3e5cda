package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-db/internal/data/entity"
	"movie-db/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ReviewFilter narrows the operator console review listing
type ReviewFilter struct {
	Query        string // matches movie title or reviewer username
	Rating       *int
	MovieID      *int64
	CreatedSince *time.Time
}

type ReviewRepository interface {
	// Create inserts the review. A lost duplicate race surfaces as
	// ErrDuplicateReview, never a raw driver error.
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id int64) (*entity.Review, error)
	FindByUserAndMovie(ctx context.Context, userID, movieID int64) (*entity.Review, error)
	// FindByMovieID returns all reviews for the movie, newest first, with
	// author usernames joined in.
	FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error)
	CountByMovieID(ctx context.Context, movieID int64) (int64, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter ReviewFilter, limit, offset int) ([]*entity.Review, error)
	CountSearch(ctx context.Context, filter ReviewFilter) (int64, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (user_id, movie_id, rating, review_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		review.UserID,
		review.MovieID,
		review.Rating,
		review.ReviewText,
		review.CreatedAt,
		review.UpdatedAt,
	).Scan(&review.ID)

	if err != nil {
		if err = translateUnique(err, "one_review_per_user_per_movie", ErrDuplicateReview); errors.Is(err, ErrDuplicateReview) {
			return err
		}
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("user_id", review.UserID),
			zap.Int64("movie_id", review.MovieID),
		)
		return fmt.Errorf("create review for movie %d by user %d: %w",
			review.MovieID, review.UserID, err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	query := `
		SELECT id, user_id, movie_id, rating, review_text, created_at, updated_at
		FROM reviews
		WHERE id = $1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.UserID,
		&review.MovieID,
		&review.Rating,
		&review.ReviewText,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return nil, fmt.Errorf("find review by ID %d: %w", id, err)
	}

	return &review, nil
}

func (r *reviewRepository) FindByUserAndMovie(ctx context.Context, userID, movieID int64) (*entity.Review, error) {
	query := `
		SELECT id, user_id, movie_id, rating, review_text, created_at, updated_at
		FROM reviews
		WHERE user_id = $1 AND movie_id = $2
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, userID, movieID).Scan(
		&review.ID,
		&review.UserID,
		&review.MovieID,
		&review.Rating,
		&review.ReviewText,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by user and movie",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find review by user %d and movie %d: %w",
			userID, movieID, err)
	}

	return &review, nil
}

func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error) {
	query := `
		SELECT r.id, r.user_id, r.movie_id, r.rating, r.review_text,
		       r.created_at, r.updated_at, u.username
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.movie_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find reviews by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find reviews by movie ID %d: %w", movieID, err)
	}
	defer rows.Close()

	return scanReviewsWithAuthor(rows)
}

func (r *reviewRepository) CountByMovieID(ctx context.Context, movieID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE movie_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, movieID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reviews by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return 0, fmt.Errorf("count reviews by movie ID %d: %w", movieID, err)
	}

	return count, nil
}

// Update overwrites rating and text. created_at is never touched.
func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET rating = $2, review_text = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		review.ID,
		review.Rating,
		review.ReviewText,
		review.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.Int64("review_id", review.ID),
		)
		return fmt.Errorf("update review %d: %w", review.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %d not found", review.ID)
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return fmt.Errorf("delete review %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %d not found", id)
	}

	r.log.Info("Review deleted", zap.Int64("review_id", id))
	return nil
}

func (r *reviewRepository) Search(ctx context.Context, filter ReviewFilter, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT r.id, r.user_id, r.movie_id, r.rating, r.review_text,
		       r.created_at, r.updated_at, u.username, m.title
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		JOIN movies m ON m.id = r.movie_id
		WHERE ($1 = '' OR m.title ILIKE '%' || $1 || '%' OR u.username ILIKE '%' || $1 || '%')
		  AND ($2::int IS NULL OR r.rating = $2)
		  AND ($3::bigint IS NULL OR r.movie_id = $3)
		  AND ($4::timestamptz IS NULL OR r.created_at >= $4)
		ORDER BY r.created_at DESC
		LIMIT $5 OFFSET $6
	`

	rows, err := r.db.Query(ctx, query,
		filter.Query, filter.Rating, filter.MovieID, filter.CreatedSince, limit, offset)
	if err != nil {
		r.log.Error("Failed to search reviews",
			zap.Error(err),
			zap.String("query", filter.Query),
		)
		return nil, fmt.Errorf("search reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.MovieID,
			&review.Rating,
			&review.ReviewText,
			&review.CreatedAt,
			&review.UpdatedAt,
			&review.Username,
			&review.MovieTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) CountSearch(ctx context.Context, filter ReviewFilter) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		JOIN movies m ON m.id = r.movie_id
		WHERE ($1 = '' OR m.title ILIKE '%' || $1 || '%' OR u.username ILIKE '%' || $1 || '%')
		  AND ($2::int IS NULL OR r.rating = $2)
		  AND ($3::bigint IS NULL OR r.movie_id = $3)
		  AND ($4::timestamptz IS NULL OR r.created_at >= $4)
	`

	var count int64
	err := r.db.QueryRow(ctx, query,
		filter.Query, filter.Rating, filter.MovieID, filter.CreatedSince).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count review search", zap.Error(err))
		return 0, fmt.Errorf("count review search: %w", err)
	}

	return count, nil
}

func scanReviewsWithAuthor(rows pgx.Rows) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.MovieID,
			&review.Rating,
			&review.ReviewText,
			&review.CreatedAt,
			&review.UpdatedAt,
			&review.Username,
		)
		if err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}
