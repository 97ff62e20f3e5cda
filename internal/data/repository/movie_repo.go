package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-db/internal/data/entity"
	"movie-db/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// MovieFilter narrows the operator console movie listing
type MovieFilter struct {
	Query string // matches title or description
	Year  *int   // release year of the attached details row
}

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	Search(ctx context.Context, filter MovieFilter, limit, offset int) ([]*entity.Movie, error)
	CountSearch(ctx context.Context, filter MovieFilter) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id int64) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (title, description, poster_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		movie.Title,
		movie.Description,
		movie.PosterURL,
		movie.CreatedAt,
		movie.UpdatedAt,
	).Scan(&movie.ID)

	if err != nil {
		if err = translateUnique(err, "movies_title_key", ErrDuplicateTitle); errors.Is(err, ErrDuplicateTitle) {
			return err
		}
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %s: %w", movie.Title, err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		SELECT id, title, description, poster_url, created_at, updated_at
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.PosterURL,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("find movie by ID %d: %w", id, err)
	}

	return &movie, nil
}

// FindAll returns the whole catalog, newest first. The home page is an
// unpaginated full listing.
func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, description, poster_url, created_at, updated_at
		FROM movies
		ORDER BY id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find movies", zap.Error(err))
		return nil, fmt.Errorf("find all movies: %w", err)
	}
	defer rows.Close()

	return scanMovies(rows)
}

func (r *movieRepository) Search(ctx context.Context, filter MovieFilter, limit, offset int) ([]*entity.Movie, error) {
	query := `
		SELECT DISTINCT m.id, m.title, m.description, m.poster_url, m.created_at, m.updated_at
		FROM movies m
		LEFT JOIN movie_info mi ON mi.movie_id = m.id
		WHERE ($1 = '' OR m.title ILIKE '%' || $1 || '%' OR m.description ILIKE '%' || $1 || '%')
		  AND ($2::int IS NULL OR mi.year = $2)
		ORDER BY m.id DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, filter.Query, filter.Year, limit, offset)
	if err != nil {
		r.log.Error("Failed to search movies",
			zap.Error(err),
			zap.String("query", filter.Query),
		)
		return nil, fmt.Errorf("search movies: %w", err)
	}
	defer rows.Close()

	return scanMovies(rows)
}

func (r *movieRepository) CountSearch(ctx context.Context, filter MovieFilter) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT m.id)
		FROM movies m
		LEFT JOIN movie_info mi ON mi.movie_id = m.id
		WHERE ($1 = '' OR m.title ILIKE '%' || $1 || '%' OR m.description ILIKE '%' || $1 || '%')
		  AND ($2::int IS NULL OR mi.year = $2)
	`

	var count int64
	err := r.db.QueryRow(ctx, query, filter.Query, filter.Year).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count movie search", zap.Error(err))
		return 0, fmt.Errorf("count movie search: %w", err)
	}

	return count, nil
}

func (r *movieRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM movies`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return 0, fmt.Errorf("count all movies: %w", err)
	}

	return count, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, description = $3, poster_url = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.PosterURL,
		movie.UpdatedAt,
	)

	if err != nil {
		if err = translateUnique(err, "movies_title_key", ErrDuplicateTitle); errors.Is(err, ErrDuplicateTitle) {
			return err
		}
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return fmt.Errorf("update movie %d: %w", movie.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %d not found", movie.ID)
	}

	return nil
}

// Delete removes the movie; details and reviews go with it via
// ON DELETE CASCADE.
func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("delete movie %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %d not found", id)
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}

func scanMovies(rows pgx.Rows) ([]*entity.Movie, error) {
	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.PosterURL,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}
