package repository

import (
	"context"
	"fmt"

	"movie-db/internal/data/entity"
	"movie-db/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// MovieInfoFilter narrows the operator console details listing
type MovieInfoFilter struct {
	Query    string // matches movie title, director or actor names
	Year     *int
	Director string
}

type MovieInfoRepository interface {
	Create(ctx context.Context, info *entity.MovieInfo) error
	FindByID(ctx context.Context, id int64) (*entity.MovieInfo, error)
	// FindByMovieID returns the newest details row for the movie, or nil.
	// Absence is a normal state, not an error.
	FindByMovieID(ctx context.Context, movieID int64) (*entity.MovieInfo, error)
	Search(ctx context.Context, filter MovieInfoFilter, limit, offset int) ([]*entity.MovieInfo, error)
	CountSearch(ctx context.Context, filter MovieInfoFilter) (int64, error)
	Update(ctx context.Context, info *entity.MovieInfo) error
	Delete(ctx context.Context, id int64) error
}

type movieInfoRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieInfoRepository(db database.PgxIface, log *zap.Logger) MovieInfoRepository {
	return &movieInfoRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie_info")),
	}
}

func (r *movieInfoRepository) Create(ctx context.Context, info *entity.MovieInfo) error {
	query := `
		INSERT INTO movie_info (movie_id, director, actor1, actor2, actor3, actor4, year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		info.MovieID,
		info.Director,
		info.Actor1,
		info.Actor2,
		info.Actor3,
		info.Actor4,
		info.Year,
		info.CreatedAt,
	).Scan(&info.ID)

	if err != nil {
		r.log.Error("Failed to create movie info",
			zap.Error(err),
			zap.Int64("movie_id", info.MovieID),
		)
		return fmt.Errorf("create movie info for movie %d: %w", info.MovieID, err)
	}

	return nil
}

func (r *movieInfoRepository) FindByID(ctx context.Context, id int64) (*entity.MovieInfo, error) {
	query := `
		SELECT id, movie_id, director, actor1, actor2, actor3, actor4, year, created_at
		FROM movie_info
		WHERE id = $1
	`

	var info entity.MovieInfo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&info.ID,
		&info.MovieID,
		&info.Director,
		&info.Actor1,
		&info.Actor2,
		&info.Actor3,
		&info.Actor4,
		&info.Year,
		&info.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie info by ID",
			zap.Error(err),
			zap.Int64("info_id", id),
		)
		return nil, fmt.Errorf("find movie info by ID %d: %w", id, err)
	}

	return &info, nil
}

func (r *movieInfoRepository) FindByMovieID(ctx context.Context, movieID int64) (*entity.MovieInfo, error) {
	query := `
		SELECT id, movie_id, director, actor1, actor2, actor3, actor4, year, created_at
		FROM movie_info
		WHERE movie_id = $1
		ORDER BY id DESC
		LIMIT 1
	`

	var info entity.MovieInfo
	err := r.db.QueryRow(ctx, query, movieID).Scan(
		&info.ID,
		&info.MovieID,
		&info.Director,
		&info.Actor1,
		&info.Actor2,
		&info.Actor3,
		&info.Actor4,
		&info.Year,
		&info.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie info by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find movie info by movie ID %d: %w", movieID, err)
	}

	return &info, nil
}

func (r *movieInfoRepository) Search(ctx context.Context, filter MovieInfoFilter, limit, offset int) ([]*entity.MovieInfo, error) {
	query := `
		SELECT mi.id, mi.movie_id, mi.director, mi.actor1, mi.actor2, mi.actor3, mi.actor4, mi.year, mi.created_at, m.title
		FROM movie_info mi
		JOIN movies m ON m.id = mi.movie_id
		WHERE ($1 = '' OR m.title ILIKE '%' || $1 || '%'
		       OR mi.director ILIKE '%' || $1 || '%'
		       OR mi.actor1 ILIKE '%' || $1 || '%'
		       OR mi.actor2 ILIKE '%' || $1 || '%'
		       OR mi.actor3 ILIKE '%' || $1 || '%'
		       OR mi.actor4 ILIKE '%' || $1 || '%')
		  AND ($2::int IS NULL OR mi.year = $2)
		  AND ($3 = '' OR mi.director = $3)
		ORDER BY mi.id DESC
		LIMIT $4 OFFSET $5
	`

	rows, err := r.db.Query(ctx, query, filter.Query, filter.Year, filter.Director, limit, offset)
	if err != nil {
		r.log.Error("Failed to search movie info",
			zap.Error(err),
			zap.String("query", filter.Query),
		)
		return nil, fmt.Errorf("search movie info: %w", err)
	}
	defer rows.Close()

	var infos []*entity.MovieInfo
	for rows.Next() {
		var info entity.MovieInfo
		err := rows.Scan(
			&info.ID,
			&info.MovieID,
			&info.Director,
			&info.Actor1,
			&info.Actor2,
			&info.Actor3,
			&info.Actor4,
			&info.Year,
			&info.CreatedAt,
			&info.MovieTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movie info row: %w", err)
		}
		infos = append(infos, &info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie info rows: %w", err)
	}

	return infos, nil
}

func (r *movieInfoRepository) CountSearch(ctx context.Context, filter MovieInfoFilter) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM movie_info mi
		JOIN movies m ON m.id = mi.movie_id
		WHERE ($1 = '' OR m.title ILIKE '%' || $1 || '%'
		       OR mi.director ILIKE '%' || $1 || '%'
		       OR mi.actor1 ILIKE '%' || $1 || '%'
		       OR mi.actor2 ILIKE '%' || $1 || '%'
		       OR mi.actor3 ILIKE '%' || $1 || '%'
		       OR mi.actor4 ILIKE '%' || $1 || '%')
		  AND ($2::int IS NULL OR mi.year = $2)
		  AND ($3 = '' OR mi.director = $3)
	`

	var count int64
	err := r.db.QueryRow(ctx, query, filter.Query, filter.Year, filter.Director).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count movie info search", zap.Error(err))
		return 0, fmt.Errorf("count movie info search: %w", err)
	}

	return count, nil
}

func (r *movieInfoRepository) Update(ctx context.Context, info *entity.MovieInfo) error {
	query := `
		UPDATE movie_info
		SET director = $2, actor1 = $3, actor2 = $4, actor3 = $5, actor4 = $6, year = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		info.ID,
		info.Director,
		info.Actor1,
		info.Actor2,
		info.Actor3,
		info.Actor4,
		info.Year,
	)

	if err != nil {
		r.log.Error("Failed to update movie info",
			zap.Error(err),
			zap.Int64("info_id", info.ID),
		)
		return fmt.Errorf("update movie info %d: %w", info.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie info %d not found", info.ID)
	}

	return nil
}

func (r *movieInfoRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM movie_info WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie info",
			zap.Error(err),
			zap.Int64("info_id", id),
		)
		return fmt.Errorf("delete movie info %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie info %d not found", id)
	}

	return nil
}
