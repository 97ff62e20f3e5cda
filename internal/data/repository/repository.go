package repository

import (
	"movie-db/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User      UserRepository
	Session   SessionRepository
	Movie     MovieRepository
	MovieInfo MovieInfoRepository
	Review    ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		Session:   NewSessionRepository(db, log),
		Movie:     NewMovieRepository(db, log),
		MovieInfo: NewMovieInfoRepository(db, log),
		Review:    NewReviewRepository(db, log),
	}
}
