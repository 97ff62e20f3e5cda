package usecase

import (
	"movie-db/internal/data/repository"
	"movie-db/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Catalog CatalogService
	Review  ReviewService
	Admin   AdminService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Catalog: NewCatalogService(repo, log),
		Review:  NewReviewService(repo, log),
		Admin:   NewAdminService(repo, log),
	}
}
