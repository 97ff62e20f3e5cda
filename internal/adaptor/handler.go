package adaptor

import (
	"movie-db/internal/usecase"
	"movie-db/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Catalog *CatalogHandler
	Review  *ReviewHandler
	Admin   *AdminHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, config, log),
		Catalog: NewCatalogHandler(service.Catalog, log),
		Review:  NewReviewHandler(service.Review, log),
		Admin:   NewAdminHandler(service.Admin, log),
	}
}
