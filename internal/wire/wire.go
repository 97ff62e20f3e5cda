package wire

import (
	"net/http"

	"movie-db/internal/adaptor"
	"movie-db/internal/data/repository"
	"movie-db/internal/usecase"
	"movie-db/pkg/middleware"
	"movie-db/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services and handlers
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	// Setup router
	router := setupRouter(handler, repo, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware. CurrentUser runs everywhere so any page can
	// tell an authenticated visitor from an anonymous one.
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CurrentUser(repo.Session, repo.User, logger))

	// Apply routes
	wireAuth(r, handler.Auth)
	wireCatalog(r, handler.Catalog)
	wireReview(r, handler.Review, logger)
	wireAdmin(r, handler.Admin, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
