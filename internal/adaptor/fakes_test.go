package adaptor

import (
	"context"

	"movie-db/internal/data/entity"
	"movie-db/internal/data/repository"
	"movie-db/internal/dto/request"
	"movie-db/internal/dto/response"

	"go.uber.org/zap"
)

// Canned service doubles for handler tests

type fakeAuthService struct {
	user    *entity.User
	session *entity.Session
	err     error

	loggedOutToken string
}

func (f *fakeAuthService) Signup(ctx context.Context, req *request.SignupRequest, userAgent, ip string) (*entity.User, *entity.Session, error) {
	return f.user, f.session, f.err
}

func (f *fakeAuthService) Login(ctx context.Context, req *request.LoginRequest, userAgent, ip string) (*entity.User, *entity.Session, error) {
	return f.user, f.session, f.err
}

func (f *fakeAuthService) Logout(ctx context.Context, token string) error {
	f.loggedOutToken = token
	return f.err
}

type fakeCatalogService struct {
	home   *response.HomePage
	detail *response.MovieDetailPage
	err    error
}

func (f *fakeCatalogService) Home(ctx context.Context) (*response.HomePage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.home, nil
}

func (f *fakeCatalogService) MovieDetail(ctx context.Context, movieID int64, viewerID *int64) (*response.MovieDetailPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.detail, nil
}

type fakeReviewService struct {
	title string
	err   error

	lastUserID  int64
	lastMovieID int64
}

func (f *fakeReviewService) AddReview(ctx context.Context, userID, movieID int64, req *request.ReviewRequest) (string, error) {
	f.lastUserID, f.lastMovieID = userID, movieID
	return f.title, f.err
}

func (f *fakeReviewService) EditReview(ctx context.Context, userID, movieID int64, req *request.ReviewRequest) (string, error) {
	f.lastUserID, f.lastMovieID = userID, movieID
	return f.title, f.err
}

func (f *fakeReviewService) DeleteReview(ctx context.Context, userID, movieID int64) (string, error) {
	f.lastUserID, f.lastMovieID = userID, movieID
	return f.title, f.err
}

type fakeAdminService struct {
	movies  *response.PaginatedResponse[response.AdminMovieRow]
	movie   *response.MovieResponse
	infos   *response.PaginatedResponse[response.AdminMovieInfoRow]
	info    *response.MovieInfoResponse
	reviews *response.PaginatedResponse[response.AdminReviewRow]
	err     error

	lastMovieFilter  repository.MovieFilter
	lastReviewFilter repository.ReviewFilter
	lastPage         request.PaginatedRequest
}

func (f *fakeAdminService) ListMovies(ctx context.Context, filter repository.MovieFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.AdminMovieRow], error) {
	f.lastMovieFilter, f.lastPage = filter, page
	return f.movies, f.err
}

func (f *fakeAdminService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	return f.movie, f.err
}

func (f *fakeAdminService) UpdateMovie(ctx context.Context, movieID int64, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	return f.movie, f.err
}

func (f *fakeAdminService) DeleteMovie(ctx context.Context, movieID int64) error {
	return f.err
}

func (f *fakeAdminService) ListMovieInfo(ctx context.Context, filter repository.MovieInfoFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.AdminMovieInfoRow], error) {
	f.lastPage = page
	return f.infos, f.err
}

func (f *fakeAdminService) CreateMovieInfo(ctx context.Context, req *request.MovieInfoRequest) (*response.MovieInfoResponse, error) {
	return f.info, f.err
}

func (f *fakeAdminService) UpdateMovieInfo(ctx context.Context, infoID int64, req *request.MovieInfoUpdateRequest) (*response.MovieInfoResponse, error) {
	return f.info, f.err
}

func (f *fakeAdminService) DeleteMovieInfo(ctx context.Context, infoID int64) error {
	return f.err
}

func (f *fakeAdminService) ListReviews(ctx context.Context, filter repository.ReviewFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.AdminReviewRow], error) {
	f.lastReviewFilter, f.lastPage = filter, page
	return f.reviews, f.err
}

func (f *fakeAdminService) DeleteReview(ctx context.Context, reviewID int64) error {
	return f.err
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
