package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"movie-db/internal/data/entity"
	"movie-db/internal/data/repository"
	"movie-db/pkg/utils"

	"go.uber.org/zap"
)

// In-memory repositories for service tests. They mirror the behaviour the
// SQL layer promises: newest-first ordering, nil for absent rows, and the
// duplicate sentinels on unique violations.

type fakeRepos struct {
	users    *fakeUserRepo
	sessions *fakeSessionRepo
	movies   *fakeMovieRepo
	infos    *fakeMovieInfoRepo
	reviews  *fakeReviewRepo
	repo     *repository.Repository
}

func newFakeRepos() *fakeRepos {
	f := &fakeRepos{
		users:    &fakeUserRepo{users: map[int64]entity.User{}},
		sessions: &fakeSessionRepo{sessions: map[int64]entity.Session{}},
		movies:   &fakeMovieRepo{movies: map[int64]entity.Movie{}},
		infos:    &fakeMovieInfoRepo{infos: map[int64]entity.MovieInfo{}},
		reviews:  &fakeReviewRepo{reviews: map[int64]entity.Review{}},
	}
	f.movies.infos = f.infos
	f.repo = &repository.Repository{
		User:      f.users,
		Session:   f.sessions,
		Movie:     f.movies,
		MovieInfo: f.infos,
		Review:    f.reviews,
	}
	return f
}

func testConfig() *utils.Config {
	return &utils.Config{
		Session: utils.SessionConfig{
			Hours:        12,
			RememberDays: 14,
		},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// seedMovie inserts a movie directly, bypassing the services
func (f *fakeRepos) seedMovie(title string) *entity.Movie {
	movie := entity.Movie{
		Base: entity.Base{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       title,
		Description: "A test movie",
	}
	f.movies.nextID++
	movie.ID = f.movies.nextID
	f.movies.movies[movie.ID] = movie
	return &movie
}

func (f *fakeRepos) seedUser(username string) *entity.User {
	user := entity.User{
		Base: entity.Base{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     username,
		PasswordHash: "x",
		Role:         entity.RoleMember,
	}
	f.users.nextID++
	user.ID = f.users.nextID
	f.users.users[user.ID] = user
	return &user
}

// ==================== USERS ====================

type fakeUserRepo struct {
	nextID int64
	users  map[int64]entity.User

	// concurrentInsert simulates another request writing between the
	// service's pre-check and its insert: lookups miss, the insert still
	// hits the unique constraint
	concurrentInsert bool
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if r.concurrentInsert {
		return nil, nil
	}
	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

// ==================== SESSIONS ====================

type fakeSessionRepo struct {
	nextID   int64
	sessions map[int64]entity.Session
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	r.nextID++
	session.ID = r.nextID
	r.sessions[session.ID] = *session
	return nil
}

func (r *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	for _, session := range r.sessions {
		if session.Token.String() == token && session.RevokedAt == nil && session.ExpiresAt.After(time.Now()) {
			s := session
			return &s, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	for id, session := range r.sessions {
		if session.Token.String() == token && session.RevokedAt == nil {
			now := time.Now()
			session.RevokedAt = &now
			r.sessions[id] = session
		}
	}
	return nil
}

func (r *fakeSessionRepo) RevokeAllUserSessions(ctx context.Context, userID int64) error {
	for id, session := range r.sessions {
		if session.UserID == userID && session.RevokedAt == nil {
			now := time.Now()
			session.RevokedAt = &now
			r.sessions[id] = session
		}
	}
	return nil
}

func (r *fakeSessionRepo) CleanExpiredSessions(ctx context.Context) error {
	for id, session := range r.sessions {
		if session.ExpiresAt.Before(time.Now()) {
			delete(r.sessions, id)
		}
	}
	return nil
}

// ==================== MOVIES ====================

type fakeMovieRepo struct {
	nextID int64
	movies map[int64]entity.Movie

	// infos backs the year filter, which matches against the joined
	// details row like the SQL does
	infos *fakeMovieInfoRepo
}

func (r *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	for _, existing := range r.movies {
		if existing.Title == movie.Title {
			return repository.ErrDuplicateTitle
		}
	}
	r.nextID++
	movie.ID = r.nextID
	r.movies[movie.ID] = *movie
	return nil
}

func (r *fakeMovieRepo) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	movie, ok := r.movies[id]
	if !ok {
		return nil, nil
	}
	return &movie, nil
}

func (r *fakeMovieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	movies := make([]*entity.Movie, 0, len(r.movies))
	for _, movie := range r.movies {
		m := movie
		movies = append(movies, &m)
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].ID > movies[j].ID })
	return movies, nil
}

func (r *fakeMovieRepo) Search(ctx context.Context, filter repository.MovieFilter, limit, offset int) ([]*entity.Movie, error) {
	all, _ := r.FindAll(ctx)
	matched := make([]*entity.Movie, 0, len(all))
	for _, movie := range all {
		if !matchesQuery(filter.Query, movie.Title, movie.Description) {
			continue
		}
		if filter.Year != nil && !r.hasDetailsForYear(movie.ID, *filter.Year) {
			continue
		}
		matched = append(matched, movie)
	}
	return slicePage(matched, limit, offset), nil
}

func (r *fakeMovieRepo) hasDetailsForYear(movieID int64, year int) bool {
	for _, info := range r.infos.infos {
		if info.MovieID == movieID && info.Year == year {
			return true
		}
	}
	return false
}

func (r *fakeMovieRepo) CountSearch(ctx context.Context, filter repository.MovieFilter) (int64, error) {
	matched, _ := r.Search(ctx, filter, len(r.movies)+1, 0)
	return int64(len(matched)), nil
}

func (r *fakeMovieRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(r.movies)), nil
}

func (r *fakeMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	for _, existing := range r.movies {
		if existing.Title == movie.Title && existing.ID != movie.ID {
			return repository.ErrDuplicateTitle
		}
	}
	r.movies[movie.ID] = *movie
	return nil
}

func (r *fakeMovieRepo) Delete(ctx context.Context, id int64) error {
	delete(r.movies, id)
	return nil
}

// ==================== MOVIE INFO ====================

type fakeMovieInfoRepo struct {
	nextID int64
	infos  map[int64]entity.MovieInfo
}

func (r *fakeMovieInfoRepo) Create(ctx context.Context, info *entity.MovieInfo) error {
	r.nextID++
	info.ID = r.nextID
	r.infos[info.ID] = *info
	return nil
}

func (r *fakeMovieInfoRepo) FindByID(ctx context.Context, id int64) (*entity.MovieInfo, error) {
	info, ok := r.infos[id]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

func (r *fakeMovieInfoRepo) FindByMovieID(ctx context.Context, movieID int64) (*entity.MovieInfo, error) {
	var newest *entity.MovieInfo
	for _, info := range r.infos {
		if info.MovieID != movieID {
			continue
		}
		i := info
		if newest == nil || i.ID > newest.ID {
			newest = &i
		}
	}
	return newest, nil
}

func (r *fakeMovieInfoRepo) Search(ctx context.Context, filter repository.MovieInfoFilter, limit, offset int) ([]*entity.MovieInfo, error) {
	infos := make([]*entity.MovieInfo, 0, len(r.infos))
	for _, info := range r.infos {
		i := info
		if filter.Director != "" && !strings.EqualFold(info.Director, filter.Director) {
			continue
		}
		if filter.Year != nil && info.Year != *filter.Year {
			continue
		}
		if !matchesQuery(filter.Query, info.Director, info.Actor1, info.Actor2, info.Actor3, info.Actor4) {
			continue
		}
		infos = append(infos, &i)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID > infos[j].ID })
	return slicePage(infos, limit, offset), nil
}

func (r *fakeMovieInfoRepo) CountSearch(ctx context.Context, filter repository.MovieInfoFilter) (int64, error) {
	matched, _ := r.Search(ctx, filter, len(r.infos)+1, 0)
	return int64(len(matched)), nil
}

func (r *fakeMovieInfoRepo) Update(ctx context.Context, info *entity.MovieInfo) error {
	r.infos[info.ID] = *info
	return nil
}

func (r *fakeMovieInfoRepo) Delete(ctx context.Context, id int64) error {
	delete(r.infos, id)
	return nil
}

// ==================== REVIEWS ====================

type fakeReviewRepo struct {
	nextID  int64
	reviews map[int64]entity.Review

	// concurrentInsert hides existing rows from FindByUserAndMovie while
	// Create still enforces the unique constraint, reproducing a lost
	// duplicate race
	concurrentInsert bool
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	for _, existing := range r.reviews {
		if existing.UserID == review.UserID && existing.MovieID == review.MovieID {
			return repository.ErrDuplicateReview
		}
	}
	r.nextID++
	review.ID = r.nextID
	r.reviews[review.ID] = *review
	return nil
}

func (r *fakeReviewRepo) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	review, ok := r.reviews[id]
	if !ok {
		return nil, nil
	}
	return &review, nil
}

func (r *fakeReviewRepo) FindByUserAndMovie(ctx context.Context, userID, movieID int64) (*entity.Review, error) {
	if r.concurrentInsert {
		return nil, nil
	}
	for _, review := range r.reviews {
		if review.UserID == userID && review.MovieID == movieID {
			rv := review
			return &rv, nil
		}
	}
	return nil, nil
}

func (r *fakeReviewRepo) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error) {
	reviews := make([]*entity.Review, 0)
	for _, review := range r.reviews {
		if review.MovieID == movieID {
			rv := review
			reviews = append(reviews, &rv)
		}
	}
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

func (r *fakeReviewRepo) CountByMovieID(ctx context.Context, movieID int64) (int64, error) {
	reviews, _ := r.FindByMovieID(ctx, movieID)
	return int64(len(reviews)), nil
}

func (r *fakeReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	stored, ok := r.reviews[review.ID]
	if !ok {
		return nil
	}
	// Only the mutable columns change, like the SQL layer
	stored.Rating = review.Rating
	stored.ReviewText = review.ReviewText
	stored.UpdatedAt = review.UpdatedAt
	r.reviews[review.ID] = stored
	return nil
}

func (r *fakeReviewRepo) Delete(ctx context.Context, id int64) error {
	delete(r.reviews, id)
	return nil
}

func (r *fakeReviewRepo) Search(ctx context.Context, filter repository.ReviewFilter, limit, offset int) ([]*entity.Review, error) {
	reviews := make([]*entity.Review, 0)
	for _, review := range r.reviews {
		if filter.Rating != nil && review.Rating != *filter.Rating {
			continue
		}
		if filter.MovieID != nil && review.MovieID != *filter.MovieID {
			continue
		}
		if filter.CreatedSince != nil && review.CreatedAt.Before(*filter.CreatedSince) {
			continue
		}
		rv := review
		reviews = append(reviews, &rv)
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ID > reviews[j].ID })
	return slicePage(reviews, limit, offset), nil
}

func (r *fakeReviewRepo) CountSearch(ctx context.Context, filter repository.ReviewFilter) (int64, error) {
	matched, _ := r.Search(ctx, filter, len(r.reviews)+1, 0)
	return int64(len(matched)), nil
}

// ==================== HELPERS ====================

func matchesQuery(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func slicePage[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
