package usecase

import (
	"context"
	"fmt"
	"testing"

	"movie-db/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeListsNewestFirstWithCounts(t *testing.T) {
	f := newFakeRepos()
	svc := NewCatalogService(f.repo, testLogger())

	f.seedMovie("First Movie")
	f.seedMovie("Second Movie")
	f.seedUser("alice")
	f.seedUser("bob")

	page, err := svc.Home(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Movie Database", page.Title)
	require.Len(t, page.Movies, 2)
	assert.Equal(t, "Second Movie", page.Movies[0].Title)
	assert.Equal(t, "First Movie", page.Movies[1].Title)
	assert.Equal(t, int64(2), page.TotalMovies)
	assert.Equal(t, int64(2), page.TotalUsers)
}

func TestHomeWithEmptyCatalog(t *testing.T) {
	f := newFakeRepos()
	svc := NewCatalogService(f.repo, testLogger())

	page, err := svc.Home(context.Background())
	require.NoError(t, err)

	assert.Empty(t, page.Movies)
	assert.Equal(t, int64(0), page.TotalMovies)
	assert.Equal(t, int64(0), page.TotalUsers)
}

func TestMovieDetailAverageRatingRounding(t *testing.T) {
	f := newFakeRepos()
	catalog := NewCatalogService(f.repo, testLogger())
	reviews := NewReviewService(f.repo, testLogger())

	movie := f.seedMovie("Rated Movie")
	for i, rating := range []int{4, 5, 5} {
		user := f.seedUser(fmt.Sprintf("reviewer%d", i))
		_, err := reviews.AddReview(context.Background(), user.ID, movie.ID, &request.ReviewRequest{Rating: rating})
		require.NoError(t, err)
	}

	page, err := catalog.MovieDetail(context.Background(), movie.ID, nil)
	require.NoError(t, err)

	// 14 / 3 rounds to one decimal place
	require.NotNil(t, page.AverageRating)
	assert.Equal(t, 4.7, *page.AverageRating)
	assert.Equal(t, int64(3), page.TotalReviews)
}

func TestMovieDetailAverageRatingTieRoundsToEven(t *testing.T) {
	f := newFakeRepos()
	catalog := NewCatalogService(f.repo, testLogger())
	reviews := NewReviewService(f.repo, testLogger())

	movie := f.seedMovie("Split Movie")
	for i, rating := range []int{4, 4, 4, 5} {
		user := f.seedUser(fmt.Sprintf("reviewer%d", i))
		_, err := reviews.AddReview(context.Background(), user.ID, movie.ID, &request.ReviewRequest{Rating: rating})
		require.NoError(t, err)
	}

	page, err := catalog.MovieDetail(context.Background(), movie.ID, nil)
	require.NoError(t, err)

	// 17 / 4 = 4.25 lands on the tie and rounds down to the even digit
	require.NotNil(t, page.AverageRating)
	assert.Equal(t, 4.2, *page.AverageRating)
}

func TestMovieDetailWithoutReviews(t *testing.T) {
	f := newFakeRepos()
	svc := NewCatalogService(f.repo, testLogger())

	movie := f.seedMovie("Quiet Movie")

	page, err := svc.MovieDetail(context.Background(), movie.ID, nil)
	require.NoError(t, err)

	// No reviews means no average, not a zero average
	assert.Nil(t, page.AverageRating)
	assert.Empty(t, page.Reviews)
	assert.Equal(t, int64(0), page.TotalReviews)

	// Missing details are a normal state
	assert.Nil(t, page.Details)
	assert.Equal(t, "Quiet Movie - Movie Database", page.Title)
}

func TestMovieDetailIncludesViewerReview(t *testing.T) {
	f := newFakeRepos()
	catalog := NewCatalogService(f.repo, testLogger())
	reviews := NewReviewService(f.repo, testLogger())

	movie := f.seedMovie("Shared Movie")
	viewer := f.seedUser("viewer")
	other := f.seedUser("other")

	_, err := reviews.AddReview(context.Background(), viewer.ID, movie.ID, &request.ReviewRequest{Rating: 5})
	require.NoError(t, err)
	_, err = reviews.AddReview(context.Background(), other.ID, movie.ID, &request.ReviewRequest{Rating: 2})
	require.NoError(t, err)

	page, err := catalog.MovieDetail(context.Background(), movie.ID, &viewer.ID)
	require.NoError(t, err)

	require.NotNil(t, page.UserReview)
	assert.Equal(t, 5, page.UserReview.Rating)
	assert.Len(t, page.Reviews, 2)
}

func TestMovieDetailAnonymousViewerHasNoOwnReview(t *testing.T) {
	f := newFakeRepos()
	catalog := NewCatalogService(f.repo, testLogger())
	reviews := NewReviewService(f.repo, testLogger())

	movie := f.seedMovie("Public Movie")
	user := f.seedUser("someone")
	_, err := reviews.AddReview(context.Background(), user.ID, movie.ID, &request.ReviewRequest{Rating: 3})
	require.NoError(t, err)

	page, err := catalog.MovieDetail(context.Background(), movie.ID, nil)
	require.NoError(t, err)

	assert.Nil(t, page.UserReview)
	assert.Len(t, page.Reviews, 1)
}

func TestMovieDetailUnknownMovie(t *testing.T) {
	f := newFakeRepos()
	svc := NewCatalogService(f.repo, testLogger())

	_, err := svc.MovieDetail(context.Background(), 999, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "movie not found")
}
