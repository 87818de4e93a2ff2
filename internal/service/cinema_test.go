package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/medialib/internal/apperr"
	"github.com/user/medialib/internal/model"
	"github.com/user/medialib/internal/store"
)

func newTestCinema(t *testing.T) *Cinema {
	t.Helper()
	return NewCinema(store.NewCinema())
}

func seedDirector(t *testing.T, s *Cinema) model.Director {
	t.Helper()
	director, err := s.CreateDirector(model.DirectorInput{Name: "Test Director"})
	require.NoError(t, err)
	return director
}

func seedMovie(t *testing.T, s *Cinema, directorID int, title, genre string) model.Movie {
	t.Helper()
	movie, err := s.CreateMovie(model.MovieInput{
		Title:          title,
		IMDBID:         "tt0113277",
		ReleaseDate:    model.NewDate(1995, time.December, 15),
		Genre:          genre,
		DirectorID:     directorID,
		RuntimeMinutes: 170,
	})
	require.NoError(t, err)
	return movie
}

func TestDeleteDirectorBlockedByMovies(t *testing.T) {
	s := newTestCinema(t)
	director := seedDirector(t, s)
	movie := seedMovie(t, s, director.ID, "Heat", "Crime")

	err := s.DeleteDirector(director.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Equal(t, "Cannot delete director with existing movies", err.Error())

	require.NoError(t, s.DeleteMovie(movie.ID))
	assert.NoError(t, s.DeleteDirector(director.ID))
}

func TestDeleteDirectorNotFound(t *testing.T) {
	s := newTestCinema(t)

	err := s.DeleteDirector(5)
	require.Error(t, err)
	assert.Equal(t, "Director not found", err.Error())
}

func TestCreateMovieChecksDirectorBeforeFields(t *testing.T) {
	s := newTestCinema(t)

	_, err := s.CreateMovie(model.MovieInput{DirectorID: 9})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, "Director not found", err.Error())
}

func TestMovieIDReassignedAfterDelete(t *testing.T) {
	s := newTestCinema(t)
	director := seedDirector(t, s)
	m1 := seedMovie(t, s, director.ID, "First", "Crime")
	seedMovie(t, s, director.ID, "Second", "Crime")

	require.NoError(t, s.DeleteMovie(m1.ID))

	m3 := seedMovie(t, s, director.ID, "Third", "Crime")
	assert.Equal(t, 2, m3.ID)

	movies, err := s.Movies("", 0, 0, 10)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Third", movies[0].Title)
}

func TestMoviesGenreFilterIsCaseInsensitive(t *testing.T) {
	s := newTestCinema(t)
	director := seedDirector(t, s)
	seedMovie(t, s, director.ID, "Heat", "Crime")
	seedMovie(t, s, director.ID, "Alien", "Horror")

	movies, err := s.Movies("CRIME", 0, 0, 10)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Heat", movies[0].Title)

	_, err = s.Movies("", 42, 0, 10)
	require.Error(t, err)
	assert.Equal(t, "Director not found", err.Error())
}

func TestDeleteMovieCascades(t *testing.T) {
	s := newTestCinema(t)
	director := seedDirector(t, s)
	movie := seedMovie(t, s, director.ID, "Doomed", "Crime")
	keeper := seedMovie(t, s, director.ID, "Keeper", "Crime")

	_, err := s.CreateReview(model.MovieReviewInput{Rating: model.NumericRating(4), Comment: strptr("tense and lean"), MovieID: movie.ID})
	require.NoError(t, err)

	list, err := s.CreateWatchList(model.WatchListInput{Name: "Queue", MovieIDs: []int{movie.ID, keeper.ID}})
	require.NoError(t, err)

	_, err = s.CreateHistory(model.ViewingHistoryInput{MovieID: movie.ID, Status: model.StatusInProgress, CurrentMinute: model.NumericMark(45)})
	require.NoError(t, err)

	require.NoError(t, s.DeleteMovie(movie.ID))

	assert.Empty(t, s.Reviews(0, 10))

	lists := s.WatchLists(0, 10)
	require.Len(t, lists, 1)
	assert.Equal(t, list.ID, lists[0].ID)
	assert.Equal(t, []int{keeper.ID}, lists[0].MovieIDs)

	assert.Empty(t, s.HistoryEntries(0, 10))
}

func TestCreateMovieReviewChecksMovieFirst(t *testing.T) {
	s := newTestCinema(t)

	_, err := s.CreateReview(model.MovieReviewInput{Rating: model.NumericRating(0), MovieID: 3})
	require.Error(t, err)
	assert.Equal(t, "Movie not found", err.Error())
}

func TestCreateWatchListChecksMembers(t *testing.T) {
	s := newTestCinema(t)

	_, err := s.CreateWatchList(model.WatchListInput{Name: "Dupes", MovieIDs: []int{1, 1}})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = s.CreateWatchList(model.WatchListInput{Name: "Missing", MovieIDs: []int{8}})
	require.Error(t, err)
	assert.Equal(t, "Movie with id 8 not found", err.Error())

	list, err := s.CreateWatchList(model.WatchListInput{Name: "Empty"})
	require.NoError(t, err)
	assert.NotNil(t, list.MovieIDs)
	assert.Empty(t, list.MovieIDs)
}

func TestDeleteWatchListNotFound(t *testing.T) {
	s := newTestCinema(t)

	err := s.DeleteWatchList(1)
	require.Error(t, err)
	assert.Equal(t, "Watch list not found", err.Error())
}

func TestMovieHistory(t *testing.T) {
	s := newTestCinema(t)
	director := seedDirector(t, s)
	m1 := seedMovie(t, s, director.ID, "One", "Crime")
	m2 := seedMovie(t, s, director.ID, "Two", "Crime")

	_, err := s.CreateHistory(model.ViewingHistoryInput{MovieID: m1.ID, Status: model.StatusCompleted})
	require.NoError(t, err)
	_, err = s.CreateHistory(model.ViewingHistoryInput{MovieID: m2.ID, Status: model.StatusDropped, Notes: strptr("not for me")})
	require.NoError(t, err)

	entries, err := s.MovieHistory(m2.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, m2.ID, entries[0].MovieID)

	_, err = s.MovieHistory(99)
	require.Error(t, err)
	assert.Equal(t, "Movie not found", err.Error())
}

func TestDeleteHistoryNotFound(t *testing.T) {
	s := newTestCinema(t)

	err := s.DeleteHistory(1)
	require.Error(t, err)
	assert.Equal(t, "Viewing history not found", err.Error())
}
