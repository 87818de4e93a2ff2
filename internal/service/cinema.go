package service

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/user/medialib/internal/apperr"
	"github.com/user/medialib/internal/model"
	"github.com/user/medialib/internal/store"
	"github.com/user/medialib/internal/validate"
)

// Cinema owns the cinema domain's state. It mirrors Library with movies in
// place of books.
type Cinema struct {
	mu      sync.RWMutex
	store   *store.Cinema
	filters *store.FilterCache[[]model.Movie]
}

// NewCinema wires the service to its store.
func NewCinema(st *store.Cinema) *Cinema {
	return &Cinema{
		store:   st,
		filters: store.NewFilterCache[[]model.Movie](128, time.Minute),
	}
}

// Directors lists directors in ID order.
func (s *Cinema) Directors(skip, limit int) []model.Director {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginate(s.store.Directors.List(), skip, limit)
}

// CreateDirector validates and stores a new director (max+1 ID policy).
func (s *Cinema) CreateDirector(in model.DirectorInput) (model.Director, error) {
	if err := validate.Struct(in); err != nil {
		return model.Director{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	director := model.Director{
		ID:         s.store.Directors.NextByMax(),
		Name:       strings.TrimSpace(in.Name),
		Bio:        in.Bio,
		Timestamps: model.NewTimestamps(),
	}
	s.store.Directors.Put(director.ID, director)
	return director, nil
}

// DeleteDirector removes a director unless any movie references them.
func (s *Cinema) DeleteDirector(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.store.Directors.Has(id) {
		return apperr.NotFound("Director not found")
	}
	for _, movie := range s.store.Movies.List() {
		if movie.DirectorID == id {
			return apperr.Conflict("Cannot delete director with existing movies")
		}
	}
	s.store.Directors.Delete(id)
	return nil
}

// Movies lists movies, optionally filtered by genre (case-insensitive) and
// director. A non-zero directorID must reference an existing director.
func (s *Cinema) Movies(genre string, directorID, skip, limit int) ([]model.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if directorID != 0 && !s.store.Directors.Has(directorID) {
		return nil, apperr.NotFound("Director not found")
	}
	movies := s.store.Movies.List()
	if genre == "" && directorID == 0 {
		return paginate(movies, skip, limit), nil
	}
	key := filterKey(genre, directorID)
	filtered, ok := s.filters.Get(key)
	if !ok {
		filtered = make([]model.Movie, 0, len(movies))
		for _, movie := range movies {
			if genre != "" && !strings.EqualFold(movie.Genre, genre) {
				continue
			}
			if directorID != 0 && movie.DirectorID != directorID {
				continue
			}
			filtered = append(filtered, movie)
		}
		s.filters.Set(key, filtered)
	}
	return paginate(filtered, skip, limit), nil
}

// Movie fetches one movie by ID.
func (s *Cinema) Movie(id int) (model.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	movie, ok := s.store.Movies.Get(id)
	if !ok {
		return model.Movie{}, apperr.NotFound("Movie not found")
	}
	return movie, nil
}

// CreateMovie stores a new movie. The director reference is checked before
// field validation; movies use the count+1 ID policy.
func (s *Cinema) CreateMovie(in model.MovieInput) (model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.store.Directors.Has(in.DirectorID) {
		return model.Movie{}, apperr.NotFound("Director not found")
	}
	if err := validate.Struct(in); err != nil {
		return model.Movie{}, err
	}
	movie := model.Movie{
		ID:             s.store.Movies.NextByCount(),
		Title:          strings.TrimSpace(in.Title),
		Description:    in.Description,
		IMDBID:         in.IMDBID,
		ReleaseDate:    in.ReleaseDate,
		Genre:          strings.TrimSpace(in.Genre),
		DirectorID:     in.DirectorID,
		RuntimeMinutes: in.RuntimeMinutes,
		Timestamps:     model.NewTimestamps(),
	}
	s.store.Movies.Put(movie.ID, movie)
	s.filters.Clear()
	return movie, nil
}

// DeleteMovie removes a movie and cascades: its reviews and viewing history
// are deleted and its ID is pulled from every watch list.
func (s *Cinema) DeleteMovie(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.store.Movies.Has(id) {
		return apperr.NotFound("Movie not found")
	}
	s.store.Reviews.DeleteWhere(func(r model.MovieReview) bool { return r.MovieID == id })
	for _, list := range s.store.WatchLists.List() {
		if !slices.Contains(list.MovieIDs, id) {
			continue
		}
		list.MovieIDs = withoutID(list.MovieIDs, id)
		s.store.WatchLists.Put(list.ID, list)
	}
	s.store.History.DeleteWhere(func(h model.ViewingHistory) bool { return h.MovieID == id })
	s.store.Movies.Delete(id)
	s.filters.Clear()
	return nil
}

// Reviews lists movie reviews in ID order.
func (s *Cinema) Reviews(skip, limit int) []model.MovieReview {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginate(s.store.Reviews.List(), skip, limit)
}

// Review fetches one review by ID.
func (s *Cinema) Review(id int) (model.MovieReview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	review, ok := s.store.Reviews.Get(id)
	if !ok {
		return model.MovieReview{}, apperr.NotFound("Review not found")
	}
	return review, nil
}

// CreateReview stores a new review after checking the movie reference, then
// the rating, then the comment.
func (s *Cinema) CreateReview(in model.MovieReviewInput) (model.MovieReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.store.Movies.Has(in.MovieID) {
		return model.MovieReview{}, apperr.NotFound("Movie not found")
	}
	if err := validate.RatingField(in.Rating); err != nil {
		return model.MovieReview{}, err
	}
	if err := validate.CommentField(in.Comment); err != nil {
		return model.MovieReview{}, err
	}
	review := model.MovieReview{
		ID:         s.store.Reviews.NextByCount(),
		Rating:     in.Rating,
		Comment:    in.Comment,
		MovieID:    in.MovieID,
		Timestamps: model.NewTimestamps(),
	}
	s.store.Reviews.Put(review.ID, review)
	return review, nil
}

// DeleteReview removes one review.
func (s *Cinema) DeleteReview(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.store.Reviews.Has(id) {
		return apperr.NotFound("Review not found")
	}
	s.store.Reviews.Delete(id)
	return nil
}

// WatchLists lists watch lists in ID order.
func (s *Cinema) WatchLists(skip, limit int) []model.WatchList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginate(s.store.WatchLists.List(), skip, limit)
}

// CreateWatchList stores a new list. Membership constraints are checked
// before member existence, matching the reading-list behavior.
func (s *Cinema) CreateWatchList(in model.WatchListInput) (model.WatchList, error) {
	if err := validate.Struct(in); err != nil {
		return model.WatchList{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, movieID := range in.MovieIDs {
		if !s.store.Movies.Has(movieID) {
			return model.WatchList{}, apperr.NotFound("Movie with id %d not found", movieID)
		}
	}
	movieIDs := in.MovieIDs
	if movieIDs == nil {
		movieIDs = []int{}
	}
	list := model.WatchList{
		ID:          s.store.WatchLists.NextByCount(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		MovieIDs:    movieIDs,
		Timestamps:  model.NewTimestamps(),
	}
	s.store.WatchLists.Put(list.ID, list)
	return list, nil
}

// DeleteWatchList removes one list. Member movies are untouched.
func (s *Cinema) DeleteWatchList(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.store.WatchLists.Has(id) {
		return apperr.NotFound("Watch list not found")
	}
	s.store.WatchLists.Delete(id)
	return nil
}

// HistoryEntries lists viewing history in ID order.
func (s *Cinema) HistoryEntries(skip, limit int) []model.ViewingHistory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginate(s.store.History.List(), skip, limit)
}

// CreateHistory stores a new viewing-history entry after checking the movie
// reference.
func (s *Cinema) CreateHistory(in model.ViewingHistoryInput) (model.ViewingHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.store.Movies.Has(in.MovieID) {
		return model.ViewingHistory{}, apperr.NotFound("Movie not found")
	}
	if err := validate.Struct(in); err != nil {
		return model.ViewingHistory{}, err
	}
	entry := model.ViewingHistory{
		ID:             s.store.History.NextByCount(),
		MovieID:        in.MovieID,
		Status:         in.Status,
		CurrentMinute:  in.CurrentMinute,
		RuntimeMinutes: in.RuntimeMinutes,
		Notes:          in.Notes,
		Timestamps:     model.NewTimestamps(),
	}
	s.store.History.Put(entry.ID, entry)
	return entry, nil
}

// MovieHistory lists every history entry for one movie.
func (s *Cinema) MovieHistory(movieID int) ([]model.ViewingHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.store.Movies.Has(movieID) {
		return nil, apperr.NotFound("Movie not found")
	}
	entries := []model.ViewingHistory{}
	for _, h := range s.store.History.List() {
		if h.MovieID == movieID {
			entries = append(entries, h)
		}
	}
	return entries, nil
}

// DeleteHistory removes one history entry.
func (s *Cinema) DeleteHistory(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.store.History.Has(id) {
		return apperr.NotFound("Viewing history not found")
	}
	s.store.History.Delete(id)
	return nil
}
