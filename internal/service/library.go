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

// Library owns the library domain's state. The mutex serializes mutations so
// multi-table cascades stay atomic with respect to concurrent requests.
type Library struct {
	mu      sync.RWMutex
	store   *store.Library
	filters *store.FilterCache[[]model.Book]
}

// NewLibrary wires the service to its store.
func NewLibrary(st *store.Library) *Library {
	return &Library{
		store:   st,
		filters: store.NewFilterCache[[]model.Book](128, time.Minute),
	}
}

// Authors lists authors in ID order.
func (s *Library) Authors(skip, limit int) []model.Author {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginate(s.store.Authors.List(), skip, limit)
}

// CreateAuthor validates and stores a new author. Authors use the max+1 ID
// policy.
func (s *Library) CreateAuthor(in model.AuthorInput) (model.Author, error) {
	if err := validate.Struct(in); err != nil {
		return model.Author{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	author := model.Author{
		ID:         s.store.Authors.NextByMax(),
		Name:       strings.TrimSpace(in.Name),
		Bio:        in.Bio,
		Timestamps: model.NewTimestamps(),
	}
	s.store.Authors.Put(author.ID, author)
	return author, nil
}

// DeleteAuthor removes an author. The delete is blocked while any book
// references the author.
func (s *Library) DeleteAuthor(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.store.Authors.Has(id) {
		return apperr.NotFound("Author not found")
	}
	for _, book := range s.store.Books.List() {
		if book.AuthorID == id {
			return apperr.Conflict("Cannot delete author with existing books")
		}
	}
	s.store.Authors.Delete(id)
	return nil
}

// Books lists books, optionally filtered by genre (case-insensitive) and
// author. A non-zero authorID must reference an existing author.
func (s *Library) Books(genre string, authorID, skip, limit int) ([]model.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if authorID != 0 && !s.store.Authors.Has(authorID) {
		return nil, apperr.NotFound("Author not found")
	}
	books := s.store.Books.List()
	if genre == "" && authorID == 0 {
		return paginate(books, skip, limit), nil
	}
	key := filterKey(genre, authorID)
	filtered, ok := s.filters.Get(key)
	if !ok {
		filtered = make([]model.Book, 0, len(books))
		for _, book := range books {
			if genre != "" && !strings.EqualFold(book.Genre, genre) {
				continue
			}
			if authorID != 0 && book.AuthorID != authorID {
				continue
			}
			filtered = append(filtered, book)
		}
		s.filters.Set(key, filtered)
	}
	return paginate(filtered, skip, limit), nil
}

// Book fetches one book by ID.
func (s *Library) Book(id int) (model.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	book, ok := s.store.Books.Get(id)
	if !ok {
		return model.Book{}, apperr.NotFound("Book not found")
	}
	return book, nil
}

// CreateBook stores a new book. The author reference is checked before field
// validation, so a dangling author_id surfaces as NotFound even when fields
// are also invalid. Books use the count+1 ID policy.
func (s *Library) CreateBook(in model.BookInput) (model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.store.Authors.Has(in.AuthorID) {
		return model.Book{}, apperr.NotFound("Author not found")
	}
	if err := validate.Struct(in); err != nil {
		return model.Book{}, err
	}
	book := model.Book{
		ID:              s.store.Books.NextByCount(),
		Title:           strings.TrimSpace(in.Title),
		Description:     in.Description,
		ISBN:            in.ISBN,
		PublicationDate: in.PublicationDate,
		Genre:           strings.TrimSpace(in.Genre),
		AuthorID:        in.AuthorID,
		TotalPages:      in.TotalPages,
		Timestamps:      model.NewTimestamps(),
	}
	s.store.Books.Put(book.ID, book)
	s.filters.Clear()
	return book, nil
}

// DeleteBook removes a book and cascades: its reviews and progress entries
// are deleted and its ID is pulled from every reading list. Lists survive,
// possibly empty.
func (s *Library) DeleteBook(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.store.Books.Has(id) {
		return apperr.NotFound("Book not found")
	}
	s.store.Reviews.DeleteWhere(func(r model.BookReview) bool { return r.BookID == id })
	for _, list := range s.store.ReadingLists.List() {
		if !slices.Contains(list.BookIDs, id) {
			continue
		}
		list.BookIDs = withoutID(list.BookIDs, id)
		s.store.ReadingLists.Put(list.ID, list)
	}
	s.store.Progress.DeleteWhere(func(p model.ReadingProgress) bool { return p.BookID == id })
	s.store.Books.Delete(id)
	s.filters.Clear()
	return nil
}

// Reviews lists book reviews in ID order.
func (s *Library) Reviews(skip, limit int) []model.BookReview {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginate(s.store.Reviews.List(), skip, limit)
}

// Review fetches one review by ID.
func (s *Library) Review(id int) (model.BookReview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	review, ok := s.store.Reviews.Get(id)
	if !ok {
		return model.BookReview{}, apperr.NotFound("Review not found")
	}
	return review, nil
}

// CreateReview stores a new review after checking the book reference, then
// the rating, then the comment.
func (s *Library) CreateReview(in model.BookReviewInput) (model.BookReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.store.Books.Has(in.BookID) {
		return model.BookReview{}, apperr.NotFound("Book not found")
	}
	if err := validate.RatingField(in.Rating); err != nil {
		return model.BookReview{}, err
	}
	if err := validate.CommentField(in.Comment); err != nil {
		return model.BookReview{}, err
	}
	review := model.BookReview{
		ID:         s.store.Reviews.NextByCount(),
		Rating:     in.Rating,
		Comment:    in.Comment,
		BookID:     in.BookID,
		Timestamps: model.NewTimestamps(),
	}
	s.store.Reviews.Put(review.ID, review)
	return review, nil
}

// DeleteReview removes one review.
func (s *Library) DeleteReview(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.store.Reviews.Has(id) {
		return apperr.NotFound("Review not found")
	}
	s.store.Reviews.Delete(id)
	return nil
}

// ReadingLists lists reading lists in ID order.
func (s *Library) ReadingLists(skip, limit int) []model.ReadingList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginate(s.store.ReadingLists.List(), skip, limit)
}

// CreateReadingList stores a new list. Membership constraints (cap and
// duplicates) are checked before member existence, so duplicate IDs fail
// validation whether or not the books exist.
func (s *Library) CreateReadingList(in model.ReadingListInput) (model.ReadingList, error) {
	if err := validate.Struct(in); err != nil {
		return model.ReadingList{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, bookID := range in.BookIDs {
		if !s.store.Books.Has(bookID) {
			return model.ReadingList{}, apperr.NotFound("Book with id %d not found", bookID)
		}
	}
	bookIDs := in.BookIDs
	if bookIDs == nil {
		bookIDs = []int{}
	}
	list := model.ReadingList{
		ID:          s.store.ReadingLists.NextByCount(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		BookIDs:     bookIDs,
		Timestamps:  model.NewTimestamps(),
	}
	s.store.ReadingLists.Put(list.ID, list)
	return list, nil
}

// DeleteReadingList removes one list. Member books are untouched.
func (s *Library) DeleteReadingList(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.store.ReadingLists.Has(id) {
		return apperr.NotFound("Reading list not found")
	}
	s.store.ReadingLists.Delete(id)
	return nil
}

// ProgressEntries lists reading progress in ID order.
func (s *Library) ProgressEntries(skip, limit int) []model.ReadingProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginate(s.store.Progress.List(), skip, limit)
}

// CreateProgress stores a new progress entry after checking the book
// reference.
func (s *Library) CreateProgress(in model.ReadingProgressInput) (model.ReadingProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.store.Books.Has(in.BookID) {
		return model.ReadingProgress{}, apperr.NotFound("Book not found")
	}
	if err := validate.Struct(in); err != nil {
		return model.ReadingProgress{}, err
	}
	progress := model.ReadingProgress{
		ID:          s.store.Progress.NextByCount(),
		BookID:      in.BookID,
		Status:      in.Status,
		CurrentPage: in.CurrentPage,
		TotalPages:  in.TotalPages,
		Notes:       in.Notes,
		Timestamps:  model.NewTimestamps(),
	}
	s.store.Progress.Put(progress.ID, progress)
	return progress, nil
}

// BookProgress lists every progress entry for one book.
func (s *Library) BookProgress(bookID int) ([]model.ReadingProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.store.Books.Has(bookID) {
		return nil, apperr.NotFound("Book not found")
	}
	entries := []model.ReadingProgress{}
	for _, p := range s.store.Progress.List() {
		if p.BookID == bookID {
			entries = append(entries, p)
		}
	}
	return entries, nil
}

// DeleteProgress removes one progress entry.
func (s *Library) DeleteProgress(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.store.Progress.Has(id) {
		return apperr.NotFound("Reading progress not found")
	}
	s.store.Progress.Delete(id)
	return nil
}
