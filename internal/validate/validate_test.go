package validate

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/medialib/internal/apperr"
	"github.com/user/medialib/internal/model"
)

func strptr(s string) *string { return &s }

func validBookInput() model.BookInput {
	return model.BookInput{
		Title:           "The Go Programming Language",
		ISBN:            "9780134190440",
		PublicationDate: model.NewDate(2015, time.October, 26),
		Genre:           "Programming",
		AuthorID:        1,
		TotalPages:      380,
	}
}

func validMovieInput() model.MovieInput {
	return model.MovieInput{
		Title:          "Heat",
		IMDBID:         "tt0113277",
		ReleaseDate:    model.NewDate(1995, time.December, 15),
		Genre:          "Crime",
		DirectorID:     1,
		RuntimeMinutes: 170,
	}
}

func assertValidation(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindValidation, ae.Kind)
	assert.Equal(t, message, ae.Message)
}

func TestAuthorInput(t *testing.T) {
	tests := []struct {
		name    string
		in      model.AuthorInput
		wantErr string
	}{
		{"valid", model.AuthorInput{Name: "Ursula K. Le Guin"}, ""},
		{"valid with bio", model.AuthorInput{Name: "Ted Chiang", Bio: strptr("Short fiction author")}, ""},
		{"name too short", model.AuthorInput{Name: "A"}, "Name must be at least 2 characters long"},
		{"name whitespace only", model.AuthorInput{Name: "  a  "}, "Name must be at least 2 characters long"},
		{"bio too long", model.AuthorInput{Name: "Someone", Bio: strptr(strings.Repeat("x", 5001))}, "Bio is too long (max 5000 characters)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assertValidation(t, err, tt.wantErr)
		})
	}
}

func TestBookInput(t *testing.T) {
	future := model.Date{Time: time.Now().AddDate(1, 0, 0)}

	tests := []struct {
		name    string
		mutate  func(*model.BookInput)
		wantErr string
	}{
		{"valid", func(in *model.BookInput) {}, ""},
		{"isbn ten digits", func(in *model.BookInput) { in.ISBN = "1234567890" }, ""},
		{"isbn with hyphens", func(in *model.BookInput) { in.ISBN = "978-3-16-148410-0" }, ""},
		{"title empty", func(in *model.BookInput) { in.Title = "   " }, "Title cannot be empty"},
		{"isbn letters", func(in *model.BookInput) { in.ISBN = "12345abc90" }, "ISBN must contain only digits, hyphens, or spaces"},
		{"isbn nine digits", func(in *model.BookInput) { in.ISBN = "123456789" }, "ISBN must be 10 or 13 digits long"},
		{"isbn twelve digits", func(in *model.BookInput) { in.ISBN = "123456789012" }, "ISBN must be 10 or 13 digits long"},
		{"date missing", func(in *model.BookInput) { in.PublicationDate = model.Date{} }, "Publication date is required"},
		{"date in the future", func(in *model.BookInput) { in.PublicationDate = future }, "Publication date cannot be in the future"},
		{"genre too short", func(in *model.BookInput) { in.Genre = "a" }, "Genre must be at least 2 characters long"},
		{"pages zero", func(in *model.BookInput) { in.TotalPages = 0 }, "Total pages must be positive"},
		{"pages too many", func(in *model.BookInput) { in.TotalPages = 5001 }, "Book seems too long, please verify total pages"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validBookInput()
			tt.mutate(&in)
			err := Struct(in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assertValidation(t, err, tt.wantErr)
		})
	}
}

func TestBookInputReportsFirstFailingField(t *testing.T) {
	in := validBookInput()
	in.Title = ""
	in.TotalPages = 0

	assertValidation(t, Struct(in), "Title cannot be empty")
}

func TestMovieInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.MovieInput)
		wantErr string
	}{
		{"valid", func(in *model.MovieInput) {}, ""},
		{"imdb eight digits", func(in *model.MovieInput) { in.IMDBID = "tt12345678" }, ""},
		{"imdb missing prefix", func(in *model.MovieInput) { in.IMDBID = "abc1234567" }, "IMDB ID must start with 'tt'"},
		{"imdb letters after prefix", func(in *model.MovieInput) { in.IMDBID = "ttabcdefg" }, "IMDB ID must contain only digits after 'tt'"},
		{"imdb too short", func(in *model.MovieInput) { in.IMDBID = "tt123" }, "IMDB ID must be 'tt' followed by 7 or 8 digits"},
		{"runtime zero", func(in *model.MovieInput) { in.RuntimeMinutes = 0 }, "Runtime must be positive"},
		{"runtime too long", func(in *model.MovieInput) { in.RuntimeMinutes = 601 }, "Movie seems too long, please verify runtime"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validMovieInput()
			tt.mutate(&in)
			err := Struct(in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assertValidation(t, err, tt.wantErr)
		})
	}
}

func TestReadingListInput(t *testing.T) {
	many := make([]int, 1001)
	for i := range many {
		many[i] = i + 1
	}

	tests := []struct {
		name    string
		in      model.ReadingListInput
		wantErr string
	}{
		{"valid", model.ReadingListInput{Name: "To Read", BookIDs: []int{1, 2, 3}}, ""},
		{"empty membership", model.ReadingListInput{Name: "Empty"}, ""},
		{"name blank", model.ReadingListInput{Name: "  "}, "Name cannot be empty"},
		{"duplicate members", model.ReadingListInput{Name: "Dupes", BookIDs: []int{1, 2, 1}}, "Duplicate books in reading list"},
		{"too many members", model.ReadingListInput{Name: "Huge", BookIDs: many}, "Too many books in reading list (max 1000)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assertValidation(t, err, tt.wantErr)
		})
	}
}

func TestWatchListInput(t *testing.T) {
	err := Struct(model.WatchListInput{Name: "Dupes", MovieIDs: []int{7, 7}})
	assertValidation(t, err, "Duplicate movies in watch list")
}

func TestReadingProgressInput(t *testing.T) {
	tests := []struct {
		name    string
		in      model.ReadingProgressInput
		wantErr string
	}{
		{"valid numeric page", model.ReadingProgressInput{BookID: 1, Status: model.StatusInProgress, CurrentPage: model.NumericMark(42)}, ""},
		{"valid text page", model.ReadingProgressInput{BookID: 1, Status: model.StatusInProgress, CurrentPage: model.TextMark("chapter 3")}, ""},
		{"valid unset page", model.ReadingProgressInput{BookID: 1, Status: model.StatusNotStarted}, ""},
		{"unknown status", model.ReadingProgressInput{BookID: 1, Status: "reading"}, "Invalid status"},
		{"empty status", model.ReadingProgressInput{BookID: 1}, "Invalid status"},
		{"negative page", model.ReadingProgressInput{BookID: 1, Status: model.StatusInProgress, CurrentPage: model.NumericMark(-1)}, "Current page cannot be negative"},
		{"notes too long", model.ReadingProgressInput{BookID: 1, Status: model.StatusCompleted, Notes: strptr(strings.Repeat("n", 501))}, "Notes must not exceed 500 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assertValidation(t, err, tt.wantErr)
		})
	}
}

func TestViewingHistoryInput(t *testing.T) {
	err := Struct(model.ViewingHistoryInput{MovieID: 1, Status: model.StatusInProgress, CurrentMinute: model.NumericMark(-5)})
	assertValidation(t, err, "Current minute cannot be negative")

	err = Struct(model.ViewingHistoryInput{MovieID: 1, Status: model.StatusOnHold, CurrentMinute: model.TextMark("halfway")})
	assert.NoError(t, err)
}

func TestRatingField(t *testing.T) {
	assert.NoError(t, RatingField(model.NumericRating(1)))
	assert.NoError(t, RatingField(model.NumericRating(5)))
	assert.NoError(t, RatingField(model.TextRating("loved it")))

	assertValidation(t, RatingField(model.NumericRating(0)), "Rating must be between 1 and 5")
	assertValidation(t, RatingField(model.NumericRating(6)), "Rating must be between 1 and 5")
}

func TestCommentField(t *testing.T) {
	assert.NoError(t, CommentField(nil))
	assert.NoError(t, CommentField(strptr("great")))

	assertValidation(t, CommentField(strptr("")), "Comment must be at least 5 characters long")
	assertValidation(t, CommentField(strptr("meh ")), "Comment must be at least 5 characters long")
	assertValidation(t, CommentField(strptr(strings.Repeat("c", 1001))), "Comment must not exceed 1000 characters")
}
