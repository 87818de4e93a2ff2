package validate

import "github.com/go-playground/validator/v10"

// messages maps "<payload>.<field> <tag>" to the error text surfaced to the
// caller. Keyed by struct namespace so the two domains keep their own wording.
var messages = map[string]string{
	"AuthorInput.Name trimmin":   "Name must be at least 2 characters long",
	"DirectorInput.Name trimmin": "Name must be at least 2 characters long",
	"AuthorInput.Bio max":        "Bio is too long (max 5000 characters)",
	"DirectorInput.Bio max":      "Bio is too long (max 5000 characters)",

	"BookInput.Title trimmin":  "Title cannot be empty",
	"MovieInput.Title trimmin": "Title cannot be empty",
	"BookInput.Genre trimmin":  "Genre must be at least 2 characters long",
	"MovieInput.Genre trimmin": "Genre must be at least 2 characters long",

	"BookInput.ISBN isbn_digits":         "ISBN must contain only digits, hyphens, or spaces",
	"BookInput.ISBN isbn_length":         "ISBN must be 10 or 13 digits long",
	"BookInput.PublicationDate required": "Publication date is required",
	"BookInput.PublicationDate lte":      "Publication date cannot be in the future",
	"BookInput.TotalPages min":           "Total pages must be positive",
	"BookInput.TotalPages max":           "Book seems too long, please verify total pages",

	"MovieInput.IMDBID imdb_prefix":   "IMDB ID must start with 'tt'",
	"MovieInput.IMDBID imdb_digits":   "IMDB ID must contain only digits after 'tt'",
	"MovieInput.IMDBID imdb_length":   "IMDB ID must be 'tt' followed by 7 or 8 digits",
	"MovieInput.ReleaseDate required": "Release date is required",
	"MovieInput.ReleaseDate lte":      "Release date cannot be in the future",
	"MovieInput.RuntimeMinutes min":   "Runtime must be positive",
	"MovieInput.RuntimeMinutes max":   "Movie seems too long, please verify runtime",

	"ReadingListInput.Name trimmin":   "Name cannot be empty",
	"WatchListInput.Name trimmin":     "Name cannot be empty",
	"ReadingListInput.BookIDs max":    "Too many books in reading list (max 1000)",
	"ReadingListInput.BookIDs unique": "Duplicate books in reading list",
	"WatchListInput.MovieIDs max":     "Too many movies in watch list (max 1000)",
	"WatchListInput.MovieIDs unique":  "Duplicate movies in watch list",

	"ReadingProgressInput.Status status":     "Invalid status",
	"ViewingHistoryInput.Status status":      "Invalid status",
	"ReadingProgressInput.CurrentPage mark":  "Current page cannot be negative",
	"ViewingHistoryInput.CurrentMinute mark": "Current minute cannot be negative",
	"ReadingProgressInput.Notes max":         "Notes must not exceed 500 characters",
	"ViewingHistoryInput.Notes max":          "Notes must not exceed 500 characters",
}

func message(fe validator.FieldError) string {
	if msg, ok := messages[fe.StructNamespace()+" "+fe.Tag()]; ok {
		return msg
	}
	return "Invalid value for " + fe.Field()
}
