// Package validate implements the per-entity field constraint checks applied
// at creation time. It drives go-playground/validator with custom tags for
// the rules the builtin set cannot express.
package validate

import (
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/user/medialib/internal/apperr"
	"github.com/user/medialib/internal/model"
)

var v = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their wire names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Union and date fields validate through their underlying values.
	v.RegisterCustomTypeFunc(dateValue, model.Date{})
	v.RegisterCustomTypeFunc(markValue, model.Mark{})

	for tag, fn := range map[string]validator.Func{
		"trimmin":     trimMin,
		"isbn_digits": isbnDigits,
		"isbn_length": isbnLength,
		"imdb_prefix": imdbPrefix,
		"imdb_digits": imdbDigits,
		"imdb_length": imdbLength,
		"mark":        markNonNegative,
		"status":      statusKnown,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}

// Struct checks a creation payload against its field rules and reports the
// first violated rule, in field declaration order.
func Struct(payload any) error {
	err := v.Struct(payload)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return apperr.Internal("validation failed")
	}
	fe := verrs[0]
	return apperr.Validation(fe.Field(), message(fe))
}

// RatingField checks a review rating: numeric scores must land in [1,5],
// free text passes unchecked.
func RatingField(r model.Rating) error {
	if r.Numeric && (r.Value < 1 || r.Value > 5) {
		return apperr.Validation("rating", "Rating must be between 1 and 5")
	}
	return nil
}

// CommentField checks an optional review comment. An explicit empty comment
// fails the minimum-length rule; an absent one passes.
func CommentField(comment *string) error {
	if comment == nil {
		return nil
	}
	if utf8.RuneCountInString(strings.TrimSpace(*comment)) < 5 {
		return apperr.Validation("comment", "Comment must be at least 5 characters long")
	}
	if utf8.RuneCountInString(*comment) > 1000 {
		return apperr.Validation("comment", "Comment must not exceed 1000 characters")
	}
	return nil
}

func dateValue(field reflect.Value) any {
	return field.Interface().(model.Date).Time
}

func markValue(field reflect.Value) any {
	m := field.Interface().(model.Mark)
	switch {
	case !m.Defined:
		return (*int)(nil)
	case m.Numeric:
		return m.Value
	default:
		return m.Text
	}
}

// trimMin checks the minimum rune count of the field after trimming.
func trimMin(fl validator.FieldLevel) bool {
	min, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= min
}

func cleanISBN(s string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(s)
}

func isbnDigits(fl validator.FieldLevel) bool {
	for _, r := range cleanISBN(fl.Field().String()) {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isbnLength(fl validator.FieldLevel) bool {
	n := len(cleanISBN(fl.Field().String()))
	return n == 10 || n == 13
}

func imdbPrefix(fl validator.FieldLevel) bool {
	return strings.HasPrefix(fl.Field().String(), "tt")
}

func imdbDigits(fl validator.FieldLevel) bool {
	for _, r := range strings.TrimPrefix(fl.Field().String(), "tt") {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func imdbLength(fl validator.FieldLevel) bool {
	n := len(strings.TrimPrefix(fl.Field().String(), "tt"))
	return n == 7 || n == 8
}

// markNonNegative rejects negative numeric positions; text passes unchecked.
func markNonNegative(fl validator.FieldLevel) bool {
	if fl.Field().Kind() == reflect.Int {
		return fl.Field().Int() >= 0
	}
	return true
}

func statusKnown(fl validator.FieldLevel) bool {
	return model.Status(fl.Field().String()).Valid()
}
