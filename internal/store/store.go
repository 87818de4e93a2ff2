package store

import "github.com/user/medialib/internal/model"

// Library aggregates the library domain's tables. State lives for the
// process lifetime; nothing is pre-populated or persisted.
type Library struct {
	Authors      *Table[model.Author]
	Books        *Table[model.Book]
	Reviews      *Table[model.BookReview]
	ReadingLists *Table[model.ReadingList]
	Progress     *Table[model.ReadingProgress]
}

// NewLibrary creates an empty library store.
func NewLibrary() *Library {
	return &Library{
		Authors:      NewTable[model.Author](),
		Books:        NewTable[model.Book](),
		Reviews:      NewTable[model.BookReview](),
		ReadingLists: NewTable[model.ReadingList](),
		Progress:     NewTable[model.ReadingProgress](),
	}
}

// Cinema aggregates the cinema domain's tables.
type Cinema struct {
	Directors  *Table[model.Director]
	Movies     *Table[model.Movie]
	Reviews    *Table[model.MovieReview]
	WatchLists *Table[model.WatchList]
	History    *Table[model.ViewingHistory]
}

// NewCinema creates an empty cinema store.
func NewCinema() *Cinema {
	return &Cinema{
		Directors:  NewTable[model.Director](),
		Movies:     NewTable[model.Movie](),
		Reviews:    NewTable[model.MovieReview](),
		WatchLists: NewTable[model.WatchList](),
		History:    NewTable[model.ViewingHistory](),
	}
}
