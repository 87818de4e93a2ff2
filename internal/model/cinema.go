package model

// Director is the cinema domain's top-level entity.
type Director struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Bio  *string `json:"bio"`
	Timestamps
}

// DirectorInput is the creation payload for Director.
type DirectorInput struct {
	Name string  `json:"name" validate:"trimmin=2"`
	Bio  *string `json:"bio" validate:"omitempty,max=5000"`
}

// Movie references exactly one Director.
type Movie struct {
	ID             int     `json:"id"`
	Title          string  `json:"title"`
	Description    *string `json:"description"`
	IMDBID         string  `json:"imdb_id"`
	ReleaseDate    Date    `json:"release_date"`
	Genre          string  `json:"genre"`
	DirectorID     int     `json:"director_id"`
	RuntimeMinutes int     `json:"runtime_minutes"`
	Timestamps
}

// MovieInput is the creation payload for Movie.
type MovieInput struct {
	Title          string  `json:"title" validate:"trimmin=1"`
	Description    *string `json:"description"`
	IMDBID         string  `json:"imdb_id" validate:"imdb_prefix,imdb_digits,imdb_length"`
	ReleaseDate    Date    `json:"release_date" validate:"required,lte"`
	Genre          string  `json:"genre" validate:"trimmin=2"`
	DirectorID     int     `json:"director_id"`
	RuntimeMinutes int     `json:"runtime_minutes" validate:"min=1,max=600"`
}

// MovieReview is a viewer's review of one Movie.
type MovieReview struct {
	ID      int     `json:"id"`
	Rating  Rating  `json:"rating"`
	Comment *string `json:"comment"`
	MovieID int     `json:"movie_id"`
	Timestamps
}

// MovieReviewInput is the creation payload for MovieReview.
type MovieReviewInput struct {
	Rating  Rating  `json:"rating"`
	Comment *string `json:"comment"`
	MovieID int     `json:"movie_id"`
}

// WatchList is a named set of movie IDs. Membership is unique and capped.
type WatchList struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	MovieIDs    []int   `json:"movie_ids"`
	Timestamps
}

// WatchListInput is the creation payload for WatchList.
type WatchListInput struct {
	Name        string  `json:"name" validate:"trimmin=1"`
	Description *string `json:"description"`
	MovieIDs    []int   `json:"movie_ids" validate:"max=1000,unique"`
}

// ViewingHistory tracks one viewer's position in one Movie.
type ViewingHistory struct {
	ID             int     `json:"id"`
	MovieID        int     `json:"movie_id"`
	Status         Status  `json:"status"`
	CurrentMinute  Mark    `json:"current_minute"`
	RuntimeMinutes *int    `json:"runtime_minutes"`
	Notes          *string `json:"notes"`
	Timestamps
}

// ViewingHistoryInput is the creation payload for ViewingHistory.
// RuntimeMinutes is carried but deliberately unvalidated.
type ViewingHistoryInput struct {
	MovieID        int     `json:"movie_id"`
	Status         Status  `json:"status" validate:"status"`
	CurrentMinute  Mark    `json:"current_minute" validate:"omitempty,mark"`
	RuntimeMinutes *int    `json:"runtime_minutes"`
	Notes          *string `json:"notes" validate:"omitempty,max=500"`
}
