package model

// Author is the library domain's top-level entity.
type Author struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Bio  *string `json:"bio"`
	Timestamps
}

// AuthorInput is the creation payload for Author.
type AuthorInput struct {
	Name string  `json:"name" validate:"trimmin=2"`
	Bio  *string `json:"bio" validate:"omitempty,max=5000"`
}

// Book references exactly one Author.
type Book struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	ISBN            ISBN    `json:"isbn"`
	PublicationDate Date    `json:"publication_date"`
	Genre           string  `json:"genre"`
	AuthorID        int     `json:"author_id"`
	TotalPages      int     `json:"total_pages"`
	Timestamps
}

// BookInput is the creation payload for Book. Field order matters: the
// validator reports the first failing field in declaration order.
type BookInput struct {
	Title           string  `json:"title" validate:"trimmin=1"`
	Description     *string `json:"description"`
	ISBN            ISBN    `json:"isbn" validate:"isbn_digits,isbn_length"`
	PublicationDate Date    `json:"publication_date" validate:"required,lte"`
	Genre           string  `json:"genre" validate:"trimmin=2"`
	AuthorID        int     `json:"author_id"`
	TotalPages      int     `json:"total_pages" validate:"min=1,max=5000"`
}

// BookReview is a reader's review of one Book. Rating and Comment are
// validated by dedicated checks, not struct tags (see validate.RatingField).
type BookReview struct {
	ID      int     `json:"id"`
	Rating  Rating  `json:"rating"`
	Comment *string `json:"comment"`
	BookID  int     `json:"book_id"`
	Timestamps
}

// BookReviewInput is the creation payload for BookReview.
type BookReviewInput struct {
	Rating  Rating  `json:"rating"`
	Comment *string `json:"comment"`
	BookID  int     `json:"book_id"`
}

// ReadingList is a named set of book IDs. Membership is unique and capped.
type ReadingList struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	BookIDs     []int   `json:"book_ids"`
	Timestamps
}

// ReadingListInput is the creation payload for ReadingList.
type ReadingListInput struct {
	Name        string  `json:"name" validate:"trimmin=1"`
	Description *string `json:"description"`
	BookIDs     []int   `json:"book_ids" validate:"max=1000,unique"`
}

// ReadingProgress tracks one reader's position in one Book.
type ReadingProgress struct {
	ID          int     `json:"id"`
	BookID      int     `json:"book_id"`
	Status      Status  `json:"status"`
	CurrentPage Mark    `json:"current_page"`
	TotalPages  *int    `json:"total_pages"`
	Notes       *string `json:"notes"`
	Timestamps
}

// ReadingProgressInput is the creation payload for ReadingProgress.
// TotalPages is carried but deliberately unvalidated.
type ReadingProgressInput struct {
	BookID      int     `json:"book_id"`
	Status      Status  `json:"status" validate:"status"`
	CurrentPage Mark    `json:"current_page" validate:"omitempty,mark"`
	TotalPages  *int    `json:"total_pages"`
	Notes       *string `json:"notes" validate:"omitempty,max=500"`
}
