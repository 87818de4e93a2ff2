package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/user/medialib/internal/middleware"
	"github.com/user/medialib/internal/model"
	"github.com/user/medialib/internal/utils"
)

func (h *Handler) ListAuthors(c *gin.Context) {
	skip, limit := middleware.Page(c)
	utils.Success(c, h.Library.Authors(skip, limit))
}

func (h *Handler) CreateAuthor(c *gin.Context) {
	var in model.AuthorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	author, err := h.Library.CreateAuthor(in)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Created(c, author)
}

func (h *Handler) DeleteAuthor(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Library.DeleteAuthor(id); err != nil {
		fail(c, err)
		return
	}
	utils.NoContent(c)
}

func (h *Handler) ListBooks(c *gin.Context) {
	skip, limit := middleware.Page(c)
	authorID, ok := queryID(c, "author_id")
	if !ok {
		return
	}
	books, err := h.Library.Books(c.Query("genre"), authorID, skip, limit)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Success(c, books)
}

func (h *Handler) GetBook(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	book, err := h.Library.Book(id)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Success(c, book)
}

func (h *Handler) CreateBook(c *gin.Context) {
	var in model.BookInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	book, err := h.Library.CreateBook(in)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Success(c, book)
}

func (h *Handler) DeleteBook(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Library.DeleteBook(id); err != nil {
		fail(c, err)
		return
	}
	utils.NoContent(c)
}

func (h *Handler) ListReviews(c *gin.Context) {
	skip, limit := middleware.Page(c)
	utils.Success(c, h.Library.Reviews(skip, limit))
}

func (h *Handler) GetReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	review, err := h.Library.Review(id)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Success(c, review)
}

func (h *Handler) CreateReview(c *gin.Context) {
	var in model.BookReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	review, err := h.Library.CreateReview(in)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Success(c, review)
}

func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Library.DeleteReview(id); err != nil {
		fail(c, err)
		return
	}
	utils.NoContent(c)
}

func (h *Handler) ListReadingLists(c *gin.Context) {
	skip, limit := middleware.Page(c)
	utils.Success(c, h.Library.ReadingLists(skip, limit))
}

func (h *Handler) CreateReadingList(c *gin.Context) {
	var in model.ReadingListInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	list, err := h.Library.CreateReadingList(in)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Success(c, list)
}

func (h *Handler) DeleteReadingList(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Library.DeleteReadingList(id); err != nil {
		fail(c, err)
		return
	}
	utils.NoContent(c)
}

func (h *Handler) ListProgress(c *gin.Context) {
	skip, limit := middleware.Page(c)
	utils.Success(c, h.Library.ProgressEntries(skip, limit))
}

func (h *Handler) CreateProgress(c *gin.Context) {
	var in model.ReadingProgressInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	progress, err := h.Library.CreateProgress(in)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Success(c, progress)
}

func (h *Handler) BookProgress(c *gin.Context) {
	bookID, ok := pathID(c, "book_id")
	if !ok {
		return
	}
	entries, err := h.Library.BookProgress(bookID)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Success(c, entries)
}

func (h *Handler) DeleteProgress(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Library.DeleteProgress(id); err != nil {
		fail(c, err)
		return
	}
	utils.NoContent(c)
}
