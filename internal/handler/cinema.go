package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/user/medialib/internal/middleware"
	"github.com/user/medialib/internal/model"
	"github.com/user/medialib/internal/utils"
)

func (h *Handler) ListDirectors(c *gin.Context) {
	skip, limit := middleware.Page(c)
	utils.Success(c, h.Cinema.Directors(skip, limit))
}

func (h *Handler) CreateDirector(c *gin.Context) {
	var in model.DirectorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	director, err := h.Cinema.CreateDirector(in)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Created(c, director)
}

func (h *Handler) DeleteDirector(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Cinema.DeleteDirector(id); err != nil {
		fail(c, err)
		return
	}
	utils.NoContent(c)
}

func (h *Handler) ListMovies(c *gin.Context) {
	skip, limit := middleware.Page(c)
	directorID, ok := queryID(c, "director_id")
	if !ok {
		return
	}
	movies, err := h.Cinema.Movies(c.Query("genre"), directorID, skip, limit)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Success(c, movies)
}

func (h *Handler) GetMovie(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	movie, err := h.Cinema.Movie(id)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Success(c, movie)
}

func (h *Handler) CreateMovie(c *gin.Context) {
	var in model.MovieInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	movie, err := h.Cinema.CreateMovie(in)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Success(c, movie)
}

func (h *Handler) DeleteMovie(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Cinema.DeleteMovie(id); err != nil {
		fail(c, err)
		return
	}
	utils.NoContent(c)
}

func (h *Handler) ListMovieReviews(c *gin.Context) {
	skip, limit := middleware.Page(c)
	utils.Success(c, h.Cinema.Reviews(skip, limit))
}

func (h *Handler) GetMovieReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	review, err := h.Cinema.Review(id)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Success(c, review)
}

func (h *Handler) CreateMovieReview(c *gin.Context) {
	var in model.MovieReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	review, err := h.Cinema.CreateReview(in)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Success(c, review)
}

func (h *Handler) DeleteMovieReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Cinema.DeleteReview(id); err != nil {
		fail(c, err)
		return
	}
	utils.NoContent(c)
}

func (h *Handler) ListWatchLists(c *gin.Context) {
	skip, limit := middleware.Page(c)
	utils.Success(c, h.Cinema.WatchLists(skip, limit))
}

func (h *Handler) CreateWatchList(c *gin.Context) {
	var in model.WatchListInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	list, err := h.Cinema.CreateWatchList(in)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Success(c, list)
}

func (h *Handler) DeleteWatchList(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Cinema.DeleteWatchList(id); err != nil {
		fail(c, err)
		return
	}
	utils.NoContent(c)
}

func (h *Handler) ListHistory(c *gin.Context) {
	skip, limit := middleware.Page(c)
	utils.Success(c, h.Cinema.HistoryEntries(skip, limit))
}

func (h *Handler) CreateHistory(c *gin.Context) {
	var in model.ViewingHistoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	entry, err := h.Cinema.CreateHistory(in)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Success(c, entry)
}

func (h *Handler) MovieHistory(c *gin.Context) {
	movieID, ok := pathID(c, "movie_id")
	if !ok {
		return
	}
	entries, err := h.Cinema.MovieHistory(movieID)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Success(c, entries)
}

func (h *Handler) DeleteHistory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Cinema.DeleteHistory(id); err != nil {
		fail(c, err)
		return
	}
	utils.NoContent(c)
}
