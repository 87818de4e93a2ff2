package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/user/medialib/internal/handler"
	"github.com/user/medialib/internal/middleware"
)

// RegisterLibraryRoutes mounts the library API on r. Every resource route
// requires the API key; author create/delete additionally require the admin
// role.
func RegisterLibraryRoutes(r *gin.Engine, h *handler.Handler) {
	page := middleware.Pagination(h.Config.PageSize, h.Config.MaxPageSize)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Book Library Management System",
			"endpoints": gin.H{
				"authors":          "/authors",
				"books":            "/books",
				"reviews":          "/reviews",
				"reading_lists":    "/reading-lists",
				"reading_progress": "/reading-progress",
			},
		})
	})

	api := r.Group("/")
	api.Use(middleware.RequireAPIKey(h.Config.APIKey))
	{
		authors := api.Group("/authors")
		{
			authors.GET("", page, h.ListAuthors)
			authors.POST("", middleware.RequireAdmin(), h.CreateAuthor)
			authors.DELETE("/:id", middleware.RequireAdmin(), h.DeleteAuthor)
		}

		books := api.Group("/books")
		{
			books.GET("", page, h.ListBooks)
			books.GET("/:id", h.GetBook)
			books.POST("", h.CreateBook)
			books.DELETE("/:id", h.DeleteBook)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", page, h.ListReviews)
			reviews.GET("/:id", h.GetReview)
			reviews.POST("", h.CreateReview)
			reviews.DELETE("/:id", h.DeleteReview)
		}

		lists := api.Group("/reading-lists")
		{
			lists.GET("", page, h.ListReadingLists)
			lists.POST("", h.CreateReadingList)
			lists.DELETE("/:id", h.DeleteReadingList)
		}

		progress := api.Group("/reading-progress")
		{
			progress.GET("", page, h.ListProgress)
			progress.POST("", h.CreateProgress)
			progress.GET("/books/:book_id", h.BookProgress)
			progress.DELETE("/:id", h.DeleteProgress)
		}
	}
}

// RegisterCinemaRoutes mounts the cinema API on r, the structural mirror of
// the library surface.
func RegisterCinemaRoutes(r *gin.Engine, h *handler.Handler) {
	page := middleware.Pagination(h.Config.PageSize, h.Config.MaxPageSize)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Movie Collection Management System",
			"endpoints": gin.H{
				"directors":       "/directors",
				"movies":          "/movies",
				"reviews":         "/reviews",
				"watchlists":      "/watchlists",
				"viewing_history": "/viewing-history",
			},
		})
	})

	api := r.Group("/")
	api.Use(middleware.RequireAPIKey(h.Config.APIKey))
	{
		directors := api.Group("/directors")
		{
			directors.GET("", page, h.ListDirectors)
			directors.POST("", middleware.RequireAdmin(), h.CreateDirector)
			directors.DELETE("/:id", middleware.RequireAdmin(), h.DeleteDirector)
		}

		movies := api.Group("/movies")
		{
			movies.GET("", page, h.ListMovies)
			movies.GET("/:id", h.GetMovie)
			movies.POST("", h.CreateMovie)
			movies.DELETE("/:id", h.DeleteMovie)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", page, h.ListMovieReviews)
			reviews.GET("/:id", h.GetMovieReview)
			reviews.POST("", h.CreateMovieReview)
			reviews.DELETE("/:id", h.DeleteMovieReview)
		}

		lists := api.Group("/watchlists")
		{
			lists.GET("", page, h.ListWatchLists)
			lists.POST("", h.CreateWatchList)
			lists.DELETE("/:id", h.DeleteWatchList)
		}

		history := api.Group("/viewing-history")
		{
			history.GET("", page, h.ListHistory)
			history.POST("", h.CreateHistory)
			history.GET("/movies/:movie_id", h.MovieHistory)
			history.DELETE("/:id", h.DeleteHistory)
		}
	}
}
