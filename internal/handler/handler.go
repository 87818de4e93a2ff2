package handler

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/user/medialib/internal/apperr"
	"github.com/user/medialib/internal/config"
	"github.com/user/medialib/internal/service"
	"github.com/user/medialib/internal/utils"
)

// Handler bundles the two domain services for the HTTP layer.
type Handler struct {
	Library *service.Library
	Cinema  *service.Cinema
	Config  *config.Config
}

// NewHandler creates the handler.
func NewHandler(library *service.Library, cinema *service.Cinema, cfg *config.Config) *Handler {
	return &Handler{Library: library, Cinema: cinema, Config: cfg}
}

// pathID parses a numeric path parameter, replying 400 when it isn't one.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		utils.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return id, true
}

// queryID parses an optional numeric query parameter; 0 means unset.
func queryID(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		utils.BadRequest(c, name+" must be an integer")
		return 0, false
	}
	return id, true
}

// fail maps a service error to its response status. Unknown errors are
// reported generically and logged with detail.
func fail(c *gin.Context, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		log.Printf("unexpected error: %v", err)
		utils.InternalServerError(c, "")
		return
	}
	switch ae.Kind {
	case apperr.KindValidation:
		utils.BadRequest(c, ae.Message)
	case apperr.KindNotFound:
		utils.NotFound(c, ae.Message)
	case apperr.KindConflict:
		// blocked deletes surface as plain bad requests
		utils.BadRequest(c, ae.Message)
	case apperr.KindUnauthorized:
		utils.Unauthorized(c, ae.Message)
	case apperr.KindForbidden:
		utils.Forbidden(c, ae.Message)
	default:
		log.Printf("unexpected error: %v", err)
		utils.InternalServerError(c, "")
	}
}
