package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/user/medialib/internal/utils"
)

const (
	skipKey  = "pagination_skip"
	limitKey = "pagination_limit"
)

// Pagination parses the skip/limit query parameters for list routes,
// applying defaults and capping limit at max.
func Pagination(def, max int) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, err := intQuery(c, "skip", 0)
		if err != nil || skip < 0 {
			utils.BadRequest(c, "skip must be a non-negative integer")
			c.Abort()
			return
		}
		limit, err := intQuery(c, "limit", def)
		if err != nil || limit < 1 {
			utils.BadRequest(c, "limit must be a positive integer")
			c.Abort()
			return
		}
		if limit > max {
			limit = max
		}
		c.Set(skipKey, skip)
		c.Set(limitKey, limit)
		c.Next()
	}
}

// Page returns the skip/limit pair set by Pagination.
func Page(c *gin.Context) (skip, limit int) {
	return c.GetInt(skipKey), c.GetInt(limitKey)
}

func intQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
