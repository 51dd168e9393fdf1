// server/internal/api/handlers/helpers.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// currentUserID parses the authenticated caller's id out of the request
// context. Authenticate stores it as a hex string.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

// parsePagination reads ?page= and ?limit= with sane defaults.
func parsePagination(c *gin.Context, defaultLimit int64) (page, limit int64) {
	page = 1
	limit = defaultLimit

	if v, err := strconv.ParseInt(c.Query("page"), 10, 64); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && v > 0 {
		limit = v
	}
	return page, limit
}

// validEnum reports whether v is empty or one of the allowed values.
func validEnum(v string, allowed []string) bool {
	if v == "" {
		return true
	}
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}

// totalPages is ceil(total/limit) for list responses.
func totalPages(total, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}
