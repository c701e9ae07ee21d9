package handlers

import (
	"encoding/json"
	"net/http"

	"wechat_mall/internal/apperr"
	"wechat_mall/internal/auth"
	"wechat_mall/internal/logger"
	"wechat_mall/internal/models"
	"wechat_mall/internal/pagination"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var kindStatus = map[apperr.Kind]int{
	apperr.Validation:   http.StatusBadRequest,
	apperr.NotFound:     http.StatusNotFound,
	apperr.Conflict:     http.StatusConflict,
	apperr.Unauthorized: http.StatusUnauthorized,
	apperr.InvalidSort:  http.StatusBadRequest,
	apperr.Upstream:     http.StatusBadGateway,
}

// respondError maps the error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is an internal error and its detail stays out of
// the response.
func respondError(c *gin.Context, err error) {
	if e := apperr.As(err); e != nil {
		status, ok := kindStatus[e.Kind]
		if !ok {
			status = http.StatusInternalServerError
		}
		if e.Kind == apperr.Upstream {
			c.JSON(status, gin.H{"code": e.Code, "message": "upstream service unavailable"})
			return
		}
		c.JSON(status, gin.H{"code": e.Code, "message": e.Message})
		return
	}
	logger.Error("unhandled error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "message": "internal server error"})
}

// writePagination emits the X-Pagination header for a paged listing.
func writePagination[T any](c *gin.Context, page *pagination.Page[T]) {
	meta := pagination.PageMetadata(c.Request.URL.Path, c.Request.URL.Query(), page)
	data, err := json.Marshal(meta)
	if err != nil {
		return
	}
	c.Header(pagination.Header, string(data))
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString(auth.ContextSubject))
	return id, err == nil
}

func isAdmin(c *gin.Context) bool {
	return c.GetString(auth.ContextRole) == string(models.RoleAdmin)
}
