package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gdugdh24/rentscore-backend/internal/domain"
)

// ContextUserID is the gin context key the auth middleware stores the caller under
const ContextUserID = "user_id"

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError maps domain errors onto status codes; anything unknown is a 500
// carrying the fallback message
func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "property not found"})
	case errors.Is(err, domain.ErrOwnerNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "owner not found"})
	case errors.Is(err, domain.ErrInsightUnavailable):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "insight generation unavailable"})
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// idParam parses a uuid path parameter, answering 400 when it is malformed
func idParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return uuid.Nil, false
	}
	return id, true
}
