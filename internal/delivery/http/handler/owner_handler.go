package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gdugdh24/rentscore-backend/internal/usecase/rating"
)

type OwnerHandler struct {
	ratingUseCase *rating.RatingUseCase
}

func NewOwnerHandler(ratingUseCase *rating.RatingUseCase) *OwnerHandler {
	return &OwnerHandler{ratingUseCase: ratingUseCase}
}

// GetTrustBadge handles GET /owners/:id/trust-badge
// @Summary Owner trust badge
// @Tags owners
// @Produce json
// @Param id path string true "Owner ID"
// @Success 200 {object} rating.TrustBadgeResponse
// @Failure 404 {object} ErrorResponse
// @Router /owners/{id}/trust-badge [get]
func (h *OwnerHandler) GetTrustBadge(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	badge, err := h.ratingUseCase.OwnerTrustBadge(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed to derive trust badge")
		return
	}

	c.JSON(http.StatusOK, badge)
}
