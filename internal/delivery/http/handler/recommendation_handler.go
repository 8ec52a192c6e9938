package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gdugdh24/rentscore-backend/internal/usecase/rating"
)

type RecommendationHandler struct {
	ratingUseCase *rating.RatingUseCase
}

func NewRecommendationHandler(ratingUseCase *rating.RatingUseCase) *RecommendationHandler {
	return &RecommendationHandler{ratingUseCase: ratingUseCase}
}

// Recommend handles POST /recommendations
// @Summary Rank listings for a renter
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body rating.RecommendRequest true "Preferences and limit"
// @Success 200 {object} rating.RecommendResponse
// @Failure 400 {object} ErrorResponse
// @Router /recommendations [post]
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var req rating.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.ratingUseCase.Recommend(c.Request.Context(), req.Preferences(), req.City, req.Limit)
	if err != nil {
		writeError(c, err, "failed to rank properties")
		return
	}

	c.JSON(http.StatusOK, resp)
}
