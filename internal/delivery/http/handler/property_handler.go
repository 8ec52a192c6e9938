package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gdugdh24/rentscore-backend/internal/usecase/engagement"
	"github.com/gdugdh24/rentscore-backend/internal/usecase/insight"
	"github.com/gdugdh24/rentscore-backend/internal/usecase/rating"
)

type PropertyHandler struct {
	ratingUseCase     *rating.RatingUseCase
	insightUseCase    *insight.InsightUseCase
	engagementUseCase *engagement.EngagementUseCase
}

func NewPropertyHandler(
	ratingUseCase *rating.RatingUseCase,
	insightUseCase *insight.InsightUseCase,
	engagementUseCase *engagement.EngagementUseCase,
) *PropertyHandler {
	return &PropertyHandler{
		ratingUseCase:     ratingUseCase,
		insightUseCase:    insightUseCase,
		engagementUseCase: engagementUseCase,
	}
}

// GetScore handles GET /properties/:id/score
// @Summary Listing quality score
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} rating.PropertyScoreResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /properties/{id}/score [get]
func (h *PropertyHandler) GetScore(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	score, err := h.ratingUseCase.PropertyScore(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed to score property")
		return
	}

	c.JSON(http.StatusOK, score)
}

// GetPriceFairness handles GET /properties/:id/price-fairness
// @Summary Price verdict against the city benchmark
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} rating.PriceFairnessResponse
// @Failure 404 {object} ErrorResponse
// @Router /properties/{id}/price-fairness [get]
func (h *PropertyHandler) GetPriceFairness(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	fairness, err := h.ratingUseCase.PriceFairness(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed to evaluate price")
		return
	}

	c.JSON(http.StatusOK, fairness)
}

// Match handles POST /properties/:id/match
// @Summary Match a listing against renter preferences
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body rating.MatchRequest true "Preferences"
// @Success 200 {object} rating.MatchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /properties/{id}/match [post]
func (h *PropertyHandler) Match(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req rating.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	match, err := h.ratingUseCase.MatchProperty(c.Request.Context(), id, req.Preferences())
	if err != nil {
		writeError(c, err, "failed to match property")
		return
	}

	c.JSON(http.StatusOK, match)
}

// GetInsights handles GET /properties/:id/insights
// @Summary Narrative insight about price and appeal
// @Tags properties
// @Security BearerAuth
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} insight.InsightResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /properties/{id}/insights [get]
func (h *PropertyHandler) GetInsights(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.insightUseCase.PropertyInsights(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed to build insights")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RecordView handles POST /properties/:id/view
// @Summary Count a listing view
// @Tags engagement
// @Security BearerAuth
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} engagement.CounterResponse
// @Router /properties/{id}/view [post]
func (h *PropertyHandler) RecordView(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.engagementUseCase.RecordView(c.Request.Context(), id, userID)
	if err != nil {
		writeError(c, err, "failed to record view")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RecordContact handles POST /properties/:id/contact
// @Summary Count a contact request to the owner
// @Tags engagement
// @Security BearerAuth
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} engagement.CounterResponse
// @Router /properties/{id}/contact [post]
func (h *PropertyHandler) RecordContact(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.engagementUseCase.RecordContactRequest(c.Request.Context(), id, userID)
	if err != nil {
		writeError(c, err, "failed to record contact request")
		return
	}

	c.JSON(http.StatusOK, resp)
}
