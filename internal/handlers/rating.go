package handlers

import (
	"net/http"

	"github.com/m0derNik/FromsApp-Backend/internal/middleware"
	"github.com/m0derNik/FromsApp-Backend/internal/services"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService *services.RatingService
}

func NewRatingHandler(ratingService *services.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

type CreateRatingRequest struct {
	TemplateID uint `json:"template_id" binding:"required" example:"1"`
	Value      int  `json:"value" binding:"required" example:"5"`
}

// CreateRating godoc
// @Summary      Rate a template
// @Description  Submits a 1-5 rating; a repeat submission by the same user overwrites the previous value
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateRatingRequest true "Rating data"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/ratings [post]
func (h *RatingHandler) CreateRating(c *gin.Context) {
	var req CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	actor := middleware.Actor(c)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	if err := h.ratingService.Submit(req.TemplateID, actor.ID, req.Value); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "rating submitted"})
}
