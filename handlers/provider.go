package handlers

import (
	"net/http"

	"servigo/models"
	"servigo/services/provider"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler serves provider detail pages and reviews.
type ProviderHandler struct {
	ProviderSvc provider.ProviderService
}

// NewProviderHandler creates a new ProviderHandler instance.
func NewProviderHandler(svc provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{ProviderSvc: svc}
}

// GetDetail handles GET /api/providers/:id.
func (h *ProviderHandler) GetDetail(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing provider ID"})
		return
	}

	detail, err := h.ProviderSvc.GetDetail(id)
	if err != nil {
		getLogger(c).Error("GetDetail: provider lookup failed",
			zap.String("providerID", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "provider not found",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// AddReview handles POST /api/providers/:id/reviews.
func (h *ProviderHandler) AddReview(c *gin.Context) {
	providerID := c.Param("id")
	if providerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing provider ID"})
		return
	}

	var body struct {
		Rating  float64 `json:"rating" binding:"required"`
		Comment string  `json:"comment"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		getLogger(c).Error("AddReview: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	review := models.Review{
		ServiceProviderID: providerID,
		UserID:            c.GetString("userID"),
		Rating:            body.Rating,
		Comment:           body.Comment,
	}
	if err := h.ProviderSvc.AddReview(c.Request.Context(), &review); err != nil {
		getLogger(c).Error("AddReview: failed to store review",
			zap.String("providerID", providerID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "failed to store review",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, review)
}
