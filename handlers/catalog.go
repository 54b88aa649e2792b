package handlers

import (
	"errors"
	"net/http"

	"servigo/models"
	"servigo/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the listing browse surface.
type CatalogHandler struct {
	CatalogSvc catalog.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{CatalogSvc: svc}
}

// Browse handles GET /api/listings. Filter criteria arrive as query
// parameters; absent or "all" values leave that criterion unconstrained.
func (h *CatalogHandler) Browse(c *gin.Context) {
	var criteria catalog.Criteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		getLogger(c).Error("Browse: invalid query parameters", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid query parameters",
			"message": err.Error(),
		})
		return
	}

	result, err := h.CatalogSvc.Browse(criteria)
	if err != nil {
		if errors.Is(err, catalog.ErrNotLoaded) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":   "listings not loaded yet",
				"message": err.Error(),
			})
			return
		}
		getLogger(c).Error("Browse: failed to browse listings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to browse listings",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Refresh handles POST /api/listings/refresh. It forces a reload of the
// enriched snapshot from the database.
func (h *CatalogHandler) Refresh(c *gin.Context) {
	if err := h.CatalogSvc.LoadListings(c.Request.Context()); err != nil {
		getLogger(c).Error("Refresh: failed to reload listings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to reload listings",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "listings reloaded"})
}

// Categories handles GET /api/categories.
func (h *CatalogHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, h.CatalogSvc.Categories())
}

// CreateListing handles POST /api/listings. The authenticated user becomes
// the listing owner.
func (h *CatalogHandler) CreateListing(c *gin.Context) {
	var body struct {
		ServiceProviderID string   `json:"service_provider_id" binding:"required"`
		JobCategoryID     string   `json:"job_category_id"`
		Description       string   `json:"description" binding:"required"`
		Location          string   `json:"location" binding:"required"`
		HourlyRate        *float64 `json:"hourly_rate"`
		BusinessName      string   `json:"business_name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		getLogger(c).Error("CreateListing: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	listing := models.Listing{
		ServiceProviderID: body.ServiceProviderID,
		UserID:            c.GetString("userID"),
		JobCategoryID:     body.JobCategoryID,
		Description:       body.Description,
		Location:          body.Location,
		HourlyRate:        body.HourlyRate,
		BusinessName:      body.BusinessName,
	}
	if err := h.CatalogSvc.CreateListing(c.Request.Context(), &listing); err != nil {
		getLogger(c).Error("CreateListing: failed to create listing", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to create listing",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, listing)
}

// DeactivateListing handles DELETE /api/listings/:id. Listings are
// soft-deleted so they simply drop out of the active snapshot.
func (h *CatalogHandler) DeactivateListing(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing listing ID"})
		return
	}

	if err := h.CatalogSvc.DeactivateListing(c.Request.Context(), id); err != nil {
		getLogger(c).Error("DeactivateListing: failed to deactivate listing",
			zap.String("listingID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to deactivate listing",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "listing deactivated"})
}
