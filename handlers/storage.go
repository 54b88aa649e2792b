package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	imageRepoPkg "servigo/database/repository/image"
	"servigo/models"
	"servigo/services/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StorageHandler handles listing photo uploads.
type StorageHandler struct {
	StorageSvc storage.StorageService
	ImageRepo  imageRepoPkg.ServiceImageRepository
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService, images imageRepoPkg.ServiceImageRepository) *StorageHandler {
	return &StorageHandler{StorageSvc: svc, ImageRepo: images}
}

// UploadListingImage handles POST /api/listings/:id/images. The file is
// staged to a temp path, pushed to remote storage, and recorded against the
// listing. Setting primary=true demotes any previous primary image.
func (h *StorageHandler) UploadListingImage(c *gin.Context) {
	listingID := c.Param("id")
	if listingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing listing ID"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	isPrimary, _ := strconv.ParseBool(c.PostForm("primary"))

	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	destFolder := "listings/" + listingID

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, destFolder)
	if err != nil {
		getLogger(c).Error("UploadListingImage: upload failed",
			zap.String("listingID", listingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c, "image", publicID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct download URL", "detail": err.Error()})
		return
	}

	image := models.ServiceImage{
		ID:        uuid.NewString(),
		ServiceID: listingID,
		ImageURL:  downloadURL,
		IsPrimary: isPrimary,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.ImageRepo.Create(&image); err != nil {
		getLogger(c).Error("UploadListingImage: failed to record image",
			zap.String("listingID", listingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record image", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, image)
}
