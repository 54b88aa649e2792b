package handlers

import (
	"net/http"

	"servigo/services/locale"

	"github.com/gin-gonic/gin"
)

// LocaleHandler exposes the active language, text direction and translations.
type LocaleHandler struct {
	Manager *locale.Manager
}

// NewLocaleHandler creates a new LocaleHandler instance.
func NewLocaleHandler(mgr *locale.Manager) *LocaleHandler {
	return &LocaleHandler{Manager: mgr}
}

// GetState handles GET /api/locale.
func (h *LocaleHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"language":  h.Manager.Language(),
		"direction": h.Manager.Direction(),
		"is_rtl":    h.Manager.IsRTL(),
	})
}

// SetLanguage handles PUT /api/locale.
func (h *LocaleHandler) SetLanguage(c *gin.Context) {
	var body struct {
		Language string `json:"language" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	lang, ok := locale.ParseLanguage(body.Language)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "unsupported language",
			"message": "supported tags are ar, fr and en",
		})
		return
	}

	h.Manager.SetLanguage(c.Request.Context(), lang)
	c.JSON(http.StatusOK, gin.H{
		"language":  h.Manager.Language(),
		"direction": h.Manager.Direction(),
		"is_rtl":    h.Manager.IsRTL(),
	})
}

// Translate handles GET /api/locale/translate/:key. Unknown keys echo the
// key itself, matching the lookup behaviour used across the UI strings.
func (h *LocaleHandler) Translate(c *gin.Context) {
	key := c.Param("key")
	c.JSON(http.StatusOK, gin.H{
		"key":   key,
		"value": h.Manager.Translate(key),
	})
}
