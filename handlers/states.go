package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// tunisianGovernorates is the fixed directory backing the location filter.
var tunisianGovernorates = []string{
	"Ariana", "Ben Arous", "Béja", "Bizerte", "Gabès", "Gafsa",
	"Jendouba", "Kairouan", "Kasserine", "Kebili", "Kef", "Mahdia",
	"Manouba", "Medenine", "Monastir", "Nabeul", "Sfax", "Sidi Bouzid",
	"Siliana", "Sousse", "Tataouine", "Tozeur", "Tunis", "Zaghouan",
}

// GetStates handles GET /api/states.
func GetStates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"states": tunisianGovernorates})
}
