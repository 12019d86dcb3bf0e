package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
)

// HabitHandler exposes the fixed habit catalog so clients can label
// checkboxes without hardcoding it.
type HabitHandler struct {
	catalog domain.Catalog
}

func NewHabitHandler() *HabitHandler {
	return &HabitHandler{catalog: domain.DefaultCatalog()}
}

func (h *HabitHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/habits", h.List)
}

func (h *HabitHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog)
}
