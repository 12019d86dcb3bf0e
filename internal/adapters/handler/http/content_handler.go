package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/eco-diary/internal/core/services"
)

type ContentHandler struct {
	svc *services.ContentService
}

func NewContentHandler(svc *services.ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

func (h *ContentHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/content/today", h.Today)
}

func (h *ContentHandler) Today(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Today())
}
