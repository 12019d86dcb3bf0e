package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
	"github.com/comitanigiacomo/eco-diary/internal/core/services"
)

const defaultListDays = 30

type EntryHandler struct {
	svc *services.EntryService
	loc *time.Location
	now func() time.Time
}

// NewEntryHandler resolves "today" in loc; nil means the server's local zone.
func NewEntryHandler(svc *services.EntryService, loc *time.Location) *EntryHandler {
	if loc == nil {
		loc = time.Local
	}
	return &EntryHandler{
		svc: svc,
		loc: loc,
		now: time.Now,
	}
}

type saveEntryRequest struct {
	Goal          string   `json:"goal"`
	Notes         string   `json:"notes"`
	CheckedHabits []string `json:"checked_habits"`
	Version       int      `json:"version"`
}

func (h *EntryHandler) RegisterRoutes(router *gin.RouterGroup) {
	entries := router.Group("/entries")
	{
		entries.GET("", h.List)
		entries.GET("/:date", h.Get)
		entries.PUT("/:date", h.Save)
		entries.DELETE("/:date", h.Delete)
		entries.POST("/:date/habits/:habitID/toggle", h.Toggle)
	}
}

func (h *EntryHandler) List(c *gin.Context) {
	today := h.now().In(h.loc)

	to := c.DefaultQuery("to", domain.DateKey(today))
	from := c.DefaultQuery("from", domain.DateKey(today.AddDate(0, 0, -(defaultListDays-1))))

	list, err := h.svc.List(c.Request.Context(), from, to)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *EntryHandler) Get(c *gin.Context) {
	entry, err := h.svc.Get(c.Request.Context(), c.Param("date"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *EntryHandler) Save(c *gin.Context) {
	var req saveEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	input := services.SaveEntryInput{
		Date:          c.Param("date"),
		Goal:          req.Goal,
		Notes:         req.Notes,
		CheckedHabits: req.CheckedHabits,
		Version:       req.Version,
	}

	entry, err := h.svc.Save(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *EntryHandler) Toggle(c *gin.Context) {
	entry, err := h.svc.ToggleHabit(c.Request.Context(), c.Param("date"), c.Param("habitID"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *EntryHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("date")); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
