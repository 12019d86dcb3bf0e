package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
	"github.com/comitanigiacomo/eco-diary/internal/core/services"
)

type CalendarHandler struct {
	svc *services.CalendarService
	loc *time.Location
	now func() time.Time
}

func NewCalendarHandler(svc *services.CalendarService, loc *time.Location) *CalendarHandler {
	if loc == nil {
		loc = time.Local
	}
	return &CalendarHandler{
		svc: svc,
		loc: loc,
		now: time.Now,
	}
}

func (h *CalendarHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/calendar", h.GetMonth)
}

// GetMonth shows the month containing ?date (default today) with ?selected
// highlighted (default today).
func (h *CalendarHandler) GetMonth(c *gin.Context) {
	today := h.now().In(h.loc)

	reference := today
	if raw := c.Query("date"); raw != "" {
		parsed, err := domain.ParseDateKey(raw, h.loc)
		if err != nil {
			handleError(c, err)
			return
		}
		reference = parsed
	}

	selected := c.DefaultQuery("selected", domain.DateKey(today))
	if err := domain.ValidateDateKey(selected); err != nil {
		handleError(c, err)
		return
	}

	view, err := h.svc.Month(c.Request.Context(), reference, selected)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
