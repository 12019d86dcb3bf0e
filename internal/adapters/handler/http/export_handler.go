package http

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
	"github.com/comitanigiacomo/eco-diary/internal/core/services"
)

const pdfContentType = "application/pdf"

type ExportHandler struct {
	svc *services.BookletService
	loc *time.Location
	now func() time.Time
}

func NewExportHandler(svc *services.BookletService, loc *time.Location) *ExportHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ExportHandler{
		svc: svc,
		loc: loc,
		now: time.Now,
	}
}

func (h *ExportHandler) RegisterRoutes(r *gin.RouterGroup) {
	export := r.Group("/export")
	{
		export.GET("/day/:date", h.Day)
		export.GET("/booklet", h.Booklet)
	}
}

func (h *ExportHandler) Day(c *gin.Context) {
	date := c.Param("date")
	if err := domain.ValidateDateKey(date); err != nil {
		handleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.svc.WriteDay(c.Request.Context(), &buf, date); err != nil {
		h.fail(c, err)
		return
	}

	sendPDF(c, fmt.Sprintf("eco-diary-%s.pdf", date), &buf)
}

func (h *ExportHandler) Booklet(c *gin.Context) {
	start := h.now().In(h.loc)
	if raw := c.Query("start"); raw != "" {
		parsed, err := domain.ParseDateKey(raw, h.loc)
		if err != nil {
			handleError(c, err)
			return
		}
		start = parsed
	}

	days := domain.DefaultBookletDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer"})
			return
		}
		if n < 1 {
			handleError(c, domain.ErrInvalidBookletLength)
			return
		}
		days = n
	}

	var buf bytes.Buffer
	if err := h.svc.WriteBooklet(c.Request.Context(), &buf, start, days); err != nil {
		h.fail(c, err)
		return
	}

	sendPDF(c, fmt.Sprintf("eco-diary-booklet-%s.pdf", domain.DateKey(start)), &buf)
}

// The document is buffered so a rendering failure can still become a JSON
// error instead of a truncated download.
func (h *ExportHandler) fail(c *gin.Context, err error) {
	log.Printf("[EXPORT] %s failed: %v", c.Request.URL.Path, err)
	handleError(c, err)
}

func sendPDF(c *gin.Context, filename string, buf *bytes.Buffer) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, pdfContentType, buf.Bytes())
}
