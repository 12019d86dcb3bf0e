package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
)

func TestGetMonth(t *testing.T) {
	router, repo := setupRouter()
	seed(t, repo, "2024-03-05", "filled")
	seed(t, repo, "2024-03-06", "")

	t.Run("Defaults To Current Month", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/calendar", nil)
		require.Equal(t, http.StatusOK, w.Code)

		view := decode[domain.MonthView](t, w)
		assert.Equal(t, "March 2024", view.Title)
		assert.Equal(t, "2024-03", view.Month)
		assert.Equal(t, "2024-03-15", view.Selected)
		assert.Len(t, view.Cells, 4+31)
		assert.Equal(t, 1, view.FilledDays)
		assert.Equal(t, 2, view.EntryCount)

		for i := 0; i < 4; i++ {
			assert.True(t, view.Cells[i].IsPadding())
		}
		assert.True(t, view.Cells[4+4].IsFilled, "2024-03-05")
		assert.False(t, view.Cells[4+5].IsFilled, "blank entry is not filled")
		assert.True(t, view.Cells[4+14].IsSelected, "2024-03-15")
	})

	t.Run("Other Month And Selection", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/calendar?date=2024-09-10&selected=2024-09-01", nil)
		require.Equal(t, http.StatusOK, w.Code)

		view := decode[domain.MonthView](t, w)
		assert.Equal(t, "September 2024", view.Title)
		assert.Len(t, view.Cells, 6+30)
		assert.True(t, view.Cells[6].IsSelected)
		assert.Equal(t, 0, view.EntryCount)
	})

	t.Run("Fail: 400 Bad Dates", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest,
			doRequest(t, router, http.MethodGet, "/api/v1/calendar?date=March", nil).Code)
		assert.Equal(t, http.StatusBadRequest,
			doRequest(t, router, http.MethodGet, "/api/v1/calendar?selected=2024-02-30", nil).Code)
	})
}
