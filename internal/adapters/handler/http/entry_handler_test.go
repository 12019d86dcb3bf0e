package http_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
)

func TestSaveEntry(t *testing.T) {
	t.Run("Success: 200 Created Then Updated", func(t *testing.T) {
		router, _ := setupRouter()

		body := map[string]any{
			"goal":           "Cycle to work",
			"notes":          "Sunny",
			"checked_habits": []string{"bike", "bottle"},
		}
		w := doRequest(t, router, http.MethodPut, "/api/v1/entries/2024-03-15", body)
		require.Equal(t, http.StatusOK, w.Code)

		created := decode[domain.DayEntry](t, w)
		assert.Equal(t, 1, created.Version)
		assert.Equal(t, []string{"bike", "bottle"}, created.CheckedHabits)

		body["goal"] = "Walk"
		body["version"] = 1
		w = doRequest(t, router, http.MethodPut, "/api/v1/entries/2024-03-15", body)
		require.Equal(t, http.StatusOK, w.Code)

		updated := decode[domain.DayEntry](t, w)
		assert.Equal(t, 2, updated.Version)
		assert.Equal(t, "Walk", updated.Goal)
		assert.Equal(t, created.ID, updated.ID)
	})

	t.Run("Fail: 409 Stale Version", func(t *testing.T) {
		router, repo := setupRouter()
		seed(t, repo, "2024-03-15", "first")

		body := map[string]any{"goal": "x", "version": 1}
		require.Equal(t, http.StatusOK, doRequest(t, router, http.MethodPut, "/api/v1/entries/2024-03-15", body).Code)

		w := doRequest(t, router, http.MethodPut, "/api/v1/entries/2024-03-15", body)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "version conflict")
	})

	t.Run("Fail: 400 Validation", func(t *testing.T) {
		router, _ := setupRouter()

		tests := []struct {
			name string
			path string
			body any
		}{
			{"Bad Date", "/api/v1/entries/2024-13-01", map[string]any{"goal": "x"}},
			{"Unknown Habit", "/api/v1/entries/2024-03-15", map[string]any{"checked_habits": []string{"fly"}}},
			{"Goal Too Long", "/api/v1/entries/2024-03-15", map[string]any{"goal": strings.Repeat("g", domain.MaxGoalLen+1)}},
			{"Malformed Body", "/api/v1/entries/2024-03-15", "not an object"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := doRequest(t, router, http.MethodPut, tt.path, tt.body)
				assert.Equal(t, http.StatusBadRequest, w.Code)
			})
		}
	})
}

func TestGetEntry(t *testing.T) {
	router, repo := setupRouter()
	seed(t, repo, "2024-03-10", "Sort waste", "sort")

	t.Run("Success: 200 OK", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/entries/2024-03-10", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"checked_habits":["sort"]`)
	})

	t.Run("Fail: 404 Not Found", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/entries/2024-03-11", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestToggleHabit(t *testing.T) {
	router, _ := setupRouter()
	path := "/api/v1/entries/2024-03-15/habits/plastic/toggle"

	w := doRequest(t, router, http.MethodPost, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"plastic"}, decode[domain.DayEntry](t, w).CheckedHabits)

	w = doRequest(t, router, http.MethodPost, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	toggled := decode[domain.DayEntry](t, w)
	assert.Empty(t, toggled.CheckedHabits)
	assert.Equal(t, 2, toggled.Version)

	t.Run("Fail: 400 Unknown Habit", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/v1/entries/2024-03-15/habits/teleport/toggle", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteEntry(t *testing.T) {
	router, repo := setupRouter()
	seed(t, repo, "2024-03-01", "x")

	w := doRequest(t, router, http.MethodDelete, "/api/v1/entries/2024-03-01", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodDelete, "/api/v1/entries/2024-03-01", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListEntries(t *testing.T) {
	router, repo := setupRouter()
	seed(t, repo, "2024-02-10", "too old for the default window")
	seed(t, repo, "2024-02-20", "a")
	seed(t, repo, "2024-03-15", "b")

	t.Run("Default Last 30 Days", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/entries", nil)
		require.Equal(t, http.StatusOK, w.Code)

		list := decode[[]domain.DayEntry](t, w)
		require.Len(t, list, 2)
		assert.Equal(t, "2024-02-20", list[0].Date)
		assert.Equal(t, "2024-03-15", list[1].Date)
	})

	t.Run("Explicit Range", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/entries?from=2024-02-01&to=2024-02-15", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]domain.DayEntry](t, w), 1)
	})

	t.Run("Empty Range Is An Empty Array", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/entries?from=2023-01-01&to=2023-01-31", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("Fail: 400 Inverted Range", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/entries?from=2024-03-10&to=2024-03-01", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEntryHandler_StoreFailure(t *testing.T) {
	repo := new(MockDayEntryRepo)
	repo.On("ListRange", mock.Anything, "2024-03-01", "2024-03-02").
		Return(nil, errors.New("connection reset"))

	router := setupRouterWith(repo)

	w := doRequest(t, router, http.MethodGet, "/api/v1/entries?from=2024-03-01&to=2024-03-02", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
	repo.AssertExpectations(t)
}
