package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/eco-diary/internal/adapters/export"
	adapterHTTP "github.com/comitanigiacomo/eco-diary/internal/adapters/handler/http"
	"github.com/comitanigiacomo/eco-diary/internal/adapters/repository"
	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
	"github.com/comitanigiacomo/eco-diary/internal/core/services"
)

// 2024-03-15 is a Friday; March 2024 starts on a Friday.
var fixedNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

type MockDayEntryRepo struct {
	mock.Mock
}

func (m *MockDayEntryRepo) Save(ctx context.Context, entry *domain.DayEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockDayEntryRepo) GetByDate(ctx context.Context, date string) (*domain.DayEntry, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DayEntry), args.Error(1)
}

func (m *MockDayEntryRepo) ListRange(ctx context.Context, from, to string) ([]*domain.DayEntry, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DayEntry), args.Error(1)
}

func (m *MockDayEntryRepo) ListAll(ctx context.Context) ([]*domain.DayEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DayEntry), args.Error(1)
}

func (m *MockDayEntryRepo) Delete(ctx context.Context, date string) error {
	return m.Called(ctx, date).Error(0)
}

func (m *MockDayEntryRepo) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type storeWithPing interface {
	domain.DayEntryRepository
	adapterHTTP.Pinger
}

func setupRouterWith(repo storeWithPing) *gin.Engine {
	gin.SetMode(gin.TestMode)

	content := services.NewContentService(func(n int) int { return 0 })

	entryHandler := adapterHTTP.NewEntryHandler(services.NewEntryService(repo, nil), time.UTC)
	entryHandler.SetClock(func() time.Time { return fixedNow })

	calendarHandler := adapterHTTP.NewCalendarHandler(services.NewCalendarService(repo), time.UTC)
	calendarHandler.SetClock(func() time.Time { return fixedNow })

	exportHandler := adapterHTTP.NewExportHandler(
		services.NewBookletService(repo, content, export.NewPDFRenderer()), time.UTC)
	exportHandler.SetClock(func() time.Time { return fixedNow })

	return adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		HabitHandler:    adapterHTTP.NewHabitHandler(),
		EntryHandler:    entryHandler,
		CalendarHandler: calendarHandler,
		StatsHandler:    adapterHTTP.NewStatsHandler(services.NewStatsService(repo, repository.NewInMemoryStreakStore())),
		ContentHandler:  adapterHTTP.NewContentHandler(content),
		ExportHandler:   exportHandler,
		Store:           repo,
		StorageDriver:   "memory",
		StartTime:       fixedNow,
	})
}

func setupRouter() (*gin.Engine, *repository.InMemoryEntryRepository) {
	repo := repository.NewInMemoryEntryRepository()
	return setupRouterWith(repo), repo
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func seed(t *testing.T, repo domain.DayEntryRepository, date, goal string, habits ...string) {
	t.Helper()
	e := domain.NewDayEntry(date)
	e.Fill(goal, "", habits)
	require.NoError(t, repo.Save(context.Background(), e))
}
