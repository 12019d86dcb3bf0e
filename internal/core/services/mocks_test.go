package services_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
)

type MockDayEntryRepo struct {
	mock.Mock
}

func (m *MockDayEntryRepo) Save(ctx context.Context, entry *domain.DayEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
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
	args := m.Called(ctx, date)
	return args.Error(0)
}

type MockStreakStore struct {
	mock.Mock
}

func (m *MockStreakStore) SaveStreak(ctx context.Context, streak domain.Streak) error {
	return m.Called(ctx, streak).Error(0)
}

func (m *MockStreakStore) GetStreak(ctx context.Context) (domain.Streak, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Streak), args.Error(1)
}

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) RenderBooklet(w io.Writer, booklet *domain.Booklet, catalog domain.Catalog) error {
	args := m.Called(w, booklet, catalog)
	return args.Error(0)
}

func (m *MockRenderer) RenderDay(w io.Writer, page *domain.BookletPage, catalog domain.Catalog) error {
	args := m.Called(w, page, catalog)
	return args.Error(0)
}
