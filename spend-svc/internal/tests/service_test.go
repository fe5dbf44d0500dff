package tests

import (
	"context"
	"testing"
	"time"

	"foodrun/model"
	"foodrun/spend-svc/internal/domain"
	"foodrun/spend-svc/internal/mocks"
	"foodrun/spend-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func at(t time.Time) interface{} {
	return mock.MatchedBy(func(v time.Time) bool { return v.Equal(t) })
}

func day(d, hour int) time.Time {
	return time.Date(2024, 3, d, hour, 0, 0, 0, time.UTC)
}

func TestSpendService_Daily(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		date         string
		prepareMocks func(orders *mocks.OrderSource, cache *mocks.SpendCache)
		expected     *domain.DailySpend
		expectedErr  error
	}{
		{
			name: "today is computed without the cache",
			date: "",
			prepareMocks: func(orders *mocks.OrderSource, cache *mocks.SpendCache) {
				orders.On("OrdersBetween", ctx, "u1", at(day(10, 0)), mock.Anything).
					Return([]model.FoodOrder{
						{ID: "o1", Cost: 0.1, OrderDate: day(10, 9)},
						{ID: "o2", Cost: 0.2, OrderDate: day(10, 11)},
					}, nil).Once()
			},
			expected: &domain.DailySpend{Date: "2024-03-10", Total: 0.3, Orders: 2},
		},
		{
			name: "past day from cache",
			date: "2024-03-08",
			prepareMocks: func(orders *mocks.OrderSource, cache *mocks.SpendCache) {
				cache.On("Get", ctx, "u1", "2024-03-08").
					Return(&domain.DailySpend{Date: "2024-03-08", Total: 12, Orders: 1}, nil).Once()
			},
			expected: &domain.DailySpend{Date: "2024-03-08", Total: 12, Orders: 1},
		},
		{
			name: "past day miss is computed and cached",
			date: "2024-03-08",
			prepareMocks: func(orders *mocks.OrderSource, cache *mocks.SpendCache) {
				cache.On("Get", ctx, "u1", "2024-03-08").Return(nil, nil).Once()
				orders.On("OrdersBetween", ctx, "u1", at(day(8, 0)), mock.Anything).
					Return([]model.FoodOrder{{ID: "o1", Cost: 7.5, OrderDate: day(8, 20)}}, nil).Once()
				cache.On("Set", ctx, "u1", &domain.DailySpend{Date: "2024-03-08", Total: 7.5, Orders: 1}, service.PastDayTTL).
					Return(nil).Once()
			},
			expected: &domain.DailySpend{Date: "2024-03-08", Total: 7.5, Orders: 1},
		},
		{
			name: "cache failure falls back to the database",
			date: "2024-03-01",
			prepareMocks: func(orders *mocks.OrderSource, cache *mocks.SpendCache) {
				cache.On("Get", ctx, "u1", "2024-03-01").Return(nil, assert.AnError).Once()
				orders.On("OrdersBetween", ctx, "u1", mock.Anything, mock.Anything).
					Return([]model.FoodOrder{}, nil).Once()
				cache.On("Set", ctx, "u1", mock.Anything, service.PastDayTTL).Return(assert.AnError).Once()
			},
			expected: &domain.DailySpend{Date: "2024-03-01", Total: 0, Orders: 0},
		},
		{
			name:         "invalid date",
			date:         "10/03/2024",
			prepareMocks: func(orders *mocks.OrderSource, cache *mocks.SpendCache) {},
			expectedErr:  service.ErrInvalidDate,
		},
		{
			name: "database error",
			date: "2024-03-11",
			prepareMocks: func(orders *mocks.OrderSource, cache *mocks.SpendCache) {
				orders.On("OrdersBetween", ctx, "u1", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()
			},
			expectedErr: assert.AnError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderSource(t)
			cache := mocks.NewSpendCache(t)
			testCase.prepareMocks(orders, cache)

			svc := service.NewSpendService(orders, cache, time.UTC).WithClock(func() time.Time { return fixedNow })
			spend, err := svc.Daily(ctx, "u1", testCase.date)
			if testCase.expectedErr != nil {
				assert.ErrorIs(t, err, testCase.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, spend)
		})
	}
}

func TestSpendService_Weekly(t *testing.T) {
	ctx := context.Background()
	orders := mocks.NewOrderSource(t)
	svc := service.NewSpendService(orders, nil, time.UTC).WithClock(func() time.Time { return fixedNow })

	orders.On("OrdersBetween", ctx, "u1", at(day(4, 0)), at(time.Date(2024, 3, 10, 23, 59, 59, int(999*time.Millisecond), time.UTC))).
		Return([]model.FoodOrder{
			{Cost: 5, OrderDate: day(4, 8)},
			{Cost: 1.25, OrderDate: day(10, 1)},
			{Cost: 1.25, OrderDate: day(10, 2)},
		}, nil).Once()

	week, err := svc.Weekly(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2024-03-04", "2024-03-05", "2024-03-06", "2024-03-07", "2024-03-08", "2024-03-09", "2024-03-10",
	}, week.Days)
	assert.Equal(t, []float64{5, 0, 0, 0, 0, 0, 2.5}, week.Totals)
}

func TestSpendService_WeeklyNoOrders(t *testing.T) {
	orders := mocks.NewOrderSource(t)
	svc := service.NewSpendService(orders, nil, time.UTC).WithClock(func() time.Time { return fixedNow })
	orders.On("OrdersBetween", mock.Anything, "u1", mock.Anything, mock.Anything).Return([]model.FoodOrder{}, nil).Once()

	week, err := svc.Weekly(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 7), week.Totals)
}
