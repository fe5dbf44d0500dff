package service

import (
	"context"
	"time"

	"foodrun/model"
	"foodrun/spend-svc/internal/domain"
)

type SpendingInterface interface {
	Daily(ctx context.Context, userID, date string) (*domain.DailySpend, error)
	Weekly(ctx context.Context, userID string) (*domain.WeeklySpend, error)
}

type OrderSource interface {
	OrdersBetween(ctx context.Context, userID string, from, to time.Time) ([]model.FoodOrder, error)
}

type SpendCache interface {
	// Get reports a miss as (nil, nil).
	Get(ctx context.Context, userID, date string) (*domain.DailySpend, error)
	Set(ctx context.Context, userID string, spend *domain.DailySpend, ttl time.Duration) error
}

var _ SpendingInterface = (*SpendService)(nil)
