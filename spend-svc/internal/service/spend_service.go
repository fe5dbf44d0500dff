package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"foodrun/ordercalc"
	"foodrun/spend-svc/internal/domain"
)

const (
	DateLayout = "2006-01-02"
	PastDayTTL = 7 * 24 * time.Hour
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

type SpendService struct {
	orders   OrderSource
	cache    SpendCache
	location *time.Location
	now      func() time.Time
}

func NewSpendService(orders OrderSource, cache SpendCache, location *time.Location) *SpendService {
	if location == nil {
		location = time.Local
	}
	return &SpendService{
		orders:   orders,
		cache:    cache,
		location: location,
		now:      time.Now,
	}
}

// WithClock replaces the service's notion of now.
func (s *SpendService) WithClock(now func() time.Time) *SpendService {
	s.now = now
	return s
}

func (s *SpendService) today() time.Time {
	return s.now().In(s.location)
}

// Daily sums the user's orders on date, today when date is empty. Days
// before today are served from the cache once computed.
func (s *SpendService) Daily(ctx context.Context, userID, date string) (*domain.DailySpend, error) {
	day := s.today()
	if date != "" {
		parsed, err := time.ParseInLocation(DateLayout, date, s.location)
		if err != nil {
			return nil, ErrInvalidDate
		}
		day = parsed
	}
	key := day.Format(DateLayout)

	todayStart, _ := ordercalc.DayWindow(s.today())
	past := day.Before(todayStart)
	if past && s.cache != nil {
		cached, err := s.cache.Get(ctx, userID, key)
		if err != nil {
			log.Printf("Warning: spend cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	start, end := ordercalc.DayWindow(day)
	orders, err := s.orders.OrdersBetween(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	onDay := ordercalc.OrdersOn(orders, day)
	spend := &domain.DailySpend{
		Date:   key,
		Total:  ordercalc.SumCost(onDay),
		Orders: len(onDay),
	}

	if past && s.cache != nil {
		if err := s.cache.Set(ctx, userID, spend, PastDayTTL); err != nil {
			log.Printf("Warning: spend cache write failed: %v", err)
		}
	}
	return spend, nil
}

// Weekly returns today and the six days before it.
func (s *SpendService) Weekly(ctx context.Context, userID string) (*domain.WeeklySpend, error) {
	now := s.today()
	days := ordercalc.LastWeek(now)
	from, _ := ordercalc.DayWindow(days[0])
	_, to := ordercalc.DayWindow(days[len(days)-1])

	orders, err := s.orders.OrdersBetween(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	week := &domain.WeeklySpend{
		Days:   make([]string, len(days)),
		Totals: ordercalc.WeeklySpend(orders, now),
	}
	for i, day := range days {
		week.Days[i] = day.Format(DateLayout)
	}
	return week, nil
}
