package ordercalc

import (
	"time"

	"foodrun/model"
)

const WeekDays = 7

// DayWindow returns [00:00:00.000, 23:59:59.999] of day's calendar date in
// day's location.
func DayWindow(day time.Time) (time.Time, time.Time) {
	y, m, d := day.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, day.Location())
	end := time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), day.Location())
	return start, end
}

func InDayWindow(t, day time.Time) bool {
	start, end := DayWindow(day)
	return !t.Before(start) && !t.After(end)
}

func SameDay(a, b time.Time, loc *time.Location) bool {
	a, b = a.In(loc), b.In(loc)
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func OrdersOn(orders []model.FoodOrder, day time.Time) []model.FoodOrder {
	var matched []model.FoodOrder
	for _, order := range orders {
		if InDayWindow(order.OrderDate, day) {
			matched = append(matched, order)
		}
	}
	return matched
}

func SpentOn(orders []model.FoodOrder, day time.Time) float64 {
	return SumCost(OrdersOn(orders, day))
}

// LastWeek returns today and the six days before it, oldest first.
func LastWeek(now time.Time) []time.Time {
	days := make([]time.Time, WeekDays)
	for i := 0; i < WeekDays; i++ {
		days[i] = now.AddDate(0, 0, i-(WeekDays-1))
	}
	return days
}

func WeeklySpend(orders []model.FoodOrder, now time.Time) []float64 {
	totals := make([]float64, WeekDays)
	for i, day := range LastWeek(now) {
		totals[i] = SpentOn(orders, day)
	}
	return totals
}

// OrderDates returns the distinct calendar days, as local midnights, on
// which userID placed orders.
func OrderDates(orders []model.FoodOrder, userID string, loc *time.Location) []time.Time {
	seen := make(map[time.Time]bool)
	var dates []time.Time
	for _, order := range orders {
		if order.UserID != userID {
			continue
		}
		start, _ := DayWindow(order.OrderDate.In(loc))
		if seen[start] {
			continue
		}
		seen[start] = true
		dates = append(dates, start)
	}
	return dates
}
