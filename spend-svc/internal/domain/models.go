package domain

type DailySpend struct {
	Date   string  `json:"date"`
	Total  float64 `json:"total"`
	Orders int     `json:"orders"`
}

// WeeklySpend holds seven days, oldest first.
type WeeklySpend struct {
	Days   []string  `json:"days"`
	Totals []float64 `json:"totals"`
}
