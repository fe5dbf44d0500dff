package ordercalc

import (
	"math"

	"foodrun/model"
)

func PriceTable(foods []model.Food) map[string]float64 {
	prices := make(map[string]float64, len(foods))
	for _, food := range foods {
		prices[food.ID] = food.Cost
	}
	return prices
}

// TotalCost sums unit cost times quantity over the draft's line items.
// Unknown ids and non-positive quantities contribute nothing. Amounts are
// accumulated in cents.
func TotalCost(order model.FoodOrder, prices map[string]float64) float64 {
	var cents int64
	for i, id := range order.FoodID {
		if i >= len(order.FoodAmount) || order.FoodAmount[i] <= 0 {
			continue
		}
		cents += toCents(prices[id]) * int64(order.FoodAmount[i])
	}
	return fromCents(cents)
}

func SumCost(orders []model.FoodOrder) float64 {
	var cents int64
	for _, order := range orders {
		cents += toCents(order.Cost)
	}
	return fromCents(cents)
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func fromCents(cents int64) float64 {
	return float64(cents) / 100
}
