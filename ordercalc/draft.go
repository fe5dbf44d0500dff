package ordercalc

import (
	"errors"

	"foodrun/model"
)

var ErrEmptyOrder = errors.New("order is empty")

func NewDraft(restaurantID string) model.FoodOrder {
	return model.FoodOrder{RestaurantID: restaurantID}
}

// ApplyQuantity sets the quantity of foodID in the draft. A quantity of zero
// or less removes the line item, so the id and amount sequences always stay
// index-aligned. The input draft is not modified.
func ApplyQuantity(draft model.FoodOrder, foodID string, quantity int) model.FoodOrder {
	ids := append([]string{}, draft.FoodID...)
	amounts := alignAmounts(draft.FoodAmount, len(ids))

	idx := indexOf(ids, foodID)
	switch {
	case idx >= 0 && quantity > 0:
		amounts[idx] = quantity
	case idx >= 0:
		ids = append(ids[:idx], ids[idx+1:]...)
		amounts = append(amounts[:idx], amounts[idx+1:]...)
	case quantity > 0:
		ids = append(ids, foodID)
		amounts = append(amounts, quantity)
	}

	draft.FoodID = ids
	draft.FoodAmount = amounts
	return draft
}

func RemoveFood(draft model.FoodOrder, foodID string) model.FoodOrder {
	return ApplyQuantity(draft, foodID, 0)
}

func QuantityOf(draft model.FoodOrder, foodID string) int {
	idx := indexOf(draft.FoodID, foodID)
	if idx < 0 || idx >= len(draft.FoodAmount) {
		return 0
	}
	return draft.FoodAmount[idx]
}

func IsEmpty(draft model.FoodOrder) bool {
	return len(draft.FoodID) == 0
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

// alignAmounts returns a copy of amounts resized to n, padding with zero.
func alignAmounts(amounts []int, n int) []int {
	out := make([]int, n)
	copy(out, amounts)
	return out
}
