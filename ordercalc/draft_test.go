package ordercalc_test

import (
	"testing"

	"foodrun/model"
	"foodrun/ordercalc"

	"github.com/stretchr/testify/assert"
)

func TestApplyQuantity(t *testing.T) {
	base := model.FoodOrder{RestaurantID: "r1", FoodID: []string{"f1", "f2"}, FoodAmount: []int{2, 1}}

	tests := []struct {
		name        string
		foodID      string
		quantity    int
		wantIDs     []string
		wantAmounts []int
	}{
		{name: "overwrite existing", foodID: "f2", quantity: 4, wantIDs: []string{"f1", "f2"}, wantAmounts: []int{2, 4}},
		{name: "append new", foodID: "f3", quantity: 1, wantIDs: []string{"f1", "f2", "f3"}, wantAmounts: []int{2, 1, 1}},
		{name: "zero removes", foodID: "f1", quantity: 0, wantIDs: []string{"f2"}, wantAmounts: []int{1}},
		{name: "negative removes", foodID: "f2", quantity: -3, wantIDs: []string{"f1"}, wantAmounts: []int{2}},
		{name: "zero on absent is a no-op", foodID: "f9", quantity: 0, wantIDs: []string{"f1", "f2"}, wantAmounts: []int{2, 1}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := ordercalc.ApplyQuantity(base, testCase.foodID, testCase.quantity)
			assert.Equal(t, testCase.wantIDs, got.FoodID)
			assert.Equal(t, testCase.wantAmounts, got.FoodAmount)
			assert.Equal(t, len(got.FoodID), len(got.FoodAmount))
			assert.Equal(t, "r1", got.RestaurantID)
		})
	}

	assert.Equal(t, []string{"f1", "f2"}, base.FoodID, "input draft must not change")
	assert.Equal(t, []int{2, 1}, base.FoodAmount, "input draft must not change")
}

func TestApplyQuantity_RemoveThenAddEqualsSingleAdd(t *testing.T) {
	draft := ordercalc.NewDraft("r1")
	draft = ordercalc.ApplyQuantity(draft, "f1", 1)

	single := ordercalc.ApplyQuantity(draft, "f2", 3)

	roundTrip := ordercalc.ApplyQuantity(draft, "f2", 3)
	roundTrip = ordercalc.ApplyQuantity(roundTrip, "f2", 0)
	roundTrip = ordercalc.ApplyQuantity(roundTrip, "f2", 3)

	assert.Equal(t, single, roundTrip)
}

func TestApplyQuantity_KeepsSequencesAligned(t *testing.T) {
	draft := ordercalc.NewDraft("r1")
	steps := []struct {
		id  string
		qty int
	}{
		{"a", 1}, {"b", 2}, {"a", 0}, {"c", 5}, {"b", 7}, {"c", -1}, {"d", 0}, {"a", 2},
	}
	for _, step := range steps {
		draft = ordercalc.ApplyQuantity(draft, step.id, step.qty)
		assert.Equal(t, len(draft.FoodID), len(draft.FoodAmount))
	}
	assert.Equal(t, []string{"b", "a"}, draft.FoodID)
	assert.Equal(t, []int{7, 2}, draft.FoodAmount)
}

func TestApplyQuantity_RealignsShortAmounts(t *testing.T) {
	draft := model.FoodOrder{FoodID: []string{"f1", "f2"}, FoodAmount: []int{2}}

	got := ordercalc.ApplyQuantity(draft, "f2", 3)

	assert.Equal(t, []int{2, 3}, got.FoodAmount)
}

func TestRemoveFoodAndQuantityOf(t *testing.T) {
	draft := model.FoodOrder{FoodID: []string{"f1", "f2"}, FoodAmount: []int{2, 1}}

	assert.Equal(t, 2, ordercalc.QuantityOf(draft, "f1"))
	assert.Equal(t, 0, ordercalc.QuantityOf(draft, "missing"))

	draft = ordercalc.RemoveFood(draft, "f1")
	draft = ordercalc.RemoveFood(draft, "f2")
	assert.True(t, ordercalc.IsEmpty(draft))
	assert.Empty(t, draft.FoodAmount)
}
