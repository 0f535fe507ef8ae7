package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The mealType field travels by name, matching what the menu endpoints
// accept, not by grid index.
func TestFoodRequestMealTypeJSON(t *testing.T) {
	out, err := json.Marshal(FoodRequest{DishName: "Poha", MealType: Lunch})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"mealType":"Lunch"`)

	var request FoodRequest
	require.NoError(t, json.Unmarshal([]byte(`{"dishName":"Poha","mealType":"Snacks"}`), &request))
	assert.Equal(t, Snacks, request.MealType)

	err = json.Unmarshal([]byte(`{"mealType":"Brunch"}`), &request)
	assert.ErrorContains(t, err, "unknown meal slot")
}
