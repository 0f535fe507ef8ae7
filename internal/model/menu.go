package model

import (
	"encoding/json"
	"fmt"
)

// Weekday indexes the menu grid rows, Monday first.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday

	DaysPerWeek = 7
)

var weekdayNames = [DaysPerWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (d Weekday) String() string {
	if d < 0 || d >= DaysPerWeek {
		return "Unknown"
	}
	return weekdayNames[d]
}

// ParseWeekday resolves a day name to its grid row. ok is false for
// anything that is not one of the seven names.
func ParseWeekday(name string) (Weekday, bool) {
	for i, n := range weekdayNames {
		if n == name {
			return Weekday(i), true
		}
	}
	return 0, false
}

// MealSlot indexes the menu grid columns.
type MealSlot int

const (
	Breakfast MealSlot = iota
	Lunch
	Snacks
	Dinner

	MealsPerDay = 4
)

var mealSlotNames = [MealsPerDay]string{"Breakfast", "Lunch", "Snacks", "Dinner"}

func (m MealSlot) String() string {
	if m < 0 || m >= MealsPerDay {
		return "Unknown"
	}
	return mealSlotNames[m]
}

// ParseMealSlot resolves a meal name to its grid column.
func ParseMealSlot(name string) (MealSlot, bool) {
	for i, n := range mealSlotNames {
		if n == name {
			return MealSlot(i), true
		}
	}
	return 0, false
}

// MarshalJSON writes the slot by name, the same names ParseMealSlot
// accepts, so payloads never expose the grid index.
func (m MealSlot) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *MealSlot) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	slot, ok := ParseMealSlot(name)
	if !ok {
		return fmt.Errorf("unknown meal slot %q", name)
	}
	*m = slot
	return nil
}

// Dietary classifies a dish or a food request.
type Dietary string

const (
	DietaryVeg    Dietary = "Veg"
	DietaryNonVeg Dietary = "Non-veg"
	DietaryBoth   Dietary = "Both"
)

// MenuItem is one dish served in a meal slot.
type MenuItem struct {
	Name        string   `json:"name"`
	Time        string   `json:"time"`
	Dietary     Dietary  `json:"dietary"`
	Allergens   []string `json:"allergens"`
	Description string   `json:"description,omitempty"`
}

// WeeklyMenu holds one mess menu week as a fixed 7x4 grid of dish lists.
// Days[day][slot] is the list of dishes for that weekday and meal.
type WeeklyMenu struct {
	ID   string                                 `json:"id"`
	Week int                                    `json:"week"` // ISO week number
	Year int                                    `json:"year"`
	Days [DaysPerWeek][MealsPerDay][]MenuItem   `json:"days"`
	Timestamps
}
