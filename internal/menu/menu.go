// Package menu maintains the rolling three-week mess menu window.
package menu

import (
	"time"

	"github.com/google/uuid"

	"hostel-warden-backend/internal/model"
)

// defaultDishes is the template applied to every day of a freshly
// created week. Wardens edit individual cells afterwards.
var defaultDishes = [model.MealsPerDay][]model.MenuItem{
	{{Name: "Paratha, Butter, Tea", Time: "8:00 AM", Dietary: model.DietaryVeg, Allergens: []string{"dairy"}}},
	{{Name: "Rice, Daal, Paneer Curry, Roti", Time: "12:30 PM", Dietary: model.DietaryVeg, Allergens: []string{"dairy"}}},
	{{Name: "Tea, Samosa", Time: "4:00 PM", Dietary: model.DietaryVeg, Allergens: []string{}}},
	{{Name: "Roti, Chicken Curry, Rice", Time: "7:30 PM", Dietary: model.DietaryNonVeg, Allergens: []string{}}},
}

// DefaultWeek builds a menu for the given ISO week from the default
// template.
func DefaultWeek(week, year int) model.WeeklyMenu {
	now := time.Now().UTC()
	menu := model.WeeklyMenu{
		ID:         uuid.NewString(),
		Week:       week,
		Year:       year,
		Timestamps: model.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	for day := 0; day < model.DaysPerWeek; day++ {
		for slot := 0; slot < model.MealsPerDay; slot++ {
			dishes := make([]model.MenuItem, len(defaultDishes[slot]))
			copy(dishes, defaultDishes[slot])
			menu.Days[day][slot] = dishes
		}
	}
	return menu
}
