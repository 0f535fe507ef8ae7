package domain

import (
	"context"
	"fmt"

	"hostel-warden-backend/internal/model"
	"hostel-warden-backend/internal/store"
)

// AddDish appends a dish to one cell of a menu's weekday/meal grid.
func (s *Service) AddDish(ctx context.Context, menuID string, day model.Weekday, slot model.MealSlot, dish model.MenuItem) error {
	if day < 0 || day >= model.DaysPerWeek || slot < 0 || slot >= model.MealsPerDay {
		var verr ValidationError
		verr.add("slot", "unknown weekday or meal slot")
		return &verr
	}
	if dish.Name == "" {
		var verr ValidationError
		verr.add("name", "dish name is required")
		return &verr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.UpdateMenu(ctx, menuID, func(m *model.WeeklyMenu) {
		m.Days[day][slot] = append(m.Days[day][slot], dish)
	}); err != nil {
		return err
	}

	s.logActivity(ctx, model.ActivityMenuUpdated,
		fmt.Sprintf("%s added to %s %s", dish.Name, day, slot), menuID)
	return nil
}

// RemoveDish deletes the dish at the given index from a menu cell.
func (s *Service) RemoveDish(ctx context.Context, menuID string, day model.Weekday, slot model.MealSlot, index int) error {
	if day < 0 || day >= model.DaysPerWeek || slot < 0 || slot >= model.MealsPerDay {
		var verr ValidationError
		verr.add("slot", "unknown weekday or meal slot")
		return &verr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	menu, err := findMenu(ctx, s, menuID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(menu.Days[day][slot]) {
		var verr ValidationError
		verr.add("index", "no dish at that position")
		return &verr
	}
	removed := menu.Days[day][slot][index]

	if err := s.store.UpdateMenu(ctx, menuID, func(m *model.WeeklyMenu) {
		dishes := m.Days[day][slot]
		m.Days[day][slot] = append(dishes[:index], dishes[index+1:]...)
	}); err != nil {
		return err
	}

	s.logActivity(ctx, model.ActivityMenuUpdated,
		fmt.Sprintf("%s removed from %s %s", removed.Name, day, slot), menuID)
	return nil
}

func findMenu(ctx context.Context, s *Service, id string) (model.WeeklyMenu, error) {
	for _, m := range s.store.Menus(ctx) {
		if m.ID == id {
			return m, nil
		}
	}
	return model.WeeklyMenu{}, fmt.Errorf("menu %s: %w", id, store.ErrNotFound)
}
