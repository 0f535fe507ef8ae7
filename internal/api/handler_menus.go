package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hostel-warden-backend/internal/model"
)

// GetMenus handles the GET /api/menus request. With week and year query
// parameters it returns the single matching week; otherwise the whole
// collection.
func (h *Handler) GetMenus(c *gin.Context) {
	ctx := c.Request.Context()
	weekParam, yearParam := c.Query("week"), c.Query("year")
	if weekParam == "" && yearParam == "" {
		c.JSON(http.StatusOK, h.store.Menus(ctx))
		return
	}

	week, err := strconv.Atoi(weekParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week number"})
		return
	}
	year, err := strconv.Atoi(yearParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}

	menu, err := h.store.MenuByWeek(ctx, week, year)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

type dishCellRequest struct {
	Day  string `json:"day" binding:"required"`
	Meal string `json:"meal" binding:"required"`
}

// parseCell resolves the day/meal names of a dish request to grid
// coordinates.
func parseCell(c *gin.Context, day, meal string) (model.Weekday, model.MealSlot, bool) {
	d, ok := model.ParseWeekday(day)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown weekday: " + day})
		return 0, 0, false
	}
	m, ok := model.ParseMealSlot(meal)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown meal slot: " + meal})
		return 0, 0, false
	}
	return d, m, true
}

type addDishRequest struct {
	dishCellRequest
	Dish model.MenuItem `json:"dish" binding:"required"`
}

// AddDish handles the POST /api/menus/{id}/dishes request.
func (h *Handler) AddDish(c *gin.Context) {
	var req addDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	day, meal, ok := parseCell(c, req.Day, req.Meal)
	if !ok {
		return
	}

	if err := h.domain.AddDish(c.Request.Context(), c.Param("id"), day, meal, req.Dish); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type removeDishRequest struct {
	dishCellRequest
	Index int `json:"index"`
}

// RemoveDish handles the DELETE /api/menus/{id}/dishes request.
func (h *Handler) RemoveDish(c *gin.Context) {
	var req removeDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	day, meal, ok := parseCell(c, req.Day, req.Meal)
	if !ok {
		return
	}

	if err := h.domain.RemoveDish(c.Request.Context(), c.Param("id"), day, meal, req.Index); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
