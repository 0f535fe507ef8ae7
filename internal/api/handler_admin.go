package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-warden-backend/internal/seed"
)

// ResetData handles the POST /api/admin/reset request: every collection
// is dropped and the synthetic dataset is regenerated.
func (h *Handler) ResetData(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.store.ClearAll(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := seed.Run(ctx, h.store, seed.Options{Students: h.cfg.Seed.Students}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
