package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-warden-backend/internal/model"
	"hostel-warden-backend/internal/report"
)

// GetActivities handles the GET /api/activities request, newest first.
// An optional limit query parameter caps the result.
func (h *Handler) GetActivities(c *gin.Context) {
	activities := h.store.Activities(c.Request.Context())
	report.SortMostRecent(activities, func(a model.Activity) time.Time { return a.Timestamp })

	if limitParam := c.Query("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		if limit < len(activities) {
			activities = activities[:limit]
		}
	}
	c.JSON(http.StatusOK, activities)
}

// GetDashboardStats handles the GET /api/reports/stats request.
func (h *Handler) GetDashboardStats(c *gin.Context) {
	ctx := c.Request.Context()
	stats := report.Stats(
		h.store.Rooms(ctx),
		h.store.Students(ctx),
		h.store.MaintenanceRequests(ctx),
		h.store.Complaints(ctx),
	)
	c.JSON(http.StatusOK, stats)
}

// ExportCSV handles the GET /api/reports/export request. The entity
// query parameter selects the collection to export.
func (h *Handler) ExportCSV(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		data []byte
		err  error
	)
	entity := c.Query("entity")
	switch entity {
	case "rooms":
		data, err = report.MarshalCSV(h.store.Rooms(ctx))
	case "students":
		data, err = report.MarshalCSV(h.store.Students(ctx))
	case "maintenance":
		data, err = report.MarshalCSV(h.store.MaintenanceRequests(ctx))
	case "complaints":
		data, err = report.MarshalCSV(h.store.Complaints(ctx))
	case "payments":
		data, err = report.MarshalCSV(h.store.Payments(ctx))
	case "activities":
		data, err = report.MarshalCSV(h.store.Activities(ctx))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown export entity: " + entity})
		return
	}
	if err != nil {
		if errors.Is(err, report.ErrNoData) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Nothing to export"})
			return
		}
		writeError(c, err)
		return
	}

	filename := fmt.Sprintf("%s-%s.csv", entity, time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
