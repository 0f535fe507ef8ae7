package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-warden-backend/internal/domain"
	"hostel-warden-backend/internal/model"
	"hostel-warden-backend/internal/report"
)

// dateRange parses optional from/to query parameters. A malformed
// timestamp aborts the request with 400.
func dateRange(c *gin.Context) (from, to time.Time, ok bool) {
	for _, p := range []struct {
		key  string
		dest *time.Time
	}{{"from", &from}, {"to", &to}} {
		raw := c.Query(p.key)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid '" + p.key + "' timestamp format. Use RFC3339."})
			return from, to, false
		}
		*p.dest = t
	}
	return from, to, true
}

// GetMaintenanceRequests handles the GET /api/maintenance request,
// newest first.
func (h *Handler) GetMaintenanceRequests(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	filter := report.MaintenanceFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Priority: c.Query("priority"),
		Query:    c.Query("q"),
		From:     from,
		To:       to,
	}
	requests := report.Apply(h.store.MaintenanceRequests(c.Request.Context()), filter.Match)
	report.SortMostRecent(requests, func(r model.MaintenanceRequest) time.Time { return r.ReportedDate })
	c.JSON(http.StatusOK, requests)
}

// ReportMaintenance handles the POST /api/maintenance request.
func (h *Handler) ReportMaintenance(c *gin.Context) {
	var in domain.MaintenanceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.domain.ReportMaintenance(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

type startMaintenanceRequest struct {
	Technician          string     `json:"technician" binding:"required"`
	EstimatedCompletion *time.Time `json:"estimatedCompletion"`
}

// StartMaintenance handles the POST /api/maintenance/{id}/start request.
func (h *Handler) StartMaintenance(c *gin.Context) {
	var req startMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.domain.StartMaintenance(c.Request.Context(), c.Param("id"), req.Technician, req.EstimatedCompletion); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type maintenanceProgressRequest struct {
	Progress int `json:"progress"`
}

// UpdateMaintenanceProgress handles the PATCH
// /api/maintenance/{id}/progress request.
func (h *Handler) UpdateMaintenanceProgress(c *gin.Context) {
	var req maintenanceProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.domain.UpdateMaintenanceProgress(c.Request.Context(), c.Param("id"), req.Progress); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type resolveRequest struct {
	Notes string `json:"notes"`
}

// ResolveMaintenance handles the POST /api/maintenance/{id}/resolve
// request.
func (h *Handler) ResolveMaintenance(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.domain.ResolveMaintenance(c.Request.Context(), c.Param("id"), req.Notes); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
