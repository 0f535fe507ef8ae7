package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-warden-backend/internal/domain"
	"hostel-warden-backend/internal/model"
	"hostel-warden-backend/internal/report"
)

// GetComplaints handles the GET /api/complaints request, newest first.
func (h *Handler) GetComplaints(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	filter := report.ComplaintFilter{
		Status:  c.Query("status"),
		Type:    c.Query("type"),
		Urgency: c.Query("urgency"),
		Query:   c.Query("q"),
		From:    from,
		To:      to,
	}
	complaints := report.Apply(h.store.Complaints(c.Request.Context()), filter.Match)
	report.SortMostRecent(complaints, func(cm model.Complaint) time.Time { return cm.ReportedDate })
	c.JSON(http.StatusOK, complaints)
}

// FileComplaint handles the POST /api/complaints request.
func (h *Handler) FileComplaint(c *gin.Context) {
	var in domain.ComplaintInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint, err := h.domain.FileComplaint(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, complaint)
}

// ResolveComplaint handles the POST /api/complaints/{id}/resolve
// request.
func (h *Handler) ResolveComplaint(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.domain.ResolveComplaint(c.Request.Context(), c.Param("id"), req.Notes); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
