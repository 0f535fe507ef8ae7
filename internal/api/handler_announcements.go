package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-warden-backend/internal/domain"
	"hostel-warden-backend/internal/model"
	"hostel-warden-backend/internal/report"
)

// GetAnnouncements handles the GET /api/announcements request, newest
// first. A status query parameter narrows the list.
func (h *Handler) GetAnnouncements(c *gin.Context) {
	status := c.Query("status")
	announcements := report.Apply(h.store.Announcements(c.Request.Context()), func(a model.Announcement) bool {
		return status == "" || status == "All" || status == string(a.Status)
	})
	report.SortMostRecent(announcements, func(a model.Announcement) time.Time { return a.CreatedAt })
	c.JSON(http.StatusOK, announcements)
}

// CreateAnnouncement handles the POST /api/announcements request.
func (h *Handler) CreateAnnouncement(c *gin.Context) {
	var in domain.AnnouncementInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	announcement, err := h.domain.CreateAnnouncement(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, announcement)
}

// PublishAnnouncement handles the POST /api/announcements/{id}/publish
// request.
func (h *Handler) PublishAnnouncement(c *gin.Context) {
	if err := h.domain.PublishAnnouncement(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RecordAnnouncementView handles the POST /api/announcements/{id}/views
// request.
func (h *Handler) RecordAnnouncementView(c *gin.Context) {
	if err := h.domain.RecordAnnouncementView(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ArchiveAnnouncement handles the POST /api/announcements/{id}/archive
// request.
func (h *Handler) ArchiveAnnouncement(c *gin.Context) {
	if err := h.domain.ArchiveAnnouncement(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
