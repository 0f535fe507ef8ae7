package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-warden-backend/internal/domain"
	"hostel-warden-backend/internal/model"
	"hostel-warden-backend/internal/report"
)

// GetFoodRequests handles the GET /api/food-requests request, newest
// first. A status query parameter narrows the list.
func (h *Handler) GetFoodRequests(c *gin.Context) {
	status := c.Query("status")
	requests := report.Apply(h.store.FoodRequests(c.Request.Context()), func(r model.FoodRequest) bool {
		return status == "" || status == "All" || status == string(r.Status)
	})
	report.SortMostRecent(requests, func(r model.FoodRequest) time.Time { return r.CreatedDate })
	c.JSON(http.StatusOK, requests)
}

// SubmitFoodRequest handles the POST /api/food-requests request.
func (h *Handler) SubmitFoodRequest(c *gin.Context) {
	var in domain.FoodRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.domain.SubmitFoodRequest(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

type voteRequest struct {
	VoterID string `json:"voterId"`
}

// VoteFoodRequest handles the POST /api/food-requests/{id}/votes
// request.
func (h *Handler) VoteFoodRequest(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.domain.VoteFoodRequest(c.Request.Context(), c.Param("id"), req.VoterID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type closeFoodRequest struct {
	Accepted bool `json:"accepted"`
}

// CloseFoodRequest handles the POST /api/food-requests/{id}/close
// request.
func (h *Handler) CloseFoodRequest(c *gin.Context) {
	var req closeFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.domain.CloseFoodRequest(c.Request.Context(), c.Param("id"), req.Accepted); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
