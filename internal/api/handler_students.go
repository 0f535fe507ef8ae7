package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-warden-backend/internal/domain"
	"hostel-warden-backend/internal/model"
	"hostel-warden-backend/internal/report"
)

// GetStudents handles the GET /api/students request.
func (h *Handler) GetStudents(c *gin.Context) {
	filter := report.StudentFilter{
		Class:         c.Query("class"),
		PaymentStatus: c.Query("paymentStatus"),
		RoomID:        c.Query("roomId"),
		Query:         c.Query("q"),
	}
	students := report.Apply(h.store.Students(c.Request.Context()), filter.Match)
	c.JSON(http.StatusOK, students)
}

// GetStudent handles the GET /api/students/{id} request.
func (h *Handler) GetStudent(c *gin.Context) {
	student, err := h.store.StudentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// AllocateStudent handles the POST /api/students request. Creating a
// student and allocating a bed is a single operation.
func (h *Handler) AllocateStudent(c *gin.Context) {
	var in domain.AllocationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student, err := h.domain.AllocateStudent(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, student)
}

// DeallocateStudent handles the POST /api/students/{id}/deallocate
// request.
func (h *Handler) DeallocateStudent(c *gin.Context) {
	if err := h.domain.DeallocateStudent(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type recordPaymentRequest struct {
	Amount        int    `json:"amount"`
	Type          string `json:"type"`
	TransactionID string `json:"transactionId"`
	Method        string `json:"method"`
}

// RecordPayment handles the POST /api/students/{id}/payments request.
func (h *Handler) RecordPayment(c *gin.Context) {
	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.domain.RecordPayment(c.Request.Context(), domain.PaymentInput{
		StudentID:     c.Param("id"),
		Amount:        req.Amount,
		Type:          model.PaymentType(req.Type),
		TransactionID: req.TransactionID,
		Method:        req.Method,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// GetPayments handles the GET /api/payments request, newest first.
func (h *Handler) GetPayments(c *gin.Context) {
	payments := h.store.Payments(c.Request.Context())
	report.SortMostRecent(payments, func(p model.Payment) time.Time { return p.Date })
	c.JSON(http.StatusOK, payments)
}
