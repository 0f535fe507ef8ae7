package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-warden-backend/config"
	"hostel-warden-backend/internal/domain"
	"hostel-warden-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	cfg    *config.Config
	domain *domain.Service
	store  *store.Store
}

// NewHandler creates a new API handler.
func NewHandler(cfg *config.Config, svc *domain.Service) *Handler {
	return &Handler{
		cfg:    cfg,
		domain: svc,
		store:  svc.Store(),
	}
}

// writeError maps domain and store errors onto HTTP status codes.
// Validation failures carry their field map; rule violations are
// conflicts.
func writeError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Error(), "fields": verr.Fields})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrRoomFull),
		errors.Is(err, domain.ErrRoomUnderMaintenance),
		errors.Is(err, domain.ErrBedTaken),
		errors.Is(err, domain.ErrAlreadyVoted),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrStudentNotAllocated):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
