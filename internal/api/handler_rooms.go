package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-warden-backend/internal/report"
)

// GetRooms handles the GET /api/rooms request. Filter criteria come in
// as query parameters; absent or "All" criteria match everything.
func (h *Handler) GetRooms(c *gin.Context) {
	filter := report.RoomFilter{
		Status:   c.Query("status"),
		Block:    c.Query("block"),
		Floor:    c.Query("floor"),
		Capacity: c.Query("capacity"),
		Query:    c.Query("q"),
	}
	rooms := report.Apply(h.store.Rooms(c.Request.Context()), filter.Match)
	c.JSON(http.StatusOK, rooms)
}

// GetRoom handles the GET /api/rooms/{id} request.
func (h *Handler) GetRoom(c *gin.Context) {
	room, err := h.store.RoomByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// GetRoomStudents handles the GET /api/rooms/{id}/students request.
func (h *Handler) GetRoomStudents(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := h.store.RoomByID(ctx, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.StudentsByRoom(ctx, c.Param("id")))
}
