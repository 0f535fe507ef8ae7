// Package report computes read-side derivations: dashboard statistics,
// composable filters, and CSV export. Everything works on full in-memory
// collections; data volumes are tens to low hundreds of records.
package report

import (
	"math"
	"sort"
	"time"

	"hostel-warden-backend/internal/model"
)

// DashboardStats is the aggregate shown on the dashboard landing page.
type DashboardStats struct {
	TotalRooms           int `json:"totalRooms"`
	OccupiedRooms        int `json:"occupiedRooms"`
	EmptyRooms           int `json:"emptyRooms"`
	MaintenanceRooms     int `json:"maintenanceRooms"`
	TotalStudents        int `json:"totalStudents"`
	PaidStudents         int `json:"paidStudents"`
	UnpaidStudents       int `json:"unpaidStudents"`
	PendingMaintenance   int `json:"pendingMaintenance"`
	UnresolvedComplaints int `json:"unresolvedComplaints"`
	OccupancyRate        int `json:"occupancyRate"`
}

// OccupancyRate is the percentage of beds in use: occupied beds (summed
// over rooms whose status is Occupied) against total bed capacity,
// rounded to the nearest whole percent. Zero for an empty room list.
// Permuting the input does not change the result.
func OccupancyRate(rooms []model.Room) int {
	if len(rooms) == 0 {
		return 0
	}

	var occupied, capacity int
	for _, room := range rooms {
		if room.Status == model.RoomOccupied {
			occupied += room.Occupancy
		}
		capacity += room.Capacity.Beds()
	}
	if capacity == 0 {
		return 0
	}
	return int(math.Round(float64(occupied) / float64(capacity) * 100))
}

// Stats derives the dashboard aggregate from the full collections.
func Stats(rooms []model.Room, students []model.Student, maintenance []model.MaintenanceRequest, complaints []model.Complaint) DashboardStats {
	stats := DashboardStats{
		TotalRooms:    len(rooms),
		TotalStudents: len(students),
		OccupancyRate: OccupancyRate(rooms),
	}

	for _, room := range rooms {
		switch room.Status {
		case model.RoomOccupied:
			stats.OccupiedRooms++
		case model.RoomEmpty:
			stats.EmptyRooms++
		case model.RoomMaintenance:
			stats.MaintenanceRooms++
		}
	}
	for _, student := range students {
		switch student.PaymentStatus {
		case model.PaymentPaid:
			stats.PaidStudents++
		default:
			stats.UnpaidStudents++
		}
	}
	for _, request := range maintenance {
		if request.Status == model.MaintenancePending {
			stats.PendingMaintenance++
		}
	}
	for _, complaint := range complaints {
		if complaint.Status == model.ComplaintPending {
			stats.UnresolvedComplaints++
		}
	}
	return stats
}

// SortMostRecent orders a collection newest-first by the given date
// field. The sort is stable: ties keep their input order.
func SortMostRecent[T any](list []T, when func(T) time.Time) {
	sort.SliceStable(list, func(i, j int) bool {
		return when(list[i]).After(when(list[j]))
	})
}
