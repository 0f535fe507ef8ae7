package report

import (
	"strings"
	"time"

	"hostel-warden-backend/internal/model"
)

// Filters are AND-compositions of independent predicates. An empty or
// "All" criterion matches everything, so a zero-value filter is a no-op
// and predicate order never changes the result set.

func matchEnum(criterion, value string) bool {
	return criterion == "" || criterion == "All" || criterion == value
}

func matchText(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func matchDateRange(from, to time.Time, when time.Time) bool {
	if !from.IsZero() && when.Before(from) {
		return false
	}
	if !to.IsZero() && when.After(to) {
		return false
	}
	return true
}

// MaintenanceFilter selects maintenance requests.
type MaintenanceFilter struct {
	Status   string
	Category string
	Priority string
	Query    string
	From     time.Time
	To       time.Time
}

// Match reports whether a request satisfies every set criterion.
func (f MaintenanceFilter) Match(r model.MaintenanceRequest) bool {
	return matchEnum(f.Status, string(r.Status)) &&
		matchEnum(f.Category, string(r.Category)) &&
		matchEnum(f.Priority, string(r.Priority)) &&
		matchText(f.Query, r.Title, r.Description) &&
		matchDateRange(f.From, f.To, r.ReportedDate)
}

// ComplaintFilter selects complaints.
type ComplaintFilter struct {
	Status  string
	Type    string
	Urgency string
	Query   string
	From    time.Time
	To      time.Time
}

// Match reports whether a complaint satisfies every set criterion.
func (f ComplaintFilter) Match(c model.Complaint) bool {
	return matchEnum(f.Status, string(c.Status)) &&
		matchEnum(f.Type, c.Type) &&
		matchEnum(f.Urgency, string(c.Urgency)) &&
		matchText(f.Query, c.Description) &&
		matchDateRange(f.From, f.To, c.ReportedDate)
}

// StudentFilter selects students.
type StudentFilter struct {
	Class         string
	PaymentStatus string
	RoomID        string
	Query         string
}

// Match reports whether a student satisfies every set criterion.
func (f StudentFilter) Match(s model.Student) bool {
	return matchEnum(f.Class, s.Class) &&
		matchEnum(f.PaymentStatus, string(s.PaymentStatus)) &&
		(f.RoomID == "" || f.RoomID == s.RoomID) &&
		matchText(f.Query, s.FullName, s.RollNumber, s.Email)
}

// RoomFilter selects rooms.
type RoomFilter struct {
	Status   string
	Block    string
	Floor    string
	Capacity string
	Query    string
}

// Match reports whether a room satisfies every set criterion.
func (f RoomFilter) Match(r model.Room) bool {
	return matchEnum(f.Status, string(r.Status)) &&
		matchEnum(f.Block, r.Block) &&
		matchEnum(f.Floor, r.Floor) &&
		matchEnum(f.Capacity, string(r.Capacity)) &&
		matchText(f.Query, r.Number)
}

// Apply keeps the records satisfying the predicate, preserving input
// order.
func Apply[T any](list []T, match func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, item := range list {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}
