package model

import "time"

// ActivityType identifies which compound operation produced a log entry.
type ActivityType string

const (
	ActivityStudentAllocated    ActivityType = "Student Allocated"
	ActivityStudentDeallocated  ActivityType = "Student Deallocated"
	ActivityPaymentReceived     ActivityType = "Payment Received"
	ActivityMaintenanceReported ActivityType = "Maintenance Reported"
	ActivityMaintenanceResolved ActivityType = "Maintenance Resolved"
	ActivityComplaintFiled      ActivityType = "Complaint Filed"
	ActivityComplaintResolved   ActivityType = "Complaint Resolved"
	ActivityAnnouncementPosted  ActivityType = "Announcement Posted"
	ActivityMenuUpdated         ActivityType = "Menu Updated"
	ActivityFoodRequestClosed   ActivityType = "Food Request Closed"
)

// Activity is an append-only audit log entry. Entries are only ever added,
// never updated.
type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
	RelatedID   string       `json:"relatedId,omitempty"`
}
