package model

import "time"

// AnnouncementStatus is the publishing lifecycle of an announcement.
// Draft/Scheduled -> Active -> Archived, forward only.
type AnnouncementStatus string

const (
	AnnouncementDraft     AnnouncementStatus = "Draft"
	AnnouncementScheduled AnnouncementStatus = "Scheduled"
	AnnouncementActive    AnnouncementStatus = "Active"
	AnnouncementArchived  AnnouncementStatus = "Archived"
)

// AnnouncementType classifies an announcement.
type AnnouncementType string

const (
	AnnouncementGeneral     AnnouncementType = "General"
	AnnouncementUrgent      AnnouncementType = "Urgent"
	AnnouncementEvent       AnnouncementType = "Event"
	AnnouncementMaintenance AnnouncementType = "Maintenance"
	AnnouncementNotice      AnnouncementType = "Notice"
)

// TargetAudience selects who an announcement is addressed to.
type TargetAudience struct {
	AllStudents bool     `json:"allStudents"`
	Floors      []string `json:"floors,omitempty"`
	Blocks      []string `json:"blocks,omitempty"`
}

// Visibility controls the display window of an announcement.
type Visibility struct {
	StartDate           time.Time  `json:"startDate"`
	EndDate             *time.Time `json:"endDate,omitempty"`
	DisplayUntilRemoved bool       `json:"displayUntilRemoved"`
}

// Announcement is a notice posted by the warden.
type Announcement struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Content        string             `json:"content"`
	Type           AnnouncementType   `json:"type"`
	Priority       Priority           `json:"priority"`
	TargetAudience TargetAudience     `json:"targetAudience"`
	Visibility     Visibility         `json:"visibility"`
	Status         AnnouncementStatus `json:"status"`
	Views          int                `json:"views"`
	PostedBy       string             `json:"postedBy"`
	ScheduledDate  *time.Time         `json:"scheduledDate,omitempty"`
	Timestamps
}
