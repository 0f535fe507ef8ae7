package model

import "time"

// ComplaintStatus is the workflow state of a complaint. Resolved is terminal.
type ComplaintStatus string

const (
	ComplaintPending  ComplaintStatus = "Pending"
	ComplaintResolved ComplaintStatus = "Resolved"
)

// Complaint is a grievance filed by a student.
type Complaint struct {
	ID              string          `json:"id"`
	StudentID       string          `json:"studentId"`
	Type            string          `json:"type"` // "Noise", "Cleanliness", "Safety", "Food Quality", "Others"
	Description     string          `json:"description"`
	Urgency         Priority        `json:"urgency"`
	Status          ComplaintStatus `json:"status"`
	ReportedDate    time.Time       `json:"reportedDate"`
	ResolvedDate    *time.Time      `json:"resolvedDate,omitempty"`
	ResolutionNotes string          `json:"resolutionNotes,omitempty"`
	Timestamps
}
