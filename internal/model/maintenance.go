package model

import "time"

// MaintenanceStatus is the workflow state of a maintenance request.
// Transitions are one-way: Pending -> In Progress -> Resolved.
type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "Pending"
	MaintenanceInProgress MaintenanceStatus = "In Progress"
	MaintenanceResolved   MaintenanceStatus = "Resolved"
)

// MaintenanceCategory classifies the reported issue.
type MaintenanceCategory string

const (
	CategoryElectrical MaintenanceCategory = "Electrical"
	CategoryPlumbing   MaintenanceCategory = "Plumbing"
	CategoryFurniture  MaintenanceCategory = "Furniture"
	CategoryCleaning   MaintenanceCategory = "Cleaning"
	CategoryOther      MaintenanceCategory = "Other"
)

// Priority is shared by maintenance requests and complaints.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// MaintenanceRequest is a repair ticket against a room.
type MaintenanceRequest struct {
	ID                  string              `json:"id"`
	Title               string              `json:"title"`
	Description         string              `json:"description"`
	RoomID              string              `json:"roomId"`
	Category            MaintenanceCategory `json:"category"`
	Priority            Priority            `json:"priority"`
	Status              MaintenanceStatus   `json:"status"`
	ReportedBy          string              `json:"reportedBy"`
	ReportedDate        time.Time           `json:"reportedDate"`
	AssignedTechnician  string              `json:"assignedTechnician,omitempty"`
	StartedDate         *time.Time          `json:"startedDate,omitempty"`
	EstimatedCompletion *time.Time          `json:"estimatedCompletion,omitempty"`
	ResolvedDate        *time.Time          `json:"resolvedDate,omitempty"`
	ResolutionNotes     string              `json:"resolutionNotes,omitempty"`
	ProgressPercentage  int                 `json:"progressPercentage"`
	PhotosCount         int                 `json:"photosCount"`
	Timestamps
}
