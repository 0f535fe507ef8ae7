package domain

import (
	"context"
	"fmt"
	"time"

	"hostel-warden-backend/internal/model"
)

// MaintenanceInput is the report-an-issue form.
type MaintenanceInput struct {
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	RoomID      string                    `json:"roomId"`
	Category    model.MaintenanceCategory `json:"category"`
	Priority    model.Priority            `json:"priority"`
	ReportedBy  string                    `json:"reportedBy"`
}

// ReportMaintenance files a new ticket in Pending state and flags the
// room for maintenance.
func (s *Service) ReportMaintenance(ctx context.Context, in MaintenanceInput) (model.MaintenanceRequest, error) {
	var verr ValidationError
	if in.Title == "" {
		verr.add("title", "title is required")
	}
	if in.RoomID == "" {
		verr.add("roomId", "a room must be selected")
	}
	if err := verr.orNil(); err != nil {
		return model.MaintenanceRequest{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.store.RoomByID(ctx, in.RoomID)
	if err != nil {
		return model.MaintenanceRequest{}, fmt.Errorf("room %s: %w", in.RoomID, err)
	}

	now := time.Now().UTC()
	request := model.MaintenanceRequest{
		ID:           newID(),
		Title:        in.Title,
		Description:  in.Description,
		RoomID:       room.ID,
		Category:     in.Category,
		Priority:     in.Priority,
		Status:       model.MaintenancePending,
		ReportedBy:   in.ReportedBy,
		ReportedDate: now,
		Timestamps:   stamp(now),
	}
	if err := s.store.AddMaintenanceRequest(ctx, request); err != nil {
		return model.MaintenanceRequest{}, err
	}

	if err := s.store.UpdateRoom(ctx, room.ID, func(r *model.Room) {
		r.Status = model.RoomMaintenance
		r.MaintenanceIssue = in.Title
	}); err != nil {
		return model.MaintenanceRequest{}, fmt.Errorf("failed to flag room: %w", err)
	}

	s.logActivity(ctx, model.ActivityMaintenanceReported,
		fmt.Sprintf("%s reported for room %s", in.Title, room.Number), request.ID)
	return request, nil
}

// StartMaintenance moves a Pending ticket to In Progress and assigns a
// technician.
func (s *Service) StartMaintenance(ctx context.Context, id, technician string, estimatedCompletion *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, err := s.store.MaintenanceRequestByID(ctx, id)
	if err != nil {
		return err
	}
	if request.Status != model.MaintenancePending {
		return ErrInvalidTransition
	}

	now := time.Now().UTC()
	return s.store.UpdateMaintenanceRequest(ctx, id, func(r *model.MaintenanceRequest) {
		r.Status = model.MaintenanceInProgress
		r.AssignedTechnician = technician
		r.StartedDate = &now
		r.EstimatedCompletion = estimatedCompletion
	})
}

// UpdateMaintenanceProgress sets the progress percentage of an In
// Progress ticket, clamped to 0-100.
func (s *Service) UpdateMaintenanceProgress(ctx context.Context, id string, pct int) error {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	request, err := s.store.MaintenanceRequestByID(ctx, id)
	if err != nil {
		return err
	}
	if request.Status != model.MaintenanceInProgress {
		return fmt.Errorf("progress only applies to in-progress requests: %w", ErrInvalidTransition)
	}

	return s.store.UpdateMaintenanceRequest(ctx, id, func(r *model.MaintenanceRequest) {
		r.ProgressPercentage = pct
	})
}

// ResolveMaintenance marks a ticket Resolved, forcing progress to 100 and
// stamping the resolution. When the room has no other open tickets its
// Maintenance status is cleared, back to Occupied or Empty by occupancy.
func (s *Service) ResolveMaintenance(ctx context.Context, id, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, err := s.store.MaintenanceRequestByID(ctx, id)
	if err != nil {
		return err
	}
	if request.Status == model.MaintenanceResolved {
		return ErrInvalidTransition
	}

	now := time.Now().UTC()
	if err := s.store.UpdateMaintenanceRequest(ctx, id, func(r *model.MaintenanceRequest) {
		r.Status = model.MaintenanceResolved
		r.ProgressPercentage = 100
		r.ResolvedDate = &now
		r.ResolutionNotes = notes
	}); err != nil {
		return err
	}

	if !s.hasOpenTickets(ctx, request.RoomID) {
		if err := s.store.UpdateRoom(ctx, request.RoomID, func(r *model.Room) {
			if r.Status != model.RoomMaintenance {
				return
			}
			r.MaintenanceIssue = ""
			if r.Occupancy > 0 {
				r.Status = model.RoomOccupied
			} else {
				r.Status = model.RoomEmpty
			}
		}); err != nil {
			return fmt.Errorf("failed to clear room maintenance flag: %w", err)
		}
	}

	s.logActivity(ctx, model.ActivityMaintenanceResolved,
		fmt.Sprintf("%s resolved", request.Title), id)
	return nil
}

func (s *Service) hasOpenTickets(ctx context.Context, roomID string) bool {
	for _, r := range s.store.MaintenanceRequests(ctx) {
		if r.RoomID == roomID && r.Status != model.MaintenanceResolved {
			return true
		}
	}
	return false
}
